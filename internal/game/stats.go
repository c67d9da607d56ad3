package game

import (
	"slices"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// Standing summarizes one playing team in a snapshot
type Standing struct {
	Team          int
	SwarmSize     int
	Cities        int
	Buildings     int // kinds built
	Resources     int
	Cards         int
	VictoryPoints int
}

// Standings ranks the playing teams by victory points, then swarm size,
// then roster order
func Standings(g core.Game) []Standing {
	out := make([]Standing, 0, g.PlayerCount())
	for _, team := range g.ActiveTeams() {
		p := &g.Players[team]
		s := Standing{
			Team:          team,
			SwarmSize:     p.SwarmSize,
			Cities:        len(p.Cities),
			Cards:         len(p.Hand),
			VictoryPoints: p.VictoryPoints,
		}
		for _, phase := range p.Phases {
			if phase == core.Built {
				s.Buildings++
			}
		}
		for _, amount := range p.Resources {
			s.Resources += amount
		}
		out = append(out, s)
	}

	slices.SortStableFunc(out, func(a, b Standing) int {
		if a.VictoryPoints != b.VictoryPoints {
			return b.VictoryPoints - a.VictoryPoints
		}
		if a.SwarmSize != b.SwarmSize {
			return b.SwarmSize - a.SwarmSize
		}
		return a.Team - b.Team
	})
	return out
}
