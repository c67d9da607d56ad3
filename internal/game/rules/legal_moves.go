package rules

import "github.com/mitchelldurbincs/SwarmConquest/internal/game/core"

// LegalMoveCalculator computes which meeples and intents a team may use
type LegalMoveCalculator struct {
	selector *SwarmSelector
}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator(selector *SwarmSelector) *LegalMoveCalculator {
	return &LegalMoveCalculator{selector: selector}
}

// AvailableMeeples returns the live meeples of team that show the active side
// and are not covered by another meeple, in board order
func (lmc *LegalMoveCalculator) AvailableMeeples(g *core.Game, team int) []core.Meeple {
	var out []core.Meeple
	for i := range g.Terrains {
		m := g.Meeple(g.Terrains[i].Top)
		if m != nil && m.Team == team && m.Side == g.Turn.Side {
			out = append(out, *m)
		}
	}
	return out
}

// HasAvailable reports whether team has at least one meeple able to act
func (lmc *LegalMoveCalculator) HasAvailable(g *core.Game, team int) bool {
	for i := range g.Terrains {
		if m := g.Meeple(g.Terrains[i].Top); m != nil && m.Team == team && m.Side == g.Turn.Side {
			return true
		}
	}
	return false
}

// CandidateIntents lists one intent per action for every distinct swarm of
// the acting team. Candidates pass selection checks but may still be
// rejected while resolving, for example by a blocked first step.
func (lmc *LegalMoveCalculator) CandidateIntents(g *core.Game) []core.Intent {
	team := g.Turn.Team
	seen := make(map[int]bool)
	var intents []core.Intent
	for _, m := range lmc.AvailableMeeples(g, team) {
		if seen[m.Key] {
			continue
		}
		swarm := lmc.selector.Select(g, m.Position)
		for _, key := range swarm {
			seen[key] = true
		}
		for _, action := range core.Actions {
			intents = append(intents, core.Intent{Team: team, Action: action, Selection: swarm})
		}
	}
	return intents
}
