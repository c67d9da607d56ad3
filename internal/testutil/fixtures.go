package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// DefaultStats are sturdy stats that survive a few rounds of combat
var DefaultStats = core.Stats{Strength: 10, Resistance: 25, Faith: 3, Speed: 1}

// CreateTestGame creates a size x size grassland board with the given number
// of playing teams plus the neutral slot. Every tile holds capacity meeples.
// The turn is round 1, team 1, heads.
func CreateTestGame(size, players, capacity int) core.Game {
	g := core.Game{
		ID:        "test-game",
		BoardSize: size,
		Players:   make([]core.Player, players+1),
		Terrains:  make([]core.Terrain, size*size),
		Turn:      core.Turn{Round: 1, Team: 1, Side: core.Heads},
	}
	for team := range g.Players {
		g.Players[team].Team = team
	}
	for idx := range g.Terrains {
		g.Terrains[idx] = core.NewTerrain(core.FromIndex(idx, size), core.Grassland, capacity)
	}
	return g
}

// PlaceMeeple stacks a new heads-up meeple of team on pos and returns its key
func PlaceMeeple(g *core.Game, pos core.Position, team int, stats core.Stats) int {
	key := len(g.Meeples)
	t := g.TerrainAt(pos)
	m := core.NewMeeple(key, pos, team, core.Heads, stats)
	m.Below = t.Top
	t.Top = key
	t.SpaceLeft--
	g.Meeples = append(g.Meeples, m)
	g.Players[team].SwarmSize++
	return key
}

// PlaceCity puts a city with the given defense and owner on pos. An owning
// team gets the key added to its city list.
func PlaceCity(g *core.Game, pos core.Position, key, defense, team int) {
	g.TerrainAt(pos).Construction = core.City{Key: key, Name: "Testville", Defense: defense, Team: team}
	g.Players[team] = g.Players[team].GainCity(key)
}

// SetGeography changes the landscape of pos without touching its capacity
func SetGeography(g *core.Game, pos core.Position, geo core.Geography) {
	g.TerrainAt(pos).Geography = geo
}

// AssertInvariants checks the stacking invariants of a snapshot: capacity
// accounting per tile, tops pointing at live meeples positioned there, and
// every live meeple reachable from exactly one top through a finite chain.
func AssertInvariants(t *testing.T, g core.Game) {
	t.Helper()
	reached := make(map[int]int)
	for idx := range g.Terrains {
		tile := &g.Terrains[idx]
		stack := g.Stack(tile.Position)
		assert.LessOrEqual(t, len(stack), len(g.Meeples), "chain at %s must be finite", tile.Position)
		assert.GreaterOrEqual(t, tile.SpaceLeft, 0, "space left at %s", tile.Position)
		assert.Equal(t, tile.Capacity, tile.SpaceLeft+len(stack), "capacity accounting at %s", tile.Position)
		if tile.Top != core.NoMeeple {
			top := g.Meeple(tile.Top)
			if assert.NotNil(t, top, "top at %s must be live", tile.Position) {
				assert.Equal(t, tile.Position, top.Position)
			}
		}
		for _, key := range stack {
			reached[key]++
			assert.Equal(t, tile.Position, g.Meeples[key].Position, "meeple %d is stacked on %s", key, tile.Position)
		}
	}

	live := g.LiveMeeples()
	for i := range g.Meeples {
		m := &g.Meeples[i]
		if m.IsRemoved() {
			continue
		}
		assert.Equal(t, i, m.Key, "key equals arena slot")
		assert.Equal(t, 1, reached[i], "meeple %d reachable from exactly one top", i)
	}
	for team := range g.Players {
		assert.Equal(t, live[team], g.Players[team].SwarmSize, "swarm size of team %d", team)
	}
}
