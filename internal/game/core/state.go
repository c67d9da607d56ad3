package core

import "slices"

// Turn is the whole turn state: no other named phases exist
type Turn struct {
	Round int
	Team  int
	Side  Side
}

// Game is an immutable snapshot. Operations return a new Game; earlier
// values stay valid because every write goes through Clone or a
// copy-on-append helper.
type Game struct {
	ID         string
	BoardSize  int
	Players    []Player // index 0 is NeutralTeam
	Terrains   []Terrain
	Meeples    []Meeple
	Decks      [NumBuildingKinds][]Card
	Discards   [NumBuildingKinds][]Card
	Seed       int64 // base of every discard reshuffle
	Reshuffles int   // reshuffles performed so far
	Turn       Turn
	Over       bool
	Log        []Outcome
}

// Clone copies the per-tile, per-meeple and per-player tables. Decks,
// discards, hands, city lists and the log are shared and replaced on write.
func (g Game) Clone() Game {
	g.Players = slices.Clone(g.Players)
	g.Terrains = slices.Clone(g.Terrains)
	g.Meeples = slices.Clone(g.Meeples)
	return g
}

// Record returns the game with outcomes appended to its log
func (g Game) Record(outcomes ...Outcome) Game {
	g.Log = append(slices.Clip(g.Log), outcomes...)
	return g
}

// PlayerCount is the number of active teams, the neutral slot excluded
func (g *Game) PlayerCount() int { return len(g.Players) - 1 }

// IsActiveTeam reports whether team is a playing roster slot
func (g *Game) IsActiveTeam(team int) bool {
	return team > NeutralTeam && team < len(g.Players)
}

// ActiveTeams lists the playing teams in roster order
func (g *Game) ActiveTeams() []int {
	teams := make([]int, 0, g.PlayerCount())
	for t := NeutralTeam + 1; t < len(g.Players); t++ {
		teams = append(teams, t)
	}
	return teams
}

// InBounds checks if a position is on the board
func (g *Game) InBounds(p Position) bool { return p.IsValid(g.BoardSize) }

// Index converts a position to a Terrains index
func (g *Game) Index(p Position) int { return p.ToIndex(g.BoardSize) }

// TerrainAt returns the tile at p. The caller must check InBounds.
func (g *Game) TerrainAt(p Position) *Terrain { return &g.Terrains[g.Index(p)] }

// Meeple returns the live meeple with key, or nil
func (g *Game) Meeple(key int) *Meeple {
	if key < 0 || key >= len(g.Meeples) || g.Meeples[key].IsRemoved() {
		return nil
	}
	return &g.Meeples[key]
}

// TopAt returns the top meeple at p, or nil
func (g *Game) TopAt(p Position) *Meeple {
	if !g.InBounds(p) {
		return nil
	}
	return g.Meeple(g.TerrainAt(p).Top)
}

// Stack returns the keys of the meeples on p from the top down.
// The walk is capped by the arena size so a broken chain cannot loop.
func (g *Game) Stack(p Position) []int {
	if !g.InBounds(p) {
		return nil
	}
	var keys []int
	for key := g.TerrainAt(p).Top; key != NoMeeple && len(keys) <= len(g.Meeples); {
		m := g.Meeple(key)
		if m == nil {
			break
		}
		keys = append(keys, key)
		key = m.Below
	}
	return keys
}

// StackOf walks the chain starting at key, the meeple itself included
func (g *Game) StackOf(key int) []int {
	var keys []int
	for key != NoMeeple && len(keys) <= len(g.Meeples) {
		m := g.Meeple(key)
		if m == nil {
			break
		}
		keys = append(keys, key)
		key = m.Below
	}
	return keys
}

// ExclusivelyControls reports whether every meeple stacked on p belongs to team.
// An empty tile is not controlled by anyone.
func (g *Game) ExclusivelyControls(p Position, team int) bool {
	stack := g.Stack(p)
	if len(stack) == 0 {
		return false
	}
	for _, key := range stack {
		if g.Meeples[key].Team != team {
			return false
		}
	}
	return true
}

// LiveMeeples counts meeples still in the game for each roster slot
func (g *Game) LiveMeeples() []int {
	counts := make([]int, len(g.Players))
	for i := range g.Meeples {
		m := &g.Meeples[i]
		if !m.IsRemoved() && m.Team >= 0 && m.Team < len(counts) {
			counts[m.Team]++
		}
	}
	return counts
}

// CityPosition finds the tile holding the city with key
func (g *Game) CityPosition(key int) (Position, bool) {
	for i := range g.Terrains {
		if c, ok := g.Terrains[i].City(); ok && c.Key == key {
			return g.Terrains[i].Position, true
		}
	}
	return Position{}, false
}
