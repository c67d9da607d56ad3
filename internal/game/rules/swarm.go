package rules

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// SwarmSelector computes the connected set of meeples that act together
type SwarmSelector struct {
	logger zerolog.Logger
}

// NewSwarmSelector creates a new swarm selector
func NewSwarmSelector(logger zerolog.Logger) *SwarmSelector {
	return &SwarmSelector{
		logger: logger.With().Str("component", "SwarmSelector").Logger(),
	}
}

// Select flood-fills the eight-connected tiles around start whose top meeple
// belongs to the acting team and shows the active side. Foreign cities and the
// mover's own buildings with free space join the swarm but stop the fill,
// except when they are the start tile. Keys are ordered by board index.
func (s *SwarmSelector) Select(g *core.Game, start core.Position) []int {
	team, side := g.Turn.Team, g.Turn.Side
	if !s.includable(g, start, team, side) {
		return nil
	}

	visited := make([]bool, len(g.Terrains))
	var tiles []int
	queue := []core.Position{start}
	visited[g.Index(start)] = true

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		tiles = append(tiles, g.Index(pos))

		if !pos.Equal(start) && s.boundary(g, pos, team) {
			continue
		}
		for _, n := range pos.ValidSurrounding(g.BoardSize) {
			idx := g.Index(n)
			if visited[idx] || !s.includable(g, n, team, side) {
				continue
			}
			visited[idx] = true
			queue = append(queue, n)
		}
	}

	slices.Sort(tiles)
	keys := make([]int, len(tiles))
	for i, idx := range tiles {
		keys[i] = g.Terrains[idx].Top
	}

	s.logger.Debug().
		Int("team", team).
		Str("start", start.String()).
		Ints("keys", keys).
		Msg("Swarm selected")
	return keys
}

func (s *SwarmSelector) includable(g *core.Game, pos core.Position, team int, side core.Side) bool {
	m := g.TopAt(pos)
	return m != nil && m.Team == team && m.Side == side
}

// boundary reports whether the tile is targetable but stops propagation
func (s *SwarmSelector) boundary(g *core.Game, pos core.Position, team int) bool {
	t := g.TerrainAt(pos)
	if !t.HasSpace() {
		return false
	}
	switch c := t.Construction.(type) {
	case core.City:
		return c.Team != team
	case core.Building:
		return c.Team == team
	default:
		return false
	}
}

// SortByIndex orders live meeple keys by the board index of their tile.
// Removed or unknown keys are dropped.
func SortByIndex(g *core.Game, keys []int) []int {
	out := make([]int, 0, len(keys))
	for _, key := range keys {
		if g.Meeple(key) != nil && !slices.Contains(out, key) {
			out = append(out, key)
		}
	}
	slices.SortStableFunc(out, func(a, b int) int {
		return g.Index(g.Meeples[a].Position) - g.Index(g.Meeples[b].Position)
	})
	return out
}
