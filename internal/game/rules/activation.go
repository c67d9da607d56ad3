package rules

import (
	"slices"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// activate runs the building at pos for the meeple key on top of it.
// Transfer buildings add their stored cubits to the occupant when gain is
// set and drain them otherwise. Stations decide by ownership alone.
func (cs *ConstructionSystem) activate(g *core.Game, pos core.Position, key int, gain bool) []core.Outcome {
	t := g.TerrainAt(pos)
	b, ok := t.Building()
	m := g.Meeple(key)
	if !ok || m == nil {
		return nil
	}
	owner := m.Team == b.Team
	cubits := b.Resources[core.Cubit]

	var outcomes []core.Outcome
	switch b.Kind {
	case core.Research:
		return nil

	case core.Power, core.School, core.Hospital:
		if cubits == 0 {
			return nil
		}
		delta := cubits
		if !gain {
			delta = -cubits
		}
		switch b.Kind {
		case core.Power:
			m.Faith = max(0, m.Faith+delta)
		case core.School:
			m.Strength = max(0, m.Strength+delta)
		case core.Hospital:
			m.Resistance = max(0, m.Resistance+delta)
		}
		b.Resources[core.Cubit] = 0
		t.Construction = b
		outcomes = append(outcomes, core.Outcome{Kind: core.OutcomeBuildingActivated, Team: m.Team, Keys: []int{key}, Position: pos, Amount: delta})
		if b.Kind == core.Hospital && m.Resistance <= 0 {
			outcomes = append(outcomes, Remove(g, key, core.NoMeeple))
		}

	case core.Station:
		if cubits < 1 {
			return nil
		}
		stack := g.Stack(pos)
		switch {
		case owner && len(stack) == 2 && g.ExclusivelyControls(pos, b.Team):
			merge(g, stack[0], stack[1])
		case !owner && len(stack) == 1 && t.HasSpace():
			split(g, key)
		default:
			return nil
		}
		b.Resources[core.Cubit]--
		t.Construction = b
		outcomes = append(outcomes, core.Outcome{Kind: core.OutcomeBuildingActivated, Team: m.Team, Keys: g.Stack(pos), Position: pos, Amount: 1})
	}

	cs.logger.Debug().
		Str("kind", b.Kind.String()).
		Int("key", key).
		Bool("owner", owner).
		Bool("gain", gain).
		Str("position", pos.String()).
		Msg("Building activated")
	return outcomes
}

// merge folds lower into top, summing every stat
func merge(g *core.Game, top, lower int) {
	t, l := &g.Meeples[top], &g.Meeples[lower]
	t.Strength += l.Strength
	t.Resistance += l.Resistance
	t.Faith += l.Faith
	t.Speed += l.Speed
	Remove(g, lower, core.NoMeeple)
}

// split stacks a half-strength copy of key on its own tile
func split(g *core.Game, key int) {
	m := &g.Meeples[key]
	m.Strength /= 2
	newKey := len(g.Meeples)
	twin := core.NewMeeple(newKey, m.Position, m.Team, m.Side, core.Stats{
		Strength:   m.Strength,
		Resistance: m.Resistance,
		Faith:      m.Faith,
		Speed:      m.Speed,
	})
	twin.Below = key

	t := g.TerrainAt(m.Position)
	t.Top = newKey
	t.SpaceLeft--
	adjustSwarm(g, m.Team, 1)
	g.Meeples = append(slices.Clip(g.Meeples), twin)
}
