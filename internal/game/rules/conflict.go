package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// ConflictResolver settles a mover landing on a meeple of another team
type ConflictResolver struct {
	logger zerolog.Logger
}

// NewConflictResolver creates a new conflict resolver
func NewConflictResolver(logger zerolog.Logger) *ConflictResolver {
	return &ConflictResolver{
		logger: logger.With().Str("component", "ConflictResolver").Logger(),
	}
}

// Resolve returns a new game in which over, stacked directly on under, has
// either converted or fought it. The input game is left untouched.
func (cr *ConflictResolver) Resolve(g core.Game, over, under int) (core.Game, []core.Outcome) {
	w := g.Clone()
	outcomes := cr.resolve(&w, over, under)
	return w, outcomes
}

// resolve mutates the working copy g
func (cr *ConflictResolver) resolve(g *core.Game, over, under int) []core.Outcome {
	o, u := g.Meeple(over), g.Meeple(under)
	if o == nil || u == nil || o.Team == u.Team {
		return nil
	}
	pos := u.Position

	if o.Faith > u.Faith+u.Strength {
		from := u.Team
		adjustSwarm(g, from, -1)
		adjustSwarm(g, o.Team, 1)
		u.Team = o.Team
		o.Faith += u.Faith

		cr.logger.Info().
			Int("converter", over).
			Int("converted", under).
			Int("from_team", from).
			Int("to_team", o.Team).
			Msg("Meeple converted")
		return []core.Outcome{{Kind: core.OutcomeConverted, Team: o.Team, Keys: []int{under}, Position: pos, Amount: from}}
	}

	// Damage is simultaneous, computed from pre-combat strength
	overStrength, underStrength := o.Strength, u.Strength
	u.Resistance -= overStrength
	o.Resistance -= underStrength
	outcomes := []core.Outcome{{Kind: core.OutcomeCombat, Team: o.Team, Keys: []int{over, under}, Position: pos, Amount: overStrength}}

	cr.logger.Debug().
		Int("over", over).
		Int("under", under).
		Int("over_resistance", o.Resistance).
		Int("under_resistance", u.Resistance).
		Msg("Combat resolved")

	overDead, underDead := o.Resistance <= 0, u.Resistance <= 0
	if underDead {
		survivor := over
		if overDead {
			survivor = core.NoMeeple
		}
		outcomes = append(outcomes, cr.remove(g, under, survivor))
	}
	if overDead {
		survivor := under
		if underDead {
			survivor = core.NoMeeple
		}
		outcomes = append(outcomes, cr.remove(g, over, survivor))
	}
	return outcomes
}

func (cr *ConflictResolver) remove(g *core.Game, key, survivor int) core.Outcome {
	out := Remove(g, key, survivor)
	cr.logger.Info().Int("key", key).Int("team", out.Team).Str("position", out.Position.String()).Msg("Meeple removed")
	return out
}

// Remove takes key out of the working copy g: its chain is relinked, its tile
// gains a slot back and its team's swarm shrinks. A live survivor inherits its
// faith. The slot stays in the arena with a sentinel key.
func Remove(g *core.Game, key, survivor int) core.Outcome {
	m := g.Meeple(key)
	if m == nil {
		return core.Outcome{Kind: core.OutcomeRemoved, Keys: []int{key}}
	}
	t := g.TerrainAt(m.Position)

	if t.Top == key {
		t.Top = m.Below
	} else {
		for _, above := range g.Stack(m.Position) {
			if g.Meeples[above].Below == key {
				g.Meeples[above].Below = m.Below
				break
			}
		}
	}
	t.SpaceLeft++

	if s := g.Meeple(survivor); s != nil && survivor != key {
		s.Faith += m.Faith
	}
	adjustSwarm(g, m.Team, -1)

	out := core.Outcome{Kind: core.OutcomeRemoved, Team: m.Team, Keys: []int{key}, Position: m.Position}
	m.Key = core.RemovedKey
	m.Below = core.NoMeeple
	return out
}

func adjustSwarm(g *core.Game, team, delta int) {
	if team >= 0 && team < len(g.Players) {
		g.Players[team].SwarmSize += delta
	}
}
