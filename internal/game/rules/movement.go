package rules

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// MovementResolver steps a swarm across the board and hands the landing tiles
// to the conflict resolver and the construction system
type MovementResolver struct {
	logger       zerolog.Logger
	conflict     *ConflictResolver
	construction *ConstructionSystem
}

// NewMovementResolver creates a new movement resolver
func NewMovementResolver(logger zerolog.Logger, conflict *ConflictResolver, construction *ConstructionSystem) *MovementResolver {
	return &MovementResolver{
		logger:       logger.With().Str("component", "MovementResolver").Logger(),
		conflict:     conflict,
		construction: construction,
	}
}

// Move returns a new game with every selected meeple of team moved in dir.
// A meeple that cannot take its first step rejects the whole move: the input
// game is returned with the sentinel error and no outcomes.
func (mr *MovementResolver) Move(g core.Game, team int, dir core.Direction, keys []int) (core.Game, []core.Outcome, error) {
	w := g.Clone()
	outcomes, err := mr.move(&w, team, dir, keys)
	if err != nil {
		return g, nil, err
	}
	return w, outcomes, nil
}

func (mr *MovementResolver) move(g *core.Game, team int, dir core.Direction, keys []int) ([]core.Outcome, error) {
	order := SortByIndex(g, keys)
	// Meeples further along the direction go first so nobody lands on a
	// swarm member that has not moved yet
	if dir.Forward() {
		slices.Reverse(order)
	}

	var outcomes []core.Outcome
	var vacated []core.Position

	for _, key := range order {
		m := g.Meeple(key)
		if m == nil {
			continue
		}
		origin := m.Position
		if g.TerrainAt(origin).Top != key {
			mr.logger.Debug().Int("key", key).Msg("Skipping covered meeple")
			continue
		}

		dest, steps, err := mr.walk(g, origin, dir, m.Speed)
		if err != nil {
			mr.logger.Debug().Err(err).Int("key", key).Msg("First step blocked, move rejected")
			return nil, err
		}

		outcomes = append(outcomes, mr.relocate(g, key, origin, dest, steps)...)
		if g.TerrainAt(origin).Top == core.NoMeeple {
			vacated = append(vacated, origin)
		}
		outcomes = append(outcomes, mr.land(g, team, key, dest)...)
	}

	for _, pos := range vacated {
		t := g.TerrainAt(pos)
		if t.IsOccupied() {
			continue
		}
		if out, ok := harvest(t); ok {
			outcomes = append(outcomes, out)
		}
	}
	return outcomes, nil
}

// walk finds the furthest tile reachable in up to speed steps. Only a blocked
// first step is an error; later blocks clamp to the last good tile.
func (mr *MovementResolver) walk(g *core.Game, origin core.Position, dir core.Direction, speed int) (core.Position, int, error) {
	pos := origin
	steps := 0
	for steps < max(speed, 1) {
		next := pos.Move(dir)
		var err error
		switch {
		case !g.InBounds(next):
			err = core.ErrOutOfBoard
		case !g.TerrainAt(next).HasSpace():
			err = core.ErrTerrainCrowded
		}
		if err != nil {
			if steps == 0 {
				return origin, 0, core.WrapPositionError(next, err)
			}
			break
		}
		pos = next
		steps++
	}
	return pos, steps, nil
}

// relocate detaches key from origin, flips it and stacks it on dest
func (mr *MovementResolver) relocate(g *core.Game, key int, origin, dest core.Position, steps int) []core.Outcome {
	m := &g.Meeples[key]
	m.Side = m.Side.Flip()

	from := g.TerrainAt(origin)
	from.SpaceLeft++
	from.Top = m.Below
	// Uncovered meeples of playing teams are freed, neutrals stay frozen
	if uncovered := g.Meeple(from.Top); uncovered != nil && g.IsActiveTeam(uncovered.Team) {
		uncovered.Side = uncovered.Side.Flip()
	}

	to := g.TerrainAt(dest)
	to.SpaceLeft--
	m.Below = to.Top
	to.Top = key
	m.Position = dest

	mr.logger.Debug().
		Int("key", key).
		Str("from", origin.String()).
		Str("to", dest.String()).
		Int("steps", steps).
		Msg("Meeple moved")
	return []core.Outcome{{Kind: core.OutcomeMoved, Team: m.Team, Keys: []int{key}, Position: dest, Amount: steps}}
}

// land resolves whatever the mover finds at its destination
func (mr *MovementResolver) land(g *core.Game, team, key int, dest core.Position) []core.Outcome {
	var outcomes []core.Outcome
	if below := g.Meeple(g.Meeples[key].Below); below != nil && below.Team != team {
		outcomes = append(outcomes, mr.conflict.resolve(g, key, below.Key)...)
	}
	if g.Meeple(key) == nil {
		return outcomes
	}

	t := g.TerrainAt(dest)
	switch c := t.Construction.(type) {
	case core.City:
		if c.Team != team && g.ExclusivelyControls(dest, team) {
			outcomes = append(outcomes, mr.construction.capture(g, key, dest)...)
		}
	case core.Building:
		if c.Team != team {
			outcomes = append(outcomes, mr.construction.activate(g, dest, key, false)...)
		}
	}
	return outcomes
}

// Hold returns a new game with every selected meeple turned to its other side
func (mr *MovementResolver) Hold(g core.Game, keys []int) (core.Game, []core.Outcome) {
	w := g.Clone()
	var outcomes []core.Outcome
	for _, key := range SortByIndex(&w, keys) {
		m := &w.Meeples[key]
		m.Side = m.Side.Flip()
		outcomes = append(outcomes, core.Outcome{Kind: core.OutcomeHeld, Team: m.Team, Keys: []int{key}, Position: m.Position})
	}
	return w, outcomes
}

// harvest turns a vacated tile's production into stored resources
func harvest(t *core.Terrain) (core.Outcome, bool) {
	var produced core.Resources
	switch c := t.Construction.(type) {
	case core.EmptySite:
		produced = c.Production
	case core.Building:
		produced = c.Production
	case core.City:
		produced = c.Production
	}
	if produced.IsZero() {
		return core.Outcome{}, false
	}
	t.Construction = core.Harvest(t.Construction)
	return core.Outcome{Kind: core.OutcomeHarvested, Position: t.Position, Amount: total(produced)}, true
}

func total(r core.Resources) int {
	sum := 0
	for _, v := range r {
		sum += v
	}
	return sum
}
