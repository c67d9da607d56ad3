package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// RandomIntent picks one candidate intent for the acting team.
// This is a helper for demos, testing, or simple baseline agents; the
// second value is false when the team has nothing to select.
func RandomIntent(e *Engine, g core.Game, rng *rand.Rand) (core.Intent, bool) {
	candidates := e.CandidateIntents(g)
	if len(candidates) == 0 {
		return core.Intent{}, false
	}
	chosen := candidates[rng.Intn(len(candidates))]
	e.logger.Debug().
		Int("team", chosen.Team).
		Str("action", chosen.Action.String()).
		Ints("selection", chosen.Selection).
		Int("candidates", len(candidates)).
		Msg("Generated random intent")
	return chosen, true
}

// HoldIntent holds the whole first available swarm of the acting team.
// Drivers use it to pass when every random intent was rejected.
func HoldIntent(e *Engine, g core.Game) (core.Intent, bool) {
	available := e.AvailableMeeples(g, g.Turn.Team)
	if len(available) == 0 {
		return core.Intent{}, false
	}
	return core.Intent{
		Team:      g.Turn.Team,
		Action:    core.ActionHold,
		Selection: e.SelectSwarm(g, available[0].Position),
	}, true
}
