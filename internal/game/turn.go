package game

import (
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// advance hands the turn to the next eligible team after the current one,
// wrapping around. When nobody on the current side is eligible the round
// ends: actions reset, the side flips and the first eligible team of the new
// side takes the turn. Two flips without an eligible team leave the turn with
// the first active team.
func (e *Engine) advance(g *core.Game) []core.Outcome {
	teams := g.ActiveTeams()
	if len(teams) == 0 {
		return nil
	}

	if next, ok := e.nextEligible(g, teams, g.Turn.Team); ok {
		g.Turn.Team = next
		return []core.Outcome{{Kind: core.OutcomeTurnPassed, Team: next, Amount: g.Turn.Round}}
	}

	var outcomes []core.Outcome
	for flips := 0; flips < 2; flips++ {
		g.Turn.Round++
		g.Turn.Side = g.Turn.Side.Flip()
		for i := range g.Players {
			g.Players[i].UsedActions = 0
		}
		outcomes = append(outcomes, core.Outcome{Kind: core.OutcomeRoundAdvanced, Amount: g.Turn.Round})

		e.logger.Debug().
			Int("round", g.Turn.Round).
			Str("side", g.Turn.Side.String()).
			Msg("Round advanced")

		if first, ok := e.nextEligible(g, teams, core.NeutralTeam); ok {
			g.Turn.Team = first
			return append(outcomes, core.Outcome{Kind: core.OutcomeTurnPassed, Team: first, Amount: g.Turn.Round})
		}
	}

	e.logger.Warn().
		Int("round", g.Turn.Round).
		Msg("No team can act on either side")
	g.Turn.Team = teams[0]
	return append(outcomes, core.Outcome{Kind: core.OutcomeTurnPassed, Team: teams[0], Amount: g.Turn.Round})
}

// nextEligible scans teams strictly after current in roster order, wrapping
// back to current last. A current team outside teams starts the scan at the
// first team.
func (e *Engine) nextEligible(g *core.Game, teams []int, current int) (int, bool) {
	start := -1
	for i, team := range teams {
		if team == current {
			start = i
			break
		}
	}
	for step := 1; step <= len(teams); step++ {
		idx := start + step
		if start >= 0 {
			idx %= len(teams)
		} else if idx >= len(teams) {
			break
		}
		if team := teams[idx]; e.eligible(g, team) {
			return team, true
		}
	}
	return 0, false
}

// eligible reports whether team has actions left and a meeple able to act
func (e *Engine) eligible(g *core.Game, team int) bool {
	return g.Players[team].HasActionsLeft() && e.legalMoves.HasAvailable(g, team)
}
