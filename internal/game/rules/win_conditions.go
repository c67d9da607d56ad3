package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger          zerolog.Logger
	originalPlayers int
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger, originalPlayers int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:          logger.With().Str("component", "WinConditionChecker").Logger(),
		originalPlayers: originalPlayers,
	}
}

// CheckGameOver determines if the game is over based on the number of alive players
// Returns (isGameOver, winnerID)
func (wc *WinConditionChecker) CheckGameOver(players []Player) (bool, int) {
	aliveCount := 0
	var alivePlayers []int
	lastAliveID := -1

	for _, p := range players {
		if p.IsAlive() {
			aliveCount++
			lastAliveID = p.GetID()
			alivePlayers = append(alivePlayers, lastAliveID)
		}
	}

	// A lone team plays until its swarm is gone
	var gameOver bool
	if wc.originalPlayers > 1 {
		gameOver = aliveCount < 2
	} else {
		gameOver = aliveCount == 0
	}

	winnerID := -1
	if gameOver && aliveCount == 1 {
		winnerID = lastAliveID
		wc.logger.Info().Int("winner_team", winnerID).Msg("Winner determined")
	} else if gameOver {
		wc.logger.Info().Msg("No winner found, every swarm eliminated")
	}

	wc.logger.Debug().Bool("is_game_over", gameOver).Int("alive_team_count", aliveCount).Ints("alive_teams", alivePlayers).Msg("Game over check complete")

	return gameOver, winnerID
}

// CheckGame runs CheckGameOver over the playing teams of g
func (wc *WinConditionChecker) CheckGame(g *core.Game) (bool, int) {
	players := make([]Player, 0, g.PlayerCount())
	for _, team := range g.ActiveTeams() {
		players = append(players, g.Players[team])
	}
	return wc.CheckGameOver(players)
}

// Player interface to avoid circular imports
type Player interface {
	GetID() int
	IsAlive() bool
}
