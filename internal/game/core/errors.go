package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotYourTurn        = errors.New("not your turn")
	ErrNoActionsLeft      = errors.New("no actions left this round")
	ErrNoSelection        = errors.New("selection is not a connected swarm")
	ErrOutOfBoard         = errors.New("move leaves the board")
	ErrTerrainCrowded     = errors.New("terrain has no space left")
	ErrNotFullyControlled = errors.New("tile is not fully controlled")
	ErrMeepleNotAvailable = errors.New("meeple is not available")
	ErrGameOver           = errors.New("game is over")
	ErrGameNotStarted     = errors.New("game has not begun")
	ErrUnknownAction      = errors.New("unknown action")
	ErrInvalidPosition    = errors.New("invalid position")
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrInvalidBoardSize   = errors.New("invalid board size")
)

// WrapIntentError adds context about the intent that caused the error
func WrapIntentError(intent Intent, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("team %d: %s %v: %w", intent.Team, intent.Action, intent.Selection, err)
}

// WrapGameStateError adds turn context to an error
func WrapGameStateError(turn Turn, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("round %d team %d %s [%s]: %w", turn.Round, turn.Team, turn.Side, phase, err)
}

// WrapPlayerError adds player context to an error
func WrapPlayerError(team int, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("team %d %s: %w", team, operation, err)
}

// WrapPositionError adds a tile position to an error
func WrapPositionError(pos Position, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("tile %s: %w", pos, err)
}
