package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/events"
)

// Transition represents a phase change in the history
type Transition struct {
	From      GamePhase
	To        GamePhase
	Round     int
	Timestamp time.Time
	Reason    string
}

// StateMachine follows the phase of the snapshots a driver hands it.
// The engine itself is stateless; the machine is for callers that keep a
// current game and want transition history and events.
type StateMachine struct {
	mu             sync.RWMutex
	gameID         string
	currentPhase   GamePhase
	history        []Transition
	maxHistorySize int
	eventBus       *events.EventBus
	logger         zerolog.Logger
}

// NewStateMachine creates a new state machine in PhaseSetup
func NewStateMachine(gameID string, logger zerolog.Logger, eventBus *events.EventBus) *StateMachine {
	return &StateMachine{
		gameID:         gameID,
		currentPhase:   PhaseSetup,
		history:        make([]Transition, 0, 8),
		maxHistorySize: 1000,
		eventBus:       eventBus,
		logger:         logger.With().Str("component", "StateMachine").Str("game_id", gameID).Logger(),
	}
}

// CurrentPhase returns the current game phase
func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// Observe moves the machine to the phase of g. It reports whether the phase
// changed and refuses transitions the phase table does not allow.
func (sm *StateMachine) Observe(g *core.Game, reason string) (bool, error) {
	target := PhaseOf(g)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if target == sm.currentPhase {
		return false, nil
	}
	if !sm.currentPhase.CanTransitionTo(target) {
		return false, fmt.Errorf("invalid transition from %s to %s", sm.currentPhase, target)
	}

	previousPhase := sm.currentPhase
	sm.currentPhase = target
	sm.addToHistory(Transition{
		From:      previousPhase,
		To:        target,
		Round:     g.Turn.Round,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	if sm.eventBus != nil {
		sm.eventBus.Publish(events.NewStateTransitionEvent(
			sm.gameID,
			previousPhase.String(),
			target.String(),
			reason,
		))
	}

	sm.logger.Info().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", target.String()).
		Int("round", g.Turn.Round).
		Str("reason", reason).
		Msg("State transition completed")

	return true, nil
}

// addToHistory adds a transition to the history, maintaining max size
func (sm *StateMachine) addToHistory(transition Transition) {
	sm.history = append(sm.history, transition)

	if len(sm.history) > sm.maxHistorySize {
		sm.history = sm.history[len(sm.history)-sm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase GamePhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}
