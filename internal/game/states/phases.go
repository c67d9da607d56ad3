package states

import (
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// GamePhase is the lifecycle stage of a game snapshot.
// It is derived from the turn state and never stored.
type GamePhase int

const (
	// PhaseSetup - map generated, Begin not called yet
	PhaseSetup GamePhase = iota

	// PhaseRunning - teams take turns
	PhaseRunning

	// PhaseEnded - fewer than two swarms remain
	PhaseEnded
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// PhaseOf derives the phase of a snapshot
func PhaseOf(g *core.Game) GamePhase {
	switch {
	case g.Over:
		return PhaseEnded
	case g.Turn.Round == 0 || g.Turn.Side == core.NoSide:
		return PhaseSetup
	default:
		return PhaseRunning
	}
}

// IsTerminal returns true if no further intent can change the game
func (p GamePhase) IsTerminal() bool {
	return p == PhaseEnded
}

// CanReceiveActions returns true if Play may accept intents in this phase
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to.
// Backward edges cover restoring an earlier snapshot.
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseSetup:
		return []GamePhase{PhaseRunning}
	case PhaseRunning:
		return []GamePhase{PhaseEnded, PhaseSetup}
	case PhaseEnded:
		return []GamePhase{PhaseRunning, PhaseSetup}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	return slices.Contains(p.AllowedTransitions(), target)
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) GamePhase {
	switch s {
	case "Setup":
		return PhaseSetup
	case "Running":
		return PhaseRunning
	case "Ended":
		return PhaseEnded
	default:
		return PhaseSetup
	}
}
