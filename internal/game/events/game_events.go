package events

import (
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted         = "game.started"
	TypeGameEnded           = "game.ended"
	TypeActionProcessed     = "action.processed"
	TypeActionRejected      = "action.rejected"
	TypeMeepleRemoved       = "meeple.removed"
	TypeMeepleConverted     = "meeple.converted"
	TypeCityCaptured        = "city.captured"
	TypeBuildingConstructed = "building.constructed"
	TypeCardDrawn           = "card.drawn"
	TypeRoundAdvanced       = "round.advanced"
	TypeStateTransition     = "state.transition"
)

func metadata(turn core.Turn) EventMetadata {
	return EventMetadata{Team: turn.Team, Round: turn.Round, Side: turn.Side.String()}
}

// GameStartedEvent is published when Begin hands the first turn out
type GameStartedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	NumPlayers int
	BoardSize  int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, numPlayers, boardSize int, turn core.Turn) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBase(TypeGameStarted, gameID),
		Metadata:   metadata(turn),
		NumPlayers: numPlayers,
		BoardSize:  boardSize,
	}
}

// GameEndedEvent is published when fewer than two swarms remain
type GameEndedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	Winner     int // -1 when every swarm is gone
	FinalRound int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner int, turn core.Turn) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:  newBase(TypeGameEnded, gameID),
		Metadata:   metadata(turn),
		Winner:     winner,
		FinalRound: turn.Round,
	}
}

// ActionProcessedEvent is published after an intent is accepted
type ActionProcessedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Intent   core.Intent
	Outcomes int
}

// NewActionProcessedEvent creates a new ActionProcessedEvent
func NewActionProcessedEvent(gameID string, intent core.Intent, outcomes int, turn core.Turn) *ActionProcessedEvent {
	return &ActionProcessedEvent{
		BaseEvent: newBase(TypeActionProcessed, gameID),
		Metadata:  metadata(turn),
		Intent:    intent,
		Outcomes:  outcomes,
	}
}

// ActionRejectedEvent is published when an intent is refused
type ActionRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Intent   core.Intent
	Reason   string
	Kind     core.OutcomeKind
}

// NewActionRejectedEvent creates a new ActionRejectedEvent
func NewActionRejectedEvent(gameID string, intent core.Intent, outcome core.Outcome, turn core.Turn) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent: newBase(TypeActionRejected, gameID),
		Metadata:  metadata(turn),
		Intent:    intent,
		Reason:    outcome.Message(),
		Kind:      outcome.Kind,
	}
}

// MeepleRemovedEvent is published when a meeple leaves the game
type MeepleRemovedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Key      int
	Team     int
	Position core.Position
}

// NewMeepleRemovedEvent creates a new MeepleRemovedEvent
func NewMeepleRemovedEvent(gameID string, key, team int, pos core.Position, turn core.Turn) *MeepleRemovedEvent {
	return &MeepleRemovedEvent{
		BaseEvent: newBase(TypeMeepleRemoved, gameID),
		Metadata:  metadata(turn),
		Key:       key,
		Team:      team,
		Position:  pos,
	}
}

// MeepleConvertedEvent is published when faith wins a meeple over
type MeepleConvertedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Key      int
	FromTeam int
	ToTeam   int
	Position core.Position
}

// NewMeepleConvertedEvent creates a new MeepleConvertedEvent
func NewMeepleConvertedEvent(gameID string, key, fromTeam, toTeam int, pos core.Position, turn core.Turn) *MeepleConvertedEvent {
	return &MeepleConvertedEvent{
		BaseEvent: newBase(TypeMeepleConverted, gameID),
		Metadata:  metadata(turn),
		Key:       key,
		FromTeam:  fromTeam,
		ToTeam:    toTeam,
		Position:  pos,
	}
}

// CityCapturedEvent is published when a city changes owner
type CityCapturedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Team     int
	CityKey  int
	Position core.Position
}

// NewCityCapturedEvent creates a new CityCapturedEvent
func NewCityCapturedEvent(gameID string, team, cityKey int, pos core.Position, turn core.Turn) *CityCapturedEvent {
	return &CityCapturedEvent{
		BaseEvent: newBase(TypeCityCaptured, gameID),
		Metadata:  metadata(turn),
		Team:      team,
		CityKey:   cityKey,
		Position:  pos,
	}
}

// BuildingConstructedEvent is published when a blueprint pattern is built
type BuildingConstructedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Team     int
	Kind     core.BuildingKind
	Position core.Position
}

// NewBuildingConstructedEvent creates a new BuildingConstructedEvent
func NewBuildingConstructedEvent(gameID string, team int, kind core.BuildingKind, pos core.Position, turn core.Turn) *BuildingConstructedEvent {
	return &BuildingConstructedEvent{
		BaseEvent: newBase(TypeBuildingConstructed, gameID),
		Metadata:  metadata(turn),
		Team:      team,
		Kind:      kind,
		Position:  pos,
	}
}

// CardDrawnEvent is published when a built pattern is matched again
type CardDrawnEvent struct {
	BaseEvent
	Metadata EventMetadata
	Team     int
	Points   int
}

// NewCardDrawnEvent creates a new CardDrawnEvent
func NewCardDrawnEvent(gameID string, team, points int, turn core.Turn) *CardDrawnEvent {
	return &CardDrawnEvent{
		BaseEvent: newBase(TypeCardDrawn, gameID),
		Metadata:  metadata(turn),
		Team:      team,
		Points:    points,
	}
}

// RoundAdvancedEvent is published when every team is out of actions on a side
type RoundAdvancedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Round    int
	Side     core.Side
}

// NewRoundAdvancedEvent creates a new RoundAdvancedEvent
func NewRoundAdvancedEvent(gameID string, turn core.Turn) *RoundAdvancedEvent {
	return &RoundAdvancedEvent{
		BaseEvent: newBase(TypeRoundAdvanced, gameID),
		Metadata:  metadata(turn),
		Round:     turn.Round,
		Side:      turn.Side,
	}
}

// StateTransitionEvent is published when a game moves between lifecycle phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}

// FromOutcome converts the outcomes that matter to observers into events.
// The second value is false for outcomes without an event.
func FromOutcome(gameID string, o core.Outcome, turn core.Turn) (Event, bool) {
	key := core.NoMeeple
	if len(o.Keys) > 0 {
		key = o.Keys[0]
	}
	switch o.Kind {
	case core.OutcomeRemoved:
		return NewMeepleRemovedEvent(gameID, key, o.Team, o.Position, turn), true
	case core.OutcomeConverted:
		return NewMeepleConvertedEvent(gameID, key, o.Amount, o.Team, o.Position, turn), true
	case core.OutcomeCityCaptured:
		return NewCityCapturedEvent(gameID, o.Team, o.Amount, o.Position, turn), true
	case core.OutcomeBuildingConstructed:
		return NewBuildingConstructedEvent(gameID, o.Team, core.BuildingKind(o.Amount), o.Position, turn), true
	case core.OutcomeCardDrawn:
		return NewCardDrawnEvent(gameID, o.Team, o.Amount, turn), true
	case core.OutcomeRoundAdvanced:
		return NewRoundAdvancedEvent(gameID, turn), true
	case core.OutcomeGameOver:
		return NewGameEndedEvent(gameID, o.Team, turn), true
	default:
		return nil, false
	}
}
