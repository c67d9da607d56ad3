package core

import (
	"errors"
	"fmt"
)

// OutcomeKind classifies an Outcome record
type OutcomeKind int

const (
	// Rejections: the state is returned unchanged apart from the log.
	OutcomeNotYourTurn OutcomeKind = iota
	OutcomeNoActionsLeft
	OutcomeNoSelection
	OutcomeOutOfBoard
	OutcomeTerrainCrowded
	OutcomeNotFullyControlled
	OutcomeMeepleNotAvailable
	OutcomeGameNotStarted
	OutcomeGameIsOver
	OutcomeUnknownAction

	OutcomeStarted
	OutcomeMoved
	OutcomeExplored
	OutcomeHeld
	OutcomeConverted
	OutcomeCombat
	OutcomeRemoved
	OutcomeCityCaptured
	OutcomeCaptureFailed
	OutcomeHarvested
	OutcomeResourcesCollected
	OutcomeBuildingActivated
	OutcomeBuildingConstructed
	OutcomeCardDrawn
	OutcomeTurnPassed
	OutcomeRoundAdvanced
	OutcomeGameOver
)

var outcomeNames = map[OutcomeKind]string{
	OutcomeNotYourTurn:         "NotYourTurn",
	OutcomeNoActionsLeft:       "NoActionsLeft",
	OutcomeNoSelection:         "NoSelection",
	OutcomeOutOfBoard:          "OutOfBoard",
	OutcomeTerrainCrowded:      "TerrainCrowded",
	OutcomeNotFullyControlled:  "NotFullyControlled",
	OutcomeMeepleNotAvailable:  "MeepleNotAvailable",
	OutcomeGameNotStarted:      "GameNotStarted",
	OutcomeGameIsOver:          "GameIsOver",
	OutcomeUnknownAction:       "UnknownAction",
	OutcomeStarted:             "Started",
	OutcomeMoved:               "Moved",
	OutcomeExplored:            "Explored",
	OutcomeHeld:                "Held",
	OutcomeConverted:           "Converted",
	OutcomeCombat:              "Combat",
	OutcomeRemoved:             "Removed",
	OutcomeCityCaptured:        "CityCaptured",
	OutcomeCaptureFailed:       "CaptureFailed",
	OutcomeHarvested:           "Harvested",
	OutcomeResourcesCollected:  "ResourcesCollected",
	OutcomeBuildingActivated:   "BuildingActivated",
	OutcomeBuildingConstructed: "BuildingConstructed",
	OutcomeCardDrawn:           "CardDrawn",
	OutcomeTurnPassed:          "TurnPassed",
	OutcomeRoundAdvanced:       "RoundAdvanced",
	OutcomeGameOver:            "GameOver",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(k))
}

// IsRejection reports whether the kind is an illegal-intent report
func (k OutcomeKind) IsRejection() bool {
	return k <= OutcomeUnknownAction
}

// Outcome is a structured record of what a call did or why it refused
type Outcome struct {
	Kind     OutcomeKind
	Team     int
	Keys     []int
	Position Position
	Amount   int
	Err      error // set for rejections
}

// Invalid reports whether the outcome rejected the intent
func (o Outcome) Invalid() bool { return o.Kind.IsRejection() }

// Message explains the outcome for callers that only show text
func (o Outcome) Message() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return fmt.Sprintf("%s team=%d at %s keys=%v amount=%d", o.Kind, o.Team, o.Position, o.Keys, o.Amount)
}

// Rejection builds a rejection outcome for intent wrapping the sentinel err
func Rejection(kind OutcomeKind, intent Intent, err error) Outcome {
	return Outcome{
		Kind: kind,
		Team: intent.Team,
		Keys: intent.Selection,
		Err:  WrapIntentError(intent, err),
	}
}

var rejectionKinds = []struct {
	err  error
	kind OutcomeKind
}{
	{ErrNotYourTurn, OutcomeNotYourTurn},
	{ErrNoActionsLeft, OutcomeNoActionsLeft},
	{ErrNoSelection, OutcomeNoSelection},
	{ErrOutOfBoard, OutcomeOutOfBoard},
	{ErrTerrainCrowded, OutcomeTerrainCrowded},
	{ErrNotFullyControlled, OutcomeNotFullyControlled},
	{ErrMeepleNotAvailable, OutcomeMeepleNotAvailable},
	{ErrGameNotStarted, OutcomeGameNotStarted},
	{ErrGameOver, OutcomeGameIsOver},
	{ErrUnknownAction, OutcomeUnknownAction},
}

// RejectionFor maps a possibly wrapped sentinel error to its rejection outcome.
// Unknown errors report MeepleNotAvailable.
func RejectionFor(intent Intent, err error) Outcome {
	kind := OutcomeMeepleNotAvailable
	for _, rk := range rejectionKinds {
		if errors.Is(err, rk.err) {
			kind = rk.kind
			break
		}
	}
	return Rejection(kind, intent, err)
}
