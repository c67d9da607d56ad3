package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapIntentError(t *testing.T) {
	tests := []struct {
		name     string
		intent   Intent
		err      error
		expected string
		isNil    bool
	}{
		{
			name:   "nil error returns nil",
			intent: Intent{Team: 1, Action: ActionUp, Selection: []int{0}},
			isNil:  true,
		},
		{
			name:     "move intent",
			intent:   Intent{Team: 1, Action: ActionUp, Selection: []int{3, 4}},
			err:      ErrOutOfBoard,
			expected: "team 1: up [3 4]: move leaves the board",
		},
		{
			name:     "hold intent without selection",
			intent:   Intent{Team: 2, Action: ActionHold},
			err:      ErrNoSelection,
			expected: "team 2: hold []: selection is not a connected swarm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapIntentError(tt.intent, tt.err)
			if tt.isNil {
				assert.Nil(t, wrapped)
				return
			}
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, tt.err))
		})
	}
}

func TestWrapGameStateError(t *testing.T) {
	turn := Turn{Round: 3, Team: 2, Side: Tails}

	wrapped := WrapGameStateError(turn, "running", ErrGameOver)
	require.NotNil(t, wrapped)
	assert.Equal(t, "round 3 team 2 tails [running]: game is over", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrGameOver)

	assert.Nil(t, WrapGameStateError(turn, "running", nil))
}

func TestWrapPlayerError(t *testing.T) {
	wrapped := WrapPlayerError(1, "used 2 of 2 actions", ErrNoActionsLeft)
	require.NotNil(t, wrapped)
	assert.Equal(t, "team 1 used 2 of 2 actions: no actions left this round", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrNoActionsLeft)

	assert.Nil(t, WrapPlayerError(1, "anything", nil))
}

func TestWrapPositionError(t *testing.T) {
	wrapped := WrapPositionError(NewPosition(0, 4), ErrTerrainCrowded)
	require.NotNil(t, wrapped)
	assert.Equal(t, "tile (0,4): terrain has no space left", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrTerrainCrowded)

	assert.Nil(t, WrapPositionError(NewPosition(0, 0), nil))
}

func TestErrorChaining(t *testing.T) {
	intent := Intent{Team: 1, Action: ActionRight, Selection: []int{7}}
	err := WrapIntentError(intent, WrapPositionError(NewPosition(2, 5), ErrOutOfBoard))

	assert.ErrorIs(t, err, ErrOutOfBoard)
	assert.NotErrorIs(t, err, ErrTerrainCrowded)
	assert.Contains(t, err.Error(), "team 1")
	assert.Contains(t, err.Error(), "tile (2,5)")
}

func TestRejectionFor(t *testing.T) {
	intent := Intent{Team: 2, Action: ActionExplore, Selection: []int{1}}

	tests := []struct {
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
		{fmt.Errorf("tile (0,0): %w", ErrTerrainCrowded), OutcomeTerrainCrowded},
		{errors.New("something else"), OutcomeMeepleNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			out := RejectionFor(intent, tt.err)
			assert.Equal(t, tt.kind, out.Kind)
			assert.True(t, out.Invalid())
			assert.Equal(t, 2, out.Team)
			assert.Equal(t, []int{1}, out.Keys)
			assert.ErrorIs(t, out.Err, tt.err)
		})
	}
}

func TestOutcomeKind(t *testing.T) {
	assert.True(t, OutcomeNotYourTurn.IsRejection())
	assert.True(t, OutcomeUnknownAction.IsRejection())
	assert.False(t, OutcomeStarted.IsRejection())
	assert.False(t, OutcomeGameOver.IsRejection())

	assert.Equal(t, "CityCaptured", OutcomeCityCaptured.String())
	assert.Equal(t, "Outcome(999)", OutcomeKind(999).String())

	moved := Outcome{Kind: OutcomeMoved, Team: 1, Keys: []int{4}, Position: NewPosition(1, 2), Amount: 2}
	assert.Equal(t, "Moved team=1 at (1,2) keys=[4] amount=2", moved.Message())
}
