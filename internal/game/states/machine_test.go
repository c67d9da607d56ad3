package states

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/events"
)

func TestGamePhase_String(t *testing.T) {
	tests := []struct {
		phase    GamePhase
		expected string
	}{
		{PhaseSetup, "Setup"},
		{PhaseRunning, "Running"},
		{PhaseEnded, "Ended"},
		{GamePhase(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
			if tt.phase <= PhaseEnded {
				assert.Equal(t, tt.phase, ParsePhase(tt.expected))
			}
		})
	}
}

func TestGamePhase_Properties(t *testing.T) {
	assert.True(t, PhaseEnded.IsTerminal())
	assert.False(t, PhaseRunning.IsTerminal())
	assert.False(t, PhaseSetup.IsTerminal())

	assert.True(t, PhaseRunning.CanReceiveActions())
	assert.False(t, PhaseSetup.CanReceiveActions())
	assert.False(t, PhaseEnded.CanReceiveActions())
}

func TestGamePhase_Transitions(t *testing.T) {
	tests := []struct {
		from, to GamePhase
		allowed  bool
	}{
		{PhaseSetup, PhaseRunning, true},
		{PhaseSetup, PhaseEnded, false},
		{PhaseRunning, PhaseEnded, true},
		{PhaseRunning, PhaseSetup, true},
		{PhaseEnded, PhaseRunning, true},
		{PhaseEnded, PhaseSetup, true},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPhaseOf(t *testing.T) {
	g := core.Game{}
	assert.Equal(t, PhaseSetup, PhaseOf(&g))

	g.Turn = core.Turn{Round: 1, Team: 1, Side: core.Heads}
	assert.Equal(t, PhaseRunning, PhaseOf(&g))

	g.Over = true
	assert.Equal(t, PhaseEnded, PhaseOf(&g))
}

func TestStateMachine_Observe(t *testing.T) {
	bus := events.NewEventBusWithLogger(zerolog.Nop())
	var published []*events.StateTransitionEvent
	bus.SubscribeFunc(events.TypeStateTransition, func(e events.Event) {
		published = append(published, e.(*events.StateTransitionEvent))
	})

	sm := NewStateMachine("game-1", zerolog.Nop(), bus)
	assert.Equal(t, PhaseSetup, sm.CurrentPhase())

	g := core.Game{}
	changed, err := sm.Observe(&g, "setup")
	require.NoError(t, err)
	assert.False(t, changed)

	g.Turn = core.Turn{Round: 1, Team: 1, Side: core.Heads}
	changed, err = sm.Observe(&g, "begin")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, PhaseRunning, sm.CurrentPhase())

	g.Turn.Round = 4
	g.Over = true
	changed, err = sm.Observe(&g, "game over")
	require.NoError(t, err)
	assert.True(t, changed)

	history := sm.GetHistory()
	require.Len(t, history, 2)
	assert.Equal(t, PhaseSetup, history[0].From)
	assert.Equal(t, PhaseRunning, history[0].To)
	assert.Equal(t, 4, history[1].Round)
	assert.Equal(t, "game over", history[1].Reason)

	require.Len(t, published, 2)
	assert.Equal(t, "Running", published[1].FromPhase)
	assert.Equal(t, "Ended", published[1].ToPhase)
}

func TestStateMachine_RejectsSkippingRunning(t *testing.T) {
	sm := NewStateMachine("game-2", zerolog.Nop(), nil)

	g := core.Game{Over: true}
	changed, err := sm.Observe(&g, "jump")
	assert.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, PhaseSetup, sm.CurrentPhase())
	assert.Empty(t, sm.GetHistory())
	assert.False(t, sm.CanTransitionTo(PhaseEnded))
}

func TestStateMachine_RewindToEarlierSnapshot(t *testing.T) {
	sm := NewStateMachine("game-3", zerolog.Nop(), nil)

	running := core.Game{Turn: core.Turn{Round: 2, Team: 1, Side: core.Tails}}
	ended := running
	ended.Over = true

	_, err := sm.Observe(&running, "begin")
	require.NoError(t, err)
	_, err = sm.Observe(&ended, "game over")
	require.NoError(t, err)

	changed, err := sm.Observe(&running, "rewind")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, PhaseRunning, sm.CurrentPhase())
}
