package events_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/core"
	"github.com/mitchelldurbincs/SwarmConquest/internal/game/events"
)

var turn = core.Turn{Round: 3, Team: 2, Side: core.Tails}

// TestSubscriber implements the Subscriber interface for testing
type TestSubscriber struct {
	id         string
	events     []events.Event
	interested map[string]bool
}

func NewTestSubscriber(id string, interestedTypes ...string) *TestSubscriber {
	interested := make(map[string]bool)
	for _, t := range interestedTypes {
		interested[t] = true
	}
	return &TestSubscriber{
		id:         id,
		interested: interested,
	}
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(event events.Event) {
	ts.events = append(ts.events, event)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if len(ts.interested) == 0 {
		return true
	}
	return ts.interested[eventType]
}

func TestEventBusBasicFunctionality(t *testing.T) {
	bus := events.NewEventBus()

	subscriber := NewTestSubscriber("test1", events.TypeGameStarted, events.TypeGameEnded)
	bus.Subscribe(subscriber)

	bus.Publish(events.NewGameStartedEvent("game1", 2, 10, turn))
	require.Len(t, subscriber.events, 1)
	assert.Equal(t, events.TypeGameStarted, subscriber.events[0].Type())
	assert.Equal(t, "game1", subscriber.events[0].GameID())

	bus.Publish(events.NewRoundAdvancedEvent("game1", turn))
	assert.Len(t, subscriber.events, 1)

	bus.Publish(events.NewGameEndedEvent("game1", 2, turn))
	require.Len(t, subscriber.events, 2)
	ended, ok := subscriber.events[1].(*events.GameEndedEvent)
	require.True(t, ok)
	assert.Equal(t, 2, ended.Winner)
	assert.Equal(t, 3, ended.FinalRound)
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := events.NewEventBus()

	sub1 := NewTestSubscriber("sub1", events.TypeMeepleRemoved)
	sub2 := NewTestSubscriber("sub2", events.TypeMeepleRemoved)
	sub3 := NewTestSubscriber("sub3")

	bus.Subscribe(sub1)
	bus.Subscribe(sub2)
	bus.Subscribe(sub3)

	funcCalled := false
	bus.SubscribeFunc(events.TypeMeepleRemoved, func(e events.Event) {
		funcCalled = true
	})

	bus.Publish(events.NewMeepleRemovedEvent("game4", 7, 1, core.NewPosition(2, 3), turn))

	assert.Len(t, sub1.events, 1)
	assert.Len(t, sub2.events, 1)
	assert.Len(t, sub3.events, 1)
	assert.True(t, funcCalled)
}

func TestEventBusPanicRecovery(t *testing.T) {
	bus := events.NewEventBus()

	bus.SubscribeFunc(events.TypeCityCaptured, func(e events.Event) {
		panic("test panic")
	})

	normalSub := NewTestSubscriber("normal")
	bus.Subscribe(normalSub)

	assert.NotPanics(t, func() {
		bus.Publish(events.NewCityCapturedEvent("game5", 1, 0, core.NewPosition(4, 4), turn))
	})
	assert.Len(t, normalSub.events, 1)
}

func TestEventTimestamps(t *testing.T) {
	startTime := time.Now()

	all := []events.Event{
		events.NewGameStartedEvent("game6", 4, 20, turn),
		events.NewRoundAdvancedEvent("game6", turn),
		events.NewCardDrawnEvent("game6", 1, 3, turn),
		events.NewStateTransitionEvent("game6", "Setup", "Running", "begin"),
	}

	for _, event := range all {
		assert.False(t, event.Timestamp().IsZero())
		assert.False(t, event.Timestamp().Before(startTime))
		assert.Equal(t, "game6", event.GameID())
	}
}

func TestEventMetadata(t *testing.T) {
	intent := core.Intent{Team: 2, Action: core.ActionUp, Selection: []int{4}}
	processed := events.NewActionProcessedEvent("game7", intent, 3, turn)

	assert.Equal(t, 2, processed.Metadata.Team)
	assert.Equal(t, 3, processed.Metadata.Round)
	assert.Equal(t, "tails", processed.Metadata.Side)
	assert.Equal(t, intent, processed.Intent)
	assert.Equal(t, 3, processed.Outcomes)
}

func TestActionRejectedEventCarriesReason(t *testing.T) {
	intent := core.Intent{Team: 1, Action: core.ActionHold}
	outcome := core.Rejection(core.OutcomeNoSelection, intent, core.ErrNoSelection)

	rejected := events.NewActionRejectedEvent("game8", intent, outcome, turn)

	assert.Equal(t, core.OutcomeNoSelection, rejected.Kind)
	assert.Contains(t, rejected.Reason, core.ErrNoSelection.Error())
	assert.True(t, errors.Is(outcome.Err, core.ErrNoSelection))
}

func TestFromOutcome(t *testing.T) {
	pos := core.NewPosition(1, 2)
	tests := []struct {
		name     string
		outcome  core.Outcome
		wantType string
		check    func(t *testing.T, e events.Event)
	}{
		{
			name:     "removed",
			outcome:  core.Outcome{Kind: core.OutcomeRemoved, Team: 2, Keys: []int{5}, Position: pos},
			wantType: events.TypeMeepleRemoved,
			check: func(t *testing.T, e events.Event) {
				removed := e.(*events.MeepleRemovedEvent)
				assert.Equal(t, 5, removed.Key)
				assert.Equal(t, 2, removed.Team)
				assert.Equal(t, pos, removed.Position)
			},
		},
		{
			name:     "converted",
			outcome:  core.Outcome{Kind: core.OutcomeConverted, Team: 1, Keys: []int{3}, Position: pos, Amount: 0},
			wantType: events.TypeMeepleConverted,
			check: func(t *testing.T, e events.Event) {
				converted := e.(*events.MeepleConvertedEvent)
				assert.Equal(t, 3, converted.Key)
				assert.Equal(t, 0, converted.FromTeam)
				assert.Equal(t, 1, converted.ToTeam)
			},
		},
		{
			name:     "captured",
			outcome:  core.Outcome{Kind: core.OutcomeCityCaptured, Team: 1, Keys: []int{0}, Position: pos, Amount: 4},
			wantType: events.TypeCityCaptured,
			check: func(t *testing.T, e events.Event) {
				assert.Equal(t, 4, e.(*events.CityCapturedEvent).CityKey)
			},
		},
		{
			name:     "constructed",
			outcome:  core.Outcome{Kind: core.OutcomeBuildingConstructed, Team: 1, Position: pos, Amount: int(core.School)},
			wantType: events.TypeBuildingConstructed,
			check: func(t *testing.T, e events.Event) {
				assert.Equal(t, core.School, e.(*events.BuildingConstructedEvent).Kind)
			},
		},
		{
			name:     "game over",
			outcome:  core.Outcome{Kind: core.OutcomeGameOver, Team: -1},
			wantType: events.TypeGameEnded,
			check: func(t *testing.T, e events.Event) {
				assert.Equal(t, -1, e.(*events.GameEndedEvent).Winner)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := events.FromOutcome("game9", tt.outcome, turn)
			require.True(t, ok)
			assert.Equal(t, tt.wantType, e.Type())
			assert.Equal(t, "game9", e.GameID())
			tt.check(t, e)
		})
	}

	_, ok := events.FromOutcome("game9", core.Outcome{Kind: core.OutcomeMoved}, turn)
	assert.False(t, ok, "moves are not published")
}

func BenchmarkEventBusPublish(b *testing.B) {
	bus := events.NewEventBus()
	bus.Subscribe(NewTestSubscriber("bench"))

	event := events.NewRoundAdvancedEvent("bench-game", turn)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Publish(event)
	}
}
