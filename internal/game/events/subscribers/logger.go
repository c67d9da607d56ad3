package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SwarmConquest/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("num_players", e.NumPlayers).
			Int("board_size", e.BoardSize).
			Int("team", e.Metadata.Team)

	case *events.GameEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Int("final_round", e.FinalRound)

	case *events.ActionProcessedEvent:
		logEvent.
			Int("team", e.Intent.Team).
			Str("action", e.Intent.Action.String()).
			Ints("selection", e.Intent.Selection).
			Int("outcomes", e.Outcomes).
			Int("round", e.Metadata.Round)

	case *events.ActionRejectedEvent:
		logEvent.
			Int("team", e.Intent.Team).
			Str("action", e.Intent.Action.String()).
			Str("kind", e.Kind.String()).
			Str("reason", e.Reason)

	case *events.MeepleRemovedEvent:
		logEvent.
			Int("key", e.Key).
			Int("team", e.Team).
			Str("position", e.Position.String())

	case *events.MeepleConvertedEvent:
		logEvent.
			Int("key", e.Key).
			Int("from_team", e.FromTeam).
			Int("to_team", e.ToTeam).
			Str("position", e.Position.String())

	case *events.CityCapturedEvent:
		logEvent.
			Int("team", e.Team).
			Int("city_key", e.CityKey).
			Str("position", e.Position.String())

	case *events.BuildingConstructedEvent:
		logEvent.
			Int("team", e.Team).
			Str("kind", e.Kind.String()).
			Str("position", e.Position.String())

	case *events.CardDrawnEvent:
		logEvent.
			Int("team", e.Team).
			Int("points", e.Points)

	case *events.RoundAdvancedEvent:
		logEvent.
			Int("round", e.Round).
			Str("side", e.Side.String())

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
