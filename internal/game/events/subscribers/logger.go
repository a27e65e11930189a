package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/orbitalgames/cosmic-standoff/internal/game/events"
)

// LoggerSubscriber logs match events to structured logs. It is the
// fire-and-forget observability sink: nothing in the match loop depends
// on it.
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
		Str("match_id", event.MatchID()).
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
	case *events.MatchStartedEvent:
		logEvent.
			Int("min_coord", e.MinCoord).
			Int("max_coord", e.MaxCoord).
			Int("board_size", e.BoardSize).
			Int("start_distance", e.StartDistance).
			Str("starter", e.Starter.String()).
			Str("captain", e.Captain.String()).
			Str("alien", e.Alien.String())

	case *events.MoveAppliedEvent:
		logEvent.
			Str("agent", e.Agent.String()).
			Str("move", e.Move.String()).
			Str("position", e.Position.String()).
			Int("x_distance", e.Dist.X).
			Int("y_distance", e.Dist.Y)

	case *events.MatchEndedEvent:
		logEvent.
			Str("winner", e.Winner.String()).
			Str("axis", e.Axis.String()).
			Int("cycles", e.Cycles).
			Dur("duration", e.Duration)

	case *events.ScoreSavedEvent:
		logEvent.Str("path", e.Path)
		for agent, wins := range e.Totals {
			logEvent.Int(agent, wins)
		}

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

	logEvent.Msg("Match event")
}
