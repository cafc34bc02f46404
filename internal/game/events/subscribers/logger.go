package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
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

	logEvent := eventLogger.WithLevel(ls.logLevel)
	if logEvent == nil {
		return
	}

	switch e := event.(type) {
	case *events.MatchStartedEvent:
		logEvent.
			Str("top_player", e.TopPlayer).
			Str("bottom_player", e.BottomPlayer).
			Int64("seed", e.Seed)

	case *events.MatchEndedEvent:
		logEvent.
			Str("result", e.Result).
			Dur("duration", e.Duration).
			Int("final_turn", e.FinalTurn)

	case *events.TurnCompletedEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Str("move", e.Move).
			Dur("thinking_time", e.ThinkingTime)

	case *events.TilePulledEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("tile", e.Tile)

	case *events.TilePlacedEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("tile", e.Tile).
			Int("x", e.At.X).
			Int("y", e.At.Y)

	case *events.TileMovedEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("tile", e.Tile).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y).
			Bool("strike", e.Strike)

	case *events.TileCapturedEvent:
		logEvent.
			Str("capturer", e.Metadata.Player).
			Str("victim", e.Victim).
			Str("tile", e.Tile).
			Int("x", e.At.X).
			Int("y", e.At.Y)

	case *events.MoveUndoneEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Str("move", e.Move)

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
