package states

import (
	"time"

	"github.com/rs/zerolog"
)

// MatchContext carries the match facts states need to validate and log transitions
type MatchContext struct {
	// GameID uniquely identifies this match
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// TopPlayer and BottomPlayer name the seated players
	TopPlayer    string
	BottomPlayer string

	// StartTime is when PhaseRunning was entered
	StartTime time.Time

	// EndTime is when the match left PhaseRunning
	EndTime time.Time

	// Turns played so far
	Turns int

	// Result is the rendered game result once the match has ended
	Result string

	// Error holds whatever stopped the match early
	Error error
}

// NewMatchContext creates a new match context
func NewMatchContext(gameID string, logger zerolog.Logger) *MatchContext {
	return &MatchContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
	}
}

// IsSeated returns true when both sides have a player
func (mc *MatchContext) IsSeated() bool {
	return mc.TopPlayer != "" && mc.BottomPlayer != ""
}

// Elapsed returns the time spent running, up to EndTime if the match is over
func (mc *MatchContext) Elapsed() time.Duration {
	if mc.StartTime.IsZero() {
		return 0
	}
	if !mc.EndTime.IsZero() {
		return mc.EndTime.Sub(mc.StartTime)
	}
	return time.Since(mc.StartTime)
}

func (mc *MatchContext) reset() {
	mc.StartTime = time.Time{}
	mc.EndTime = time.Time{}
	mc.Turns = 0
	mc.Result = ""
	mc.Error = nil
}
