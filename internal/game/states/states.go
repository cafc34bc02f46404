package states

import (
	"errors"
	"fmt"
	"time"
)

// InitializingState represents board setup before the first move
type InitializingState struct{}

// NewInitializingState creates the state a match starts in
func NewInitializingState() State {
	return &InitializingState{}
}

// Phase returns PhaseInitializing
func (s *InitializingState) Phase() MatchPhase {
	return PhaseInitializing
}

// Enter clears the results of any previous run of the match
func (s *InitializingState) Enter(ctx *MatchContext) error {
	ctx.reset()
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *MatchContext) error {
	ctx.Logger.Debug().Msg("Exiting Initializing state")
	return nil
}

// Validate always succeeds: a finished match may be reset
func (s *InitializingState) Validate(ctx *MatchContext) error {
	return nil
}

// RunningState represents active play
type RunningState struct{}

// NewRunningState creates the state in which players take turns
func NewRunningState() State {
	return &RunningState{}
}

// Phase returns PhaseRunning
func (s *RunningState) Phase() MatchPhase {
	return PhaseRunning
}

// Enter starts the match clock
func (s *RunningState) Enter(ctx *MatchContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Str("top", ctx.TopPlayer).
		Str("bottom", ctx.BottomPlayer).
		Msg("Match started")
	return nil
}

// Exit stops the match clock
func (s *RunningState) Exit(ctx *MatchContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Debug().
		Dur("elapsed", ctx.Elapsed()).
		Int("turns", ctx.Turns).
		Msg("Exiting running state")
	return nil
}

// Validate requires both sides to be seated
func (s *RunningState) Validate(ctx *MatchContext) error {
	if !ctx.IsSeated() {
		return fmt.Errorf("both players must be seated: top=%q bottom=%q", ctx.TopPlayer, ctx.BottomPlayer)
	}
	return nil
}

// EndedState represents a match that reached a result
type EndedState struct{}

// NewEndedState creates the state of a match that reached a result
func NewEndedState() State {
	return &EndedState{}
}

// Phase returns PhaseEnded
func (s *EndedState) Phase() MatchPhase {
	return PhaseEnded
}

// Enter logs the result and match length
func (s *EndedState) Enter(ctx *MatchContext) error {
	ctx.Logger.Info().
		Str("result", ctx.Result).
		Int("turns", ctx.Turns).
		Dur("duration", ctx.Elapsed()).
		Msg("Match ended")
	return nil
}

func (s *EndedState) Exit(ctx *MatchContext) error {
	return nil
}

// Validate requires the result to be recorded in the context
func (s *EndedState) Validate(ctx *MatchContext) error {
	if ctx.Result == "" {
		return errors.New("ended state requires a result")
	}
	return nil
}

// AbortedState represents a match stopped before a result
type AbortedState struct{}

// NewAbortedState creates the state of a match stopped by an error
func NewAbortedState() State {
	return &AbortedState{}
}

// Phase returns PhaseAborted
func (s *AbortedState) Phase() MatchPhase {
	return PhaseAborted
}

// Enter logs the error that stopped the match
func (s *AbortedState) Enter(ctx *MatchContext) error {
	ctx.Logger.Warn().
		Err(ctx.Error).
		Int("turns", ctx.Turns).
		Msg("Match aborted")
	return nil
}

func (s *AbortedState) Exit(ctx *MatchContext) error {
	return nil
}

// Validate requires the stopping error to be recorded in the context
func (s *AbortedState) Validate(ctx *MatchContext) error {
	if ctx.Error == nil {
		return errors.New("aborted state requires an error")
	}
	return nil
}
