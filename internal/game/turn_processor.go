package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/states"
)

// TurnProcessor handles the orchestration of a single turn
type TurnProcessor struct {
	match  *Match
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(match *Match) *TurnProcessor {
	return &TurnProcessor{
		match:  match,
		logger: match.logger,
	}
}

// ProcessTurn asks the player to move, applies the move and checks for the end of the match
func (tp *TurnProcessor) ProcessTurn(ctx context.Context) error {
	if err := tp.checkContext(ctx, "before choosing a move"); err != nil {
		return err
	}

	if err := tp.validateMatchState(); err != nil {
		return err
	}

	gs := tp.match.gs
	mover := gs.CurrentPlayerTurn()
	player := tp.match.players[mover]
	turn := gs.Turn()
	turnLogger := tp.logger.With().Int("turn", turn).Str("player", player.Name()).Logger()

	start := time.Now()
	move, ok := player.NextMove(tp.match.rng, gs)
	thinking := time.Since(start)
	if !ok {
		return core.NewGameError(turn, mover.String(), "move selection", fmt.Errorf("%s returned no move", player.Name()))
	}

	if err := tp.checkContext(ctx, "after choosing a move"); err != nil {
		return err
	}

	if err := gs.TryMakeAMove(move.ToGameMove(), tp.match.rng); err != nil {
		return core.WrapGameStateError(turn, "move", err)
	}
	tp.match.moves = append(tp.match.moves, move)
	tp.match.stateMachine.Context().Turns = gs.Turn()

	tp.match.eventBus.Publish(events.NewTurnCompletedEvent(tp.match.gameID, mover, gs.Turn(), move.String(), thinking))
	turnLogger.Debug().
		Str("move", move.String()).
		Dur("thinking", thinking).
		Int("moves_without_progress", gs.MovesWithoutProgress()).
		Int("tie_threshold", gs.TieThreshold()).
		Msg("Turn completed")

	tp.match.checkGameOver()
	return nil
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.match.gs.Turn()).
			Str("phase", phase).
			Msg("Match cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// validateMatchState ensures the match can receive moves
func (tp *TurnProcessor) validateMatchState() error {
	phase := tp.match.stateMachine.CurrentPhase()
	if !phase.CanReceiveMoves() {
		tp.logger.Warn().
			Str("current_phase", phase.String()).
			Int("turn", tp.match.gs.Turn()).
			Msg("Attempted to play a turn in a phase that cannot receive moves")
		if phase == states.PhaseEnded {
			return core.WrapGameStateError(tp.match.gs.Turn(), "step", core.ErrGameOver)
		}
		return fmt.Errorf("match is in %s phase and cannot receive moves", phase)
	}
	return nil
}
