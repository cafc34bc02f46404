package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Position is the view of a game the checker needs, to avoid circular imports
type Position interface {
	IsTie() bool
	CurrentPlayerTurn() tile.Owner
	HasAnyValidMove(owner tile.Owner) bool
}

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// Result scores a position. A tie takes precedence; otherwise a player to
// move with no valid move loses.
func (wc *WinConditionChecker) Result(p Position) GameResult {
	if p.IsTie() {
		wc.logger.Trace().Msg("Progress counter reached the tie threshold")
		return TieResult
	}
	current := p.CurrentPlayerTurn()
	if !p.HasAnyValidMove(current) {
		winner := current.NextPlayer()
		wc.logger.Trace().Stringer("winner", winner).Stringer("stuck_player", current).Msg("Winner determined")
		return WonBy(winner)
	}
	return OngoingResult
}
