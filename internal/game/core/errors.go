package core

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrNotOwned          = errors.New("tile not owned by player")
	ErrEmptySource       = errors.New("no tile at source")
	ErrIllegalMove       = errors.New("move is not legal")
	ErrInvalidPlacement  = errors.New("invalid placement near duke")
	ErrNoPulledTile      = errors.New("no pulled tile awaiting placement")
	ErrAwaitingPlacement = errors.New("a pulled tile is awaiting placement")
	ErrCannotPull        = errors.New("cannot pull a tile from the bag")
	ErrGameOver          = errors.New("game is over")
)

// Assertf panics with a formatted message when cond is false. It guards
// caller contracts that are expected to be validated up front.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}

// WrapMoveError annotates err with the player and move that caused it
func WrapMoveError(player fmt.Stringer, move fmt.Stringer, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %s: %w", player, move, err)
}

// WrapGameStateError annotates err with the turn number and the phase it occurred in
func WrapGameStateError(turn int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("game turn %d [%s]: %w", turn, phase, err)
}

// GameError is a structured error for failures inside a running match
type GameError struct {
	Turn      int
	Player    string
	Operation string
	Err       error
}

func NewGameError(turn int, player string, operation string, err error) *GameError {
	return &GameError{Turn: turn, Player: player, Operation: operation, Err: err}
}

func (e *GameError) Error() string {
	if e.Player == "" {
		return fmt.Sprintf("turn %d: %s: %v", e.Turn, e.Operation, e.Err)
	}
	return fmt.Sprintf("turn %d: %s %s: %v", e.Turn, e.Player, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error {
	return e.Err
}
