package rules

import (
	"fmt"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// ResultKind is the coarse outcome of a position
type ResultKind int

const (
	Ongoing ResultKind = iota
	Tie
	Won
)

func (k ResultKind) String() string {
	switch k {
	case Ongoing:
		return "Ongoing"
	case Tie:
		return "Tie"
	case Won:
		return "Won"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// GameResult is the outcome of a position. Winner is only meaningful when Kind is Won.
type GameResult struct {
	Kind   ResultKind
	Winner tile.Owner
}

var (
	OngoingResult = GameResult{Kind: Ongoing}
	TieResult     = GameResult{Kind: Tie}
)

// WonBy builds a result won by owner
func WonBy(owner tile.Owner) GameResult {
	return GameResult{Kind: Won, Winner: owner}
}

func (r GameResult) IsOver() bool { return r.Kind != Ongoing }

func (r GameResult) String() string {
	if r.Kind == Won {
		return fmt.Sprintf("Won(%s)", r.Winner)
	}
	return r.Kind.String()
}
