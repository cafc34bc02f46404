package events

import (
	"time"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Event type constants
const (
	TypeMatchStarted    = "match.started"
	TypeMatchEnded      = "match.ended"
	TypeTurnCompleted   = "turn.completed"
	TypeTilePulled      = "tile.pulled"
	TypeTilePlaced      = "tile.placed"
	TypeTileMoved       = "tile.moved"
	TypeTileCaptured    = "tile.captured"
	TypeMoveUndone      = "move.undone"
	TypeStateTransition = "state.transition"
)

// MatchStartedEvent is published when a new match begins
type MatchStartedEvent struct {
	BaseEvent
	TopPlayer    string
	BottomPlayer string
	Seed         int64
}

func NewMatchStartedEvent(gameID, topPlayer, bottomPlayer string, seed int64) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent:    newBase(TypeMatchStarted, gameID),
		TopPlayer:    topPlayer,
		BottomPlayer: bottomPlayer,
		Seed:         seed,
	}
}

// MatchEndedEvent is published when a match ends. Result is the rendered GameResult.
type MatchEndedEvent struct {
	BaseEvent
	Result    string
	Duration  time.Duration
	FinalTurn int
}

func NewMatchEndedEvent(gameID, result string, duration time.Duration, finalTurn int) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent: newBase(TypeMatchEnded, gameID),
		Result:    result,
		Duration:  duration,
		FinalTurn: finalTurn,
	}
}

// TurnCompletedEvent is published after a player's move has been applied
type TurnCompletedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	Move         string
	ThinkingTime time.Duration
}

func NewTurnCompletedEvent(gameID string, player tile.Owner, turn int, move string, thinking time.Duration) *TurnCompletedEvent {
	return &TurnCompletedEvent{
		BaseEvent:    newBase(TypeTurnCompleted, gameID),
		Metadata:     EventMetadata{Player: player.String(), Turn: turn},
		Move:         move,
		ThinkingTime: thinking,
	}
}

// TilePulledEvent is published when a player draws a tile from the bag
type TilePulledEvent struct {
	BaseEvent
	Metadata EventMetadata
	Tile     string
}

func NewTilePulledEvent(gameID string, player tile.Owner, turn int, name string) *TilePulledEvent {
	return &TilePulledEvent{
		BaseEvent: newBase(TypeTilePulled, gameID),
		Metadata:  EventMetadata{Player: player.String(), Turn: turn},
		Tile:      name,
	}
}

// TilePlacedEvent is published when a drawn tile lands next to its duke
type TilePlacedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Tile     string
	At       core.Coordinate
}

func NewTilePlacedEvent(gameID string, player tile.Owner, turn int, name string, at core.Coordinate) *TilePlacedEvent {
	return &TilePlacedEvent{
		BaseEvent: newBase(TypeTilePlaced, gameID),
		Metadata:  EventMetadata{Player: player.String(), Turn: turn},
		Tile:      name,
		At:        at,
	}
}

// TileMovedEvent is published when a tile moves or strikes
type TileMovedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Tile     string
	From     core.Coordinate
	To       core.Coordinate
	Strike   bool
}

func NewTileMovedEvent(gameID string, player tile.Owner, turn int, name string, from, to core.Coordinate, strike bool) *TileMovedEvent {
	return &TileMovedEvent{
		BaseEvent: newBase(TypeTileMoved, gameID),
		Metadata:  EventMetadata{Player: player.String(), Turn: turn},
		Tile:      name,
		From:      from,
		To:        to,
		Strike:    strike,
	}
}

// TileCapturedEvent is published when a tile leaves the board for its owner's discard pile
type TileCapturedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Tile     string
	Victim   string
	At       core.Coordinate
}

func NewTileCapturedEvent(gameID string, capturer tile.Owner, turn int, name string, victim tile.Owner, at core.Coordinate) *TileCapturedEvent {
	return &TileCapturedEvent{
		BaseEvent: newBase(TypeTileCaptured, gameID),
		Metadata:  EventMetadata{Player: capturer.String(), Turn: turn},
		Tile:      name,
		Victim:    victim.String(),
		At:        at,
	}
}

// MoveUndoneEvent is published when a move is taken back
type MoveUndoneEvent struct {
	BaseEvent
	Metadata EventMetadata
	Move     string
}

func NewMoveUndoneEvent(gameID string, player tile.Owner, turn int, move string) *MoveUndoneEvent {
	return &MoveUndoneEvent{
		BaseEvent: newBase(TypeMoveUndone, gameID),
		Metadata:  EventMetadata{Player: player.String(), Turn: turn},
		Move:      move,
	}
}

// StateTransitionEvent is published when the match lifecycle changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
