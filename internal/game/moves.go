package game

import (
	"fmt"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// GameMove is a request to advance the game by one step
type GameMove interface {
	fmt.Stringer
	isGameMove()
}

// PullAndPlay draws a tile from the current player's bag and places it at Offset
type PullAndPlay struct {
	Offset board.DukeOffset
}

// PlaceNewTile places the already pulled tile at Offset
type PlaceNewTile struct {
	Offset board.DukeOffset
}

// ApplyNonCommandTileAction moves or strikes with the current player's tile at Src
type ApplyNonCommandTileAction struct {
	Src core.Coordinate
	Dst core.Coordinate
}

// isGameMove seals GameMove to this package
func (PullAndPlay) isGameMove()               {}
func (PlaceNewTile) isGameMove()              {}
func (ApplyNonCommandTileAction) isGameMove() {}

// String describes the draw and where the tile lands
func (m PullAndPlay) String() string {
	return fmt.Sprintf("pull and play %s", m.Offset)
}

// String names where the pulled tile goes
func (m PlaceNewTile) String() string {
	return fmt.Sprintf("place %s", m.Offset)
}

// String renders the move as "src -> dst"
func (m ApplyNonCommandTileAction) String() string {
	return fmt.Sprintf("%s -> %s", m.Src, m.Dst)
}

// PossibleMove is a complete legal move for one player. It carries what is
// needed both to play it and to take it back.
type PossibleMove interface {
	fmt.Stringer
	ToGameMove() GameMove
	ToUndoMove() board.UndoMove
	isPossibleMove()
}

// PlacementMove draws a tile and places it next to Owner's duke
type PlacementMove struct {
	Offset board.DukeOffset
	Owner  tile.Owner
}

// TileActionMove moves or strikes from Src to Dst. Capturing is the enemy
// tile standing on Dst when the move was generated, nil for an empty cell.
type TileActionMove struct {
	Src       core.Coordinate
	Dst       core.Coordinate
	Capturing *tile.PlacedTile
}

// isPossibleMove seals PossibleMove to this package
func (PlacementMove) isPossibleMove()  {}
func (TileActionMove) isPossibleMove() {}

// ToGameMove plays the placement as a pull followed by a placement
func (m PlacementMove) ToGameMove() GameMove {
	return PullAndPlay{Offset: m.Offset}
}

// ToUndoMove removes the placed tile from the board
func (m PlacementMove) ToUndoMove() board.UndoMove {
	return board.UndoPlaceNewTile{Offset: m.Offset, Owner: m.Owner}
}

// String names the owner and the side of the duke
func (m PlacementMove) String() string {
	return fmt.Sprintf("%s places %s of duke", m.Owner, m.Offset)
}

// ToGameMove drops the capture, which the state recomputes
func (m TileActionMove) ToGameMove() GameMove {
	return ApplyNonCommandTileAction{Src: m.Src, Dst: m.Dst}
}

// ToUndoMove carries the captured tile back to Dst
func (m TileActionMove) ToUndoMove() board.UndoMove {
	return board.UndoTileAction{Src: m.Src, Dst: m.Dst, Captured: m.Capturing}
}

// String marks captures with an x and the victim's name
func (m TileActionMove) String() string {
	if m.Capturing == nil {
		return fmt.Sprintf("%s -> %s", m.Src, m.Dst)
	}
	return fmt.Sprintf("%s x %s (%s)", m.Src, m.Dst, m.Capturing.Tile.Name())
}

// IsCapture reports whether playing the move removes an enemy tile
func (m TileActionMove) IsCapture() bool {
	return m.Capturing != nil
}

// CanPullNewTileResult explains whether the current player may draw a tile
type CanPullNewTileResult int

const (
	PullOK CanPullNewTileResult = iota
	// PullEmptyBag means the player has no tiles left to draw
	PullEmptyBag
	// PullNoSpaceNearDuke means every cell next to the duke is taken or off the board
	PullNoSpaceNearDuke
	// PullDukeAlwaysInGuard means every free cell next to the duke leaves it in guard
	PullDukeAlwaysInGuard
)

// String returns the name of the result
func (r CanPullNewTileResult) String() string {
	switch r {
	case PullOK:
		return "OK"
	case PullEmptyBag:
		return "EmptyBag"
	case PullNoSpaceNearDuke:
		return "NoSpaceNearDuke"
	case PullDukeAlwaysInGuard:
		return "DukeAlwaysInGuard"
	default:
		return fmt.Sprintf("CanPullNewTileResult(%d)", int(r))
	}
}

// Err maps a refusal to the error returned by checked moves, nil for PullOK
func (r CanPullNewTileResult) Err() error {
	if r == PullOK {
		return nil
	}
	return fmt.Errorf("%w: %s", core.ErrCannotPull, r)
}
