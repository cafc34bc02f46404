package board

import (
	"fmt"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Move is a mutation the board knows how to apply
type Move interface {
	fmt.Stringer
	isBoardMove()
}

// PlaceNewTile puts a fresh tile next to its owner's duke
type PlaceNewTile struct {
	Offset DukeOffset
	Tile   *tile.Tile
	Owner  tile.Owner
}

// ApplyNonCommandTileAction moves or strikes with the tile at Src
type ApplyNonCommandTileAction struct {
	Src core.Coordinate
	Dst core.Coordinate
}

// isBoardMove seals Move to this package
func (PlaceNewTile) isBoardMove()              {}
func (ApplyNonCommandTileAction) isBoardMove() {}

// String names the tile, the side of the duke and the owner
func (m PlaceNewTile) String() string {
	return fmt.Sprintf("place %s %s of %s duke", m.Tile.Name(), m.Offset, m.Owner)
}

// String renders the move as "src -> dst"
func (m ApplyNonCommandTileAction) String() string {
	return fmt.Sprintf("%s -> %s", m.Src, m.Dst)
}

// UndoMove carries what the board needs to reverse a Move
type UndoMove interface {
	fmt.Stringer
	isUndoMove()
}

// UndoPlaceNewTile reverses a placement
type UndoPlaceNewTile struct {
	Offset DukeOffset
	Owner  tile.Owner
}

// UndoTileAction reverses a move or strike. Captured is the tile that stood
// at Dst before the action, nil if the cell was empty.
type UndoTileAction struct {
	Src      core.Coordinate
	Dst      core.Coordinate
	Captured *tile.PlacedTile
}

// isUndoMove seals UndoMove to this package
func (UndoPlaceNewTile) isUndoMove() {}
func (UndoTileAction) isUndoMove()   {}

// String describes the placement being reversed
func (m UndoPlaceNewTile) String() string {
	return fmt.Sprintf("undo place %s of %s duke", m.Offset, m.Owner)
}

// String includes the captured tile when there is one
func (m UndoTileAction) String() string {
	if m.Captured == nil {
		return fmt.Sprintf("undo %s -> %s", m.Src, m.Dst)
	}
	return fmt.Sprintf("undo %s -> %s capturing %s", m.Src, m.Dst, m.Captured)
}

// Application classifies how an action affects the board
type Application int

const (
	Invalid Application = iota
	// Movement relocates the mover, capturing any enemy at the destination
	Movement
	// Strike removes the enemy at the destination, the mover stays put
	Strike
)

// String returns the name of the application kind
func (a Application) String() string {
	switch a {
	case Movement:
		return "Movement"
	case Strike:
		return "Strike"
	default:
		return "Invalid"
	}
}

// LegalMove is a reachable destination and the action that reaches it
type LegalMove struct {
	Dst    core.Coordinate
	Action tile.TileAction
}

// String renders the action followed by its destination
func (m LegalMove) String() string {
	return fmt.Sprintf("%s %s", m.Action, m.Dst)
}
