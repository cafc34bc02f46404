package testutil

import (
	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Piece describes a tile to put on a test board
type Piece struct {
	At      core.Coordinate
	Owner   tile.Owner
	Tile    *tile.Tile
	Flipped bool
}

// Top creates a piece for the top player at (x,y)
func Top(t *tile.Tile, x, y int) Piece {
	return Piece{At: core.NewCoordinate(x, y), Owner: tile.TopPlayer, Tile: t}
}

// Bottom creates a piece for the bottom player at (x,y)
func Bottom(t *tile.Tile, x, y int) Piece {
	return Piece{At: core.NewCoordinate(x, y), Owner: tile.BottomPlayer, Tile: t}
}

// Flip returns the piece with its second side up
func (p Piece) Flip() Piece {
	p.Flipped = !p.Flipped
	return p
}

// Placed converts the piece to a PlacedTile
func (p Piece) Placed() tile.PlacedTile {
	placed := tile.NewPlacedTile(p.Owner, p.Tile)
	if p.Flipped {
		placed.Flip()
	}
	return placed
}

// BoardWith creates an empty game board holding the given pieces
func BoardWith(pieces ...Piece) *board.GameBoard {
	b := board.Empty()
	for _, p := range pieces {
		b.Place(p.At, p.Placed())
	}
	return b
}

// C is shorthand for core.NewCoordinate
func C(x, y int) core.Coordinate {
	return core.NewCoordinate(x, y)
}
