package board

import (
	"fmt"

	"github.com/mitchelldurbincs/DukeEngine/internal/common"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// GameBoard is the 6x6 playing surface. Mutations assume the caller already
// validated the move; violations panic.
type GameBoard struct {
	cells *core.Board[tile.PlacedTile]
}

// Empty creates a board with no tiles on it
func Empty() *GameBoard {
	return &GameBoard{cells: core.NewSquareBoard[tile.PlacedTile](Size)}
}

func (b *GameBoard) Width() int  { return b.cells.Width() }
func (b *GameBoard) Height() int { return b.cells.Height() }

func (b *GameBoard) InBounds(c core.Coordinate) bool { return b.cells.InBounds(c) }

// Place puts a tile on an empty cell
func (b *GameBoard) Place(c core.Coordinate, t tile.PlacedTile) {
	core.Assertf(b.cells.IsEmpty(c), "cannot place %s into occupied cell %s", t, c)
	b.cells.Put(c, t)
}

// Get returns the tile at c, if any
func (b *GameBoard) Get(c core.Coordinate) (tile.PlacedTile, bool) {
	return b.cells.Get(c)
}

// Remove takes a tile off an occupied cell
func (b *GameBoard) Remove(c core.Coordinate) tile.PlacedTile {
	t, ok := b.cells.Remove(c)
	core.Assertf(ok, "cannot remove from empty cell %s", c)
	return t
}

func (b *GameBoard) IsOccupied(c core.Coordinate) bool { return b.cells.IsOccupied(c) }
func (b *GameBoard) IsEmpty(c core.Coordinate) bool    { return b.cells.IsEmpty(c) }

// Clone returns an independent copy. Tile definitions stay shared.
func (b *GameBoard) Clone() *GameBoard {
	return &GameBoard{cells: b.cells.Clone()}
}

// Equal reports whether both boards hold the same tiles, faces and owners
func (b *GameBoard) Equal(other *GameBoard) bool {
	if b.Width() != other.Width() || b.Height() != other.Height() {
		return false
	}
	for _, c := range b.cells.Coordinates() {
		x, okX := b.cells.Get(c)
		y, okY := other.cells.Get(c)
		if okX != okY || (okX && x != y) {
			return false
		}
	}
	return true
}

// Tiles lists every occupied cell in row-major order
func (b *GameBoard) Tiles() []core.Entry[tile.PlacedTile] {
	return b.cells.ActiveCoordinates()
}

// TilesFor lists the tiles owned by one player in row-major order
func (b *GameBoard) TilesFor(owner tile.Owner) []core.Entry[tile.PlacedTile] {
	var result []core.Entry[tile.PlacedTile]
	for _, e := range b.cells.ActiveCoordinates() {
		if e.Value.Owner == owner {
			result = append(result, e)
		}
	}
	return result
}

// DukeCoordinate finds the owner's duke. Returns false if it is not on the board.
func (b *GameBoard) DukeCoordinate(owner tile.Owner) (core.Coordinate, bool) {
	return b.cells.Find(func(t tile.PlacedTile) bool {
		return t.Owner == owner && t.IsDuke()
	})
}

// ToAbsoluteCoordinate translates a cell of the action grid of the tile at
// src to the board. Returns false when it falls off the board.
func (b *GameBoard) ToAbsoluteCoordinate(src core.Coordinate, o core.Offset, unit core.Offset) (core.Coordinate, bool) {
	dst := src.Add(o.Coordinate().Sub(unit.Coordinate()))
	return dst, b.InBounds(dst)
}

// TargetCoordinates expands one (offset, action) pair of a side into the board
// cells it can reach from src, ignoring occupancy.
func (b *GameBoard) TargetCoordinates(src core.Coordinate, o core.Offset, action tile.TileAction, unit core.Offset) []core.Coordinate {
	switch action {
	case tile.Move, tile.Jump, tile.Strike:
		if dst, ok := b.ToAbsoluteCoordinate(src, o, unit); ok {
			return []core.Coordinate{dst}
		}
		return nil
	case tile.Slide, tile.JumpSlide:
		delta := o.Coordinate().Sub(unit.Coordinate())
		dir, ok := core.Coordinate{}.DirectionTo(delta)
		core.Assertf(ok, "%s at %s is not on a line from the unit %s", action, o, unit)
		ray := src.Ray(dir, b.Width(), b.Height())
		if action == tile.JumpSlide && len(ray) > 0 {
			// the first cell is jumped over
			ray = ray[1:]
		}
		return ray
	default:
		return nil
	}
}

// Unobstructed reports whether every cell strictly between src and dst is empty
func (b *GameBoard) Unobstructed(src, dst core.Coordinate) bool {
	for _, c := range src.LinearPathTo(dst) {
		if b.IsOccupied(c) {
			return false
		}
	}
	return true
}

// CanApplyAction checks occupancy rules for the tile at src performing action onto dst
func (b *GameBoard) CanApplyAction(src, dst core.Coordinate, action tile.TileAction) bool {
	mover, ok := b.Get(src)
	core.Assertf(ok, "no tile at %s", src)
	target, occupied := b.Get(dst)
	if occupied && target.SameTeam(mover) {
		return false
	}
	switch action {
	case tile.Move, tile.Slide:
		return b.Unobstructed(src, dst)
	case tile.Jump:
		return true
	case tile.JumpSlide:
		// the first cell is jumped over, so the target is at least two cells away
		if common.Chebyshev(src.X, src.Y, dst.X, dst.Y) < 2 {
			return false
		}
		path := src.LinearPathTo(dst)
		for _, c := range path[1:] {
			if b.IsOccupied(c) {
				return false
			}
		}
		return true
	case tile.Strike:
		return occupied
	default:
		return false
	}
}

// CanApply classifies what the tile at src would do to dst
func (b *GameBoard) CanApply(src, dst core.Coordinate) Application {
	if !b.InBounds(src) || !b.InBounds(dst) || src == dst {
		return Invalid
	}
	mover, ok := b.Get(src)
	if !ok {
		return Invalid
	}
	action, ok := mover.ActionFromCoordinates(src, dst)
	if !ok || action == tile.Unit || action == tile.Command {
		return Invalid
	}
	if !b.CanApplyAction(src, dst, action) {
		return Invalid
	}
	if action.Relocates() {
		return Movement
	}
	return Strike
}

// LegalMovesIgnoringGuard lists every destination of the tile at src without
// checking whether the move exposes its own duke
func (b *GameBoard) LegalMovesIgnoringGuard(src core.Coordinate) []LegalMove {
	mover, ok := b.Get(src)
	core.Assertf(ok, "no tile at %s", src)
	side := mover.CurrentSide()
	unit := side.UnitOffset()

	var moves []LegalMove
	for _, oa := range side.Actions() {
		if oa.Action == tile.Unit {
			continue
		}
		for _, dst := range b.TargetCoordinates(src, oa.Offset, oa.Action, unit) {
			if b.CanApplyAction(src, dst, oa.Action) {
				moves = append(moves, LegalMove{Dst: dst, Action: oa.Action})
			}
		}
	}
	return moves
}

// LegalMoves lists the destinations of the tile at src that do not leave its
// owner in guard
func (b *GameBoard) LegalMoves(src core.Coordinate) []LegalMove {
	mover, ok := b.Get(src)
	core.Assertf(ok, "no tile at %s", src)

	candidates := b.LegalMovesIgnoringGuard(src)
	var moves []LegalMove
	for _, m := range candidates {
		sim := b.Clone()
		sim.MakeAMove(ApplyNonCommandTileAction{Src: src, Dst: m.Dst})
		if !sim.IsGuard(mover.Owner) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasAnyLegalMove reports whether owner can move any tile without exposing its duke
func (b *GameBoard) HasAnyLegalMove(owner tile.Owner) bool {
	for _, e := range b.TilesFor(owner) {
		if len(b.LegalMoves(e.Coordinate)) > 0 {
			return true
		}
	}
	return false
}

// CanMove reports whether the tile at src may legally act onto dst
func (b *GameBoard) CanMove(src, dst core.Coordinate) bool {
	if !b.InBounds(src) || !b.IsOccupied(src) || !b.InBounds(dst) {
		return false
	}
	for _, m := range b.LegalMoves(src) {
		if m.Dst == dst {
			return true
		}
	}
	return false
}

// IsGuard reports whether any enemy tile can reach owner's duke. Attackers
// are not themselves checked for exposing their own duke.
func (b *GameBoard) IsGuard(owner tile.Owner) bool {
	duke, ok := b.DukeCoordinate(owner)
	if !ok {
		return false
	}
	for _, e := range b.TilesFor(owner.NextPlayer()) {
		for _, m := range b.LegalMovesIgnoringGuard(e.Coordinate) {
			if m.Dst == duke {
				return true
			}
		}
	}
	return false
}

// PlacementCoordinate is the board cell a DukeOffset refers to. Returns
// false if the owner has no duke or the cell is off the board.
func (b *GameBoard) PlacementCoordinate(owner tile.Owner, offset DukeOffset) (core.Coordinate, bool) {
	duke, ok := b.DukeCoordinate(owner)
	if !ok {
		return core.Coordinate{}, false
	}
	c := duke.Add(offset.Vector())
	return c, b.InBounds(c)
}

// CanPlaceNearDuke reports whether any cell next to the duke is free,
// regardless of guard
func (b *GameBoard) CanPlaceNearDuke(owner tile.Owner) bool {
	for _, offset := range AllDukeOffsets {
		if c, ok := b.PlacementCoordinate(owner, offset); ok && b.IsEmpty(c) {
			return true
		}
	}
	return false
}

// blocker stands in for the pulled tile when simulating a placement. Only
// its presence matters for the owner's guard.
var blocker = tile.NewTile("Blocker", tile.NewTileSide(), tile.NewTileSide())

// IsValidPlacement reports whether a new tile may go to the offset: the cell
// is on the board, empty, and filling it leaves the owner out of guard
func (b *GameBoard) IsValidPlacement(owner tile.Owner, offset DukeOffset) bool {
	c, ok := b.PlacementCoordinate(owner, offset)
	if !ok || b.IsOccupied(c) {
		return false
	}
	sim := b.Clone()
	sim.cells.Put(c, tile.NewPlacedTile(owner, blocker))
	return !sim.IsGuard(owner)
}

// MakeAMove applies a pre-validated move and returns the captured tile, if any
func (b *GameBoard) MakeAMove(move Move) *tile.PlacedTile {
	switch m := move.(type) {
	case PlaceNewTile:
		c, ok := b.PlacementCoordinate(m.Owner, m.Offset)
		core.Assertf(ok, "invalid placement %s", m)
		b.Place(c, tile.NewPlacedTile(m.Owner, m.Tile))
		return nil
	case ApplyNonCommandTileAction:
		switch b.CanApply(m.Src, m.Dst) {
		case Movement:
			mover := b.cells.GetPtr(m.Src)
			mover.Flip()
			captured, had := b.cells.Move(m.Src, m.Dst)
			if had {
				return &captured
			}
			return nil
		case Strike:
			b.cells.GetPtr(m.Src).Flip()
			captured := b.Remove(m.Dst)
			return &captured
		default:
			panic(fmt.Sprintf("assertion failed: invalid action %s", m))
		}
	default:
		panic(fmt.Sprintf("unknown board move %T", move))
	}
}

// Undo reverses a move. For a placement it returns the removed tile.
func (b *GameBoard) Undo(move UndoMove) *tile.PlacedTile {
	switch m := move.(type) {
	case UndoPlaceNewTile:
		c, ok := b.PlacementCoordinate(m.Owner, m.Offset)
		core.Assertf(ok, "invalid placement undo %s", m)
		placed := b.Remove(c)
		core.Assertf(placed.Owner == m.Owner && placed.Side == tile.Initial,
			"undo of %s found %s", m, placed)
		return &placed
	case UndoTileAction:
		if b.IsEmpty(m.Dst) {
			core.Assertf(m.Captured != nil, "undo of strike %s without a captured tile", m)
			b.Place(m.Dst, *m.Captured)
			mover := b.cells.GetPtr(m.Src)
			core.Assertf(mover != nil, "undo of strike %s found no mover", m)
			mover.Flip()
			return nil
		}
		mover := b.Remove(m.Dst)
		mover.Flip()
		b.Place(m.Src, mover)
		if m.Captured != nil {
			b.Place(m.Dst, *m.Captured)
		}
		return nil
	default:
		panic(fmt.Sprintf("unknown undo move %T", move))
	}
}
