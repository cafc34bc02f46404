package core

import (
	"fmt"

	"github.com/mitchelldurbincs/DukeEngine/internal/common"
)

// OffsetGridSize is the width and height of a tile's action grid
const OffsetGridSize = 5

// HorizontalOffset is a column of the 5x5 action grid relative to its center
type HorizontalOffset int

const (
	FarLeft HorizontalOffset = iota
	Left
	HCenter
	Right
	FarRight
)

// VerticalOffset is a row of the 5x5 action grid relative to its center
type VerticalOffset int

const (
	FarTop VerticalOffset = iota
	Top
	VCenter
	Bottom
	FarBottom
)

// HorizontalOffsetFromIndex panics when i is outside 0..4
func HorizontalOffsetFromIndex(i int) HorizontalOffset {
	Assertf(i >= 0 && i < OffsetGridSize, "unsupported horizontal offset index %d", i)
	return HorizontalOffset(i)
}

// VerticalOffsetFromIndex panics when i is outside 0..4
func VerticalOffsetFromIndex(i int) VerticalOffset {
	Assertf(i >= 0 && i < OffsetGridSize, "unsupported vertical offset index %d", i)
	return VerticalOffset(i)
}

func (h HorizontalOffset) Index() int { return int(h) }
func (v VerticalOffset) Index() int   { return int(v) }

// Delta is the signed column distance from the center
func (h HorizontalOffset) Delta() int { return int(h) - 2 }

// Delta is the signed row distance from the center, negative is towards the top
func (v VerticalOffset) Delta() int { return int(v) - 2 }

func (h HorizontalOffset) Flipped() HorizontalOffset { return FarRight - h }
func (v VerticalOffset) Flipped() VerticalOffset     { return FarBottom - v }

func (h HorizontalOffset) DistanceFromCenter() int {
	d := h.Delta()
	if d < 0 {
		return -d
	}
	return d
}

func (v VerticalOffset) DistanceFromCenter() int {
	d := v.Delta()
	if d < 0 {
		return -d
	}
	return d
}

func (h HorizontalOffset) String() string {
	switch h {
	case FarLeft:
		return "FarLeft"
	case Left:
		return "Left"
	case HCenter:
		return "Center"
	case Right:
		return "Right"
	case FarRight:
		return "FarRight"
	default:
		return fmt.Sprintf("HorizontalOffset(%d)", int(h))
	}
}

func (v VerticalOffset) String() string {
	switch v {
	case FarTop:
		return "FarTop"
	case Top:
		return "Top"
	case VCenter:
		return "Center"
	case Bottom:
		return "Bottom"
	case FarBottom:
		return "FarBottom"
	default:
		return fmt.Sprintf("VerticalOffset(%d)", int(v))
	}
}

// Offsets of a lone VerticalOffset is the cell in the center column
func (v VerticalOffset) Offsets() []Offset {
	return []Offset{{X: HCenter, Y: v}}
}

// Offset is a cell in a tile's 5x5 action grid
type Offset struct {
	X HorizontalOffset
	Y VerticalOffset
}

// CenterOffset is the geometric center of the action grid
var CenterOffset = Offset{X: HCenter, Y: VCenter}

func NewOffset(x HorizontalOffset, y VerticalOffset) Offset {
	return Offset{X: x, Y: y}
}

// OffsetFromCoordinate converts a 5x5 grid coordinate to an offset
func OffsetFromCoordinate(c Coordinate) Offset {
	return Offset{X: HorizontalOffsetFromIndex(c.X), Y: VerticalOffsetFromIndex(c.Y)}
}

// Coordinate returns the position of the offset inside a 5x5 grid
func (o Offset) Coordinate() Coordinate {
	return Coordinate{X: o.X.Index(), Y: o.Y.Index()}
}

// Delta returns the signed distance from the geometric center
func (o Offset) Delta() Coordinate {
	return Coordinate{X: o.X.Delta(), Y: o.Y.Delta()}
}

func (o Offset) VerticalFlipped() Offset {
	return Offset{X: o.X, Y: o.Y.Flipped()}
}

// IsNear reports whether o is one of the eight cells surrounding other
func (o Offset) IsNear(other Offset) bool {
	return o != other && common.Chebyshev(o.X.Index(), o.Y.Index(), other.X.Index(), other.Y.Index()) <= 1
}

// IsLinearFrom reports whether o lies on a row, column or diagonal through other
func (o Offset) IsLinearFrom(other Offset) bool {
	return o.Coordinate().IsLinearTo(other.Coordinate())
}

// Offsets lets a single Offset act as a group of one
func (o Offset) Offsets() []Offset {
	return []Offset{o}
}

func (o Offset) String() string {
	return fmt.Sprintf("(%s,%s)", o.X, o.Y)
}

// OffsetGroup expands into the concrete offsets it stands for
type OffsetGroup interface {
	Offsets() []Offset
}

// FourWaySymmetric groups offsets that are symmetric along both axes
type FourWaySymmetric int

const (
	NearStraight FourWaySymmetric = iota
	NearDiagonal
	FarStraight
	FarDiagonal
)

func (f FourWaySymmetric) Offsets() []Offset {
	switch f {
	case NearStraight:
		return []Offset{{HCenter, Top}, {Right, VCenter}, {HCenter, Bottom}, {Left, VCenter}}
	case NearDiagonal:
		return []Offset{{Left, Top}, {Right, Top}, {Right, Bottom}, {Left, Bottom}}
	case FarStraight:
		return []Offset{{HCenter, FarTop}, {FarRight, VCenter}, {HCenter, FarBottom}, {FarLeft, VCenter}}
	case FarDiagonal:
		return []Offset{{FarLeft, FarTop}, {FarRight, FarTop}, {FarRight, FarBottom}, {FarLeft, FarBottom}}
	default:
		panic(fmt.Sprintf("unknown FourWaySymmetric %d", int(f)))
	}
}

// HorizontalSymmetricOffset is a mirrored pair of columns
type HorizontalSymmetricOffset int

const (
	Near HorizontalSymmetricOffset = iota
	Far
)

// Offsets of a bare HorizontalSymmetricOffset lie on the center row
func (h HorizontalSymmetricOffset) Offsets() []Offset {
	return h.With(VCenter).Offsets()
}

// With pairs the mirrored columns with a row
func (h HorizontalSymmetricOffset) With(v VerticalOffset) HorizontalSymmetricRow {
	return HorizontalSymmetricRow{Columns: h, Row: v}
}

// HorizontalSymmetricRow is a mirrored pair of cells on one row
type HorizontalSymmetricRow struct {
	Columns HorizontalSymmetricOffset
	Row     VerticalOffset
}

func (r HorizontalSymmetricRow) Offsets() []Offset {
	switch r.Columns {
	case Near:
		return []Offset{{Left, r.Row}, {Right, r.Row}}
	case Far:
		return []Offset{{FarLeft, r.Row}, {FarRight, r.Row}}
	default:
		panic(fmt.Sprintf("unknown HorizontalSymmetricOffset %d", int(r.Columns)))
	}
}
