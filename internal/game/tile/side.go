package tile

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
)

// SideEntry binds every offset of a group to one action
type SideEntry struct {
	Group  core.OffsetGroup
	Action TileAction
}

// E is shorthand for building a SideEntry
func E(group core.OffsetGroup, action TileAction) SideEntry {
	return SideEntry{Group: group, Action: action}
}

// OffsetAction is one populated cell of an action grid
type OffsetAction struct {
	Offset core.Offset
	Action TileAction
}

// TileSide is a validated 5x5 action grid. Commands live on their own layer
// so a cell may both move and command.
type TileSide struct {
	actions  *core.Board[TileAction]
	commands *core.Board[bool]
	unit     core.Offset
}

// NewTileSide expands the entries, inserts a Unit marker at the center when
// none is given and validates the grid. Invalid definitions panic.
func NewTileSide(entries ...SideEntry) *TileSide {
	side := &TileSide{
		actions:  core.NewSquareBoard[TileAction](core.OffsetGridSize),
		commands: core.NewSquareBoard[bool](core.OffsetGridSize),
	}

	units := 0
	for _, e := range entries {
		for _, o := range e.Group.Offsets() {
			c := o.Coordinate()
			if e.Action == Command {
				_, dup := side.commands.Put(c, true)
				core.Assertf(!dup, "command already exists for %s", o)
				continue
			}
			prev, dup := side.actions.Put(c, e.Action)
			core.Assertf(!dup, "%s already holds %s, cannot add %s", o, prev, e.Action)
			if e.Action == Unit {
				units++
			}
		}
	}
	if units == 0 {
		_, taken := side.actions.Put(core.CenterOffset.Coordinate(), Unit)
		core.Assertf(!taken, "center is taken and no Unit was given")
		units = 1
	}
	core.Assertf(units == 1, "unit action should have been 1, was %d", units)

	unit, _ := side.actions.Find(func(a TileAction) bool { return a == Unit })
	side.unit = core.OffsetFromCoordinate(unit)
	side.verify()
	return side
}

func (s *TileSide) verify() {
	for _, e := range s.actions.ActiveCoordinates() {
		o := core.OffsetFromCoordinate(e.Coordinate)
		switch e.Value {
		case Unit:
			core.Assertf(o.X == core.HCenter, "the unit should always be horizontally centered, got %s", o)
		case Jump:
			core.Assertf(!o.IsNear(s.unit), "jump at %s is near the unit and should be a move", o)
		case JumpSlide:
			core.Assertf(!o.IsNear(s.unit), "jump slide at %s should not be near the unit", o)
			core.Assertf(o.IsLinearFrom(s.unit), "jump slide at %s is not on a line from the unit", o)
		case Slide:
			core.Assertf(o.IsNear(s.unit), "slide at %s should be near the unit", o)
			beyond := e.Coordinate.Add(e.Coordinate.Sub(s.unit.Coordinate()))
			if s.actions.InBounds(beyond) {
				core.Assertf(s.actions.IsEmpty(beyond), "%s hides behind the slide at %s", core.OffsetFromCoordinate(beyond), o)
			}
		case Move:
			core.Assertf(o.IsLinearFrom(s.unit), "move at %s can't be L shaped", o)
		}
	}
}

// Actions lists every non-Command (offset, action) pair, including the Unit marker
func (s *TileSide) Actions() []OffsetAction {
	active := s.actions.ActiveCoordinates()
	result := make([]OffsetAction, 0, len(active))
	for _, e := range active {
		result = append(result, OffsetAction{Offset: core.OffsetFromCoordinate(e.Coordinate), Action: e.Value})
	}
	return result
}

// Commands lists the offsets this side can command
func (s *TileSide) Commands() []core.Offset {
	var result []core.Offset
	for _, e := range s.commands.ActiveCoordinates() {
		result = append(result, core.OffsetFromCoordinate(e.Coordinate))
	}
	return result
}

// ActionAt returns the non-Command action at an offset
func (s *TileSide) ActionAt(o core.Offset) (TileAction, bool) {
	return s.actions.Get(o.Coordinate())
}

// CenterOffset is the row of the Unit marker in the center column
func (s *TileSide) CenterOffset() core.VerticalOffset {
	return s.unit.Y
}

// UnitOffset is the cell holding the Unit marker
func (s *TileSide) UnitOffset() core.Offset {
	return s.unit
}

// ActionFromCoordinates returns which action, if any, takes a tile with this
// side from src to dst on the board. Slides and jump slides reach any distance
// along their ray; every other action is limited to the 5x5 grid around the unit.
func (s *TileSide) ActionFromCoordinates(src, dst core.Coordinate) (TileAction, bool) {
	unit := s.unit.Coordinate()
	if dir, ok := src.DirectionTo(dst); ok {
		step := core.DirectionVectors[dir]
		near := unit.Add(step)
		far := near.Add(step)
		if s.actions.InBounds(near) {
			if a, ok := s.actions.Get(near); ok && a == Slide {
				return Slide, true
			}
		}
		steps := dst.Sub(src)
		if s.actions.InBounds(far) && (steps.X*steps.X > 1 || steps.Y*steps.Y > 1) {
			if a, ok := s.actions.Get(far); ok && a == JumpSlide {
				return JumpSlide, true
			}
		}
	}

	cell := unit.Add(dst.Sub(src))
	if !s.actions.InBounds(cell) {
		return 0, false
	}
	return s.actions.Get(cell)
}

// FlipVertical mirrors the grid top to bottom
func (s *TileSide) FlipVertical() *TileSide {
	flipped := &TileSide{
		actions:  s.actions.FlipVertical(),
		commands: s.commands.FlipVertical(),
		unit:     s.unit.VerticalFlipped(),
	}
	return flipped
}

// String renders the grid one row per line, '.' for empty cells
func (s *TileSide) String() string {
	var sb strings.Builder
	for y := 0; y < core.OffsetGridSize; y++ {
		for x := 0; x < core.OffsetGridSize; x++ {
			c := core.NewCoordinate(x, y)
			r := "."
			if a, ok := s.actions.Get(c); ok {
				r = actionGlyph(a)
			} else if s.commands.IsOccupied(c) {
				r = "c"
			}
			sb.WriteString(r)
		}
		if y < core.OffsetGridSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func actionGlyph(a TileAction) string {
	switch a {
	case Unit:
		return "U"
	case Move:
		return "M"
	case Jump:
		return "J"
	case Slide:
		return "S"
	case JumpSlide:
		return "X"
	case Strike:
		return "*"
	default:
		return fmt.Sprint(int(a))
	}
}
