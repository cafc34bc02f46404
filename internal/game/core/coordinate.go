package core

import (
	"fmt"

	"github.com/mitchelldurbincs/DukeEngine/internal/common"
)

// Coordinate represents an absolute position on a board
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// Sub returns a new coordinate that is the difference between this coordinate and another
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X - other.X,
		Y: c.Y - other.Y,
	}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// IsLinearTo reports whether other lies on the same row, column or diagonal.
// A coordinate is linear to itself.
func (c Coordinate) IsLinearTo(other Coordinate) bool {
	dx := common.Abs(c.X - other.X)
	dy := common.Abs(c.Y - other.Y)
	return dx == 0 || dy == 0 || dx == dy
}

// LinearPathTo returns the cells strictly between c and dst, ordered from c.
// Panics if c == dst or the two coordinates are not linear.
func (c Coordinate) LinearPathTo(dst Coordinate) []Coordinate {
	Assertf(!c.Equal(dst), "linear path from %s to itself", c)
	Assertf(c.IsLinearTo(dst), "%s is not linear to %s", c, dst)

	step := Coordinate{X: common.Sign(dst.X - c.X), Y: common.Sign(dst.Y - c.Y)}
	steps := common.Max(common.Abs(dst.X-c.X), common.Abs(dst.Y-c.Y))
	path := make([]Coordinate, 0, steps-1)
	for cur := c.Add(step); !cur.Equal(dst); cur = cur.Add(step) {
		path = append(path, cur)
	}
	return path
}

// Direction represents one of the eight compass directions
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionVectors provides coordinate steps for each direction, y grows downwards
var DirectionVectors = map[Direction]Coordinate{
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
	East:      {X: 1, Y: 0},
	SouthEast: {X: 1, Y: 1},
	South:     {X: 0, Y: 1},
	SouthWest: {X: -1, Y: 1},
	West:      {X: -1, Y: 0},
	NorthWest: {X: -1, Y: -1},
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Move returns a new coordinate moved one step in the given direction
func (c Coordinate) Move(direction Direction) Coordinate {
	if offset, ok := DirectionVectors[direction]; ok {
		return c.Add(offset)
	}
	return c
}

// DirectionTo returns the compass direction from c towards a linear coordinate.
// Returns false when other equals c or is not linear.
func (c Coordinate) DirectionTo(other Coordinate) (Direction, bool) {
	if c.Equal(other) || !c.IsLinearTo(other) {
		return 0, false
	}
	step := Coordinate{X: common.Sign(other.X - c.X), Y: common.Sign(other.Y - c.Y)}
	for d, v := range DirectionVectors {
		if v == step {
			return d, true
		}
	}
	return 0, false
}

// Ray returns every in-bounds coordinate from c (exclusive) in the given
// direction up to the board edge.
func (c Coordinate) Ray(direction Direction, width, height int) []Coordinate {
	var ray []Coordinate
	for cur := c.Move(direction); cur.IsValid(width, height); cur = cur.Move(direction) {
		ray = append(ray, cur)
	}
	return ray
}
