package tile

import "fmt"

// TileAction is the content of one cell in a tile side's action grid
type TileAction int

const (
	Unit TileAction = iota
	Move
	Jump
	Slide
	Command
	JumpSlide
	Strike
)

func (a TileAction) String() string {
	switch a {
	case Unit:
		return "Unit"
	case Move:
		return "Move"
	case Jump:
		return "Jump"
	case Slide:
		return "Slide"
	case Command:
		return "Command"
	case JumpSlide:
		return "JumpSlide"
	case Strike:
		return "Strike"
	default:
		return fmt.Sprintf("TileAction(%d)", int(a))
	}
}

// Relocates reports whether applying the action moves the tile
func (a TileAction) Relocates() bool {
	switch a {
	case Move, Jump, Slide, JumpSlide:
		return true
	default:
		return false
	}
}
