package board

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Size is the width and height of the playing board
const Size = 6

// DukeOffset names one of the four cells orthogonally adjacent to a duke.
// Directions are absolute board directions, y grows downwards.
type DukeOffset int

const (
	DukeTop DukeOffset = iota
	DukeBottom
	DukeLeft
	DukeRight
)

// AllDukeOffsets lists every placement offset in a stable order
var AllDukeOffsets = []DukeOffset{DukeTop, DukeBottom, DukeLeft, DukeRight}

// Vector is the board delta from the duke to the placement cell
func (d DukeOffset) Vector() core.Coordinate {
	switch d {
	case DukeTop:
		return core.Coordinate{X: 0, Y: -1}
	case DukeBottom:
		return core.Coordinate{X: 0, Y: 1}
	case DukeLeft:
		return core.Coordinate{X: -1, Y: 0}
	case DukeRight:
		return core.Coordinate{X: 1, Y: 0}
	default:
		panic(fmt.Sprintf("unknown duke offset %d", int(d)))
	}
}

func (d DukeOffset) String() string {
	switch d {
	case DukeTop:
		return "Top"
	case DukeBottom:
		return "Bottom"
	case DukeLeft:
		return "Left"
	case DukeRight:
		return "Right"
	default:
		return fmt.Sprintf("DukeOffset(%d)", int(d))
	}
}

// DukeInitialLocation is which of the two middle columns the duke starts on,
// seen from its owner's side of the board
type DukeInitialLocation int

const (
	DukeOnLeft DukeInitialLocation = iota
	DukeOnRight
)

func (l DukeInitialLocation) String() string {
	if l == DukeOnLeft {
		return "left"
	}
	return "right"
}

func ParseDukeInitialLocation(s string) (DukeInitialLocation, error) {
	switch strings.ToLower(s) {
	case "left":
		return DukeOnLeft, nil
	case "right":
		return DukeOnRight, nil
	default:
		return 0, fmt.Errorf("unknown duke location: %q", s)
	}
}

// FootmenSetup is where the two starting footmen stand relative to the duke
type FootmenSetup int

const (
	// FootmenSides puts one footman on each side of the duke
	FootmenSides FootmenSetup = iota
	// FootmenLeft puts one footman in front of the duke and one to its player's left
	FootmenLeft
	// FootmenRight puts one footman in front of the duke and one to its player's right
	FootmenRight
)

func (f FootmenSetup) String() string {
	switch f {
	case FootmenSides:
		return "sides"
	case FootmenLeft:
		return "left"
	case FootmenRight:
		return "right"
	default:
		return fmt.Sprintf("FootmenSetup(%d)", int(f))
	}
}

func ParseFootmenSetup(s string) (FootmenSetup, error) {
	switch strings.ToLower(s) {
	case "sides":
		return FootmenSides, nil
	case "left":
		return FootmenLeft, nil
	case "right":
		return FootmenRight, nil
	default:
		return 0, fmt.Errorf("unknown footmen setup: %q", s)
	}
}

// PlayerSetup is one player's opening formation
type PlayerSetup struct {
	Duke    DukeInitialLocation
	Footmen FootmenSetup
}

// DefaultSetup is the duke on the left with a footman on each side
var DefaultSetup = PlayerSetup{Duke: DukeOnLeft, Footmen: FootmenSides}

// NewStandardBoard places both dukes and their two footmen. The top player
// occupies row 0 and the bottom player the last row.
func NewStandardBoard(top, bottom PlayerSetup) *GameBoard {
	b := Empty()

	topX := 3
	if top.Duke == DukeOnRight {
		topX = 2
	}
	b.Place(core.NewCoordinate(topX, 0), tile.NewPlacedTile(tile.TopPlayer, tile.Duke()))
	var topFootmen [2]core.Coordinate
	switch top.Footmen {
	case FootmenSides:
		topFootmen = [2]core.Coordinate{{X: topX + 1, Y: 0}, {X: topX - 1, Y: 0}}
	case FootmenLeft:
		topFootmen = [2]core.Coordinate{{X: topX + 1, Y: 0}, {X: topX, Y: 1}}
	case FootmenRight:
		topFootmen = [2]core.Coordinate{{X: topX - 1, Y: 0}, {X: topX, Y: 1}}
	}
	for _, c := range topFootmen {
		b.Place(c, tile.NewPlacedTile(tile.TopPlayer, tile.Footman()))
	}

	last := Size - 1
	bottomX := 2
	if bottom.Duke == DukeOnRight {
		bottomX = 3
	}
	b.Place(core.NewCoordinate(bottomX, last), tile.NewPlacedTile(tile.BottomPlayer, tile.Duke()))
	var bottomFootmen [2]core.Coordinate
	switch bottom.Footmen {
	case FootmenSides:
		bottomFootmen = [2]core.Coordinate{{X: bottomX + 1, Y: last}, {X: bottomX - 1, Y: last}}
	case FootmenLeft:
		bottomFootmen = [2]core.Coordinate{{X: bottomX - 1, Y: last}, {X: bottomX, Y: last - 1}}
	case FootmenRight:
		bottomFootmen = [2]core.Coordinate{{X: bottomX + 1, Y: last}, {X: bottomX, Y: last - 1}}
	}
	for _, c := range bottomFootmen {
		b.Place(c, tile.NewPlacedTile(tile.BottomPlayer, tile.Footman()))
	}

	return b
}
