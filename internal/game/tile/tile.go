package tile

import (
	"fmt"
	"unicode"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
)

// Tile is an immutable two-sided unit definition, authored from the bottom
// player's point of view. *Tile is shared between bags, boards and discards.
type Tile struct {
	name  string
	sideA *TileSide
	sideB *TileSide

	// mirrored sides, used for the top player
	mirrorA *TileSide
	mirrorB *TileSide
}

func NewTile(name string, sideA, sideB *TileSide) *Tile {
	return &Tile{
		name:    name,
		sideA:   sideA,
		sideB:   sideB,
		mirrorA: sideA.FlipVertical(),
		mirrorB: sideB.FlipVertical(),
	}
}

func (t *Tile) Name() string     { return t.name }
func (t *Tile) SideA() *TileSide { return t.sideA }
func (t *Tile) SideB() *TileSide { return t.sideB }
func (t *Tile) IsDuke() bool     { return t.name == DukeName }
func (t *Tile) String() string   { return t.name }

// FlipVertical returns the tile with both sides mirrored top to bottom
func (t *Tile) FlipVertical() *Tile {
	return &Tile{
		name:    t.name,
		sideA:   t.mirrorA,
		sideB:   t.mirrorB,
		mirrorA: t.sideA,
		mirrorB: t.sideB,
	}
}

// Side returns the side facing up, mirrored when seen by the top player
func (t *Tile) Side(side CurrentSide, owner Owner) *TileSide {
	switch {
	case side == Initial && owner == BottomPlayer:
		return t.sideA
	case side == Flipped && owner == BottomPlayer:
		return t.sideB
	case side == Initial:
		return t.mirrorA
	default:
		return t.mirrorB
	}
}

// Owner identifies one of the two players
type Owner int

const (
	TopPlayer Owner = iota
	BottomPlayer
)

// Owners lists both players in turn order
var Owners = []Owner{TopPlayer, BottomPlayer}

func (o Owner) NextPlayer() Owner {
	if o == TopPlayer {
		return BottomPlayer
	}
	return TopPlayer
}

func (o Owner) SameTeam(other Owner) bool      { return o == other }
func (o Owner) DifferentTeam(other Owner) bool { return o != other }

func (o Owner) String() string {
	switch o {
	case TopPlayer:
		return "TopPlayer"
	case BottomPlayer:
		return "BottomPlayer"
	default:
		return fmt.Sprintf("Owner(%d)", int(o))
	}
}

// CurrentSide is the face of a placed tile
type CurrentSide int

const (
	Initial CurrentSide = iota
	Flipped
)

func (s CurrentSide) Flip() CurrentSide {
	if s == Initial {
		return Flipped
	}
	return Initial
}

func (s CurrentSide) String() string {
	if s == Initial {
		return "Initial"
	}
	return "Flipped"
}

// PlacedTile is a tile on the board. Only its face changes after placement.
type PlacedTile struct {
	Tile  *Tile
	Side  CurrentSide
	Owner Owner
}

// NewPlacedTile places a tile face up on its initial side
func NewPlacedTile(owner Owner, t *Tile) PlacedTile {
	return PlacedTile{Tile: t, Side: Initial, Owner: owner}
}

// CurrentSide returns the active action grid, already oriented for the owner
func (p PlacedTile) CurrentSide() *TileSide {
	return p.Tile.Side(p.Side, p.Owner)
}

// Flip toggles the face after a non-placement action
func (p *PlacedTile) Flip() {
	p.Side = p.Side.Flip()
}

// Flipped returns a copy with the other face up
func (p PlacedTile) Flipped() PlacedTile {
	p.Side = p.Side.Flip()
	return p
}

func (p PlacedTile) IsDuke() bool { return p.Tile.IsDuke() }

func (p PlacedTile) SameTeam(other PlacedTile) bool { return p.Owner == other.Owner }

func (p PlacedTile) ActionFromCoordinates(src, dst core.Coordinate) (TileAction, bool) {
	return p.CurrentSide().ActionFromCoordinates(src, dst)
}

// Token is a one character rendering: lower case on the initial side, upper case flipped
func (p PlacedTile) Token() rune {
	r := []rune(p.Tile.Name())[0]
	if p.Side == Initial {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}

func (p PlacedTile) String() string {
	return fmt.Sprintf("%s[%s,%s]", p.Tile.Name(), p.Owner, p.Side)
}
