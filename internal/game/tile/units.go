package tile

import (
	"fmt"
	"sort"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
)

const DukeName = "Duke"

// Constructor builds a fresh unit definition
type Constructor func() *Tile

func Duke() *Tile {
	return NewTile(DukeName,
		NewTileSide(
			E(core.Near, Slide),
		),
		NewTileSide(
			E(core.Top, Slide),
			E(core.Bottom, Slide),
		),
	)
}

func Footman() *Tile {
	return NewTile("Footman",
		NewTileSide(
			E(core.NearStraight, Move),
		),
		NewTileSide(
			E(core.NearDiagonal, Move),
			E(core.FarTop, Move),
		),
	)
}

func Bowman() *Tile {
	return NewTile("Bowman",
		NewTileSide(
			E(core.Top, Move),
			E(core.FarBottom, Jump),
			E(core.Near, Move),
			E(core.Far, Jump),
		),
		NewTileSide(
			E(core.Top, Move),
			E(core.FarTop, Strike),
			E(core.Near.With(core.Top), Strike),
			E(core.Near.With(core.Bottom), Move),
		),
	)
}

func Dragoon() *Tile {
	return NewTile("Dragoon",
		NewTileSide(
			E(core.Near, Move),
			E(core.Far.With(core.FarTop), Strike),
			E(core.FarTop, Strike),
		),
		NewTileSide(
			E(core.Top, Move),
			E(core.FarTop, Move),
			E(core.Near.With(core.FarTop), Jump),
			E(core.Near.With(core.Bottom), Slide),
		),
	)
}

func Assassin() *Tile {
	return NewTile("Assassin",
		NewTileSide(
			E(core.Far.With(core.FarBottom), JumpSlide),
			E(core.FarTop, JumpSlide),
		),
		NewTileSide(
			E(core.Far.With(core.FarTop), JumpSlide),
			E(core.FarBottom, JumpSlide),
		),
	)
}

func Champion() *Tile {
	return NewTile("Champion",
		NewTileSide(
			E(core.NearStraight, Move),
			E(core.FarStraight, Jump),
		),
		NewTileSide(
			E(core.NearStraight, Strike),
			E(core.FarStraight, Jump),
		),
	)
}

func General() *Tile {
	return NewTile("General",
		NewTileSide(
			E(core.Top, Move),
			E(core.Bottom, Move),
			E(core.Far, Move),
			E(core.Near.With(core.FarTop), Jump),
		),
		NewTileSide(
			E(core.Top, Move),
			E(core.Near, Move),
			E(core.Far, Move),
			E(core.Near.With(core.FarTop), Jump),
			E(core.Near, Command),
			E(core.Bottom, Command),
			E(core.Near.With(core.Bottom), Command),
		),
	)
}

func Marshall() *Tile {
	return NewTile("Marshall",
		NewTileSide(
			E(core.Far.With(core.FarTop), Jump),
			E(core.Near, Slide),
			E(core.FarBottom, Jump),
		),
		NewTileSide(
			E(core.Top, Move),
			E(core.Near, Move),
			E(core.Far, Move),
			E(core.Near.With(core.Bottom), Move),
			E(core.Near.With(core.Top), Move),
			E(core.Top, Command),
			E(core.Near.With(core.Top), Command),
		),
	)
}

func Priest() *Tile {
	return NewTile("Priest",
		NewTileSide(
			E(core.NearDiagonal, Slide),
		),
		NewTileSide(
			E(core.NearDiagonal, Move),
			E(core.FarDiagonal, Jump),
		),
	)
}

func Longbowman() *Tile {
	return NewTile("Longbowman",
		NewTileSide(
			E(core.Bottom, Unit),
			E(core.VCenter, Move),
			E(core.FarBottom, Move),
			E(core.Near.With(core.Bottom), Move),
		),
		NewTileSide(
			E(core.Bottom, Unit),
			E(core.Near.With(core.FarBottom), Move),
			E(core.Top, Strike),
			E(core.FarTop, Strike),
		),
	)
}

func Knight() *Tile {
	return NewTile("Knight",
		NewTileSide(
			E(core.Near, Move),
			E(core.Bottom, Move),
			E(core.FarBottom, Move),
			E(core.Near.With(core.FarTop), Jump),
		),
		NewTileSide(
			E(core.Top, Slide),
			E(core.Near.With(core.Bottom), Move),
			E(core.Far.With(core.FarBottom), Move),
		),
	)
}

func Pikeman() *Tile {
	return NewTile("Pikeman",
		NewTileSide(
			E(core.Near.With(core.Top), Move),
			E(core.Far.With(core.FarTop), Move),
		),
		NewTileSide(
			E(core.Top, Move),
			E(core.Bottom, Move),
			E(core.FarBottom, Move),
			E(core.Near.With(core.FarTop), Strike),
		),
	)
}

func Wizard() *Tile {
	return NewTile("Wizard",
		NewTileSide(
			E(core.NearStraight, Move),
			E(core.NearDiagonal, Move),
		),
		NewTileSide(
			E(core.FarStraight, Jump),
			E(core.FarDiagonal, Jump),
		),
	)
}

var roster = map[string]Constructor{
	"Duke":       Duke,
	"Footman":    Footman,
	"Bowman":     Bowman,
	"Dragoon":    Dragoon,
	"Assassin":   Assassin,
	"Champion":   Champion,
	"General":    General,
	"Marshall":   Marshall,
	"Priest":     Priest,
	"Longbowman": Longbowman,
	"Knight":     Knight,
	"Pikeman":    Pikeman,
	"Wizard":     Wizard,
}

// Roster lists every known unit name, sorted
func Roster() []string {
	names := make([]string, 0, len(roster))
	for name := range roster {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named unit
func ByName(name string) (*Tile, error) {
	ctor, ok := roster[name]
	if !ok {
		return nil, fmt.Errorf("unknown unit %q", name)
	}
	return ctor(), nil
}

// DefaultStartingBagNames is the bag each player draws from in a standard game
var DefaultStartingBagNames = []string{
	"Footman", "Pikeman", "Pikeman", "Pikeman", "Bowman", "Champion", "Dragoon",
	"Assassin", "General", "Knight", "Longbowman", "Marshall", "Priest", "Wizard",
}

// BagFromNames builds the tiles for a bag, returning an error on unknown names
func BagFromNames(names []string) ([]*Tile, error) {
	tiles := make([]*Tile, 0, len(names))
	for _, name := range names {
		t, err := ByName(name)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}
