package bag

import (
	"math/rand"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// TileBag holds the tiles a player has yet to draw
type TileBag struct {
	tiles []*tile.Tile
}

func NewTileBag(tiles []*tile.Tile) *TileBag {
	return &TileBag{tiles: append([]*tile.Tile(nil), tiles...)}
}

// Pull removes a uniformly random tile. Returns false when the bag is empty.
func (b *TileBag) Pull(rng *rand.Rand) (*tile.Tile, bool) {
	if len(b.tiles) == 0 {
		return nil, false
	}
	i := rng.Intn(len(b.tiles))
	t := b.tiles[i]
	b.tiles = append(b.tiles[:i], b.tiles[i+1:]...)
	return t, true
}

// Push returns a tile to the bag when a draw is undone
func (b *TileBag) Push(t *tile.Tile) {
	b.tiles = append(b.tiles, t)
}

// Remaining returns a copy of the tiles still in the bag
func (b *TileBag) Remaining() []*tile.Tile {
	return append([]*tile.Tile(nil), b.tiles...)
}

func (b *TileBag) Len() int      { return len(b.tiles) }
func (b *TileBag) IsEmpty() bool { return len(b.tiles) == 0 }

func (b *TileBag) Clone() *TileBag {
	return NewTileBag(b.tiles)
}

// Equal compares contents as multisets of tile references
func (b *TileBag) Equal(other *TileBag) bool {
	return sameTiles(b.tiles, other.tiles)
}

// DiscardBag collects a player's captured tiles in capture order
type DiscardBag struct {
	tiles []*tile.Tile
}

func NewDiscardBag() *DiscardBag {
	return &DiscardBag{}
}

func (d *DiscardBag) Add(t *tile.Tile) {
	d.tiles = append(d.tiles, t)
}

// RemoveLast pops the most recent capture, used when a capture is undone
func (d *DiscardBag) RemoveLast() (*tile.Tile, bool) {
	if len(d.tiles) == 0 {
		return nil, false
	}
	last := d.tiles[len(d.tiles)-1]
	d.tiles = d.tiles[:len(d.tiles)-1]
	return last, true
}

// Existing returns a copy of the discarded tiles
func (d *DiscardBag) Existing() []*tile.Tile {
	return append([]*tile.Tile(nil), d.tiles...)
}

func (d *DiscardBag) Len() int { return len(d.tiles) }

func (d *DiscardBag) Clone() *DiscardBag {
	return &DiscardBag{tiles: append([]*tile.Tile(nil), d.tiles...)}
}

func (d *DiscardBag) Equal(other *DiscardBag) bool {
	if len(d.tiles) != len(other.tiles) {
		return false
	}
	for i := range d.tiles {
		if d.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

func sameTiles(a, b []*tile.Tile) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[*tile.Tile]int, len(a))
	for _, t := range a {
		counts[t]++
	}
	for _, t := range b {
		if counts[t] == 0 {
			return false
		}
		counts[t]--
	}
	return true
}
