package board

import (
	"strings"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// String renders one character per cell: the tile's token, upper case when
// flipped, blank when empty
func (b *GameBoard) String() string {
	rows := make([]string, 0, b.Height())
	for y := 0; y < b.Height(); y++ {
		cells := make([]string, b.Width())
		for x := range cells {
			cells[x] = " "
			if t, ok := b.Get(core.NewCoordinate(x, y)); ok {
				cells[x] = string(t.Token())
			}
		}
		rows = append(rows, "|"+strings.Join(cells, "|")+"|")
	}
	return frame(rows, 0)
}

// DetailedString renders two lines per row. The name half of a cell faces
// its owner's side of the board and the other half shows IN or FL.
func (b *GameBoard) DetailedString() string {
	rows := make([]string, 0, 2*b.Height())
	for y := 0; y < b.Height(); y++ {
		upper := make([]string, b.Width())
		lower := make([]string, b.Width())
		for x := 0; x < b.Width(); x++ {
			upper[x], lower[x] = "  ", "  "
			t, ok := b.Get(core.NewCoordinate(x, y))
			if !ok {
				continue
			}
			name, side := shortName(t), "IN"
			if t.Side == tile.Flipped {
				side = "FL"
			}
			if t.Owner == tile.TopPlayer {
				upper[x], lower[x] = name, side
			} else {
				upper[x], lower[x] = side, name
			}
		}
		rows = append(rows, "|"+strings.Join(upper, "|")+"|", "|"+strings.Join(lower, "|")+"|")
	}
	return frame(rows, 2)
}

func shortName(t tile.PlacedTile) string {
	name := t.Tile.Name()
	if len(name) < 2 {
		return name + " "
	}
	return name[:2]
}

// frame draws a border around rows and, when n > 0, a separator every n lines
func frame(rows []string, n int) string {
	width := len(rows[0])
	var sb strings.Builder
	sb.WriteString("/" + strings.Repeat("=", width-2) + "\\\n")
	for i, r := range rows {
		if n > 0 && i > 0 && i%n == 0 {
			sb.WriteString(strings.Repeat("-", width) + "\n")
		}
		sb.WriteString(r)
		sb.WriteByte('\n')
	}
	sb.WriteString("\\" + strings.Repeat("=", width-2) + "/")
	return sb.String()
}
