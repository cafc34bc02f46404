package opening

import (
	"math/rand"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
)

// Config lists the formations a generator may pick from
type Config struct {
	DukeLocations []board.DukeInitialLocation
	FootmenSetups []board.FootmenSetup
	// Mirrored gives both players the same formation
	Mirrored bool
}

// DefaultConfig allows every standard formation for each player independently
func DefaultConfig() Config {
	return Config{
		DukeLocations: []board.DukeInitialLocation{board.DukeOnLeft, board.DukeOnRight},
		FootmenSetups: []board.FootmenSetup{board.FootmenSides, board.FootmenLeft, board.FootmenRight},
	}
}

// Opening is the pair of formations a match starts from
type Opening struct {
	Top    board.PlayerSetup
	Bottom board.PlayerSetup
}

// Board builds the starting board of the opening
func (o Opening) Board() *board.GameBoard {
	return board.NewStandardBoard(o.Top, o.Bottom)
}

// Generator picks openings with a deterministic RNG
type Generator struct {
	config Config
	rng    *rand.Rand
}

// NewGenerator creates a new opening generator. Empty choice lists fall
// back to the defaults.
func NewGenerator(config Config, rng *rand.Rand) *Generator {
	def := DefaultConfig()
	if len(config.DukeLocations) == 0 {
		config.DukeLocations = def.DukeLocations
	}
	if len(config.FootmenSetups) == 0 {
		config.FootmenSetups = def.FootmenSetups
	}
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateSetup picks one player's formation
func (g *Generator) GenerateSetup() board.PlayerSetup {
	return board.PlayerSetup{
		Duke:    g.config.DukeLocations[g.rng.Intn(len(g.config.DukeLocations))],
		Footmen: g.config.FootmenSetups[g.rng.Intn(len(g.config.FootmenSetups))],
	}
}

// GenerateOpening picks formations for both players
func (g *Generator) GenerateOpening() Opening {
	top := g.GenerateSetup()
	if g.config.Mirrored {
		return Opening{Top: top, Bottom: top}
	}
	return Opening{Top: top, Bottom: g.GenerateSetup()}
}
