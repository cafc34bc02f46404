package game

import (
	"github.com/mitchelldurbincs/DukeEngine/internal/config"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Rule settings
func TieThreshold() int {
	return config.Get().Game.TieThreshold
}

// StartingBag builds the configured starting bag for one player
func StartingBag() ([]*tile.Tile, error) {
	return tile.BagFromNames(config.Get().Game.StartingBag)
}

// Simulation limits
func MaxTurns() int {
	return config.Get().Simulation.MaxTurns
}
