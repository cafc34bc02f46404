package ai

import (
	"math/rand"

	"github.com/mitchelldurbincs/DukeEngine/internal/game"
)

// RandomPlayer plays a uniformly random valid move
type RandomPlayer struct {
	name string
}

// NewRandomPlayer creates a random player. Only WithName and WithLogger
// affect it.
func NewRandomPlayer(opts ...Option) *RandomPlayer {
	o := newOptions("random", opts)
	return &RandomPlayer{name: o.name}
}

// Name returns the player's display name
func (p *RandomPlayer) Name() string { return p.name }

// NextMove picks uniformly among the valid moves of the player to move
func (p *RandomPlayer) NextMove(rng *rand.Rand, gs *game.GameState) (Move, bool) {
	moves := gs.AllValidGameMovesForCurrentPlayer()
	if len(moves) == 0 {
		return nil, false
	}
	return moves[rng.Intn(len(moves))], true
}
