package ai

import (
	"math/rand"

	"github.com/mitchelldurbincs/DukeEngine/internal/game"
)

// Move is what a computer player chooses. It doubles as the undo descriptor.
type Move = game.PossibleMove

// ArtificialPlayer picks a move for the side to play. NextMove must leave gs
// untouched and returns false only when there is nothing to play.
type ArtificialPlayer interface {
	Name() string
	NextMove(rng *rand.Rand, gs *game.GameState) (Move, bool)
}

// PlayNextMove asks p for a move and applies it to gs. The returned move can
// be handed to gs.Undo to take it back.
func PlayNextMove(p ArtificialPlayer, rng *rand.Rand, gs *game.GameState) (Move, bool) {
	m, ok := p.NextMove(rng, gs)
	if !ok {
		return nil, false
	}
	gs.MakeAMove(m.ToGameMove(), rng)
	return m, true
}

// splitRng derives an independent source so a search does not consume more
// than one value from the caller's stream
func splitRng(rng *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(rng.Int63()))
}

func shuffle(rng *rand.Rand, moves []Move) {
	rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
}
