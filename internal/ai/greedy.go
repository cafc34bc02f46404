package ai

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/rules"
)

// GreedyPlayer looks one move ahead and plays the move whose resulting
// position scores best for it. Equal scores are broken at random.
type GreedyPlayer struct {
	name      string
	evaluator *HeuristicEvaluator
	tracer    Tracer
	logger    zerolog.Logger
}

// NewGreedyPlayer creates a greedy player scoring positions with the
// configured evaluator
func NewGreedyPlayer(opts ...Option) *GreedyPlayer {
	o := newOptions("greedy", opts)
	return &GreedyPlayer{
		name:      o.name,
		evaluator: o.evaluator,
		tracer:    o.tracer,
		logger:    o.logger.With().Str("component", "Greedy").Logger(),
	}
}

// Name returns the player's display name
func (p *GreedyPlayer) Name() string { return p.name }

// NextMove plays every candidate on a clone of gs and keeps the best. A
// winning move is always preferred and a tie scores zero.
func (p *GreedyPlayer) NextMove(rng *rand.Rand, gs *game.GameState) (Move, bool) {
	defer p.tracer.Span("greedy: next_move")()

	s := gs.Clone()
	mover := s.CurrentPlayerTurn()
	moves := s.AllValidGameMovesForCurrentPlayer()
	if len(moves) == 0 {
		return nil, false
	}
	searchRng := splitRng(rng)
	shuffle(searchRng, moves)

	best := math.Inf(-1)
	var bestMove Move
	for _, m := range moves {
		s.MakeAMove(m.ToGameMove(), searchRng)
		var score float64
		switch result := s.GameResult(); result.Kind {
		case rules.Won:
			score = terminalScore(result, mover, 1)
		case rules.Tie:
			score = 0
		default:
			score = p.evaluator.EvaluateFor(mover, s)
		}
		s.Undo(m)

		if bestMove == nil || score > best {
			best = score
			bestMove = m
		}
	}

	p.logger.Debug().
		Str("move", bestMove.String()).
		Float64("score", best).
		Int("candidates", len(moves)).
		Msg("Greedy move chosen")
	return bestMove, true
}
