package ai

import (
	"math"
	"math/rand"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/rules"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Win is the score of a won position. A win found ply moves deep scores
// Win-ply so that faster wins are preferred and losses are delayed.
const Win = 1e9

// terminalScore scores a decided position for perspective
func terminalScore(result rules.GameResult, perspective tile.Owner, ply int) float64 {
	switch {
	case result.Kind == rules.Tie:
		return 0
	case result.Winner == perspective:
		return Win - float64(ply)
	default:
		return -(Win - float64(ply))
	}
}

// AlphaBetaPlayer searches a fixed number of plies with negamax and
// alpha-beta pruning. Leaves are scored with the evaluator and children
// are tried in the order the cheap evaluator prefers.
type AlphaBetaPlayer struct {
	name      string
	maxDepth  int
	evaluator *HeuristicEvaluator
	tracer    Tracer
	logger    zerolog.Logger
}

// NewAlphaBetaPlayer creates a searcher. Depth defaults to DefaultMaxDepth
// and the evaluator to DefaultEvaluator.
func NewAlphaBetaPlayer(opts ...Option) *AlphaBetaPlayer {
	o := newOptions("alpha_beta", opts)
	return &AlphaBetaPlayer{
		name:      o.name,
		maxDepth:  o.maxDepth,
		evaluator: o.evaluator,
		tracer:    o.tracer,
		logger:    o.logger.With().Str("component", "AlphaBeta").Logger(),
	}
}

func (p *AlphaBetaPlayer) Name() string  { return p.name }
func (p *AlphaBetaPlayer) MaxDepth() int { return p.maxDepth }

// search holds the per-call state of one NextMove
type search struct {
	*AlphaBetaPlayer
	state *game.GameState
	rng   *rand.Rand
	nodes int
}

// NextMove searches a clone of gs. Root moves are shuffled before ordering
// and the first strictly best one wins, so equal moves are picked at random.
func (p *AlphaBetaPlayer) NextMove(rng *rand.Rand, gs *game.GameState) (Move, bool) {
	defer p.tracer.Span("alpha_beta: next_move")()

	if gs.IsOver() {
		return nil, false
	}
	s := &search{AlphaBetaPlayer: p, state: gs.Clone(), rng: splitRng(rng)}
	moves := s.state.AllValidGameMovesForCurrentPlayer()
	if len(moves) == 0 {
		return nil, false
	}
	shuffle(s.rng, moves)
	s.order(moves)

	best := math.Inf(-1)
	bestMove := moves[0]
	for _, m := range moves {
		s.state.MakeAMove(m.ToGameMove(), s.rng)
		value := -s.negamax(p.maxDepth-1, math.Inf(-1), -best, 1)
		s.state.Undo(m)
		if value > best {
			best = value
			bestMove = m
		}
	}

	p.logger.Debug().
		Str("move", bestMove.String()).
		Float64("score", best).
		Int("nodes", s.nodes).
		Int("depth", p.maxDepth).
		Msg("Search finished")
	return bestMove, true
}

func (s *search) negamax(depth int, alpha, beta float64, ply int) float64 {
	s.nodes++
	if result := s.state.GameResult(); result.IsOver() {
		return terminalScore(result, s.state.CurrentPlayerTurn(), ply)
	}
	if depth <= 0 {
		done := s.tracer.Span("alpha_beta: evaluate")
		score := s.evaluator.Evaluate(s.state)
		done()
		return score
	}

	moves := s.state.AllValidGameMovesForCurrentPlayer()
	s.order(moves)

	best := math.Inf(-1)
	for _, m := range moves {
		s.state.MakeAMove(m.ToGameMove(), s.rng)
		value := -s.negamax(depth-1, -beta, -alpha, ply+1)
		s.state.Undo(m)

		best = math.Max(best, value)
		alpha = math.Max(alpha, value)
		if alpha >= beta {
			break
		}
	}
	return best
}

// order sorts moves best first for the player to move. The sort is stable
// so earlier moves win ties.
func (s *search) order(moves []Move) {
	defer s.tracer.Span("alpha_beta: order")()

	type scored struct {
		move  Move
		score float64
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		s.state.MakeAMove(m.ToGameMove(), s.rng)
		ranked[i] = scored{move: m, score: -s.evaluator.CheapEvaluate(s.state)}
		s.state.Undo(m)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	for i, r := range ranked {
		moves[i] = r.move
	}
}
