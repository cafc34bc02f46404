package ai

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/mitchelldurbincs/DukeEngine/internal/config"
	"github.com/mitchelldurbincs/DukeEngine/internal/game"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/board"
	"github.com/mitchelldurbincs/DukeEngine/internal/game/tile"
)

// Heuristic is one raw positional feature of a player
type Heuristic int

const (
	// DukeMovementOptions counts the legal moves of the player's duke
	DukeMovementOptions Heuristic = iota
	// TotalTilesOnBoard counts the player's tiles on the board
	TotalTilesOnBoard
	// TotalMovementOptions counts every valid move of the player, placements included
	TotalMovementOptions
	// DiscardedUnits counts the player's captured tiles
	DiscardedUnits
)

// AllHeuristics lists the heuristics in evaluator order
var AllHeuristics = []Heuristic{DukeMovementOptions, TotalTilesOnBoard, TotalMovementOptions, DiscardedUnits}

// String returns the heuristic's name
func (h Heuristic) String() string {
	switch h {
	case DukeMovementOptions:
		return "DukeMovementOptions"
	case TotalTilesOnBoard:
		return "TotalTilesOnBoard"
	case TotalMovementOptions:
		return "TotalMovementOptions"
	case DiscardedUnits:
		return "DiscardedUnits"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// Evaluate scores owner's position using fully legal moves
func (h Heuristic) Evaluate(owner tile.Owner, gs *game.GameState) float64 {
	switch h {
	case DukeMovementOptions:
		duke, ok := gs.DukeCoordinate(owner)
		if !ok {
			return 0
		}
		return float64(len(gs.GetLegalMoves(duke)))
	case TotalMovementOptions:
		return float64(len(gs.AllValidGameMovesFor(owner)))
	default:
		return h.ApproximateEvaluate(owner, gs)
	}
}

// ApproximateEvaluate is Evaluate without checking whether moves expose the
// owner's duke. It is only used to order moves.
func (h Heuristic) ApproximateEvaluate(owner tile.Owner, gs *game.GameState) float64 {
	b := gs.Board()
	switch h {
	case DukeMovementOptions:
		duke, ok := gs.DukeCoordinate(owner)
		if !ok {
			return 0
		}
		return float64(len(b.LegalMovesIgnoringGuard(duke)))
	case TotalTilesOnBoard:
		return float64(len(gs.TilesFor(owner)))
	case TotalMovementOptions:
		n := 0
		for _, e := range b.TilesFor(owner) {
			n += len(b.LegalMovesIgnoringGuard(e.Coordinate))
		}
		if !gs.Bag(owner).IsEmpty() {
			for _, offset := range board.AllDukeOffsets {
				if c, ok := b.PlacementCoordinate(owner, offset); ok && b.IsEmpty(c) {
					n++
				}
			}
		}
		return float64(n)
	case DiscardedUnits:
		return float64(gs.Discard(owner).Len())
	default:
		panic(fmt.Sprintf("unknown heuristic %d", int(h)))
	}
}

// Difference is owner's score minus the opponent's
func (h Heuristic) Difference(owner tile.Owner, gs *game.GameState) float64 {
	return h.Evaluate(owner, gs) - h.Evaluate(owner.NextPlayer(), gs)
}

// ApproximateDifference is Difference computed with ApproximateEvaluate
func (h Heuristic) ApproximateDifference(owner tile.Owner, gs *game.GameState) float64 {
	return h.ApproximateEvaluate(owner, gs) - h.ApproximateEvaluate(owner.NextPlayer(), gs)
}

// HeuristicEvaluator is a weighted sum of heuristic differences
type HeuristicEvaluator struct {
	heuristics []Heuristic
	weights    []float64
}

// Weighted pairs a heuristic with its weight
type Weighted struct {
	Heuristic Heuristic
	Weight    float64
}

// NewHeuristicEvaluator combines the weighted heuristics into one score
func NewHeuristicEvaluator(terms ...Weighted) *HeuristicEvaluator {
	e := &HeuristicEvaluator{
		heuristics: make([]Heuristic, len(terms)),
		weights:    make([]float64, len(terms)),
	}
	for i, t := range terms {
		e.heuristics[i] = t.Heuristic
		e.weights[i] = t.Weight
	}
	return e
}

// DefaultEvaluator weighs tiles on the board ten times a move option and
// penalizes each lost tile by five
func DefaultEvaluator() *HeuristicEvaluator {
	return NewHeuristicEvaluator(
		Weighted{DukeMovementOptions, 1},
		Weighted{TotalTilesOnBoard, 10},
		Weighted{TotalMovementOptions, 1},
		Weighted{DiscardedUnits, -5},
	)
}

// EvaluatorFromConfig builds an evaluator from the configured weights
func EvaluatorFromConfig(w config.WeightsConfig) *HeuristicEvaluator {
	return NewHeuristicEvaluator(
		Weighted{DukeMovementOptions, w.DukeMobility},
		Weighted{TotalTilesOnBoard, w.TilesOnBoard},
		Weighted{TotalMovementOptions, w.TotalMobility},
		Weighted{DiscardedUnits, w.Discarded},
	)
}

// Evaluate scores gs for the player to move
func (e *HeuristicEvaluator) Evaluate(gs *game.GameState) float64 {
	return e.EvaluateFor(gs.CurrentPlayerTurn(), gs)
}

// EvaluateFor scores gs from owner's point of view as the weighted sum of
// each heuristic's Difference
func (e *HeuristicEvaluator) EvaluateFor(owner tile.Owner, gs *game.GameState) float64 {
	scores := make([]float64, len(e.heuristics))
	for i, h := range e.heuristics {
		scores[i] = h.Difference(owner, gs)
	}
	return floats.Dot(e.weights, scores)
}

// CheapEvaluate scores gs for the player to move with approximate heuristics
func (e *HeuristicEvaluator) CheapEvaluate(gs *game.GameState) float64 {
	owner := gs.CurrentPlayerTurn()
	scores := make([]float64, len(e.heuristics))
	for i, h := range e.heuristics {
		scores[i] = h.ApproximateDifference(owner, gs)
	}
	return floats.Dot(e.weights, scores)
}
