package ai

import (
	"fmt"

	"github.com/mitchelldurbincs/DukeEngine/internal/config"
	"github.com/mitchelldurbincs/DukeEngine/internal/game"
)

// NewPlayer builds the player of the given kind with the configured depth
// and weights. opts are applied after the configured settings.
func NewPlayer(kind string, cfg config.AIConfig, opts ...Option) (ArtificialPlayer, error) {
	base := []Option{
		WithMaxDepth(cfg.MaxDepth),
		WithEvaluator(EvaluatorFromConfig(cfg.Weights)),
	}
	opts = append(base, opts...)

	switch kind {
	case config.AIKindRandom:
		return NewRandomPlayer(opts...), nil
	case config.AIKindGreedy:
		return NewGreedyPlayer(opts...), nil
	case config.AIKindAlphaBeta:
		return NewAlphaBetaPlayer(opts...), nil
	default:
		return nil, fmt.Errorf("unknown AI kind %q", kind)
	}
}

// Factory builds fresh players for every match from cfg. The configured top
// player is named "A:<kind>" and the bottom one "B:<kind>" so results stay
// attributable when both use the same kind or sides are swapped.
func Factory(cfg config.AIConfig, opts ...Option) game.PlayerFactory {
	return func(int) (game.Player, game.Player, error) {
		top, err := NewPlayer(cfg.Top.Kind, cfg, withName(opts, "A:"+cfg.Top.Kind)...)
		if err != nil {
			return nil, nil, fmt.Errorf("top player: %w", err)
		}
		bottom, err := NewPlayer(cfg.Bottom.Kind, cfg, withName(opts, "B:"+cfg.Bottom.Kind)...)
		if err != nil {
			return nil, nil, fmt.Errorf("bottom player: %w", err)
		}
		return top, bottom, nil
	}
}

// withName copies opts so concurrent factory calls never share a backing array
func withName(opts []Option, name string) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, WithName(name))
}
