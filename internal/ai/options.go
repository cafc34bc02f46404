package ai

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultMaxDepth is the search depth, in plies, when none is configured
const DefaultMaxDepth = 2

type options struct {
	name      string
	maxDepth  int
	evaluator *HeuristicEvaluator
	tracer    Tracer
	logger    zerolog.Logger
}

// Option configures a computer player
type Option func(*options)

// WithName overrides the player's display name
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithMaxDepth sets how many plies the search looks ahead, the root move included
func WithMaxDepth(depth int) Option {
	return func(o *options) { o.maxDepth = depth }
}

// WithEvaluator sets how leaves and candidate positions are scored
func WithEvaluator(e *HeuristicEvaluator) Option {
	return func(o *options) { o.evaluator = e }
}

// WithTracer collects search timings
func WithTracer(t Tracer) Option {
	return func(o *options) { o.tracer = t }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(name string, opts []Option) options {
	o := options{
		name:      name,
		maxDepth:  DefaultMaxDepth,
		evaluator: DefaultEvaluator(),
		tracer:    NopTracer{},
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxDepth < 1 {
		o.maxDepth = 1
	}
	return o
}
