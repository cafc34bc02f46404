package ai

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Tracer collects timings of labelled sections. Span starts a section and
// returns the function that ends it.
type Tracer interface {
	Span(label string) func()
	Report()
}

// NopTracer records nothing
type NopTracer struct{}

func (NopTracer) Span(string) func() { return func() {} }
func (NopTracer) Report()            {}

// TimingTracer accumulates wall time per label. It is safe for concurrent use.
type TimingTracer struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	counts map[string]int
	logger zerolog.Logger
}

// NewTimingTracer creates a tracer that reports through logger
func NewTimingTracer(logger zerolog.Logger) *TimingTracer {
	return &TimingTracer{
		totals: make(map[string]time.Duration),
		counts: make(map[string]int),
		logger: logger.With().Str("component", "Tracer").Logger(),
	}
}

// Span starts timing label. Calling the returned func stops it.
func (t *TimingTracer) Span(label string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		t.mu.Lock()
		t.totals[label] += elapsed
		t.counts[label]++
		t.mu.Unlock()
	}
}

// Total returns the accumulated time and call count of label
func (t *TimingTracer) Total(label string) (time.Duration, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totals[label], t.counts[label]
}

// Report logs one line per label in alphabetical order
func (t *TimingTracer) Report() {
	t.mu.Lock()
	defer t.mu.Unlock()

	labels := make([]string, 0, len(t.totals))
	for label := range t.totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		count := t.counts[label]
		t.logger.Info().
			Str("label", label).
			Int("calls", count).
			Dur("total", t.totals[label]).
			Dur("mean", t.totals[label]/time.Duration(count)).
			Msg("Timing")
	}
}
