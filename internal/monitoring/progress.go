package monitoring

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
)

// ProgressMonitor follows a batch of matches through the event bus and
// periodically logs how far it got, together with the goroutine count
type ProgressMonitor struct {
	mu        sync.RWMutex
	started   int
	ended     int
	turns     int
	baseline  int
	peak      int
	startTime time.Time
	interval  time.Duration
	logger    zerolog.Logger
}

// NewProgressMonitor creates a monitor that logs every interval once started
func NewProgressMonitor(interval time.Duration, logger zerolog.Logger) *ProgressMonitor {
	baseline := runtime.NumGoroutine()
	return &ProgressMonitor{
		baseline:  baseline,
		peak:      baseline,
		startTime: time.Now(),
		interval:  interval,
		logger:    logger.With().Str("component", "ProgressMonitor").Logger(),
	}
}

func (pm *ProgressMonitor) ID() string { return "progress_monitor" }

func (pm *ProgressMonitor) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeMatchStarted, events.TypeMatchEnded, events.TypeTurnCompleted:
		return true
	default:
		return false
	}
}

// HandleEvent counts match starts, match ends and completed turns
func (pm *ProgressMonitor) HandleEvent(e events.Event) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	switch e.Type() {
	case events.TypeMatchStarted:
		pm.started++
	case events.TypeMatchEnded:
		pm.ended++
	case events.TypeTurnCompleted:
		pm.turns++
	}
}

// Start logs progress until ctx is done
func (pm *ProgressMonitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(pm.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pm.logProgress()
			case <-ctx.Done():
				return
			}
		}
	}()
	pm.logger.Debug().
		Int("baseline_goroutines", pm.baseline).
		Dur("interval", pm.interval).
		Msg("Started progress monitoring")
}

// Sample records the current goroutine count and returns a snapshot
func (pm *ProgressMonitor) Sample() Progress {
	current := runtime.NumGoroutine()

	pm.mu.Lock()
	defer pm.mu.Unlock()
	if current > pm.peak {
		pm.peak = current
	}
	return Progress{
		MatchesStarted: pm.started,
		MatchesEnded:   pm.ended,
		Turns:          pm.turns,
		Goroutines:     current,
		PeakGoroutines: pm.peak,
		Elapsed:        time.Since(pm.startTime),
	}
}

func (pm *ProgressMonitor) logProgress() {
	p := pm.Sample()
	pm.logger.Info().
		Int("matches_started", p.MatchesStarted).
		Int("matches_ended", p.MatchesEnded).
		Int("turns", p.Turns).
		Float64("turns_per_second", p.TurnsPerSecond()).
		Int("goroutines", p.Goroutines).
		Int("peak_goroutines", p.PeakGoroutines).
		Msg("Simulation progress")
}

// Progress is a point-in-time view of a running batch
type Progress struct {
	MatchesStarted int
	MatchesEnded   int
	Turns          int
	Goroutines     int
	PeakGoroutines int
	Elapsed        time.Duration
}

// InFlight is the number of matches started but not yet ended
func (p Progress) InFlight() int { return p.MatchesStarted - p.MatchesEnded }

// TurnsPerSecond is the average turn rate since the monitor was created
func (p Progress) TurnsPerSecond() float64 {
	if p.Elapsed <= 0 {
		return 0
	}
	return float64(p.Turns) / p.Elapsed.Seconds()
}
