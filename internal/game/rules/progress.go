package rules

import "github.com/mitchelldurbincs/DukeEngine/internal/game/core"

// DefaultTieThreshold is the number of consecutive moves without a capture
// or placement that ends the game in a tie
const DefaultTieThreshold = 10

// ProgressCounter counts moves since the last capture or placement. It keeps
// one frame per progress event so every move can be undone.
type ProgressCounter struct {
	frames    []int
	threshold int
}

func NewProgressCounter(threshold int) *ProgressCounter {
	core.Assertf(threshold > 0, "tie threshold must be positive, got %d", threshold)
	return &ProgressCounter{frames: []int{0}, threshold: threshold}
}

// Push opens a new frame after a capture or placement
func (p *ProgressCounter) Push() {
	p.frames = append(p.frames, 0)
}

// Increment records a move that made no progress
func (p *ProgressCounter) Increment() {
	p.frames[len(p.frames)-1]++
}

// Undo reverses the last recorded move. pushed tells whether that move opened a frame.
func (p *ProgressCounter) Undo(pushed bool) {
	if pushed {
		core.Assertf(len(p.frames) > 1, "no progress frame to pop")
		p.frames = p.frames[:len(p.frames)-1]
		return
	}
	top := len(p.frames) - 1
	core.Assertf(p.frames[top] > 0, "progress counter underflow")
	p.frames[top]--
}

// Current is the number of moves since the last capture or placement
func (p *ProgressCounter) Current() int { return p.frames[len(p.frames)-1] }

func (p *ProgressCounter) Threshold() int { return p.threshold }

func (p *ProgressCounter) IsTie() bool {
	return p.Current() >= p.threshold
}

func (p *ProgressCounter) Clone() *ProgressCounter {
	return &ProgressCounter{frames: append([]int(nil), p.frames...), threshold: p.threshold}
}

func (p *ProgressCounter) Equal(other *ProgressCounter) bool {
	if p.threshold != other.threshold || len(p.frames) != len(other.frames) {
		return false
	}
	for i := range p.frames {
		if p.frames[i] != other.frames[i] {
			return false
		}
	}
	return true
}
