package states

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/events"
)

// State represents a match phase with lifecycle callbacks
type State interface {
	// Phase returns the MatchPhase this state represents
	Phase() MatchPhase

	// Enter is called when transitioning into this state
	Enter(ctx *MatchContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *MatchContext) error

	// Validate checks if the state can be entered given the context
	Validate(ctx *MatchContext) error
}

// phaseCount sizes the per-phase state table
const phaseCount = int(PhaseAborted) + 1

// Transition records one phase change of a match
type Transition struct {
	From      MatchPhase
	To        MatchPhase
	Timestamp time.Time
	Reason    string
	// Turn is the number of turns played when the phase changed
	Turn int
}

// StateMachine drives a match through its lifecycle. Transitions are made by
// the goroutine playing the match; CurrentPhase may be read from any
// goroutine without blocking. Transition events are published after the
// machine is unlocked, so subscribers may query it.
type StateMachine struct {
	mu        sync.Mutex
	phase     atomic.Int32
	states    [phaseCount]State
	context   *MatchContext
	history   []Transition
	publisher events.Publisher
}

// NewStateMachine creates a machine in PhaseInitializing. publisher may be nil.
func NewStateMachine(ctx *MatchContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		context:   ctx,
		history:   make([]Transition, 0, 4),
		publisher: publisher,
	}
	sm.phase.Store(int32(PhaseInitializing))

	sm.RegisterState(NewInitializingState())
	sm.RegisterState(NewRunningState())
	sm.RegisterState(NewEndedState())
	sm.RegisterState(NewAbortedState())

	return sm
}

// RegisterState replaces the implementation of state.Phase()
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

// CurrentPhase returns the current match phase
func (sm *StateMachine) CurrentPhase() MatchPhase {
	return MatchPhase(sm.phase.Load())
}

// TransitionTo moves the match to target. The target state validates the
// context first; if entering it fails the machine stays where it was.
func (sm *StateMachine) TransitionTo(target MatchPhase, reason string) error {
	sm.mu.Lock()
	t, err := sm.transitionLocked(target, reason)
	sm.mu.Unlock()
	if err != nil {
		return err
	}
	sm.announce(t)
	return nil
}

func (sm *StateMachine) transitionLocked(target MatchPhase, reason string) (Transition, error) {
	from := sm.CurrentPhase()
	if !from.CanTransitionTo(target) {
		return Transition{}, fmt.Errorf("invalid transition from %s to %s", from, target)
	}
	next := sm.states[target]
	if next == nil {
		return Transition{}, fmt.Errorf("no state implementation for phase %s", target)
	}
	if err := next.Validate(sm.context); err != nil {
		return Transition{}, fmt.Errorf("target state validation failed: %w", err)
	}

	if current := sm.states[from]; current != nil {
		if err := current.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Stringer("from_phase", from).
				Stringer("to_phase", target).
				Msg("Error exiting state")
		}
	}
	if err := next.Enter(sm.context); err != nil {
		return Transition{}, fmt.Errorf("failed to enter state %s: %w", target, err)
	}
	sm.phase.Store(int32(target))

	t := Transition{
		From:      from,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
		Turn:      sm.context.Turns,
	}
	sm.history = append(sm.history, t)
	return t, nil
}

func (sm *StateMachine) announce(t Transition) {
	sm.context.Logger.Debug().
		Stringer("from_phase", t.From).
		Stringer("to_phase", t.To).
		Str("reason", t.Reason).
		Int("turn", t.Turn).
		Msg("State transition completed")

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(sm.context.GameID, t.From.String(), t.To.String(), t.Reason))
	}
}

// History returns a copy of the transitions since creation or the last Reset
func (sm *StateMachine) History() []Transition {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return append([]Transition(nil), sm.history...)
}

// Context returns the match context. Only the goroutine playing the match
// may modify it.
func (sm *StateMachine) Context() *MatchContext {
	return sm.context
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(target MatchPhase) bool {
	return sm.CurrentPhase().CanTransitionTo(target)
}

// Reset returns a finished match to PhaseInitializing with a fresh context
// and an empty history
func (sm *StateMachine) Reset() error {
	sm.mu.Lock()
	t, err := sm.transitionLocked(PhaseInitializing, "reset requested")
	if err == nil {
		sm.history = sm.history[:0]
	}
	sm.mu.Unlock()
	if err != nil {
		return err
	}
	sm.announce(t)
	return nil
}
