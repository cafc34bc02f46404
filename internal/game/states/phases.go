package states

import "fmt"

// MatchPhase represents the lifecycle phase of a match
type MatchPhase int

const (
	// PhaseInitializing - Board setup, players seated
	PhaseInitializing MatchPhase = iota

	// PhaseRunning - Players are taking turns
	PhaseRunning

	// PhaseEnded - A result was reached (win or tie)
	PhaseEnded

	// PhaseAborted - The match stopped without a result
	PhaseAborted
)

// AllPhases lists every phase in declaration order
var AllPhases = []MatchPhase{PhaseInitializing, PhaseRunning, PhaseEnded, PhaseAborted}

// String returns the string representation of a MatchPhase
func (p MatchPhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	case PhaseAborted:
		return "Aborted"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if no more moves will be played in this phase
func (p MatchPhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseAborted
}

// CanReceiveMoves returns true if players may move in this phase
func (p MatchPhase) CanReceiveMoves() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p MatchPhase) AllowedTransitions() []MatchPhase {
	switch p {
	case PhaseInitializing:
		return []MatchPhase{PhaseRunning, PhaseAborted}
	case PhaseRunning:
		return []MatchPhase{PhaseEnded, PhaseAborted}
	case PhaseEnded, PhaseAborted:
		return []MatchPhase{PhaseInitializing}
	default:
		return []MatchPhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p MatchPhase) CanTransitionTo(target MatchPhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a MatchPhase
func ParsePhase(s string) (MatchPhase, error) {
	for _, p := range AllPhases {
		if p.String() == s {
			return p, nil
		}
	}
	return PhaseInitializing, fmt.Errorf("unknown match phase %q", s)
}
