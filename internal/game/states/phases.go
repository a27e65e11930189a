package states

import "fmt"

// MatchPhase represents the current phase of a match
type MatchPhase int

const (
	// PhaseAwaitingStart - board configuration and agent placement pending
	PhaseAwaitingStart MatchPhase = iota

	// PhaseInProgress - agents are exchanging half-turns
	PhaseInProgress

	// PhaseOver - a distance reached zero; terminal for this match
	PhaseOver
)

// String returns the string representation of a MatchPhase
func (p MatchPhase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "AwaitingStart"
	case PhaseInProgress:
		return "InProgress"
	case PhaseOver:
		return "Over"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase ends the current match instance.
// A new match resets to AwaitingStart with fresh state.
func (p MatchPhase) IsTerminal() bool {
	return p == PhaseOver
}

// CanReceiveMoves returns true if half-turns may be played in this phase
func (p MatchPhase) CanReceiveMoves() bool {
	return p == PhaseInProgress
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p MatchPhase) AllowedTransitions() []MatchPhase {
	switch p {
	case PhaseAwaitingStart:
		return []MatchPhase{PhaseInProgress}
	case PhaseInProgress:
		return []MatchPhase{PhaseOver}
	case PhaseOver:
		return []MatchPhase{PhaseAwaitingStart}
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
func ParsePhase(s string) MatchPhase {
	switch s {
	case "InProgress":
		return PhaseInProgress
	case "Over":
		return PhaseOver
	default:
		return PhaseAwaitingStart
	}
}
