package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/orbitalgames/cosmic-standoff/internal/game/events"
)

// State represents a match phase with lifecycle callbacks
type State interface {
	// Phase returns the MatchPhase this state represents
	Phase() MatchPhase

	// Enter is called when transitioning into this state
	Enter(ctx *MatchContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *MatchContext) error

	// Validate checks if the state is valid given the context
	Validate(ctx *MatchContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      MatchPhase
	To        MatchPhase
	Timestamp time.Time
	Reason    string
}

// Machine manages match phase transitions and their history
type Machine struct {
	mu           sync.RWMutex
	currentPhase MatchPhase
	states       map[MatchPhase]State
	context      *MatchContext
	history      []Transition
	eventBus     *events.EventBus
}

// NewMachine creates a new phase machine starting in AwaitingStart
func NewMachine(ctx *MatchContext, eventBus *events.EventBus) *Machine {
	m := &Machine{
		currentPhase: PhaseAwaitingStart,
		states:       make(map[MatchPhase]State),
		context:      ctx,
		history:      make([]Transition, 0, 8),
		eventBus:     eventBus,
	}

	m.RegisterState(NewAwaitingStartState())
	m.RegisterState(NewInProgressState())
	m.RegisterState(NewOverState())

	return m
}

// RegisterState registers a state implementation
func (m *Machine) RegisterState(state State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[state.Phase()] = state
}

// CurrentPhase returns the current match phase
func (m *Machine) CurrentPhase() MatchPhase {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.currentPhase
}

// TransitionTo attempts to transition to the specified phase
func (m *Machine) TransitionTo(targetPhase MatchPhase, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.currentPhase.CanTransitionTo(targetPhase) {
		return fmt.Errorf("invalid transition from %s to %s", m.currentPhase, targetPhase)
	}

	currentState, hasCurrentState := m.states[m.currentPhase]
	targetState, hasTargetState := m.states[targetPhase]

	if !hasTargetState {
		return fmt.Errorf("no state implementation for phase %s", targetPhase)
	}

	if err := targetState.Validate(m.context); err != nil {
		return fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState {
		if err := currentState.Exit(m.context); err != nil {
			m.context.Logger.Error().
				Err(err).
				Str("from_phase", m.currentPhase.String()).
				Str("to_phase", targetPhase.String()).
				Msg("Error exiting state")
			// Continue with transition despite exit error
		}
	}

	m.history = append(m.history, Transition{
		From:      m.currentPhase,
		To:        targetPhase,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	previousPhase := m.currentPhase
	m.currentPhase = targetPhase

	if err := targetState.Enter(m.context); err != nil {
		// Rollback on enter failure
		m.currentPhase = previousPhase
		return fmt.Errorf("failed to enter state %s: %w", targetPhase, err)
	}

	if m.eventBus != nil {
		m.eventBus.Publish(events.NewStateTransitionEvent(
			m.context.MatchID,
			previousPhase.String(),
			targetPhase.String(),
			reason,
		))
	}

	m.context.Logger.Debug().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

// History returns a copy of the transition history
func (m *Machine) History() []Transition {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]Transition, len(m.history))
	copy(history, m.history)
	return history
}

// Context returns the match context
func (m *Machine) Context() *MatchContext {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.context
}
