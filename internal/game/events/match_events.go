package events

import (
	"time"

	"github.com/orbitalgames/cosmic-standoff/internal/game"
)

// Event type constants
const (
	TypeMatchStarted    = "match.started"
	TypeMoveApplied     = "move.applied"
	TypeMatchEnded      = "match.ended"
	TypeScoreSaved      = "score.saved"
	TypeStateTransition = "state.transition"
)

// MatchStartedEvent is published when agents are placed and a starter has
// been chosen.
type MatchStartedEvent struct {
	BaseEvent
	MinCoord      int
	MaxCoord      int
	BoardSize     int
	StartDistance int
	Starter       game.Agent
	Captain       game.Position
	Alien         game.Position
}

// NewMatchStartedEvent creates a new MatchStartedEvent
func NewMatchStartedEvent(matchID string, cfg game.BoardConfig, starter game.Agent, captain, alien game.Position) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMatchStarted,
			Time:      time.Now(),
			Match:     matchID,
		},
		MinCoord:      cfg.MinCoord,
		MaxCoord:      cfg.MaxCoord,
		BoardSize:     cfg.BoardSize,
		StartDistance: cfg.StartDistance,
		Starter:       starter,
		Captain:       captain,
		Alien:         alien,
	}
}

// MoveAppliedEvent is published after every half-turn, carrying the board
// snapshot the move produced.
type MoveAppliedEvent struct {
	BaseEvent
	Agent    game.Agent
	Move     game.Move
	Position game.Position
	Dist     game.Distance
}

// NewMoveAppliedEvent creates a new MoveAppliedEvent
func NewMoveAppliedEvent(matchID string, agent game.Agent, move game.Move, pos game.Position, dist game.Distance) *MoveAppliedEvent {
	return &MoveAppliedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveApplied,
			Time:      time.Now(),
			Match:     matchID,
		},
		Agent:    agent,
		Move:     move,
		Position: pos,
		Dist:     dist,
	}
}

// MatchEndedEvent is published when either axis distance reaches zero.
type MatchEndedEvent struct {
	BaseEvent
	Winner   game.Agent
	Axis     game.Axis
	Cycles   int
	Duration time.Duration
}

// NewMatchEndedEvent creates a new MatchEndedEvent
func NewMatchEndedEvent(matchID string, result game.MatchResult, duration time.Duration) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMatchEnded,
			Time:      time.Now(),
			Match:     matchID,
		},
		Winner:   result.Winner,
		Axis:     result.Axis,
		Cycles:   result.Cycles,
		Duration: duration,
	}
}

// ScoreSavedEvent is published after the win totals are flushed to disk.
type ScoreSavedEvent struct {
	BaseEvent
	Path   string
	Totals map[string]int
}

// NewScoreSavedEvent creates a new ScoreSavedEvent
func NewScoreSavedEvent(matchID, path string, totals map[string]int) *ScoreSavedEvent {
	copied := make(map[string]int, len(totals))
	for k, v := range totals {
		copied[k] = v
	}
	return &ScoreSavedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeScoreSaved,
			Time:      time.Now(),
			Match:     matchID,
		},
		Path:   path,
		Totals: copied,
	}
}

// StateTransitionEvent is published when the match state machine moves
// between phases.
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(matchID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: BaseEvent{
			EventType: TypeStateTransition,
			Time:      time.Now(),
			Match:     matchID,
		},
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
