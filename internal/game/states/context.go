package states

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/orbitalgames/cosmic-standoff/internal/game"
)

// MatchContext carries the per-match information the phase states need to
// validate transitions and log them.
type MatchContext struct {
	// MatchID uniquely identifies this match instance
	MatchID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Board is the configuration the match plays on, set before the
	// transition into InProgress
	Board game.BoardConfig

	// Starter takes the first half-turn of every cycle
	Starter game.Agent

	// StartTime is when the match entered InProgress
	StartTime time.Time

	// Winner of the match, meaningful once WinnerDeclared is set
	Winner         game.Agent
	WinnerDeclared bool
}

// NewMatchContext creates a new match context
func NewMatchContext(matchID string, logger zerolog.Logger) *MatchContext {
	return &MatchContext{
		MatchID: matchID,
		Logger:  logger.With().Str("match_id", matchID).Logger(),
	}
}

// Elapsed returns the time since the match entered InProgress.
func (mc *MatchContext) Elapsed() time.Duration {
	if mc.StartTime.IsZero() {
		return 0
	}
	return time.Since(mc.StartTime)
}

// DeclareWinner records the match outcome for the Over phase.
func (mc *MatchContext) DeclareWinner(winner game.Agent) {
	mc.Winner = winner
	mc.WinnerDeclared = true
}
