package states

import (
	"fmt"
	"time"

	"github.com/orbitalgames/cosmic-standoff/internal/game"
)

// AwaitingStartState covers board configuration and agent placement.
type AwaitingStartState struct{}

func NewAwaitingStartState() State {
	return &AwaitingStartState{}
}

func (s *AwaitingStartState) Phase() MatchPhase {
	return PhaseAwaitingStart
}

func (s *AwaitingStartState) Enter(ctx *MatchContext) error {
	// Re-entered on replay: clear the previous match's outcome.
	ctx.Board = game.BoardConfig{}
	ctx.StartTime = time.Time{}
	ctx.WinnerDeclared = false
	ctx.Logger.Debug().Msg("Awaiting match setup")
	return nil
}

func (s *AwaitingStartState) Exit(ctx *MatchContext) error {
	ctx.Logger.Debug().Msg("Match setup complete")
	return nil
}

func (s *AwaitingStartState) Validate(ctx *MatchContext) error {
	return nil
}

// InProgressState represents active turn exchange.
type InProgressState struct{}

func NewInProgressState() State {
	return &InProgressState{}
}

func (s *InProgressState) Phase() MatchPhase {
	return PhaseInProgress
}

func (s *InProgressState) Enter(ctx *MatchContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Int("board_size", ctx.Board.BoardSize).
		Int("start_distance", ctx.Board.StartDistance).
		Str("starter", ctx.Starter.String()).
		Msg("Match started")
	return nil
}

func (s *InProgressState) Exit(ctx *MatchContext) error {
	ctx.Logger.Debug().Dur("elapsed", ctx.Elapsed()).Msg("Leaving turn loop")
	return nil
}

func (s *InProgressState) Validate(ctx *MatchContext) error {
	if ctx.Board.BoardSize < game.MinBoardSize {
		return fmt.Errorf("cannot start match: board size %d is below the minimum of %d",
			ctx.Board.BoardSize, game.MinBoardSize)
	}
	return nil
}

// OverState is the terminal phase of a match instance.
type OverState struct{}

func NewOverState() State {
	return &OverState{}
}

func (s *OverState) Phase() MatchPhase {
	return PhaseOver
}

func (s *OverState) Enter(ctx *MatchContext) error {
	ctx.Logger.Info().
		Str("winner", ctx.Winner.String()).
		Dur("match_duration", ctx.Elapsed()).
		Msg("Match over")
	return nil
}

func (s *OverState) Exit(ctx *MatchContext) error {
	ctx.Logger.Debug().Msg("Resetting for a new match")
	return nil
}

func (s *OverState) Validate(ctx *MatchContext) error {
	if !ctx.WinnerDeclared {
		return fmt.Errorf("over state requires a declared winner")
	}
	return nil
}
