package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitalgames/cosmic-standoff/internal/game"
	"github.com/orbitalgames/cosmic-standoff/internal/testutil"
)

func TestPhaseTransitionRules(t *testing.T) {
	tests := []struct {
		name    string
		from    MatchPhase
		to      MatchPhase
		allowed bool
	}{
		{"setup to turns", PhaseAwaitingStart, PhaseInProgress, true},
		{"turns to over", PhaseInProgress, PhaseOver, true},
		{"over to new match", PhaseOver, PhaseAwaitingStart, true},
		{"no skipping setup", PhaseAwaitingStart, PhaseOver, false},
		{"no rewinding turns", PhaseInProgress, PhaseAwaitingStart, false},
		{"no resuming over", PhaseOver, PhaseInProgress, false},
		{"no self transition", PhaseInProgress, PhaseInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "AwaitingStart", PhaseAwaitingStart.String())
	assert.Equal(t, "InProgress", PhaseInProgress.String())
	assert.Equal(t, "Over", PhaseOver.String())

	assert.Equal(t, PhaseInProgress, ParsePhase("InProgress"))
	assert.Equal(t, PhaseOver, ParsePhase("Over"))
	assert.Equal(t, PhaseAwaitingStart, ParsePhase("anything else"))
}

func TestPhasePredicates(t *testing.T) {
	assert.True(t, PhaseOver.IsTerminal())
	assert.False(t, PhaseInProgress.IsTerminal())

	assert.True(t, PhaseInProgress.CanReceiveMoves())
	assert.False(t, PhaseAwaitingStart.CanReceiveMoves())
	assert.False(t, PhaseOver.CanReceiveMoves())
}

func TestInProgressValidatesBoard(t *testing.T) {
	ctx := NewMatchContext("m1", testutil.NopLogger())
	state := NewInProgressState()

	err := state.Validate(ctx)
	require.Error(t, err, "an unset board must not start a match")

	cfg, err := game.NewBoardConfig(-5, 5)
	require.NoError(t, err)
	ctx.Board = cfg
	assert.NoError(t, state.Validate(ctx))
}

func TestOverValidatesWinner(t *testing.T) {
	ctx := NewMatchContext("m1", testutil.NopLogger())
	state := NewOverState()

	require.Error(t, state.Validate(ctx))

	ctx.DeclareWinner(game.AlienAgent)
	assert.NoError(t, state.Validate(ctx))
	assert.Equal(t, game.AlienAgent, ctx.Winner)
}
