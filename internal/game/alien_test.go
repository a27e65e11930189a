package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitalgames/cosmic-standoff/internal/testutil"
)

func newTestState(t *testing.T, captain, alien Position, captainMove Move) *MatchState {
	t.Helper()
	cfg, err := NewBoardConfig(-5, 5)
	require.NoError(t, err)
	return &MatchState{
		Config:      cfg,
		Captain:     captain,
		Alien:       alien,
		Dist:        DistanceBetween(captain, alien),
		Starter:     CaptainAgent,
		CaptainMove: captainMove,
		AlienMove:   MoveStill,
	}
}

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		name      string
		dist      Distance
		startDist int
		want      Tier
	}{
		{"x at one", Distance{1, 8}, 5, TierWinImminent},
		{"y at one", Distance{8, 1}, 5, TierWinImminent},
		{"both at one", Distance{1, 1}, 5, TierWinImminent},
		{"win beats lose", Distance{1, 2}, 5, TierWinImminent},
		{"x at two", Distance{2, 8}, 5, TierLoseImminent},
		{"y at two", Distance{8, 2}, 5, TierLoseImminent},
		{"x in flee band", Distance{3, 8}, 5, TierAggressiveFlee},
		{"y in flee band", Distance{8, 4}, 5, TierAggressiveFlee},
		{"band edge excluded", Distance{5, 8}, 5, TierDefault},
		{"far apart", Distance{8, 8}, 5, TierDefault},
		{"x closed", Distance{0, 8}, 5, TierDefault},
		{"spec scenario equal start", Distance{5, 5}, 5, TierDefault},
		{"wider band", Distance{5, 8}, 6, TierAggressiveFlee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTier(tt.dist, tt.startDist))
		})
	}
}

func TestClassifyTierExhaustive(t *testing.T) {
	// Exactly one tier fits any non-negative distance pair: the fixed
	// priority order below is the definition of the strategy tree.
	for startDist := 5; startDist <= 7; startDist++ {
		for x := 0; x <= 2*startDist; x++ {
			for y := 0; y <= 2*startDist; y++ {
				got := ClassifyTier(Distance{X: x, Y: y}, startDist)

				var want Tier
				switch {
				case x == 1 || y == 1:
					want = TierWinImminent
				case x == 2 || y == 2:
					want = TierLoseImminent
				case (x > 2 && x < startDist) || (y > 2 && y < startDist):
					want = TierAggressiveFlee
				default:
					want = TierDefault
				}
				assert.Equal(t, want, got, "dist (%d,%d) start %d", x, y, startDist)
			}
		}
	}
}

func TestDecideWinImminentPursuesDeterministically(t *testing.T) {
	tests := []struct {
		name    string
		captain Position
		alien   Position
		want    Move
	}{
		// Spec scenario: y distance 1 forces Down regardless of randomness.
		{"alien above", Position{0, 0}, Position{0, 1}, MoveDown},
		{"alien below", Position{0, 0}, Position{0, -1}, MoveUp},
		{"alien right at x one", Position{0, 0}, Position{1, 7}, MoveLeft},
		{"alien left at x one", Position{0, 0}, Position{-1, 7}, MoveRight},
		// Both axes at distance 1: the y axis takes precedence.
		{"both axes adjacent", Position{0, 0}, Position{1, 1}, MoveDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, tt.captain, tt.alien, MoveStill)
			// No queued values: the pursuit must not consult randomness.
			policy := NewAlienPolicy(&testutil.ScriptedRand{})
			assert.Equal(t, tt.want, policy.Decide(s))
		})
	}
}

func TestDecideLoseImminentBold(t *testing.T) {
	// x distance 2 puts the alien one captain move from losing. A draw at
	// or below the probability constant goes bold: counter, chase or random.
	s := newTestState(t, Position{0, 0}, Position{2, -4}, MoveRight)

	t.Run("counter", func(t *testing.T) {
		rng := &testutil.ScriptedRand{Floats: []float64{0.1}, Ints: []int{0}}
		assert.Equal(t, MoveLeft, NewAlienPolicy(rng).Decide(s))
	})

	t.Run("chase picks larger axis", func(t *testing.T) {
		rng := &testutil.ScriptedRand{Floats: []float64{0.1}, Ints: []int{1}}
		// y distance 4 > x distance 2, alien below the captain.
		assert.Equal(t, MoveUp, NewAlienPolicy(rng).Decide(s))
	})

	t.Run("random", func(t *testing.T) {
		rng := &testutil.ScriptedRand{Floats: []float64{0.1}, Ints: []int{2, 3}}
		assert.Equal(t, MoveRight, NewAlienPolicy(rng).Decide(s))
	})
}

func TestDecideLoseImminentAfraid(t *testing.T) {
	s := newTestState(t, Position{0, 0}, Position{2, -4}, MoveRight)

	t.Run("flee repeats captain move", func(t *testing.T) {
		rng := &testutil.ScriptedRand{Floats: []float64{0.9}, Ints: []int{0}}
		assert.Equal(t, MoveRight, NewAlienPolicy(rng).Decide(s))
	})

	t.Run("freeze", func(t *testing.T) {
		rng := &testutil.ScriptedRand{Floats: []float64{0.9}, Ints: []int{1}}
		assert.Equal(t, MoveStill, NewAlienPolicy(rng).Decide(s))
	})

	t.Run("flee falls back to random when captain held still", func(t *testing.T) {
		still := newTestState(t, Position{0, 0}, Position{2, -4}, MoveStill)
		rng := &testutil.ScriptedRand{Floats: []float64{0.9}, Ints: []int{0, 2}}
		assert.Equal(t, MoveLeft, NewAlienPolicy(rng).Decide(still))
	})
}

func TestDecideAggressiveFlee(t *testing.T) {
	// x distance 3 sits strictly between 2 and the starting distance 5.
	s := newTestState(t, Position{0, 0}, Position{3, -7}, MoveUp)

	t.Run("counter", func(t *testing.T) {
		rng := &testutil.ScriptedRand{Ints: []int{0}}
		assert.Equal(t, MoveDown, NewAlienPolicy(rng).Decide(s))
	})

	t.Run("chase", func(t *testing.T) {
		rng := &testutil.ScriptedRand{Ints: []int{1}}
		// y distance 7 dominates, alien below the captain.
		assert.Equal(t, MoveUp, NewAlienPolicy(rng).Decide(s))
	})

	t.Run("flee", func(t *testing.T) {
		rng := &testutil.ScriptedRand{Ints: []int{2}}
		assert.Equal(t, MoveUp, NewAlienPolicy(rng).Decide(s))
	})
}

func TestDecideChaseTieBreaksAxisRandomly(t *testing.T) {
	// Equal distances: the chase axis comes from a coin flip.
	s := newTestState(t, Position{0, 0}, Position{3, 3}, MoveStill)

	rng := &testutil.ScriptedRand{Ints: []int{1, 0}} // pick chase, then x axis
	assert.Equal(t, MoveLeft, NewAlienPolicy(rng).Decide(s))

	rng = &testutil.ScriptedRand{Ints: []int{1, 1}} // pick chase, then y axis
	assert.Equal(t, MoveDown, NewAlienPolicy(rng).Decide(s))
}

func TestDecideDefaultTierIsFullyRandom(t *testing.T) {
	// Spec scenario: captain (0,0), alien (5,5), start distance 5. Both
	// distances equal the starting distance, so the band is empty and the
	// alien roams.
	s := newTestState(t, Position{0, 0}, Position{5, 5}, MoveRight)

	for idx, want := range AllMoves {
		rng := &testutil.ScriptedRand{Ints: []int{idx}}
		assert.Equal(t, want, NewAlienPolicy(rng).Decide(s))
	}
}

func TestDecideNeverMutatesState(t *testing.T) {
	s := newTestState(t, Position{0, 0}, Position{3, -7}, MoveUp)
	before := *s

	policy := NewAlienPolicy(testutil.NewTestRNG(7))
	for i := 0; i < 100; i++ {
		policy.Decide(s)
	}
	assert.Equal(t, before, *s)
}
