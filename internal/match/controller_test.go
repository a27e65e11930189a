package match

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitalgames/cosmic-standoff/internal/game"
	"github.com/orbitalgames/cosmic-standoff/internal/game/events"
	"github.com/orbitalgames/cosmic-standoff/internal/score"
	"github.com/orbitalgames/cosmic-standoff/internal/testutil"
)

type bounds struct {
	min, max int
}

// scriptedInput replays queued answers and fails the match when a queue
// runs dry, which keeps broken controller loops from hanging a test.
type scriptedInput struct {
	bounds []bounds
	moves  []game.Move
	again  []bool
	shots  int
}

func (in *scriptedInput) BoardBounds() (int, int, error) {
	if len(in.bounds) == 0 {
		return 0, 0, fmt.Errorf("no scripted bounds left")
	}
	b := in.bounds[0]
	in.bounds = in.bounds[1:]
	return b.min, b.max, nil
}

func (in *scriptedInput) CaptainMove() (game.Move, error) {
	if len(in.moves) == 0 {
		return game.MoveStill, fmt.Errorf("no scripted moves left")
	}
	m := in.moves[0]
	in.moves = in.moves[1:]
	return m, nil
}

func (in *scriptedInput) AwaitShot() error {
	in.shots++
	return nil
}

func (in *scriptedInput) PlayAgain() (bool, error) {
	if len(in.again) == 0 {
		return false, fmt.Errorf("no scripted rematch answers left")
	}
	a := in.again[0]
	in.again = in.again[1:]
	return a, nil
}

// recordingRenderer counts calls so tests can assert presentation flow
// without caring about wording.
type recordingRenderer struct {
	calls        map[string]int
	invalidBoard []error
	lastScore    map[string]int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{calls: make(map[string]int)}
}

func (r *recordingRenderer) Intro()                  { r.calls["Intro"]++ }
func (r *recordingRenderer) Score(t map[string]int) { r.calls["Score"]++; r.lastScore = t }
func (r *recordingRenderer) InvalidBoard(err error) {
	r.calls["InvalidBoard"]++
	r.invalidBoard = append(r.invalidBoard, err)
}
func (r *recordingRenderer) Starter(game.Agent)            { r.calls["Starter"]++ }
func (r *recordingRenderer) InitialPositions(*game.MatchState) { r.calls["InitialPositions"]++ }
func (r *recordingRenderer) AlienThinking()                { r.calls["AlienThinking"]++ }
func (r *recordingRenderer) MoveApplied(game.Agent, game.Move, *game.MatchState) {
	r.calls["MoveApplied"]++
}
func (r *recordingRenderer) CaptainWon(game.MatchResult)   { r.calls["CaptainWon"]++ }
func (r *recordingRenderer) AlienWon(game.MatchResult)     { r.calls["AlienWon"]++ }
func (r *recordingRenderer) Farewell(map[string]int)       { r.calls["Farewell"]++ }

// pinEngine makes the controller place agents at fixed positions with a
// fixed starter instead of sampling.
func pinEngine(c *Controller, captain, alien game.Position, starter game.Agent) {
	c.newEngine = func(cfg game.BoardConfig, _ game.Rand) (*game.Engine, error) {
		return game.NewEngineAt(cfg, captain, alien, starter), nil
	}
}

func newTestController(t *testing.T, in *scriptedInput, r *recordingRenderer, bus *events.EventBus) (*Controller, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "score.json")
	store := score.NewStore(path, testutil.NopLogger())
	c := NewController(in, r, store, bus, &testutil.ScriptedRand{}, testutil.NopLogger())
	return c, path
}

func TestCaptainWinsImmediately(t *testing.T) {
	in := &scriptedInput{
		bounds: []bounds{{-5, 5}},
		moves:  []game.Move{game.MoveRight},
		again:  []bool{false},
	}
	r := newRecordingRenderer()
	bus := events.NewEventBus()

	var types []string
	for _, et := range []string{events.TypeMatchStarted, events.TypeMoveApplied, events.TypeMatchEnded, events.TypeScoreSaved} {
		et := et
		bus.SubscribeFunc(et, func(e events.Event) { types = append(types, e.Type()) })
	}

	c, path := newTestController(t, in, r, bus)
	// Captain one step from closing the x axis and moving first.
	pinEngine(c, game.Position{X: 0, Y: 0}, game.Position{X: 1, Y: 5}, game.CaptainAgent)

	require.NoError(t, c.Run(context.Background()))

	totals := c.Totals()
	assert.Equal(t, 1, totals["Captain"])
	assert.Equal(t, 0, totals["Alien"])
	assert.Equal(t, 1, in.shots, "winning as Captain requires the shot prompt")

	assert.Equal(t, 1, r.calls["Intro"])
	assert.Equal(t, 1, r.calls["CaptainWon"])
	assert.Zero(t, r.calls["AlienWon"])
	assert.Equal(t, 1, r.calls["MoveApplied"])
	assert.Equal(t, 1, r.calls["Farewell"])

	assert.Equal(t, []string{
		events.TypeMatchStarted,
		events.TypeMoveApplied,
		events.TypeMatchEnded,
		events.TypeScoreSaved,
	}, types)

	// The win must already be on disk.
	persisted, err := score.NewStore(path, testutil.NopLogger()).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, persisted["Captain"])
}

func TestAlienWinsImmediately(t *testing.T) {
	in := &scriptedInput{
		bounds: []bounds{{-5, 5}},
		again:  []bool{false},
	}
	r := newRecordingRenderer()

	c, _ := newTestController(t, in, r, nil)
	// Alien one step above the Captain on the y axis and moving first: the
	// pursue behavior steps down and closes it without any Captain input.
	pinEngine(c, game.Position{X: 0, Y: 0}, game.Position{X: 2, Y: 1}, game.AlienAgent)

	require.NoError(t, c.Run(context.Background()))

	totals := c.Totals()
	assert.Equal(t, 1, totals["Alien"])
	assert.Equal(t, 0, totals["Captain"])
	assert.Zero(t, in.shots)
	assert.Equal(t, 1, r.calls["AlienThinking"])
	assert.Equal(t, 1, r.calls["AlienWon"])
	assert.Zero(t, r.calls["CaptainWon"])
}

func TestBoardBoundsRepromptedUntilPlayable(t *testing.T) {
	in := &scriptedInput{
		bounds: []bounds{{0, 3}, {5, -5}, {-5, 5}},
		moves:  []game.Move{game.MoveRight},
		again:  []bool{false},
	}
	r := newRecordingRenderer()

	c, _ := newTestController(t, in, r, nil)
	pinEngine(c, game.Position{X: 0, Y: 0}, game.Position{X: 1, Y: 5}, game.CaptainAgent)

	require.NoError(t, c.Run(context.Background()))

	require.Len(t, r.invalidBoard, 2)
	assert.ErrorIs(t, r.invalidBoard[0], game.ErrInvalidBounds)
	assert.ErrorIs(t, r.invalidBoard[1], game.ErrInvalidBounds)
}

func TestRematchPlaysASecondMatch(t *testing.T) {
	in := &scriptedInput{
		bounds: []bounds{{-5, 5}, {-5, 5}},
		moves:  []game.Move{game.MoveRight, game.MoveRight},
		again:  []bool{true, false},
	}
	r := newRecordingRenderer()

	c, _ := newTestController(t, in, r, nil)
	pinEngine(c, game.Position{X: 0, Y: 0}, game.Position{X: 1, Y: 5}, game.CaptainAgent)

	require.NoError(t, c.Run(context.Background()))

	totals := c.Totals()
	assert.Equal(t, 2, totals["Captain"])
	assert.Equal(t, 2, r.calls["CaptainWon"])
	assert.Equal(t, 1, r.calls["Farewell"])
}

func TestCorruptScoreFileResetsTotals(t *testing.T) {
	in := &scriptedInput{
		bounds: []bounds{{-5, 5}},
		moves:  []game.Move{game.MoveRight},
		again:  []bool{false},
	}
	r := newRecordingRenderer()

	path := filepath.Join(t.TempDir(), "score.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	store := score.NewStore(path, testutil.NopLogger())
	c := NewController(in, r, store, nil, &testutil.ScriptedRand{}, testutil.NopLogger())
	pinEngine(c, game.Position{X: 0, Y: 0}, game.Position{X: 1, Y: 5}, game.CaptainAgent)

	require.NoError(t, c.Run(context.Background()))

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, persisted["Captain"])
	assert.Equal(t, 0, persisted["Alien"])
}

func TestExistingScoreCarriesForward(t *testing.T) {
	in := &scriptedInput{
		bounds: []bounds{{-5, 5}},
		moves:  []game.Move{game.MoveRight},
		again:  []bool{false},
	}
	r := newRecordingRenderer()

	path := filepath.Join(t.TempDir(), "score.json")
	store := score.NewStore(path, testutil.NopLogger())
	require.NoError(t, store.Save(map[string]int{"Captain": 2, "Alien": 1}))

	c := NewController(in, r, store, nil, &testutil.ScriptedRand{}, testutil.NopLogger())
	pinEngine(c, game.Position{X: 0, Y: 0}, game.Position{X: 1, Y: 5}, game.CaptainAgent)

	require.NoError(t, c.Run(context.Background()))

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, persisted["Captain"])
	assert.Equal(t, 1, persisted["Alien"])
}

func TestCancelledContextStopsSession(t *testing.T) {
	in := &scriptedInput{}
	c, _ := newTestController(t, in, newRecordingRenderer(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFlushScorePersistsCurrentTotals(t *testing.T) {
	in := &scriptedInput{}
	c, path := newTestController(t, in, newRecordingRenderer(), nil)

	c.mu.Lock()
	c.totals = map[string]int{"Captain": 4, "Alien": 2}
	c.mu.Unlock()

	require.NoError(t, c.FlushScore())

	persisted, err := score.NewStore(path, testutil.NopLogger()).Load()
	require.NoError(t, err)
	assert.Equal(t, 4, persisted["Captain"])
	assert.Equal(t, 2, persisted["Alien"])
}
