package game

import "fmt"

// MaxPlacementAttempts bounds the rejection-sampling loop that places the
// Alien at the required starting separation. On any playable board valid
// placements are plentiful, so hitting the bound means the configuration
// is pathological rather than unlucky.
const MaxPlacementAttempts = 10000

// Axis names the coordinate axis a match was decided on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "X"
	}
	return "Y"
}

// MatchResult is the terminal value of a finished match.
type MatchResult struct {
	Winner  Agent
	Axis    Axis
	Captain Position
	Alien   Position
	Cycles  int
}

// Engine owns the match state and enforces the turn rules: moves are only
// applied while both distances are positive, the distance is recomputed
// after every application, and the match ends the moment either axis
// closes.
type Engine struct {
	state     *MatchState
	rng       Rand
	over      bool
	halfMoves int
}

// NewEngine sets up a fresh match: the Captain is placed uniformly, the
// Alien is re-sampled until both axis distances reach the starting
// separation, and the starter is chosen by coin flip. A nil rng falls back
// to a time-seeded source.
func NewEngine(cfg BoardConfig, rng Rand) (*Engine, error) {
	rng = defaultRand(rng)

	s := &MatchState{
		Config:      cfg,
		Captain:     RandomPosition(cfg, rng),
		CaptainMove: MoveStill,
		AlienMove:   MoveStill,
	}

	placed := false
	for i := 0; i < MaxPlacementAttempts; i++ {
		s.Alien = RandomPosition(cfg, rng)
		s.Dist = DistanceBetween(s.Captain, s.Alien)
		if s.Dist.X >= cfg.StartDistance && s.Dist.Y >= cfg.StartDistance {
			placed = true
			break
		}
	}
	if !placed {
		return nil, fmt.Errorf("%w after %d attempts", ErrPlacementFailed, MaxPlacementAttempts)
	}

	s.Starter = Agents[rng.Intn(len(Agents))]

	return &Engine{state: s, rng: rng}, nil
}

// NewEngineAt builds an engine over explicit positions and starter. It
// skips the placement separation check, which makes it useful for demos
// and for driving specific endgames in tests.
func NewEngineAt(cfg BoardConfig, captain, alien Position, starter Agent) *Engine {
	s := &MatchState{
		Config:      cfg,
		Captain:     captain,
		Alien:       alien,
		Dist:        DistanceBetween(captain, alien),
		Starter:     starter,
		CaptainMove: MoveStill,
		AlienMove:   MoveStill,
	}
	return &Engine{state: s, rng: defaultRand(nil), over: s.Dist.Closed()}
}

// State exposes the match state for policies and renderers. Callers must
// not mutate it.
func (e *Engine) State() *MatchState { return e.state }

// TurnPossible reports whether another half-turn may be played. It is the
// guard against re-processing a finished match: a cycle entered with a
// distance already at zero plays no moves.
func (e *Engine) TurnPossible() bool {
	return !e.over && e.state.Dist.X > 0 && e.state.Dist.Y > 0
}

// ApplyMove plays one half-turn for the given agent. The distance is
// recomputed as part of the application, and the match flips to over as
// soon as either axis reaches zero.
func (e *Engine) ApplyMove(a Agent, m Move) error {
	if e.over {
		return ErrMatchOver
	}
	e.state.applyMove(a, m)
	e.halfMoves++
	if e.state.Dist.Closed() {
		e.over = true
	}
	return nil
}

// IsOver reports whether the match has ended.
func (e *Engine) IsOver() bool { return e.over }

// Winner returns the winning agent once the match is over. The winner is
// the agent that moved most recently when a distance first reached zero.
func (e *Engine) Winner() (Agent, bool) {
	if !e.over {
		return CaptainAgent, false
	}
	return e.state.LastMover, true
}

// Cycles returns the number of completed full cycles (both half-turns).
func (e *Engine) Cycles() int { return (e.halfMoves + 1) / 2 }

// Result returns the terminal match value. It is only meaningful once the
// match is over.
func (e *Engine) Result() (MatchResult, bool) {
	winner, ok := e.Winner()
	if !ok {
		return MatchResult{}, false
	}
	axis := AxisY
	if e.state.Dist.X == 0 {
		axis = AxisX
	}
	return MatchResult{
		Winner:  winner,
		Axis:    axis,
		Captain: e.state.Captain,
		Alien:   e.state.Alien,
		Cycles:  e.Cycles(),
	}, true
}
