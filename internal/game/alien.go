package game

// The alien's move selection is a tiered strategy tree: the current
// distances classify the situation into exactly one tier, and each tier
// draws a move from its own small repertoire. Tiering keeps the difficulty
// legible (a certain kill when adjacent, a coin flip between boldness and
// caution near danger, exploratory randomness otherwise) while the
// per-tier randomization keeps the alien unpredictable.

// Tier is the alien's classification of the current spatial situation.
// Classification is exhaustive and mutually exclusive.
type Tier int

const (
	// TierWinImminent: an axis distance is exactly 1, one step from closing.
	TierWinImminent Tier = iota
	// TierLoseImminent: an axis distance is exactly 2, the captain is one
	// non-pursuit move from winning.
	TierLoseImminent
	// TierAggressiveFlee: an axis distance lies strictly between 2 and the
	// match's starting separation.
	TierAggressiveFlee
	// TierDefault: none of the above.
	TierDefault
)

func (t Tier) String() string {
	switch t {
	case TierWinImminent:
		return "win_imminent"
	case TierLoseImminent:
		return "lose_imminent"
	case TierAggressiveFlee:
		return "aggressive_flee"
	default:
		return "default"
	}
}

const (
	winDistance  = 1
	loseDistance = 2
)

// NotAfraidProbability is the chance the alien answers a lose-imminent
// situation with a bold move instead of a defensive one. This is the only
// difficulty knob the game has.
const NotAfraidProbability = 0.2

// ClassifyTier maps the current distances to a decision tier. Tiers are
// checked in fixed priority order; the first match wins.
func ClassifyTier(d Distance, startDistance int) Tier {
	switch {
	case d.X == winDistance || d.Y == winDistance:
		return TierWinImminent
	case d.X == loseDistance || d.Y == loseDistance:
		return TierLoseImminent
	case (d.X > loseDistance && d.X < startDistance) ||
		(d.Y > loseDistance && d.Y < startDistance):
		return TierAggressiveFlee
	default:
		return TierDefault
	}
}

// AlienPolicy selects the alien's moves. All randomness flows through the
// injected Rand, so a scripted source makes every decision deterministic.
type AlienPolicy struct {
	rng Rand
}

// NewAlienPolicy creates a policy over the given random source. A nil rng
// falls back to a time-seeded source.
func NewAlienPolicy(rng Rand) *AlienPolicy {
	return &AlienPolicy{rng: defaultRand(rng)}
}

type moveFunc func(*MatchState) Move

// Decide evaluates the strategy tree against the current state and returns
// the alien's move. It never mutates the state.
func (p *AlienPolicy) Decide(s *MatchState) Move {
	switch ClassifyTier(s.Dist, s.Config.StartDistance) {
	case TierWinImminent:
		return p.pursue(s)
	case TierLoseImminent:
		if p.rng.Float64() <= NotAfraidProbability {
			return p.pick(s, p.counter, p.chase, p.anyMove)
		}
		return p.pick(s, p.flee, p.freeze)
	case TierAggressiveFlee:
		return p.pick(s, p.counter, p.chase, p.flee)
	default:
		return p.anyMove(s)
	}
}

// pick draws uniformly among the given sub-behaviors and runs the chosen one.
func (p *AlienPolicy) pick(s *MatchState, options ...moveFunc) Move {
	return options[p.rng.Intn(len(options))](s)
}

// pursue closes the axis that is one step from matching. The y axis is
// checked first, so it takes precedence when both axes are at distance 1.
func (p *AlienPolicy) pursue(s *MatchState) Move {
	if s.Dist.Y == winDistance {
		return p.pursueY(s)
	}
	return p.pursueX(s)
}

func (p *AlienPolicy) pursueY(s *MatchState) Move {
	if s.Alien.Y > s.Captain.Y {
		return MoveDown
	}
	return MoveUp
}

func (p *AlienPolicy) pursueX(s *MatchState) Move {
	if s.Alien.X > s.Captain.X {
		return MoveLeft
	}
	return MoveRight
}

// counter mirrors the captain's last move with its geometric opposite. A
// captain that held still gives nothing to counter, so the alien moves
// randomly instead.
func (p *AlienPolicy) counter(s *MatchState) Move {
	if s.CaptainMove == MoveStill {
		return p.anyMove(s)
	}
	return s.CaptainMove.Opposite()
}

// chase moves along the axis with the strictly greater distance, in the
// direction that reduces it. Equal distances flip a coin for the axis.
func (p *AlienPolicy) chase(s *MatchState) Move {
	switch {
	case s.Dist.X > s.Dist.Y:
		return p.pursueX(s)
	case s.Dist.Y > s.Dist.X:
		return p.pursueY(s)
	case p.rng.Intn(2) == 0:
		return p.pursueX(s)
	default:
		return p.pursueY(s)
	}
}

// flee repeats the captain's last move verbatim, keeping the separation
// along that line. A captain that held still gives no direction to flee
// along, so the alien moves randomly instead.
func (p *AlienPolicy) flee(s *MatchState) Move {
	if s.CaptainMove == MoveStill {
		return p.anyMove(s)
	}
	return s.CaptainMove
}

func (p *AlienPolicy) freeze(*MatchState) Move {
	return MoveStill
}

// anyMove draws uniformly over all five moves, including holding still.
func (p *AlienPolicy) anyMove(*MatchState) Move {
	return AllMoves[p.rng.Intn(len(AllMoves))]
}
