package game

// MatchState is the single shared state of a running match. The engine is
// its only mutator; the alien policy and renderers read it.
type MatchState struct {
	Config BoardConfig

	Captain Position
	Alien   Position

	// Dist always reflects the positions above, including the move that
	// was just applied.
	Dist Distance

	// Starter takes the first half-turn of every cycle and never changes
	// mid-match.
	Starter Agent

	// LastMover is the agent that completed the most recent half-turn.
	// When a distance first reaches zero it names the winner.
	LastMover Agent

	// Last chosen move per agent. Both start as Still, so policies that
	// react to the opponent's previous move treat "has not moved yet" the
	// same as "held still".
	CaptainMove Move
	AlienMove   Move
}

// Position returns the given agent's current position.
func (s *MatchState) Position(a Agent) Position {
	if a == CaptainAgent {
		return s.Captain
	}
	return s.Alien
}

// LastMove returns the given agent's most recently applied move.
func (s *MatchState) LastMove(a Agent) Move {
	if a == CaptainAgent {
		return s.CaptainMove
	}
	return s.AlienMove
}

// applyMove moves the agent and immediately recomputes the distance. The
// two steps must never be separated: every read of Dist after a move has
// to see the post-move positions.
func (s *MatchState) applyMove(a Agent, m Move) {
	if a == CaptainAgent {
		s.Captain = s.Captain.Apply(m)
		s.CaptainMove = m
	} else {
		s.Alien = s.Alien.Apply(m)
		s.AlienMove = m
	}
	s.LastMover = a
	s.Dist = DistanceBetween(s.Captain, s.Alien)
}
