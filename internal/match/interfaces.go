package match

import "github.com/orbitalgames/cosmic-standoff/internal/game"

// InputProvider supplies the human decisions a match needs. Implementations
// own their prompting and re-prompting; the controller only sees values it
// can act on.
type InputProvider interface {
	// BoardBounds asks for the inclusive coordinate range of the board.
	BoardBounds() (minCoord, maxCoord int, err error)

	// CaptainMove asks for the Captain's next move.
	CaptainMove() (game.Move, error)

	// AwaitShot blocks until the player fires the winning shot.
	AwaitShot() error

	// PlayAgain asks whether another match should be played.
	PlayAgain() (bool, error)
}

// Renderer presents match progress to the player. Implementations must not
// mutate the states they receive.
type Renderer interface {
	Intro()
	Score(totals map[string]int)
	InvalidBoard(err error)
	Starter(starter game.Agent)
	InitialPositions(s *game.MatchState)
	AlienThinking()
	MoveApplied(agent game.Agent, move game.Move, s *game.MatchState)
	CaptainWon(result game.MatchResult)
	AlienWon(result game.MatchResult)
	Farewell(totals map[string]int)
}
