package game

import (
	"fmt"
	"strings"
)

// Move is one of the five actions an agent can take on a half-turn.
// The set is closed: values outside the five constants never enter the
// engine because ParseMove is the only place text becomes a Move.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveStill
)

// AllMoves lists every legal move, including holding still. Order matters
// for uniform random selection.
var AllMoves = [...]Move{MoveUp, MoveDown, MoveLeft, MoveRight, MoveStill}

// String returns the display label of the move
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Down"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	case MoveStill:
		return "Still"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMove converts player input to a Move. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return MoveUp, nil
	case "down":
		return MoveDown, nil
	case "left":
		return MoveLeft, nil
	case "right":
		return MoveRight, nil
	case "still":
		return MoveStill, nil
	default:
		return MoveStill, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
}

// Opposite returns the geometric mirror of the move (Up<->Down,
// Left<->Right). Still mirrors to itself; callers that need a different
// fallback for Still handle it themselves.
func (m Move) Opposite() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	case MoveRight:
		return MoveLeft
	default:
		return MoveStill
	}
}

// Delta returns the coordinate offset the move applies.
func (m Move) Delta() (dx, dy int) {
	switch m {
	case MoveUp:
		return 0, 1
	case MoveDown:
		return 0, -1
	case MoveLeft:
		return -1, 0
	case MoveRight:
		return 1, 0
	default:
		return 0, 0
	}
}
