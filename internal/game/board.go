package game

import (
	"fmt"

	"github.com/orbitalgames/cosmic-standoff/internal/common"
)

// MinBoardSize is the smallest playable board span. Anything smaller ends
// matches before either side can maneuver.
const MinBoardSize = 10

// Position is an agent's location on the lattice. Positions are values:
// Apply returns the moved position instead of mutating.
type Position struct {
	X, Y int
}

// Apply returns the position after taking the given move.
func (p Position) Apply(m Move) Position {
	dx, dy := m.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// BoardConfig describes the square lattice a match is played on. It is
// immutable once a match starts; a new match builds a new config.
type BoardConfig struct {
	MinCoord      int
	MaxCoord      int
	BoardSize     int
	StartDistance int
}

// NewBoardConfig validates the inclusive coordinate range and derives the
// board size and minimum starting separation (half the board size).
func NewBoardConfig(minCoord, maxCoord int) (BoardConfig, error) {
	if maxCoord <= minCoord {
		return BoardConfig{}, fmt.Errorf("%w: max %d must exceed min %d", ErrInvalidBounds, maxCoord, minCoord)
	}
	size := maxCoord - minCoord + 1
	if size < MinBoardSize {
		return BoardConfig{}, fmt.Errorf("%w: board size %d is below the minimum of %d", ErrInvalidBounds, size, MinBoardSize)
	}
	return BoardConfig{
		MinCoord:      minCoord,
		MaxCoord:      maxCoord,
		BoardSize:     size,
		StartDistance: size / 2,
	}, nil
}

// Contains reports whether the position lies within the starting bounds.
// Agents may wander outside them mid-match; only placement is bounded.
func (c BoardConfig) Contains(p Position) bool {
	return p.X >= c.MinCoord && p.X <= c.MaxCoord && p.Y >= c.MinCoord && p.Y <= c.MaxCoord
}

// Distance is the per-axis absolute separation between the two agents.
// It is derived state: recomputed after every move application and never
// carried stale across a turn boundary.
type Distance struct {
	X, Y int
}

// DistanceBetween computes the axis-wise distance between two positions.
func DistanceBetween(a, b Position) Distance {
	return Distance{
		X: common.Abs(a.X - b.X),
		Y: common.Abs(a.Y - b.Y),
	}
}

// Min returns the smaller of the two axis distances.
func (d Distance) Min() int {
	return common.Min(d.X, d.Y)
}

// Closed reports whether either axis has reached zero, which ends the match.
func (d Distance) Closed() bool {
	return d.X == 0 || d.Y == 0
}

// RandomPosition samples a position uniformly from the board's coordinate
// range, each axis independent.
func RandomPosition(cfg BoardConfig, rng Rand) Position {
	return Position{
		X: cfg.MinCoord + rng.Intn(cfg.BoardSize),
		Y: cfg.MinCoord + rng.Intn(cfg.BoardSize),
	}
}
