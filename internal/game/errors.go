package game

import "errors"

var (
	// ErrUnknownMove is returned by ParseMove for text that is not one of
	// the five move labels.
	ErrUnknownMove = errors.New("unknown move")

	// ErrInvalidBounds is returned when the requested board bounds do not
	// describe a playable board.
	ErrInvalidBounds = errors.New("invalid board bounds")

	// ErrMatchOver is returned when a move is applied to a finished match.
	ErrMatchOver = errors.New("match is over")

	// ErrPlacementFailed is returned when the Alien could not be placed at
	// the required starting separation within MaxPlacementAttempts.
	ErrPlacementFailed = errors.New("could not place alien at starting distance")
)
