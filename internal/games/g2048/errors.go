package g2048

import "errors"

// Sentinel errors returned by Session operations. Callers branch on these
// with errors.Is to distinguish the failure kind.
var (
	// ErrInvalidDirection is returned when a move direction is outside
	// the four cardinal values.
	ErrInvalidDirection = errors.New("g2048: invalid direction")

	// ErrNoHistory is returned when undo is requested with no prior moves.
	ErrNoHistory = errors.New("g2048: no moves to undo")

	// ErrGameFinished is returned when a move is requested after the game
	// reached a won or lost status.
	ErrGameFinished = errors.New("g2048: game already finished")
)
