package g2048

import "time"

// WinTile is the tile value that wins the game.
const WinTile = 2048

// Status classifies a grid position.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Classify returns the status of a grid. A grid containing the win tile is
// won regardless of anything else; a grid with no empty cell and no
// adjacent equal pair is lost (no move in any direction could change it);
// everything else is still playing.
func Classify(g Grid) Status {
	if MaxTile(g) >= WinTile {
		return StatusWon
	}
	if !HasEmptyCell(g) && !HasPossibleMerge(g) {
		return StatusLost
	}
	return StatusPlaying
}

// GameState is an immutable snapshot of a 2048 game. A new instance is
// produced on every accepted move and every successful undo; instances are
// never mutated after creation.
type GameState struct {
	Grid      Grid
	Score     int           // cumulative, never decreases across real moves
	Moves     int           // accepted moves since game start
	Status    Status
	StartedAt time.Time     // fixed at game creation
	Elapsed   time.Duration // time since start, as of this snapshot
	CanUndo   bool          // whether undo history is non-empty
}
