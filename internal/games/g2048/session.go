package g2048

import (
	"math/rand"
	"time"
)

// SessionOptions configures a 2048 session.
type SessionOptions struct {
	// SpawnFourProb is the probability a spawned tile is a 4.
	// Zero or negative falls back to DefaultSpawnFourProb.
	SpawnFourProb float64

	// HistoryLimit caps the undo stack; 0 means unbounded.
	HistoryLimit int

	// Now is the clock used for elapsed-time bookkeeping.
	// Nil falls back to time.Now. Injectable for tests.
	Now func() time.Time
}

// Session owns one 2048 game: the current immutable state, the undo
// history, and the tile-spawning rng. The grid engine itself is stateless;
// the session is the only holder of per-game state, so independent games
// never interact. All methods are synchronous; a session is not safe for
// concurrent use and is not meant to be shared.
type Session struct {
	current  GameState
	history  *History
	rng      *rand.Rand
	fourProb float64
	now      func() time.Time
}

// NewSession starts a fresh game: an empty grid seeded with two random
// tiles, score 0, status playing, and the start timestamp fixed.
func NewSession(rng *rand.Rand, opts SessionOptions) *Session {
	fourProb := opts.SpawnFourProb
	if fourProb <= 0 {
		fourProb = DefaultSpawnFourProb
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	grid := AddRandomTiles(Grid{}, 2, fourProb, rng)

	return &Session{
		current: GameState{
			Grid:      grid,
			Status:    StatusPlaying,
			StartedAt: now(),
		},
		history:  NewHistory(opts.HistoryLimit),
		rng:      rng,
		fourProb: fourProb,
		now:      now,
	}
}

// State returns the current snapshot.
func (s *Session) State() GameState {
	return s.current
}

// Move applies a directional move. On an invalid direction it returns
// ErrInvalidDirection; once the game is won or lost it returns
// ErrGameFinished; in both cases no state changes. If the slide changes
// nothing, the current state is returned unchanged: no tile spawns, no
// history entry, no move-count advance. Otherwise the pre-move state is
// pushed onto the undo history, one tile spawns, the status is
// reclassified, and a fresh snapshot becomes current.
func (s *Session) Move(dir Direction) (GameState, error) {
	if !dir.Valid() {
		return GameState{}, ErrInvalidDirection
	}
	if s.current.Status != StatusPlaying {
		return GameState{}, ErrGameFinished
	}

	next, points, moved := Move(s.current.Grid, dir)
	if !moved {
		return s.current, nil
	}

	s.history.Push(s.current)

	grid := AddRandomTiles(next, 1, s.fourProb, s.rng)
	s.current = GameState{
		Grid:      grid,
		Score:     s.current.Score + points,
		Moves:     s.current.Moves + 1,
		Status:    Classify(grid),
		StartedAt: s.current.StartedAt,
		Elapsed:   s.now().Sub(s.current.StartedAt),
		CanUndo:   true,
	}

	return s.current, nil
}

// Undo restores the most recent pre-move snapshot verbatim (grid, score,
// move count, elapsed time, status, start time), recomputing only the
// undo-availability flag from the remaining history. Returns ErrNoHistory
// when there is nothing to undo.
func (s *Session) Undo() (GameState, error) {
	prev, err := s.history.Pop()
	if err != nil {
		return GameState{}, err
	}

	prev.CanUndo = s.history.Len() > 0
	s.current = prev
	return s.current, nil
}
