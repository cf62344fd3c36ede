package tictactoe

import (
	"errors"
	"testing"
)

func TestNewMatchDefaults(t *testing.T) {
	m := NewMatch(Empty)
	if m.Turn() != X {
		t.Errorf("default first mover = %v, want X", m.Turn())
	}

	m = NewMatch(O)
	if m.Turn() != O {
		t.Errorf("first mover = %v, want O", m.Turn())
	}
	if m.Status() != InProgress {
		t.Errorf("fresh match status = %v, want InProgress", m.Status())
	}
}

func TestApplyMoveValidation(t *testing.T) {
	m := NewMatch(X)

	if err := m.ApplyMove(Cell{Row: 3, Col: 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out-of-range move: got %v, want ErrOutOfRange", err)
	}
	if err := m.ApplyMove(Cell{Row: -1, Col: 2}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("negative row: got %v, want ErrOutOfRange", err)
	}

	if err := m.ApplyMove(Cell{Row: 1, Col: 1}); err != nil {
		t.Fatalf("valid move: %v", err)
	}
	if err := m.ApplyMove(Cell{Row: 1, Col: 1}); !errors.Is(err, ErrCellTaken) {
		t.Errorf("occupied cell: got %v, want ErrCellTaken", err)
	}

	// Failed moves must not consume the turn
	if m.Turn() != O {
		t.Errorf("turn = %v after one valid move, want O", m.Turn())
	}
}

func TestApplyMoveAlternatesTurns(t *testing.T) {
	m := NewMatch(X)
	moves := []Cell{{0, 0}, {1, 1}, {0, 1}, {2, 2}}
	wantTurn := []Mark{O, X, O, X}

	for i, c := range moves {
		if err := m.ApplyMove(c); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		if m.Turn() != wantTurn[i] {
			t.Errorf("after move %d turn = %v, want %v", i, m.Turn(), wantTurn[i])
		}
	}
}

func TestMatchDetectsWin(t *testing.T) {
	m := NewMatch(X)
	// X: top row. O: scattered.
	moves := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for _, c := range moves {
		if err := m.ApplyMove(c); err != nil {
			t.Fatalf("move %v: %v", c, err)
		}
	}

	if m.Status() != XWins {
		t.Errorf("status = %v, want XWins", m.Status())
	}
	if m.Winner() != X {
		t.Errorf("winner = %v, want X", m.Winner())
	}
}

func TestNoMovesAfterWin(t *testing.T) {
	m := NewMatch(X)
	moves := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for _, c := range moves {
		if err := m.ApplyMove(c); err != nil {
			t.Fatalf("move %v: %v", c, err)
		}
	}

	before := m.Board()
	if err := m.ApplyMove(Cell{Row: 2, Col: 2}); !errors.Is(err, ErrMatchFinished) {
		t.Errorf("move after win: got %v, want ErrMatchFinished", err)
	}
	if m.Board() != before {
		t.Error("board changed after the match finished")
	}

	if _, err := m.PlayAI(); !errors.Is(err, ErrMatchFinished) {
		t.Errorf("PlayAI after win: got %v, want ErrMatchFinished", err)
	}
}

func TestMatchDetectsDraw(t *testing.T) {
	m := NewMatch(X)
	// X O X / X O O / O X X: no three in a row.
	moves := []Cell{
		{0, 0}, {0, 1}, {0, 2},
		{1, 1}, {1, 0}, {1, 2},
		{2, 1}, {2, 0}, {2, 2},
	}
	for _, c := range moves {
		if err := m.ApplyMove(c); err != nil {
			t.Fatalf("move %v: %v", c, err)
		}
	}

	if m.Status() != Draw {
		t.Errorf("status = %v, want Draw", m.Status())
	}
	if m.Winner() != Empty {
		t.Errorf("winner = %v, want Empty", m.Winner())
	}
}

func TestStatusString(t *testing.T) {
	pairs := map[Status]string{
		InProgress: "in progress",
		XWins:      "X wins",
		OWins:      "O wins",
		Draw:       "draw",
	}
	for status, want := range pairs {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
