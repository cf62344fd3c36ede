package tictactoe

import "errors"

// Sentinel errors returned by Match operations.
var (
	// ErrOutOfRange is returned for a cell outside the 3x3 board.
	ErrOutOfRange = errors.New("tictactoe: cell out of range")

	// ErrCellTaken is returned when the target cell is already occupied.
	ErrCellTaken = errors.New("tictactoe: cell already taken")

	// ErrMatchFinished is returned when a move is requested after the
	// match reached a terminal status.
	ErrMatchFinished = errors.New("tictactoe: match already finished")
)

// Status classifies a match.
type Status int

const (
	InProgress Status = iota
	XWins
	OWins
	Draw
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Match owns one Tic-Tac-Toe game: the board, whose turn it is, and the
// terminal status. All moves, human and AI alike, go through the same
// validated ApplyMove path, so win/draw detection is applied uniformly and
// no cell is ever written after a winning line exists.
type Match struct {
	board  Board
	turn   Mark
	status Status
}

// NewMatch starts a fresh match with the given side to move first.
func NewMatch(first Mark) *Match {
	if first == Empty {
		first = X
	}
	return &Match{turn: first}
}

// Board returns a snapshot of the current board.
func (m *Match) Board() Board {
	return m.board
}

// Turn returns the side to move.
func (m *Match) Turn() Mark {
	return m.turn
}

// Status returns the current match status.
func (m *Match) Status() Status {
	return m.status
}

// Winner returns the winning mark, or Empty while in progress or drawn.
func (m *Match) Winner() Mark {
	return m.board.Winner()
}

// ApplyMove places the current side's mark on the given cell. Validation
// happens before any state change: a finished match, an out-of-range cell
// or an occupied cell each fail with their distinct error and leave the
// match untouched. On success the status is recomputed and the turn flips.
func (m *Match) ApplyMove(c Cell) error {
	if m.status != InProgress {
		return ErrMatchFinished
	}
	if !c.InBounds() {
		return ErrOutOfRange
	}
	if m.board[c.Row][c.Col] != Empty {
		return ErrCellTaken
	}

	m.board[c.Row][c.Col] = m.turn

	switch m.board.Winner() {
	case X:
		m.status = XWins
	case O:
		m.status = OWins
	default:
		if m.board.Full() {
			m.status = Draw
		}
	}

	m.turn = m.turn.Opponent()
	return nil
}

// PlayAI computes the optimal move for the side to move and applies it
// through the normal validated path. Returns the chosen cell.
func (m *Match) PlayAI() (Cell, error) {
	if m.status != InProgress {
		return Cell{}, ErrMatchFinished
	}

	cell := BestMove(m.board, m.turn, m.turn.Opponent())
	if err := m.ApplyMove(cell); err != nil {
		return Cell{}, err
	}
	return cell, nil
}
