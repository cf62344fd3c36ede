// Package tictactoe implements Tic-Tac-Toe: board primitives, a minimax
// search engine with alpha-beta pruning for optimal play, a validated
// match wrapper, and a TUI adapter.
package tictactoe

// Size is the board dimension. The game is always played on 3x3.
const Size = 3

// Mark is the content of a board cell.
type Mark int8

const (
	Empty Mark = iota
	X
	O
)

// Opponent returns the other side's mark. Empty maps to itself.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// String returns the display rune for the mark.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// MarkFromString parses "X" or "O"; anything else returns Empty.
func MarkFromString(s string) Mark {
	switch s {
	case "X", "x":
		return X
	case "O", "o":
		return O
	default:
		return Empty
	}
}

// Board is a 3x3 matrix of marks. Value type: functions that derive new
// positions copy the board rather than mutating it.
type Board [Size][Size]Mark

// Cell addresses a single board position.
type Cell struct {
	Row, Col int
}

// InBounds reports whether the cell is on the board.
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// winLines enumerates the 3 rows, 3 columns and 2 diagonals.
var winLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the mark with three in a row, or Empty if there is none.
// Pure function of the board snapshot.
func (b Board) Winner() Mark {
	for _, line := range winLines {
		m := b[line[0].Row][line[0].Col]
		if m == Empty {
			continue
		}
		if m == b[line[1].Row][line[1].Col] && m == b[line[2].Row][line[2].Col] {
			return m
		}
	}
	return Empty
}

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	for _, row := range b {
		for _, m := range row {
			if m == Empty {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}
