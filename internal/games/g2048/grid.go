// Package g2048 implements the 2048 puzzle: a pure slide/merge grid engine,
// an immutable-state session wrapper with undo history, and a TUI adapter.
package g2048

// GridSize is the board dimension. The game is always played on 4x4.
const GridSize = 4

// Grid is a 4x4 matrix of cell values. 0 is an empty cell; every non-empty
// cell holds a power of two >= 2. Grid is a value type: engine functions
// never mutate their input, they return fresh grids.
type Grid [GridSize][GridSize]int

// Cell addresses a single grid position.
type Cell struct {
	Row, Col int
}

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// compressRow slides and merges a single row to the left.
// Non-empty cells are collected in order, then scanned once: a pair of
// equal neighbors merges into one doubled cell and the doubled value is
// added to the score. A merged cell never merges again within the same
// move. The result is right-padded with zeros back to row length.
func compressRow(row [GridSize]int) (result [GridSize]int, score int) {
	vals := make([]int, 0, GridSize)
	for _, v := range row {
		if v != 0 {
			vals = append(vals, v)
		}
	}

	w := 0
	for i := 0; i < len(vals); i++ {
		if i+1 < len(vals) && vals[i] == vals[i+1] {
			result[w] = vals[i] * 2
			score += result[w]
			i++ // skip the merged partner
		} else {
			result[w] = vals[i]
		}
		w++
	}

	return result, score
}

// compressLeft applies compressRow to every row independently.
func compressLeft(g Grid) (Grid, int) {
	var out Grid
	total := 0
	for y := range g {
		row, score := compressRow(g[y])
		out[y] = row
		total += score
	}
	return out, total
}

// transpose swaps row and column indices.
func transpose(g Grid) Grid {
	var out Grid
	for y := range g {
		for x := range g[y] {
			out[y][x] = g[x][y]
		}
	}
	return out
}

// rotate90 rotates the grid 90 degrees clockwise.
func rotate90(g Grid) Grid {
	var out Grid
	for y := range g {
		for x := range g[y] {
			out[y][x] = g[GridSize-1-x][y]
		}
	}
	return out
}

// rotate180 rotates the grid 180 degrees.
func rotate180(g Grid) Grid {
	return rotate90(rotate90(g))
}

// Move slides the grid in the given direction and merges equal neighbors.
// All four directions reduce to the single compress-left primitive via
// rotation and transposition, so merge and scoring semantics are identical
// regardless of direction. Returns the new grid, the points earned from
// merges, and whether anything changed. moved is false exactly when the
// result is cell-wise identical to the input; in that case points is 0 and
// the caller must not spawn a tile or advance the move count.
//
// Move assumes a valid direction; validating user input is the caller's job.
func Move(g Grid, dir Direction) (Grid, int, bool) {
	var out Grid
	var points int

	switch dir {
	case DirLeft:
		out, points = compressLeft(g)
	case DirRight:
		out, points = compressLeft(rotate180(g))
		out = rotate180(out)
	case DirUp:
		out, points = compressLeft(transpose(g))
		out = transpose(out)
	case DirDown:
		out, points = compressLeft(rotate180(transpose(g)))
		out = transpose(rotate180(out))
	default:
		return g, 0, false
	}

	return out, points, out != g
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y := range g {
		for x := range g[y] {
			if g[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there is at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for y := range g {
		for x := range g[y] {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two horizontally or vertically
// adjacent cells share a non-zero value.
func HasPossibleMerge(g Grid) bool {
	for y := range g {
		for x := range g[y] {
			v := g[y][x]
			if v == 0 {
				continue
			}
			if x < GridSize-1 && g[y][x+1] == v {
				return true
			}
			if y < GridSize-1 && g[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] > maxVal {
				maxVal = g[y][x]
			}
		}
	}
	return maxVal
}
