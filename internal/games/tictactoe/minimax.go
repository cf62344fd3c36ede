package tictactoe

// winScore is the magnitude of a terminal win/loss score. Real scores live
// in [-winScore, winScore]; the alpha-beta window starts just outside it.
const (
	winScore = 10
	infinity = winScore + 1
)

// BestMove returns the game-theoretically optimal cell for the searching
// side, assuming the opponent also plays optimally. Every empty cell is
// tried in row-major order; the first cell with the maximal minimax score
// wins ties.
//
// Precondition (unchecked): the board has at least one empty cell and no
// side has already won. Calling BestMove on a terminal board is a caller
// bug, not a reported condition.
func BestMove(b Board, searching, opponent Mark) Cell {
	best := Cell{Row: -1, Col: -1}
	bestScore := -infinity

	for _, c := range b.EmptyCells() {
		next := b
		next[c.Row][c.Col] = searching
		score := minimax(next, 0, false, searching, opponent, -infinity, infinity)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	return best
}

// minimax scores a position for the searching side with alpha-beta pruning.
// depth counts plies already simulated below BestMove's own placement, so a
// win found immediately scores winScore and deeper wins score less: the
// search prefers the fastest win and the slowest loss. The maximizing
// player is always the searching side, the minimizing player always the
// opponent, regardless of recursion depth.
func minimax(b Board, depth int, maximizing bool, searching, opponent Mark, alpha, beta int) int {
	switch b.Winner() {
	case searching:
		return winScore - depth
	case opponent:
		return depth - winScore
	}
	if b.Full() {
		return 0
	}

	if maximizing {
		best := -infinity
		for _, c := range b.EmptyCells() {
			next := b
			next[c.Row][c.Col] = searching
			score := minimax(next, depth+1, false, searching, opponent, alpha, beta)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break // remaining siblings cannot improve the outcome
			}
		}
		return best
	}

	best := infinity
	for _, c := range b.EmptyCells() {
		next := b
		next[c.Row][c.Col] = opponent
		score := minimax(next, depth+1, true, searching, opponent, alpha, beta)
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
