package g2048

// History is an append-only stack of prior game states, one entry per
// accepted move. Undo pops the most recent entry; there is no redo.
// A limit of 0 means unbounded; with a positive limit the oldest snapshot
// is dropped when a push would exceed it.
type History struct {
	states []GameState
	limit  int
}

// NewHistory creates an empty history with the given cap (0 = unbounded).
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push appends a snapshot, evicting the oldest entry if the cap is reached.
func (h *History) Push(s GameState) {
	if h.limit > 0 && len(h.states) >= h.limit {
		h.states = h.states[1:]
	}
	h.states = append(h.states, s)
}

// Pop removes and returns the most recent snapshot.
// Returns ErrNoHistory when the stack is empty.
func (h *History) Pop() (GameState, error) {
	if len(h.states) == 0 {
		return GameState{}, ErrNoHistory
	}
	last := h.states[len(h.states)-1]
	h.states = h.states[:len(h.states)-1]
	return last, nil
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.states)
}
