package g2048

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Moves     int
	Grid      Grid
	MaxTile   int
	Status    Status
	CanUndo   bool
	UndoDepth int // Number of snapshots on the undo stack
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := g.session.State()
	return Snapshot{
		Tick:      g.tick,
		Score:     state.Score,
		Moves:     state.Moves,
		Grid:      state.Grid,
		MaxTile:   MaxTile(state.Grid),
		Status:    state.Status,
		CanUndo:   state.CanUndo,
		UndoDepth: g.session.history.Len(),
	}
}
