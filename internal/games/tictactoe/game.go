package tictactoe

import (
	"github.com/vovakirdan/gamebox/internal/config"
	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/registry"
)

// aiMoveDelay is how many ticks the AI "thinks" before its move lands,
// so the human can see the board change.
const aiMoveDelay = 10

// Game adapts a Match against the optimal AI to the registry.Game interface.
type Game struct {
	match *Match
	human Mark
	ai    Mark
	tick  uint64

	cursor  Cell
	lastAI  Cell // Last AI move, highlighted in the renderer
	hasLast bool
	aiWait  int // Remaining think ticks before the AI moves

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool
}

// Package-level selections, set by the CLI / selector before game creation.
var (
	configPath   string
	selectedMark Mark
)

// SetConfigPath sets a custom YAML config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetHumanMark overrides which mark the human plays for the next Reset.
// Empty means use the config.
func SetHumanMark(m Mark) {
	selectedMark = m
}

// New creates a new Tic-Tac-Toe game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTicTacToe(configPath)
	if err != nil {
		gameCfg = config.DefaultTicTacToeConfig()
	}

	g.ai = MarkFromString(gameCfg.AIMark)
	if g.ai == Empty {
		g.ai = O
	}
	g.human = g.ai.Opponent()

	if selectedMark != Empty {
		g.human = selectedMark
		g.ai = selectedMark.Opponent()
		selectedMark = Empty // Reset after use
	}

	first := g.human
	if !gameCfg.HumanStarts {
		first = g.ai
	}
	g.match = NewMatch(first)

	g.tick = 0
	g.cursor = Cell{Row: 1, Col: 1}
	g.hasLast = false
	g.aiWait = aiMoveDelay
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := 24
	minH := 12
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.match.Status() != InProgress {
		return core.StepResult{State: g.State()}
	}

	if g.match.Turn() == g.ai {
		// AI turn: tick down the think delay, then move
		if g.aiWait > 0 {
			g.aiWait--
			return core.StepResult{State: g.State()}
		}
		if cell, err := g.match.PlayAI(); err == nil {
			g.lastAI = cell
			g.hasLast = true
		}
		g.aiWait = aiMoveDelay
		return core.StepResult{State: g.State()}
	}

	// Human turn: move the cursor, confirm to place
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Max(0, g.cursor.Row-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Min(Size-1, g.cursor.Row+1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Max(0, g.cursor.Col-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Min(Size-1, g.cursor.Col+1)
	case in.Has(core.ActionConfirm):
		// Occupied cells are simply ignored; the cursor stays put
		//nolint:errcheck
		g.match.ApplyMove(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	status := g.match.Status()

	outcome := ""
	score := 0
	switch {
	case status == Draw:
		outcome = "draw"
	case status == XWins && g.human == X, status == OWins && g.human == O:
		outcome = "win"
		score = 1
	case status == XWins || status == OWins:
		outcome = "loss"
	}

	return core.GameState{
		Score:    score,
		GameOver: status != InProgress,
		Paused:   g.tooSmall,
		Outcome:  outcome,
	}
}
