package g2048

import (
	"math/rand"

	"github.com/vovakirdan/gamebox/internal/config"
	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/registry"
)

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	session *Session
	cfg     config.G2048Config
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	moveProcessed bool   // Prevent multiple moves per tick
	notice        string // Transient HUD message (e.g. "nothing to undo")
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets a custom YAML config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadG2048(configPath)
	if err != nil {
		gameCfg = config.DefaultG2048Config()
	}
	g.cfg = gameCfg

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(rng, SessionOptions{
		SpawnFourProb: gameCfg.Spawn.FourProb,
		HistoryLimit:  gameCfg.History.Limit,
	})

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false
	g.notice = ""

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (25 wide, 9 tall) + HUD (3 lines)
	minW := 29
	minH := 13
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	state := g.session.State()

	if in.Has(core.ActionUndo) {
		g.notice = ""
		if _, err := g.session.Undo(); err != nil {
			g.notice = "nothing to undo"
		}
		return core.StepResult{State: g.State()}
	}

	// Don't process moves once the game is decided
	if state.Status != StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFromInput(in)
	if ok && !g.moveProcessed {
		g.notice = ""
		// Errors cannot occur here: the direction is valid and the
		// status was checked above.
		//nolint:errcheck
		g.session.Move(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// directionFromInput maps platform actions to a move direction.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	state := g.session.State()

	outcome := ""
	switch state.Status {
	case StatusWon:
		outcome = "win"
	case StatusLost:
		outcome = "loss"
	}

	return core.GameState{
		Score:    state.Score,
		GameOver: state.Status != StatusPlaying,
		Paused:   g.paused || g.tooSmall,
		Outcome:  outcome,
	}
}
