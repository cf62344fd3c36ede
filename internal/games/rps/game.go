package rps

import (
	"math/rand"

	"github.com/vovakirdan/gamebox/internal/config"
	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/registry"
)

// resultShowTicks is how long the last round's result stays on screen
// before the next throw can be made.
const resultShowTicks = 30

var configPath string

// SetConfigPath sets a custom YAML config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Match to the registry.Game interface.
type Game struct {
	match  *Match
	cursor Shape
	tick   uint64

	lastRound Round
	hasLast   bool
	showTicks int // Remaining ticks the last result is displayed

	screenW int
	screenH int

	tooSmall bool
}

// New creates a new Rock-Paper-Scissors game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("rps", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "rps"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Rock-Paper-Scissors"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadRPS(configPath)
	if err != nil {
		gameCfg = config.DefaultRPSConfig()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.match = NewMatch(gameCfg.Rounds, rng)

	g.tick = 0
	g.cursor = Rock
	g.hasLast = false
	g.showTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := 40
	minH := 10
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.match.Finished() {
		return core.StepResult{State: g.State()}
	}

	// Hold the last result on screen before accepting the next throw.
	if g.showTicks > 0 {
		g.showTicks--
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		if g.cursor > Rock {
			g.cursor--
		}
	case in.Has(core.ActionRight):
		if g.cursor < Scissors {
			g.cursor++
		}
	case in.Has(core.ActionConfirm):
		if round, err := g.match.PlayRound(g.cursor); err == nil {
			g.lastRound = round
			g.hasLast = true
			g.showTicks = resultShowTicks
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	player, _ := g.match.Score()

	outcome := ""
	if g.match.Finished() {
		if g.match.PlayerWon() {
			outcome = "win"
		} else {
			outcome = "loss"
		}
	}

	return core.GameState{
		Score:    player,
		GameOver: g.match.Finished(),
		Paused:   g.tooSmall,
		Outcome:  outcome,
	}
}
