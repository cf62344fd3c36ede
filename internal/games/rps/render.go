package rps

import (
	"fmt"

	"github.com/vovakirdan/gamebox/internal/core"
)

// shapeArt is a small one-line glyph per shape.
var shapeArt = map[Shape]string{
	Rock:     "(o)",
	Paper:    "[_]",
	Scissors: ">8<",
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	player, cpu := g.match.Score()

	dst.DrawTextCentered(0, "Rock-Paper-Scissors")
	dst.DrawTextCentered(1, fmt.Sprintf("Best of %d   You %d : %d CPU",
		g.match.Rounds(), player, cpu))

	g.renderChoices(dst, 3)
	g.renderLastRound(dst, 6)
	g.renderOverlay(dst)
}

// renderChoices draws the three shapes with the cursor on the current one.
func (g *Game) renderChoices(dst *core.Screen, y int) {
	shapes := []Shape{Rock, Paper, Scissors}

	totalW := 0
	labels := make([]string, len(shapes))
	for i, s := range shapes {
		labels[i] = fmt.Sprintf("%s %s", shapeArt[s], s)
		totalW += len(labels[i]) + 4
	}

	x := (g.screenW - totalW) / 2
	for i, s := range shapes {
		color := core.ColorDefault
		if s == g.cursor {
			color = core.ColorBrightGreen
			dst.SetColored(x-1, y, '[', color)
			dst.SetColored(x+len(labels[i]), y, ']', color)
		}
		dst.DrawTextColored(x, y, labels[i], color)
		x += len(labels[i]) + 4
	}

	hint := "Left/Right to pick, Enter to throw"
	dst.DrawTextColored((g.screenW-len(hint))/2, y+1, hint, core.ColorGray)
}

// renderLastRound shows the previous round's throws and result.
func (g *Game) renderLastRound(dst *core.Screen, y int) {
	if !g.hasLast {
		return
	}

	line := fmt.Sprintf("You threw %s, CPU threw %s", g.lastRound.Player, g.lastRound.CPU)
	dst.DrawTextCentered(y, line)

	switch g.lastRound.Outcome {
	case FirstWins:
		dst.DrawTextColored((g.screenW-13)/2, y+1, "Round to you!", core.ColorBrightGreen)
	case SecondWins:
		dst.DrawTextColored((g.screenW-13)/2, y+1, "Round to CPU.", core.ColorBrightRed)
	default:
		dst.DrawTextColored((g.screenW-4)/2, y+1, "Tie.", core.ColorGray)
	}
}

// renderOverlay draws the end-of-match overlay.
func (g *Game) renderOverlay(dst *core.Screen) {
	if !g.match.Finished() {
		return
	}

	headline := "YOU LOSE"
	if g.match.PlayerWon() {
		headline = "YOU WIN!"
	}

	player, cpu := g.match.Score()
	lines := []string{headline, fmt.Sprintf("Final: %d - %d", player, cpu), "Press R to restart"}

	centerX := g.screenW / 2
	centerY := g.screenH / 2

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for py := boxY; py < boxY+boxH; py++ {
		for px := boxX; px < boxX+boxW; px++ {
			dst.Set(px, py, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
