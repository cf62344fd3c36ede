package g2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/gamebox/internal/core"
)

const (
	cellWidth  = 6 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// tileColor picks a color for a tile value; bigger tiles get hotter colors.
func tileColor(val int) core.Color {
	switch {
	case val >= 1024:
		return core.ColorBrightRed
	case val >= 256:
		return core.ColorOrange
	case val >= 64:
		return core.ColorBrightYellow
	case val >= 16:
		return core.ColorBrightCyan
	default:
		return core.ColorWhite
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := GridSize*cellWidth + 1  // +1 for right border
	boardH := GridSize*cellHeight + 1 // +1 for bottom border
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws score, move count and undo info above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	state := g.session.State()

	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", state.Score))

	infoStr := fmt.Sprintf("Moves: %d  Max: %d", state.Moves, MaxTile(state.Grid))
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	if g.notice != "" {
		dst.DrawTextColored(boardX, 2, g.notice, core.ColorGray)
	} else if state.CanUndo {
		dst.DrawTextColored(boardX, 2, "U to undo", core.ColorGray)
	}
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	state := g.session.State()

	// Grid borders
	for y := 0; y <= GridSize; y++ {
		for x := 0; x <= GridSize; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == GridSize:
				corner = '┐'
			case y == GridSize && x == 0:
				corner = '└'
			case y == GridSize && x == GridSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == GridSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == GridSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < GridSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < GridSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			val := state.Grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	state := g.session.State()
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	switch state.Status {
	case StatusWon:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!",
			fmt.Sprintf("Score: %d", state.Score), "Press R to restart")
	case StatusLost:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER",
			fmt.Sprintf("Max tile: %d", MaxTile(state.Grid)), "Press R to restart")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
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

	// Clear the box interior
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
