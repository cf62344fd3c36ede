package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/gamebox/internal/core"
)

const (
	ttCellWidth  = 6 // Width of each cell (including borders)
	ttCellHeight = 2 // Height of each cell (including borders)
)

// markColor picks a color for a mark.
func markColor(m Mark) core.Color {
	switch m {
	case X:
		return core.ColorBrightCyan
	case O:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := Size*ttCellWidth + 1
	boardH := Size*ttCellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlay(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and turn indicator above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "Tic-Tac-Toe"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("You: %s", g.human))

	var turnStr string
	if g.match.Status() == InProgress {
		if g.match.Turn() == g.human {
			turnStr = "Your turn"
		} else {
			turnStr = "Thinking..."
		}
	}
	turnX := boardX + boardW - len(turnStr)
	if turnX < boardX {
		turnX = boardX
	}
	dst.DrawText(turnX, 1, turnStr)

	dst.DrawTextColored(boardX, 2, "Arrows to aim, Enter to place", core.ColorGray)
}

// renderBoard draws the 3x3 grid, marks and cursor.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	board := g.match.Board()

	// Grid borders
	for y := 0; y <= Size; y++ {
		for x := 0; x <= Size; x++ {
			px := boardX + x*ttCellWidth
			py := boardY + y*ttCellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Size:
				corner = '┐'
			case y == Size && x == 0:
				corner = '└'
			case y == Size && x == Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < Size {
				for i := 1; i < ttCellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < Size {
				for i := 1; i < ttCellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Marks
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			m := board[r][c]
			cellX := boardX + c*ttCellWidth + ttCellWidth/2
			cellY := boardY + r*ttCellHeight + 1

			if m != Empty {
				color := markColor(m)
				if g.hasLast && g.lastAI.Row == r && g.lastAI.Col == c {
					color = core.ColorBrightRed
				}
				dst.SetColored(cellX, cellY, rune(m.String()[0]), color)
			}
		}
	}

	// Cursor brackets around the targeted cell
	if g.match.Status() == InProgress && g.match.Turn() == g.human {
		cellX := boardX + g.cursor.Col*ttCellWidth + ttCellWidth/2
		cellY := boardY + g.cursor.Row*ttCellHeight + 1
		dst.SetColored(cellX-1, cellY, '[', core.ColorBrightGreen)
		dst.SetColored(cellX+1, cellY, ']', core.ColorBrightGreen)
	}
}

// renderOverlay draws the end-of-match overlay.
func (g *Game) renderOverlay(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	status := g.match.Status()
	if status == InProgress {
		return
	}

	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	var headline string
	switch {
	case status == Draw:
		headline = "DRAW"
	case g.match.Winner() == g.human:
		headline = "YOU WIN!"
	default:
		headline = "YOU LOSE"
	}

	g.drawOverlay(dst, centerX, centerY, headline, "Press R to restart")
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
