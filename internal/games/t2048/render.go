package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = engine.Size*cellWidth + 1
	boardH = engine.Size*cellHeight + 1
)

// controlsHint is drawn under the board.
const controlsHint = "Arrows/WASD: Move  Z: Undo  R: Restart  Q: Quit"

func minScreenSize() (int, int) {
	return boardW + 2, hudHeight + 1 + boardH + 2
}

// BoardRect returns where the board is drawn on screen.
func (g *Game) BoardRect() core.Rect {
	return core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)
}

// tileColor picks a color that gets warmer as tiles grow.
func tileColor(v int) core.Color {
	switch {
	case v <= 2:
		return core.ColorWhite
	case v == 4:
		return core.ColorBrightWhite
	case v == 8:
		return core.ColorYellow
	case v == 16:
		return core.ColorOrange
	case v == 32:
		return core.ColorRed
	case v == 64:
		return core.ColorBrightRed
	case v == 128:
		return core.ColorBrightYellow
	case v == 256:
		return core.ColorGreen
	case v == 512:
		return core.ColorCyan
	case v == 1024:
		return core.ColorBlue
	default:
		return core.ColorMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.BoardRect()
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)

	hintX := board.X + (board.W-len(controlsHint))/2
	dst.DrawTextColored(max(hintX, 0), board.Bottom()+1, controlsHint, core.ColorGray)

	if g.state.IsGameOver() {
		g.renderGameOver(dst, board)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score, best score and undo availability.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorBrightYellow)

	state := g.State()
	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", state.Score))

	bestStr := fmt.Sprintf("Best: %d", state.Best)
	dst.DrawText(max(board.Right()-len(bestStr), board.X), 1, bestStr)

	undoStr := "Undo: -"
	if state.CanUndo {
		undoStr = fmt.Sprintf("Undo: %d", g.state.HistoryLen())
	}
	dst.DrawTextColored(board.X+(board.W-len(undoStr))/2, 2, undoStr, core.ColorGray)
}

// renderBoard draws the grid and tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	for y := range engine.Size + 1 {
		for x := range engine.Size + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == engine.Size:
				corner = '┐'
			case y == engine.Size && x == 0:
				corner = '└'
			case y == engine.Size && x == engine.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == engine.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == engine.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	b := g.state.Board()
	for row := range engine.Size {
		for col := range engine.Size {
			val := b.At(row, col)
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			cellX := board.X + col*cellWidth + 1
			cellY := board.Y + row*cellHeight + 1
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderGameOver draws the final score over the board.
func (g *Game) renderGameOver(dst *core.Screen, board core.Rect) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", g.state.Score()),
		fmt.Sprintf("Max tile: %d", g.state.MaxTile()),
		"Press R to restart",
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	centerX := board.X + board.W/2
	centerY := board.Y + board.H/2
	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	dst.FillRect(box)
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return controlsHint
}
