package blocks

import (
	"fmt"

	"github.com/fredjuma007/our-book-club-sub000/internal/core"
	"github.com/fredjuma007/our-book-club-sub000/internal/tetris"
)

const (
	cellW  = 2 // screen columns per stage cell
	wellW  = tetris.StageWidth*cellW + 2
	wellH  = tetris.StageHeight + 2
	panelW = 18
	gap    = 2
)

// pieceColor maps a tetromino colour id to a screen colour.
func pieceColor(value uint8) core.Color {
	switch value {
	case 1:
		return core.ColorCyan
	case 2:
		return core.ColorBlue
	case 3:
		return core.ColorOrange
	case 4:
		return core.ColorYellow
	case 5:
		return core.ColorGreen
	case 6:
		return core.ColorMagenta
	case 7:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Render draws the well, the side panel and any overlay message.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", MinScreenW, MinScreenH))
		return
	}

	snap := g.engine.Snapshot()

	originX := (dst.Width() - (wellW + gap + panelW)) / 2
	originY := (dst.Height() - wellH) / 2
	well := core.NewRect(originX, originY, wellW, wellH)

	if g.cfg.Render.ShowBorder {
		dst.DrawBox(well, core.ColorGray)
	}
	g.drawStage(dst, well.X+1, well.Y+1, snap.Stage)
	g.drawPanel(dst, well.Right()+gap, well.Y+1, snap)

	switch snap.Phase {
	case tetris.PhaseReady:
		drawCenteredMessage(dst, well, g.Title(), "Press Enter")
	case tetris.PhasePaused:
		drawCenteredMessage(dst, well, "PAUSED", "Press P")
	case tetris.PhaseGameOver:
		drawCenteredMessage(dst, well, "GAME OVER", "Press R")
	}
}

func (g *Game) drawStage(dst *core.Screen, x0, y0 int, stage tetris.Stage) {
	block := []rune(g.cfg.Render.Block)
	if len(block) != cellW {
		block = []rune("[]")
	}

	for y := range stage {
		for x := range stage[y] {
			sx := x0 + x*cellW
			sy := y0 + y
			c := stage[y][x]
			if c.Status == tetris.CellEmpty {
				dst.SetColored(sx, sy, ' ', core.ColorGray)
				dst.SetColored(sx+1, sy, '·', core.ColorGray)
				continue
			}
			color := pieceColor(c.Value)
			dst.SetColored(sx, sy, block[0], color)
			dst.SetColored(sx+1, sy, block[1], color)
		}
	}
}

func (g *Game) drawPanel(dst *core.Screen, x, y int, snap tetris.Snapshot) {
	dst.DrawTextColored(x, y, g.Title(), core.ColorBrightWhite)

	dst.DrawText(x, y+2, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines  %d", snap.RowsCleared))
	dst.DrawText(x, y+4, fmt.Sprintf("Level  %d", snap.Level))
	dst.DrawText(x, y+5, fmt.Sprintf("Speed  %dms", snap.DropIntervalMs))

	if g.levelUpTicks > 0 {
		dst.DrawTextColored(x, y+7, fmt.Sprintf("LEVEL %d!", snap.Level), core.ColorYellow)
	}
	if g.clearTicks > 0 && g.lastClear > 0 {
		dst.DrawTextColored(x, y+8, clearLabel(g.lastClear), core.ColorGreen)
	}
}

func clearLabel(rows int) string {
	switch rows {
	case 1:
		return "Single"
	case 2:
		return "Double"
	case 3:
		return "Triple"
	case 4:
		return "Tetris!"
	default:
		return fmt.Sprintf("%d rows", rows)
	}
}

// drawCenteredMessage draws a message box in the middle of area.
func drawCenteredMessage(dst *core.Screen, area core.Rect, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
