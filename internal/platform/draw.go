package platform

import (
	"fmt"

	"github.com/vovakirdan/axion/internal/core"
	"github.com/vovakirdan/axion/internal/engine"
)

// HUDRows is the number of text lines drawn under the board.
const HUDRows = 2

// cellWidth is the number of columns one grid cell takes. Terminal glyphs
// are about twice as tall as wide.
const cellWidth = 2

// HUD is the loop state shown next to a GameView.
type HUD struct {
	Paused    bool
	Cause     engine.LossCause
	HighScore int
}

type glyph struct {
	text  string
	color core.Color
}

var (
	glyphBorder = glyph{"██", core.ColorBlue}
	glyphFilled = glyph{"██", core.ColorCyan}
	glyphEmpty  = glyph{"  ", core.ColorDefault}
	glyphTrail  = glyph{"░░", core.ColorYellow}
	glyphPlayer = glyph{"▐▌", core.ColorGreen}
	glyphBall   = glyph{"()", core.ColorRed}
)

// FrameSize returns the screen size needed for a w×h board.
func FrameSize(w, h int) (cols, rows int) {
	return w * cellWidth, h + HUDRows
}

// DrawView draws a snapshot and its HUD into s, which should be at least
// FrameSize(v.Width, v.Height).
func DrawView(s *core.Screen, v engine.GameView, hud HUD) {
	s.Clear()

	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			drawGlyph(s, x, y, cellGlyph(v, engine.P(x, y)))
		}
	}
	for _, b := range v.Balls {
		drawGlyph(s, b.Pos.X, b.Pos.Y, glyphBall)
	}
	drawGlyph(s, v.Player.Pos.X, v.Player.Pos.Y, glyphPlayer)

	drawHUD(s, v, hud)
	if msg := bannerText(v, hud); msg != "" {
		drawBanner(s, v, msg)
	}
}

func cellGlyph(v engine.GameView, p engine.Position) glyph {
	switch v.CellAt(p) {
	case engine.CellFilled:
		if p.X == 0 || p.Y == 0 || p.X == v.Width-1 || p.Y == v.Height-1 {
			return glyphBorder
		}
		return glyphFilled
	case engine.CellTrail:
		return glyphTrail
	default:
		return glyphEmpty
	}
}

func drawGlyph(s *core.Screen, x, y int, g glyph) {
	s.DrawText(x*cellWidth, y, g.text, g.color)
}

func drawHUD(s *core.Screen, v engine.GameView, hud HUD) {
	row := v.Height
	stats := fmt.Sprintf("Level %d  Fill %.1f%%/%d%%  Score %d  Balls %d",
		v.Level, v.FillPercentage, v.TargetPercentage, v.Score, len(v.Balls))
	if hud.HighScore > 0 {
		stats += fmt.Sprintf("  Best %d", hud.HighScore)
	}
	s.DrawText(0, row, stats, core.ColorWhite)

	help, color := "Arrows/WASD move  P pause  Q quit", core.ColorGray
	switch {
	case v.Status == engine.StatusWon:
		help, color = "Level cleared! Enter/N next level  R restart  Q quit", core.ColorGreen
	case v.Status == engine.StatusLost:
		help, color = "Game over: "+hud.Cause.String()+". Enter/R restart  Q quit", core.ColorRed
	case hud.Paused:
		help, color = "Paused. P resume  Q quit", core.ColorYellow
	}
	s.DrawText(0, row+1, help, color)
}

func bannerText(v engine.GameView, hud HUD) string {
	switch {
	case v.Status == engine.StatusWon:
		return fmt.Sprintf("LEVEL %d CLEARED", v.Level)
	case v.Status == engine.StatusLost:
		return "GAME OVER"
	case hud.Paused:
		return "PAUSED"
	default:
		return ""
	}
}

// drawBanner centers a boxed message over the board.
func drawBanner(s *core.Screen, v engine.GameView, msg string) {
	boardW := v.Width * cellWidth
	w := len(msg) + 4
	if w > boardW || v.Height < 3 {
		return
	}
	r := core.Rect{X: (boardW - w) / 2, Y: v.Height/2 - 1, W: w, H: 3}
	s.FillRect(r, core.Cell{Rune: ' '})
	s.DrawBox(r, core.ColorWhite)
	s.DrawText(r.X+2, r.Y+1, msg, core.ColorWhite)
}
