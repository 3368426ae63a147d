// Package picture renders a GameView as a raster image, for sharing the
// final board of a run or attaching it to a bug report.
package picture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/axion/internal/engine"
)

// DefaultCellSize is the edge of one grid cell in pixels.
const DefaultCellSize = 12

// Palette colors.
var (
	ColorBackground = color.RGBA{12, 12, 28, 255}
	ColorBorder     = color.RGBA{40, 70, 160, 255}
	ColorFilled     = color.RGBA{40, 150, 170, 255}
	ColorTrail      = color.RGBA{230, 200, 60, 255}
	ColorPlayer     = color.RGBA{90, 230, 90, 255}
	ColorBall       = color.RGBA{230, 60, 60, 255}
)

// Render draws v with cell pixels per grid cell.
func Render(v engine.GameView, cell int) image.Image {
	if cell <= 0 {
		cell = DefaultCellSize
	}
	size := float64(cell)
	dc := gg.NewContext(v.Width*cell, v.Height*cell)

	dc.SetColor(ColorBackground)
	dc.Clear()

	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			p := engine.P(x, y)
			switch v.CellAt(p) {
			case engine.CellFilled:
				if x == 0 || y == 0 || x == v.Width-1 || y == v.Height-1 {
					dc.SetColor(ColorBorder)
				} else {
					dc.SetColor(ColorFilled)
				}
			case engine.CellTrail:
				dc.SetColor(ColorTrail)
			default:
				continue
			}
			dc.DrawRectangle(float64(x)*size, float64(y)*size, size, size)
			dc.Fill()
		}
	}

	dc.SetColor(ColorBall)
	for _, b := range v.Balls {
		dc.DrawCircle((float64(b.Pos.X)+0.5)*size, (float64(b.Pos.Y)+0.5)*size, size*0.4)
		dc.Fill()
	}

	inset := size / 6
	dc.SetColor(ColorPlayer)
	dc.DrawRectangle(float64(v.Player.Pos.X)*size+inset, float64(v.Player.Pos.Y)*size+inset, size-2*inset, size-2*inset)
	dc.Fill()

	return dc.Image()
}

// SavePNG writes the rendered view to path.
func SavePNG(path string, v engine.GameView, cell int) error {
	if err := gg.SavePNG(path, Render(v, cell)); err != nil {
		return fmt.Errorf("picture: cannot save %s: %w", path, err)
	}
	return nil
}
