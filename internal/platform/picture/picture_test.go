package picture

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/axion/internal/engine"
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestRender(t *testing.T) {
	g, err := engine.NewGame(7, 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	v := g.Snapshot()
	v.Balls = nil
	v.Cells[2*7+2] = engine.CellTrail

	const cell = 10
	img := Render(v, cell)
	if b := img.Bounds(); b.Dx() != 70 || b.Dy() != 70 {
		t.Fatalf("bounds = %v, want 70x70", b)
	}

	center := func(x, y int) color.RGBA {
		return rgba(img.At(x*cell+cell/2, y*cell+cell/2))
	}
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"border", 3, 0, ColorBorder},
		{"empty", 4, 4, ColorBackground},
		{"trail", 2, 2, ColorTrail},
		{"player", 0, 3, ColorPlayer},
	}
	for _, tt := range tests {
		if got := center(tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSavePNG(t *testing.T) {
	g, err := engine.NewGame(10, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "board.png")
	if err := SavePNG(path, g.Snapshot(), 0); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" || cfg.Width != 10*DefaultCellSize || cfg.Height != 8*DefaultCellSize {
		t.Errorf("decoded %s %dx%d", format, cfg.Width, cfg.Height)
	}
}
