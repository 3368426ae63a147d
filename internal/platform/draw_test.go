package platform_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/axion/internal/core"
	"github.com/vovakirdan/axion/internal/engine"
	"github.com/vovakirdan/axion/internal/platform"
)

func TestFrameSize(t *testing.T) {
	w, h := platform.FrameSize(40, 20)
	if w != 80 || h != 20+platform.HUDRows {
		t.Errorf("FrameSize(40, 20) = %dx%d", w, h)
	}
}

func TestDrawView(t *testing.T) {
	g, err := engine.NewGame(7, 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	v := g.Snapshot()
	s := core.NewScreen(platform.FrameSize(7, 7))
	platform.DrawView(s, v, platform.HUD{})

	if got := s.Row(0); got != strings.Repeat("█", 14) {
		t.Errorf("top border = %q", got)
	}
	if c := s.GetCell(0, 0); c.Color != core.ColorBlue {
		t.Errorf("border color = %v, want blue", c.Color)
	}

	// Player starts on the left border, middle row.
	row := []rune(s.Row(3))
	if string(row[0:2]) != "▐▌" {
		t.Errorf("row 3 = %q, want the player at column 0", string(row))
	}
	if c := s.GetCell(0, 3); c.Color != core.ColorGreen {
		t.Errorf("player color = %v, want green", c.Color)
	}

	for _, b := range v.Balls {
		if c := s.GetCell(b.Pos.X*2, b.Pos.Y); c.Rune != '(' || c.Color != core.ColorRed {
			t.Errorf("ball at %v drawn as %q", b.Pos, c.Rune)
		}
	}

	// The HUD is clipped to the board width.
	if hud := s.Row(7); !strings.HasPrefix(hud, "Level 1") {
		t.Errorf("HUD row = %q", hud)
	}
}

func TestDrawHUD(t *testing.T) {
	g, err := engine.NewGame(40, 20, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := core.NewScreen(platform.FrameSize(40, 20))
	platform.DrawView(s, g.Snapshot(), platform.HUD{HighScore: 42})

	hud := s.Row(20)
	for _, want := range []string{"Level 1", "Fill 0.0%/75%", "Score 0", "Balls 3", "Best 42"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD row %q missing %q", hud, want)
		}
	}
	if !strings.Contains(s.Row(21), "Q quit") {
		t.Errorf("help row = %q", s.Row(21))
	}
}

func TestDrawViewBanners(t *testing.T) {
	g, err := engine.NewGame(20, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	v := g.Snapshot()

	tests := []struct {
		name   string
		status engine.Status
		hud    platform.HUD
		want   []string
	}{
		{"playing", engine.StatusPlaying, platform.HUD{}, []string{"P pause"}},
		{"paused", engine.StatusPlaying, platform.HUD{Paused: true}, []string{"PAUSED", "P resume"}},
		{"won", engine.StatusWon, platform.HUD{}, []string{"LEVEL 1 CLEARED", "next level"}},
		{"lost", engine.StatusLost, platform.HUD{Cause: engine.LossBallHitTrail}, []string{"GAME OVER", "Game over: "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(platform.FrameSize(20, 10))
			view := v
			view.Status = tt.status
			platform.DrawView(s, view, tt.hud)

			out := s.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("frame missing %q:\n%s", want, out)
				}
			}
		})
	}
}
