package tcellui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/axion/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{tcell.KeyUp, 0, core.ActionUp},
		{tcell.KeyRune, 's', core.ActionDown},
		{tcell.KeyRune, 'h', core.ActionLeft},
		{tcell.KeyRight, 0, core.ActionRight},
		{tcell.KeyEnter, 0, core.ActionConfirm},
		{tcell.KeyRune, ' ', core.ActionConfirm},
		{tcell.KeyRune, 'r', core.ActionRestart},
		{tcell.KeyRune, 'n', core.ActionNextLevel},
		{tcell.KeyEscape, 0, core.ActionPause},
		{tcell.KeyRune, 'q', core.ActionQuit},
		{tcell.KeyCtrlC, 0, core.ActionQuit},
		{tcell.KeyRune, 'x', core.ActionNone},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
		if got := mapKey(ev); got != tt.want {
			t.Errorf("mapKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestRenderAndInput(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	f := New(sim)
	if err := f.Init(core.DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	sim.SetSize(20, 5)

	frame := core.NewScreen(10, 2)
	frame.DrawText(0, 0, "axion", core.ColorRed)
	if err := f.Render(frame); err != nil {
		t.Fatal(err)
	}

	r, _, style, _ := sim.GetContent(1, 0)
	if r != 'x' {
		t.Errorf("cell (1,0) = %q, want 'x'", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorRed {
		t.Errorf("cell color = %v, want red", fg)
	}

	sim.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		actions, err := f.PollInput()
		if err != nil {
			t.Fatal(err)
		}
		if len(actions) > 0 {
			if actions[0] != core.ActionRight {
				t.Errorf("got %v, want right", actions[0])
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("injected key never arrived")
}

func TestRenderBeforeInit(t *testing.T) {
	f := New(tcell.NewSimulationScreen("UTF-8"))
	if err := f.Render(core.NewScreen(1, 1)); err == nil {
		t.Error("expected an error before Init")
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close before Init: %v", err)
	}
}
