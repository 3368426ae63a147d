package core

import (
	"testing"
	"time"
)

func TestInputFrameKeepsLastDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	if f.Direction != ActionLeft {
		t.Errorf("Direction = %v, want Left", f.Direction)
	}
	if !f.Has(ActionPause) || !f.Has(ActionUp) {
		t.Error("expected control and direction flags to be recorded")
	}

	f.Clear()
	if !f.Empty() || f.Direction != ActionNone {
		t.Errorf("Clear() left %v / %v", f.Actions, f.Direction)
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	if !f.Empty() {
		t.Error("ActionNone should not be recorded")
	}
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
}

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionConfirm, false},
		{ActionQuit, false},
	}
	for _, tt := range tests {
		if got := tt.action.IsDirection(); got != tt.want {
			t.Errorf("%v.IsDirection() = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestRuntimeConfigIntervals(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 100ms", cfg.TickInterval())
	}

	cfg.TickRate = 0
	if cfg.TickInterval() != 0 {
		t.Errorf("TickRate 0 should mean lockstep, got %v", cfg.TickInterval())
	}

	cfg.Seed = 42
	if cfg.ResolveSeed() != 42 {
		t.Errorf("ResolveSeed() = %d, want 42", cfg.ResolveSeed())
	}
}
