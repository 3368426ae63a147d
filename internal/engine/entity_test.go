package engine

import "testing"

func TestBallStep(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(g *Grid)
		ball    Ball
		wantPos Position
		wantDX  int
		wantDY  int
	}{
		{
			name:    "free diagonal",
			ball:    NewBall(P(3, 3), 1, 1),
			wantPos: P(4, 4), wantDX: 1, wantDY: 1,
		},
		{
			name:    "corner flips both and stays",
			ball:    NewBall(P(1, 1), -1, -1),
			wantPos: P(1, 1), wantDX: 1, wantDY: 1,
		},
		{
			name:    "wall on x flips x only",
			ball:    NewBall(P(1, 3), -1, 1),
			wantPos: P(1, 3), wantDX: 1, wantDY: 1,
		},
		{
			name:    "wall on y flips y only",
			ball:    NewBall(P(3, 5), 1, 1),
			wantPos: P(3, 5), wantDX: 1, wantDY: -1,
		},
		{
			name:    "blocked diagonal flips both",
			setup:   func(g *Grid) { g.SetCell(P(4, 4), CellFilled) },
			ball:    NewBall(P(3, 3), 1, 1),
			wantPos: P(3, 3), wantDX: -1, wantDY: -1,
		},
		{
			name:    "trail does not block",
			setup:   func(g *Grid) { g.SetCell(P(4, 4), CellTrail) },
			ball:    NewBall(P(3, 3), 1, 1),
			wantPos: P(4, 4), wantDX: 1, wantDY: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(7, 7)
			if tt.setup != nil {
				tt.setup(g)
			}
			b := tt.ball
			b.Step(g)

			if b.Pos != tt.wantPos {
				t.Errorf("Pos = %v, want %v", b.Pos, tt.wantPos)
			}
			if b.DX != tt.wantDX || b.DY != tt.wantDY {
				t.Errorf("velocity = (%d,%d), want (%d,%d)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestPlayerAttemptMove(t *testing.T) {
	p := NewPlayer(P(0, 3))

	if err := p.AttemptMove(DirRight); err != nil {
		t.Fatalf("AttemptMove(Right) on safe ground: %v", err)
	}
	if err := p.AttemptMove(DirLeft); err != nil {
		t.Errorf("reversal on safe ground should be allowed, got %v", err)
	}

	p.Dir = DirRight
	p.startTrail()
	if err := p.AttemptMove(DirLeft); err != ErrMoveRejected {
		t.Errorf("reversal while drawing: got %v, want ErrMoveRejected", err)
	}
	if p.Dir != DirRight {
		t.Errorf("rejected move changed heading to %v", p.Dir)
	}
	if err := p.AttemptMove(DirNone); err != nil || p.Dir != DirRight {
		t.Errorf("DirNone should keep the heading, got %v (err %v)", p.Dir, err)
	}
	if err := p.AttemptMove(DirUp); err != nil || p.Dir != DirUp {
		t.Errorf("perpendicular turn while drawing: got %v (err %v)", p.Dir, err)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirNone:  DirNone,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}
