package engine

// PlayerView is the read-only player part of a GameView.
type PlayerView struct {
	Pos     Position
	Dir     Direction
	Drawing bool
	Trail   []Position
}

// BallView is the read-only ball part of a GameView.
type BallView struct {
	Pos Position
	DX  int
	DY  int
}

// GameView is an immutable copy of the game state taken between ticks.
// Renderers consume it; nothing in it aliases engine memory.
type GameView struct {
	Width            int
	Height           int
	Cells            []CellState // row-major, len Width*Height
	Player           PlayerView
	Balls            []BallView
	Status           Status
	Level            int
	Score            int
	Tick             uint64
	FillPercentage   float64
	TargetPercentage int
}

// Snapshot captures the complete post-tick state.
func (g *Game) Snapshot() GameView {
	p := g.player.clone()
	balls := make([]BallView, len(g.balls))
	for i, b := range g.balls {
		balls[i] = BallView{Pos: b.Pos, DX: b.DX, DY: b.DY}
	}
	return GameView{
		Width:  g.grid.W,
		Height: g.grid.H,
		Cells:  g.grid.Cells(),
		Player: PlayerView{
			Pos:     p.Pos,
			Dir:     p.Dir,
			Drawing: p.Drawing,
			Trail:   p.Trail,
		},
		Balls:            balls,
		Status:           g.status,
		Level:            g.level,
		Score:            g.score,
		Tick:             g.tick,
		FillPercentage:   g.grid.FillPercentage(),
		TargetPercentage: g.opts.TargetPercentage,
	}
}

// InBounds returns true if p lies on the viewed board.
func (v GameView) InBounds(p Position) bool {
	return p.X >= 0 && p.X < v.Width && p.Y >= 0 && p.Y < v.Height
}

// CellAt returns the cell at p. Returns CellFilled outside the board, which
// is what the border looks like from a renderer's point of view.
func (v GameView) CellAt(p Position) CellState {
	if !v.InBounds(p) {
		return CellFilled
	}
	return v.Cells[p.Y*v.Width+p.X]
}

// BallAt returns true if any ball occupies p.
func (v GameView) BallAt(p Position) bool {
	for _, b := range v.Balls {
		if b.Pos == p {
			return true
		}
	}
	return false
}
