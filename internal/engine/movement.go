package engine

// LossCause explains a transition to StatusLost.
type LossCause uint8

const (
	LossNone LossCause = iota
	LossSelfIntersect
	LossBallHitPlayer
	LossBallHitTrail
)

// String returns the string representation of a loss cause.
func (c LossCause) String() string {
	switch c {
	case LossNone:
		return "none"
	case LossSelfIntersect:
		return "crossed own trail"
	case LossBallHitPlayer:
		return "ball hit player"
	case LossBallHitTrail:
		return "ball hit trail"
	default:
		return "unknown"
	}
}

type moveOutcome uint8

const (
	moveStill moveOutcome = iota
	moveSafe
	moveDrawing
	moveClosed
	moveSelfHit
)

// moveBalls advances every ball by one step.
func (g *Game) moveBalls() {
	for i := range g.balls {
		g.balls[i].Step(g.grid)
	}
}

// movePlayer advances the player one cell along its heading and marks the
// trail. Moves off the grid are ignored.
func (g *Game) movePlayer() moveOutcome {
	p := &g.player
	if p.Dir == DirNone {
		return moveStill
	}

	next := p.Pos.Step(p.Dir)
	if !g.grid.InBounds(next) {
		return moveStill
	}

	switch g.grid.CellAt(next) {
	case CellTrail:
		return moveSelfHit

	case CellEmpty:
		if !p.Drawing {
			p.startTrail()
		}
		p.Pos = next
		p.Trail = append(p.Trail, next)
		g.grid.SetCell(next, CellTrail)
		return moveDrawing

	default: // CellFilled
		p.Pos = next
		if p.Drawing {
			return moveClosed
		}
		return moveSafe
	}
}

// ballCollision checks post-move ball positions against the player and the
// trail.
func (g *Game) ballCollision() LossCause {
	for _, b := range g.balls {
		if b.Pos == g.player.Pos {
			return LossBallHitPlayer
		}
		if g.grid.CellAt(b.Pos) == CellTrail {
			return LossBallHitTrail
		}
	}
	return LossNone
}
