// Package engine implements the territory-capture simulation: grid, player,
// bouncing balls, trail tracking, collisions and the flood-fill capture.
// It is UI-agnostic and deterministic for a given seed and input sequence.
package engine

import (
	"errors"
	"fmt"
)

// ErrMoveRejected is returned when the player tries to reverse onto its own
// trail while drawing.
var ErrMoveRejected = errors.New("engine: cannot reverse while drawing")

// Direction is a player heading. DirNone means stationary.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reversed direction. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Position is a cell coordinate. X is the column, Y is the row.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Manhattan returns the Manhattan distance to another position.
func (p Position) Manhattan(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Player is the cursor that cuts trails through empty space.
type Player struct {
	Pos     Position
	Dir     Direction
	Drawing bool       // true while traversing empty cells
	Trail   []Position // Trail cells in visiting order
}

// NewPlayer returns a stationary player on safe territory.
func NewPlayer(pos Position) Player {
	return Player{Pos: pos, Dir: DirNone}
}

// AttemptMove changes the heading. A 180° reversal while drawing is rejected
// with ErrMoveRejected and leaves the player untouched. DirNone is ignored.
func (p *Player) AttemptMove(d Direction) error {
	if d == DirNone {
		return nil
	}
	if p.Drawing && d == p.Dir.Opposite() {
		return ErrMoveRejected
	}
	p.Dir = d
	return nil
}

func (p *Player) startTrail() {
	p.Drawing = true
	p.Trail = p.Trail[:0]
}

func (p *Player) clearTrail() {
	p.Drawing = false
	p.Trail = p.Trail[:0]
}

// clone returns a copy that does not share the trail slice.
func (p Player) clone() Player {
	c := p
	c.Trail = append([]Position(nil), p.Trail...)
	return c
}

// Ball is a bouncing enemy. DX and DY are each -1 or +1.
type Ball struct {
	Pos Position
	DX  int
	DY  int
}

// NewBall creates a ball at pos moving by (dx, dy) per tick.
func NewBall(pos Position, dx, dy int) Ball {
	return Ball{Pos: pos, DX: dx, DY: dy}
}

// Step advances the ball one cell. Each axis is checked once: a blocked axis
// (Filled or off-grid) is inverted and the ball stays put this tick. When both
// axes are clear but the diagonal destination is Filled, both are inverted.
// Trail cells do not block.
func (b *Ball) Step(g *Grid) {
	blockedX := g.blocksBall(b.Pos.Add(b.DX, 0))
	blockedY := g.blocksBall(b.Pos.Add(0, b.DY))

	if blockedX {
		b.DX = -b.DX
	}
	if blockedY {
		b.DY = -b.DY
	}
	if blockedX || blockedY {
		return
	}

	next := b.Pos.Add(b.DX, b.DY)
	if g.blocksBall(next) {
		b.DX, b.DY = -b.DX, -b.DY
		return
	}
	b.Pos = next
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
