package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Board limits and rule defaults.
const (
	MinBoardSize            = 5
	DefaultTargetPercentage = 75
)

// Status is the state machine position of a Game.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// BallPolicy controls how many balls a level gets and where they may spawn.
type BallPolicy struct {
	AreaPerBall      int // Level 1: one ball per this many board cells
	Base             int // Later levels: Base + PerLevel*level balls
	PerLevel         int
	MinSpawnDistance int // Manhattan distance kept from the player
	DangerZone       int // Balls spawned ahead of the player move away from it
}

// DefaultBallPolicy returns the classic ball scaling.
func DefaultBallPolicy() BallPolicy {
	return BallPolicy{
		AreaPerBall:      267,
		Base:             2,
		PerLevel:         1,
		MinSpawnDistance: 5,
		DangerZone:       10,
	}
}

// Count returns the ball count for a level on a w×h board.
func (bp BallPolicy) Count(level, w, h int) int {
	if level <= 1 {
		n := 1
		if bp.AreaPerBall > 0 {
			n = int(math.Round(float64(w*h) / float64(bp.AreaPerBall)))
		}
		return max(1, n)
	}
	return max(1, bp.Base+bp.PerLevel*level)
}

// Options configures a Game.
type Options struct {
	Width            int
	Height           int
	StartLevel       int // 1-indexed
	Seed             int64
	TargetPercentage int
	SealPolicy       SealPolicy
	Balls            BallPolicy
}

// DefaultOptions returns options for a w×h board starting at level 1.
func DefaultOptions(w, h int) Options {
	return Options{
		Width:            w,
		Height:           h,
		StartLevel:       1,
		TargetPercentage: DefaultTargetPercentage,
		SealPolicy:       SealKeep,
		Balls:            DefaultBallPolicy(),
	}
}

// Validate reports unusable options.
func (o Options) Validate() error {
	var errs []error
	if o.Width < MinBoardSize || o.Height < MinBoardSize {
		errs = append(errs, fmt.Errorf("engine: board %dx%d is smaller than %dx%d",
			o.Width, o.Height, MinBoardSize, MinBoardSize))
	}
	if o.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("engine: start level %d must be >= 1", o.StartLevel))
	}
	if o.TargetPercentage <= 0 || o.TargetPercentage > 100 {
		errs = append(errs, fmt.Errorf("engine: target percentage %d outside (0, 100]", o.TargetPercentage))
	}
	if _, err := ParseSealPolicy(string(o.SealPolicy)); err != nil {
		errs = append(errs, err)
	}
	if o.Balls.AreaPerBall < 0 || o.Balls.Base < 0 || o.Balls.PerLevel < 0 {
		errs = append(errs, errors.New("engine: ball policy values must not be negative"))
	}
	return errors.Join(errs...)
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Tick     uint64
	Rejected bool // the input direction was a reversal while drawing
	Captured bool
	Capture  CaptureResult
	Cause    LossCause
	Status   Status
}

// Game is the territory-capture state machine. It is owned by a single
// caller and is not safe for concurrent use.
type Game struct {
	opts   Options
	rng    *rand.Rand
	grid   *Grid
	player Player
	balls  []Ball
	status Status
	level  int
	score  int
	tick   uint64
}

// NewGame creates a game with default rules.
func NewGame(width, height, startingLevel int) (*Game, error) {
	opts := DefaultOptions(width, height)
	opts.StartLevel = startingLevel
	return New(opts)
}

// New creates a game from options and starts its first level.
func New(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.SealPolicy, _ = ParseSealPolicy(string(opts.SealPolicy))

	g := &Game{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		grid: NewGrid(opts.Width, opts.Height),
	}
	g.startLevel(opts.StartLevel)
	return g, nil
}

// startLevel resets the grid, the player and the balls.
func (g *Game) startLevel(level int) {
	g.level = level
	g.status = StatusPlaying
	g.grid.Reset()
	g.player = NewPlayer(g.startPosition())
	g.balls = g.balls[:0]
	g.spawnBalls(g.opts.Balls.Count(level, g.grid.W, g.grid.H))
}

// startPosition is the middle of the left border.
func (g *Game) startPosition() Position {
	return P(0, g.grid.H/2)
}

// Tick applies at most one direction change and advances the simulation one
// step: balls, player, collisions, capture, win check. Calling Tick when the
// game is not playing is a caller bug and panics.
func (g *Game) Tick(input Direction) TickResult {
	if g.status != StatusPlaying {
		panic(fmt.Sprintf("engine: Tick called on a %s game; Restart or AdvanceLevel first", g.status))
	}

	g.tick++
	res := TickResult{Tick: g.tick}

	if err := g.player.AttemptMove(input); errors.Is(err, ErrMoveRejected) {
		res.Rejected = true
	}

	g.moveBalls()

	outcome := g.movePlayer()
	if outcome == moveSelfHit {
		return g.lose(res, LossSelfIntersect)
	}
	if cause := g.ballCollision(); cause != LossNone {
		return g.lose(res, cause)
	}

	if outcome == moveClosed {
		res.Captured = true
		res.Capture = g.capture()
		g.score += int(g.grid.FillPercentage())
		if g.grid.FilledCount()*100 >= g.opts.TargetPercentage*g.grid.Interior() {
			g.status = StatusWon
		}
	}

	res.Status = g.status
	return res
}

func (g *Game) lose(res TickResult, cause LossCause) TickResult {
	g.status = StatusLost
	res.Cause = cause
	res.Status = g.status
	return res
}

// Restart returns to the starting level with a zero score.
// Panics while the game is still playing.
func (g *Game) Restart() {
	g.requireFinished("Restart")
	g.score = 0
	g.tick = 0
	g.startLevel(g.opts.StartLevel)
}

// AdvanceLevel moves to the next level with more balls, keeping the score.
// Panics while the game is still playing.
func (g *Game) AdvanceLevel() {
	g.requireFinished("AdvanceLevel")
	g.startLevel(g.level + 1)
}

func (g *Game) requireFinished(op string) {
	if g.status == StatusPlaying {
		panic(fmt.Sprintf("engine: %s called while playing", op))
	}
}

// Status returns the current state machine position.
func (g *Game) Status() Status { return g.status }

// Level returns the 1-indexed level.
func (g *Game) Level() int { return g.level }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Ticks returns the number of ticks since the last restart.
func (g *Game) Ticks() uint64 { return g.tick }

// Width returns the board width in cells.
func (g *Game) Width() int { return g.grid.W }

// Height returns the board height in cells.
func (g *Game) Height() int { return g.grid.H }

// FillPercentage returns the captured share of the interior.
func (g *Game) FillPercentage() float64 { return g.grid.FillPercentage() }

// TargetPercentage returns the fill needed to win a level.
func (g *Game) TargetPercentage() int { return g.opts.TargetPercentage }

// Seed returns the RNG seed the game was created with.
func (g *Game) Seed() int64 { return g.opts.Seed }

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player.clone() }

// Balls returns a copy of the balls.
func (g *Game) Balls() []Ball { return append([]Ball(nil), g.balls...) }
