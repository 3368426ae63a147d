// Package platform drives an engine.Game against a frontend: it polls input,
// paces ticks, draws snapshots and records finished runs.
package platform

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/axion/internal/core"
	"github.com/vovakirdan/axion/internal/engine"
	"github.com/vovakirdan/axion/internal/registry"
	"github.com/vovakirdan/axion/internal/storage"
)

// Summary outcomes beyond the stored ones.
const (
	OutcomeWon   = "won"   // Restarted after clearing a level
	OutcomeLimit = "limit" // MaxTicks reached
)

// defaultFrameInterval paces drawing when a tick interval is set but no
// frame interval is.
const defaultFrameInterval = time.Second / 30

// RunRecorder persists finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveScore(mode string, score, level int) (int64, error)
	SaveRun(run storage.Run) error
	HighScore(mode string) (int, error)
}

var _ RunRecorder = (*storage.Store)(nil)

// LoopConfig controls pacing and bookkeeping of a Loop.
type LoopConfig struct {
	TickInterval  time.Duration // 0 = lockstep: one tick per polled frame
	FrameInterval time.Duration
	MaxTicks      uint64                        // Stop after this many ticks in total, 0 = never
	Pace          func(level int) time.Duration // Optional per-level tick interval
	Mode          string                        // Label stored with scores and runs
	Recorder      RunRecorder                   // Optional
	Metrics       *Metrics                      // Optional
	Logger        *log.Logger                   // Optional
}

// Summary describes a finished Loop.Run.
type Summary struct {
	RunID      string // Last run
	Outcome    string
	Level      int
	Score      int
	Fill       float64
	Ticks      uint64 // Across all runs
	Captures   int
	LevelsWon  int
	RunsLost   int
	RunsSaved  int
	LastResult engine.TickResult
}

// Loop owns the game for the duration of Run; nothing else may touch it.
type Loop struct {
	game     *engine.Game
	frontend registry.Frontend
	cfg      LoopConfig
	logger   *log.Logger

	screen  *core.Screen
	frames  *rate.Limiter // nil in lockstep mode
	input   core.InputFrame
	pending engine.Direction
	hud     HUD

	runID   string
	saved   bool // Current run already recorded
	summary Summary
}

// NewLoop creates a loop for one game and frontend.
func NewLoop(game *engine.Game, frontend registry.Frontend, cfg LoopConfig) *Loop {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Mode == "" {
		cfg.Mode = "normal"
	}
	l := &Loop{
		game:     game,
		frontend: frontend,
		cfg:      cfg,
		logger:   logger,
		screen:   core.NewScreen(FrameSize(game.Width(), game.Height())),
		input:    core.NewInputFrame(),
	}
	if !l.lockstep() {
		every := cfg.FrameInterval
		if every <= 0 {
			every = defaultFrameInterval
		}
		l.frames = rate.NewLimiter(rate.Every(every), 1)
	}
	return l
}

// Run plays until the player quits, the context is cancelled or MaxTicks is
// reached. The frontend is not closed.
func (l *Loop) Run(ctx context.Context) (Summary, error) {
	l.startRun()
	if l.cfg.Recorder != nil {
		if best, err := l.cfg.Recorder.HighScore(l.cfg.Mode); err == nil {
			l.hud.HighScore = best
		}
	}

	lastTick := time.Now()
	if err := l.draw(); err != nil {
		return l.summary, err
	}

	for {
		if ctx.Err() != nil {
			l.finish(storage.OutcomeQuit)
			return l.summary, nil
		}

		actions, err := l.frontend.PollInput()
		if err != nil {
			return l.summary, fmt.Errorf("platform: cannot poll input: %w", err)
		}
		l.input.Clear()
		for _, a := range actions {
			l.input.Set(a)
		}

		if l.input.Has(core.ActionQuit) {
			l.finish(storage.OutcomeQuit)
			return l.summary, nil
		}
		l.handleControls()
		if d := toDirection(l.input.Direction); d != engine.DirNone {
			l.pending = d
		}

		if l.game.Status() == engine.StatusPlaying && !l.hud.Paused {
			if l.lockstep() || time.Since(lastTick) >= l.tickInterval() {
				lastTick = time.Now()
				l.step()
			}
		}

		if err := l.draw(); err != nil {
			return l.summary, err
		}

		if l.cfg.MaxTicks > 0 && l.summary.Ticks >= l.cfg.MaxTicks {
			l.finish(OutcomeLimit)
			return l.summary, nil
		}
		if l.frames != nil {
			// A cancelled context is reported at the top of the loop.
			_ = l.frames.Wait(ctx)
		}
	}
}

func (l *Loop) lockstep() bool {
	return l.cfg.TickInterval <= 0
}

func (l *Loop) tickInterval() time.Duration {
	if l.cfg.Pace != nil {
		if d := l.cfg.Pace(l.game.Level()); d > 0 {
			return d
		}
	}
	return l.cfg.TickInterval
}

// handleControls applies pause, restart and level changes. Restart and next
// level only apply once the level is over; Confirm picks whichever fits.
func (l *Loop) handleControls() {
	status := l.game.Status()

	if l.input.Has(core.ActionPause) && status == engine.StatusPlaying {
		l.hud.Paused = !l.hud.Paused
		l.logger.Debug("pause toggled", "paused", l.hud.Paused)
	}
	if status == engine.StatusPlaying {
		return
	}

	confirm := l.input.Has(core.ActionConfirm)
	switch {
	case status == engine.StatusWon && (confirm || l.input.Has(core.ActionNextLevel)):
		l.game.AdvanceLevel()
		l.pending = engine.DirNone
		l.logLevelStart()

	case l.input.Has(core.ActionRestart) || (status == engine.StatusLost && confirm):
		if status == engine.StatusWon {
			l.record(OutcomeWon)
		}
		l.game.Restart()
		l.startRun()
	}
}

// step advances the game by one tick with the pending direction.
func (l *Loop) step() {
	start := time.Now()
	res := l.game.Tick(l.pending)
	elapsed := time.Since(start)
	l.pending = engine.DirNone
	l.summary.Ticks++
	l.summary.LastResult = res

	if m := l.cfg.Metrics; m != nil {
		m.tickDuration.Observe(elapsed.Seconds())
		m.ticks.Inc()
		m.fill.Set(l.game.FillPercentage())
		m.level.Set(float64(l.game.Level()))
		if res.Rejected {
			m.rejected.Inc()
		}
		if res.Captured {
			m.captures.Inc()
			m.cellsCaptured.Add(float64(res.Capture.TrailCells + res.Capture.Filled))
		}
		if res.Status == engine.StatusWon {
			m.levelsCleared.Inc()
		}
	}

	if res.Rejected {
		l.logger.Debug("reversal rejected", "tick", res.Tick)
	}
	if res.Captured {
		l.summary.Captures++
		l.logger.Debug("territory captured",
			"tick", res.Tick,
			"trail", res.Capture.TrailCells,
			"filled", res.Capture.Filled,
			"blocked", res.Capture.Blocked,
			"fill", fmt.Sprintf("%.1f", l.game.FillPercentage()))
	}

	switch res.Status {
	case engine.StatusWon:
		l.summary.LevelsWon++
		l.logger.Info("level cleared",
			"level", l.game.Level(),
			"score", l.game.Score(),
			"fill", fmt.Sprintf("%.1f", l.game.FillPercentage()))
	case engine.StatusLost:
		l.summary.RunsLost++
		l.hud.Cause = res.Cause
		l.logger.Info("run lost", "cause", res.Cause, "level", l.game.Level(), "score", l.game.Score())
		l.record(storage.OutcomeLost)
	}
}

func (l *Loop) startRun() {
	l.runID = uuid.NewString()
	l.saved = false
	l.hud.Paused = false
	l.hud.Cause = engine.LossNone
	l.pending = engine.DirNone
	l.logger.Info("run started", "run", l.runID, "seed", l.game.Seed())
	l.logLevelStart()
}

func (l *Loop) logLevelStart() {
	l.logger.Info("level started",
		"level", l.game.Level(),
		"board", fmt.Sprintf("%dx%d", l.game.Width(), l.game.Height()),
		"balls", len(l.game.Balls()),
		"tick", l.tickInterval())
}

// record saves the current run once. Storage errors are logged, not fatal.
func (l *Loop) record(outcome string) {
	if l.saved || l.game.Ticks() == 0 {
		return
	}
	l.saved = true
	if l.cfg.Metrics != nil {
		l.cfg.Metrics.runs.WithLabelValues(outcome).Inc()
	}

	if l.cfg.Recorder == nil {
		return
	}
	run := storage.Run{
		RunID:   l.runID,
		Mode:    l.cfg.Mode,
		Seed:    l.game.Seed(),
		Level:   l.game.Level(),
		FillPct: l.game.FillPercentage(),
		Score:   l.game.Score(),
		Ticks:   l.game.Ticks(),
		Outcome: outcome,
	}
	if err := l.cfg.Recorder.SaveRun(run); err != nil {
		l.logger.Warn("cannot save run", "run", l.runID, "err", err)
		return
	}
	l.summary.RunsSaved++

	if run.Score > 0 {
		if _, err := l.cfg.Recorder.SaveScore(l.cfg.Mode, run.Score, run.Level); err != nil {
			l.logger.Warn("cannot save score", "err", err)
		} else if run.Score > l.hud.HighScore {
			l.hud.HighScore = run.Score
		}
	}
	l.logger.Info("run saved", "run", l.runID, "outcome", outcome, "score", run.Score)
}

func (l *Loop) finish(outcome string) {
	switch l.game.Status() {
	case engine.StatusWon:
		l.record(OutcomeWon)
	case engine.StatusPlaying:
		l.record(outcome)
	}

	l.summary.RunID = l.runID
	l.summary.Outcome = outcome
	switch l.game.Status() {
	case engine.StatusWon:
		l.summary.Outcome = OutcomeWon
	case engine.StatusLost:
		l.summary.Outcome = storage.OutcomeLost
	}
	l.summary.Level = l.game.Level()
	l.summary.Score = l.game.Score()
	l.summary.Fill = l.game.FillPercentage()
}

// draw snapshots the game and hands the frame to the frontend.
func (l *Loop) draw() error {
	DrawView(l.screen, l.game.Snapshot(), l.hud)
	if err := l.frontend.Render(l.screen); err != nil {
		return fmt.Errorf("platform: cannot render: %w", err)
	}
	return nil
}

// View returns the current snapshot. Only valid while Run is not executing.
func (l *Loop) View() engine.GameView {
	return l.game.Snapshot()
}

func toDirection(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.DirUp
	case core.ActionDown:
		return engine.DirDown
	case core.ActionLeft:
		return engine.DirLeft
	case core.ActionRight:
		return engine.DirRight
	default:
		return engine.DirNone
	}
}
