package platform_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/axion/internal/engine"
	"github.com/vovakirdan/axion/internal/platform"
	"github.com/vovakirdan/axion/internal/platform/ascii"
	"github.com/vovakirdan/axion/internal/storage"
)

type memRecorder struct {
	runs   []storage.Run
	scores []int
	high   int
}

func (m *memRecorder) SaveScore(mode string, score, level int) (int64, error) {
	m.scores = append(m.scores, score)
	return int64(len(m.scores)), nil
}

func (m *memRecorder) SaveRun(run storage.Run) error {
	m.runs = append(m.runs, run)
	return nil
}

func (m *memRecorder) HighScore(mode string) (int, error) {
	return m.high, nil
}

// newGame returns a 40x20 board where every ball near the left border starts
// moving right, so short scripted paths along the left edge are never hit.
func newGame(t *testing.T, target int) *engine.Game {
	t.Helper()
	opts := engine.DefaultOptions(40, 20)
	opts.Seed = 7
	opts.TargetPercentage = target
	opts.Balls.DangerZone = 20
	g, err := engine.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func runScript(t *testing.T, g *engine.Game, script string, cfg platform.LoopConfig) (platform.Summary, string) {
	t.Helper()
	actions, err := ascii.ParseScript(script)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	front := ascii.New(&out, actions, true)

	sum, err := platform.NewLoop(g, front, cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := front.Close(); err != nil {
		t.Fatal(err)
	}
	return sum, out.String()
}

func TestLoopQuitRecordsRun(t *testing.T) {
	rec := &memRecorder{}
	sum, frame := runScript(t, newGame(t, 75), "...", platform.LoopConfig{Recorder: rec, Mode: "easy"})

	if sum.Ticks != 3 || sum.Outcome != storage.OutcomeQuit {
		t.Errorf("summary = %+v, want 3 ticks and quit", sum)
	}
	if len(rec.runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(rec.runs))
	}
	run := rec.runs[0]
	if run.Outcome != storage.OutcomeQuit || run.Ticks != 3 || run.Mode != "easy" || run.Seed != 7 {
		t.Errorf("run = %+v", run)
	}
	if run.RunID != sum.RunID || run.RunID == "" {
		t.Errorf("run id %q, summary %q", run.RunID, sum.RunID)
	}
	if len(rec.scores) != 0 {
		t.Error("zero score should not be saved")
	}
	if !strings.Contains(frame, "Level 1") {
		t.Errorf("final frame missing HUD:\n%s", frame)
	}
}

func TestLoopPauseStopsTicks(t *testing.T) {
	sum, frame := runScript(t, newGame(t, 75), "p..p.", platform.LoopConfig{})
	if sum.Ticks != 2 {
		t.Errorf("Ticks = %d, want 2", sum.Ticks)
	}
	if strings.Contains(frame, "PAUSED") {
		t.Error("final frame should not be paused")
	}

	_, frame = runScript(t, newGame(t, 75), "p", platform.LoopConfig{})
	if !strings.Contains(frame, "PAUSED") {
		t.Errorf("paused frame missing banner:\n%s", frame)
	}
}

func TestLoopMaxTicks(t *testing.T) {
	sum, _ := runScript(t, newGame(t, 75), "20.", platform.LoopConfig{MaxTicks: 5})
	if sum.Ticks != 5 || sum.Outcome != platform.OutcomeLimit {
		t.Errorf("summary = %+v, want 5 ticks and limit", sum)
	}
}

func TestLoopCancelledContext(t *testing.T) {
	rec := &memRecorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	front := ascii.New(&bytes.Buffer{}, nil, true)
	sum, err := platform.NewLoop(newGame(t, 75), front, platform.LoopConfig{Recorder: rec}).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Ticks != 0 || sum.Outcome != storage.OutcomeQuit {
		t.Errorf("summary = %+v", sum)
	}
	if len(rec.runs) != 0 {
		t.Error("a run without ticks should not be saved")
	}
}

func TestLoopRestartIgnoredWhilePlaying(t *testing.T) {
	rec := &memRecorder{}
	sum, _ := runScript(t, newGame(t, 75), ".r.", platform.LoopConfig{Recorder: rec})

	if len(rec.runs) != 1 || rec.runs[0].Ticks != 3 {
		t.Errorf("runs = %+v, want one run of 3 ticks", rec.runs)
	}
	if sum.Ticks != 3 {
		t.Errorf("Ticks = %d, want 3", sum.Ticks)
	}
}

func TestLoopLossThenConfirmRestarts(t *testing.T) {
	rec := &memRecorder{}
	// Right, right, down, left, then up into the first trail cell.
	sum, frame := runScript(t, newGame(t, 75), "RRDLU!.", platform.LoopConfig{Recorder: rec})

	if sum.RunsLost != 1 || sum.Ticks != 7 {
		t.Errorf("summary = %+v, want 1 loss and 7 ticks", sum)
	}
	if len(rec.runs) != 2 {
		t.Fatalf("saved %d runs, want 2", len(rec.runs))
	}
	lost, quit := rec.runs[0], rec.runs[1]
	if lost.Outcome != storage.OutcomeLost || lost.Ticks != 5 {
		t.Errorf("lost run = %+v", lost)
	}
	if quit.Outcome != storage.OutcomeQuit || quit.Ticks != 2 {
		t.Errorf("second run = %+v", quit)
	}
	if lost.RunID == quit.RunID {
		t.Error("restart should start a new run id")
	}
	if strings.Contains(frame, "GAME OVER") {
		t.Error("restarted game still shows game over")
	}
}

func TestLoopLossFrame(t *testing.T) {
	sum, frame := runScript(t, newGame(t, 75), "RRDLU", platform.LoopConfig{})

	if sum.LastResult.Cause != engine.LossSelfIntersect {
		t.Errorf("cause = %v, want self intersection", sum.LastResult.Cause)
	}
	if sum.Outcome != storage.OutcomeLost {
		t.Errorf("Outcome = %q, want lost", sum.Outcome)
	}
	for _, want := range []string{"GAME OVER", "crossed own trail"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q:\n%s", want, frame)
		}
	}
}

func TestLoopWinThenNextLevel(t *testing.T) {
	rec := &memRecorder{}
	// A 3x4 loop off the left border encloses four cells; a 1% target wins.
	sum, frame := runScript(t, newGame(t, 1), "RRRDDDLLLn", platform.LoopConfig{Recorder: rec})

	if sum.LevelsWon != 1 || sum.Captures != 1 {
		t.Errorf("summary = %+v, want one capture and one cleared level", sum)
	}
	if sum.Level != 2 || sum.Score != 1 {
		t.Errorf("level %d score %d, want level 2 score 1", sum.Level, sum.Score)
	}
	if len(rec.runs) != 1 || rec.runs[0].Level != 2 || rec.runs[0].Outcome != storage.OutcomeQuit {
		t.Errorf("runs = %+v", rec.runs)
	}
	if len(rec.scores) != 1 || rec.scores[0] != 1 {
		t.Errorf("scores = %v, want [1]", rec.scores)
	}
	if !strings.Contains(frame, "Level 2") {
		t.Errorf("frame not on level 2:\n%s", frame)
	}
}

func TestLoopQuitAfterWinReportsWon(t *testing.T) {
	rec := &memRecorder{}
	sum, _ := runScript(t, newGame(t, 1), "RRRDDDLLL", platform.LoopConfig{Recorder: rec})

	if sum.Outcome != platform.OutcomeWon || sum.Level != 1 || sum.Score != 1 {
		t.Errorf("summary = %+v, want won on level 1 with score 1", sum)
	}
	if len(rec.runs) != 1 || rec.runs[0].Outcome != sum.Outcome {
		t.Errorf("runs = %+v, want one run stored as %q", rec.runs, sum.Outcome)
	}
}

func TestLoopNextLevelIgnoredAfterLoss(t *testing.T) {
	sum, _ := runScript(t, newGame(t, 75), "RRDLUn", platform.LoopConfig{})
	if sum.Level != 1 || sum.Outcome != storage.OutcomeLost {
		t.Errorf("summary = %+v, want level 1 lost", sum)
	}
}

func TestLoopMetrics(t *testing.T) {
	m := platform.NewMetrics()
	runScript(t, newGame(t, 1), "RRRDDDLLLn", platform.LoopConfig{Metrics: m})

	path := t.TempDir() + "/axion.prom"
	if err := m.WriteTextfile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"axion_ticks_total 10",
		"axion_captures_total 1",
		"axion_cells_captured_total 12",
		"axion_levels_cleared_total 1",
		`axion_runs_total{outcome="quit"} 1`,
		"axion_level 2",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics missing %q:\n%s", want, data)
		}
	}
}

func TestLoopPacedByClock(t *testing.T) {
	cfg := platform.LoopConfig{
		TickInterval:  2 * time.Millisecond,
		FrameInterval: time.Millisecond,
		MaxTicks:      3,
	}
	sum, _ := runScript(t, newGame(t, 75), "500.", cfg)
	if sum.Outcome != platform.OutcomeLimit || sum.Ticks != 3 {
		t.Errorf("summary = %+v, want the tick limit", sum)
	}
}
