package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axion/internal/core"
	"github.com/vovakirdan/axion/internal/engine"
	"github.com/vovakirdan/axion/internal/platform"
	"github.com/vovakirdan/axion/internal/platform/ascii"
	"github.com/vovakirdan/axion/internal/platform/picture"
)

const (
	simDefaultWidth  = 40
	simDefaultHeight = 20
)

var (
	flagScript     string
	flagScriptFile string
	flagMaxTicks   uint64
	flagAllFrames  bool
	flagRecord     bool
	flagPNG        string
	flagMetrics    string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game headless",
	Long: `Run a game without a terminal UI. One script symbol is consumed per tick:

  U D L R  steer        .  no input
  !        confirm      r  restart
  n        next level   p  pause
  q        quit

A number repeats the next symbol: "5R3D" is "RRRRRDDD". The run ends when the
script is exhausted or --max-ticks is reached. The same seed and script always
produce the same result.

Examples:
  axion sim --seed 42 --script "5R3D5L"
  axion sim --seed 7 --script-file moves.txt --frames
  axion sim --seed 7 --script "20." --record
  axion sim --seed 7 --script "5R3D5L" --png board.png --metrics-file sim.prom`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script")
	simCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Read the input script from a file")
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 10000, "Stop after this many ticks (0 = no limit)")
	simCmd.Flags().BoolVar(&flagAllFrames, "frames", false, "Print every changed frame instead of only the last")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run to the scores database")
	simCmd.Flags().StringVar(&flagPNG, "png", "", "Also save the final board as a PNG image")
	simCmd.Flags().StringVar(&flagMetrics, "metrics-file", "", "Write Prometheus metrics of the run to this file")
}

func readScript() (string, error) {
	if flagScriptFile == "" {
		return flagScript, nil
	}
	data, err := os.ReadFile(flagScriptFile)
	if err != nil {
		return "", fmt.Errorf("cannot read script: %w", err)
	}
	return flagScript + string(data), nil
}

func runSim(cmd *cobra.Command, args []string) error {
	text, err := readScript()
	if err != nil {
		return err
	}
	script, err := ascii.ParseScript(text)
	if err != nil {
		return err
	}

	cfg, preset, err := loadSettings()
	if err != nil {
		return err
	}
	w, h := cfg.Board.Width, cfg.Board.Height
	if w == 0 {
		w = simDefaultWidth
	}
	if h == 0 {
		h = simDefaultHeight
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.RuntimeConfig{Seed: flagSeed}
	game, err := engine.New(cfg.EngineOptions(w, h, rt.ResolveSeed()))
	if err != nil {
		return err
	}

	loopCfg := platform.LoopConfig{
		MaxTicks: flagMaxTicks,
		Mode:     "sim-" + string(preset),
		Logger:   logger,
	}
	if flagRecord {
		store, recorder := openRecorder(logger)
		if store != nil {
			defer store.Close()
		}
		loopCfg.Recorder = recorder
	}
	if flagMetrics != "" {
		loopCfg.Metrics = platform.NewMetrics()
	}

	out := cmd.OutOrStdout()
	frontend := ascii.New(out, script, !flagAllFrames)
	if err := frontend.Init(rt); err != nil {
		return err
	}

	sum, runErr := platform.NewLoop(game, frontend, loopCfg).Run(context.Background())
	if err := frontend.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	if flagPNG != "" {
		if err := picture.SavePNG(flagPNG, game.Snapshot(), picture.DefaultCellSize); err != nil {
			return err
		}
	}
	if loopCfg.Metrics != nil {
		if err := loopCfg.Metrics.WriteTextfile(flagMetrics); err != nil {
			return err
		}
	}

	printSummary(out, game.Seed(), sum)
	return nil
}

func printSummary(w io.Writer, seed int64, sum platform.Summary) {
	fmt.Fprintln(w, strings.Repeat("=", 24))
	fmt.Fprintf(w, "%-10s %s\n", "run", sum.RunID)
	fmt.Fprintf(w, "%-10s %d\n", "seed", seed)
	fmt.Fprintf(w, "%-10s %s\n", "outcome", sum.Outcome)
	if sum.LastResult.Cause != engine.LossNone {
		fmt.Fprintf(w, "%-10s %s\n", "cause", sum.LastResult.Cause)
	}
	fmt.Fprintf(w, "%-10s %d\n", "level", sum.Level)
	fmt.Fprintf(w, "%-10s %d\n", "score", sum.Score)
	fmt.Fprintf(w, "%-10s %.2f%%\n", "fill", sum.Fill)
	fmt.Fprintf(w, "%-10s %d\n", "ticks", sum.Ticks)
	fmt.Fprintf(w, "%-10s %d\n", "captures", sum.Captures)
	fmt.Fprintf(w, "%-10s %d\n", "cleared", sum.LevelsWon)
}
