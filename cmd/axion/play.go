package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/axion/internal/config"
	"github.com/vovakirdan/axion/internal/core"
	"github.com/vovakirdan/axion/internal/engine"
	"github.com/vovakirdan/axion/internal/platform"
	"github.com/vovakirdan/axion/internal/platform/ascii"
	"github.com/vovakirdan/axion/internal/registry"
	"github.com/vovakirdan/axion/internal/storage"
)

// Extra rows the TUI draws under the frame (key help).
const tuiFooterRows = 2

var (
	flagRenderer   string
	flagDifficulty string
	flagLevel      int
	flagWidth      int
	flagHeight     int
	flagPlayScript string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start a game. The board fits the terminal unless a size is configured.

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Next level after a win, restart after a loss
  N            - Next level (after a win)
  R            - Restart (after a win or loss)
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 65% target, fewer balls, slow start
  normal - Start at 30% speed, speeds up per level
  hard   - 80% target, more balls per level, fast start
  fixed  - No speed progression

Examples:
  axion play
  axion play --difficulty hard --level 3
  axion play --width 30 --height 20
  axion play --renderer ascii --script "5R3D5L"`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "tui", "Frontend to use (see 'axion renderers')")
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagPlayScript, "script", "", "Scripted input for the ascii renderer")
}

// addGameFlags registers the flags shared by play and sim.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = config)")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = config)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = config)")
}

// loadSettings loads the config and applies the preset and flag overrides.
func loadSettings() (config.AxionConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AxionConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.AxionConfig{}, "", err
	}

	config.ApplyPreset(&cfg, preset)
	if flagLevel > 0 {
		cfg.Rules.StartLevel = flagLevel
	}
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	return cfg, preset, cfg.Validate()
}

// openRecorder opens the score database. A failure is logged and the game
// runs without persistence.
func openRecorder(logger *log.Logger) (*storage.Store, platform.RunRecorder) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "db", flagDBPath, "err", err)
		return nil, nil
	}
	return store, store
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagRenderer) {
		return fmt.Errorf("unknown renderer %q, run 'axion renderers' to list them", flagRenderer)
	}
	script, err := ascii.ParseScript(flagPlayScript)
	if err != nil {
		return err
	}

	cfg, preset, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagRenderer != ascii.ID)
	if err != nil {
		return err
	}
	defer closeLog()

	termW, termH := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		termW, termH = w, h
	}
	footer := 0
	if flagRenderer == "tui" {
		footer = tuiFooterRows
	}
	w, h := cfg.BoardSize(termW, termH, platform.HUDRows+footer)

	rt := core.RuntimeConfig{
		ScreenW:   termW,
		ScreenH:   termH,
		TickRate:  1000 / max(1, cfg.Timing.TickMS),
		FrameRate: cfg.Timing.FPS,
		Seed:      flagSeed,
	}
	game, err := engine.New(cfg.EngineOptions(w, h, rt.ResolveSeed()))
	if err != nil {
		return err
	}

	store, recorder := openRecorder(logger)
	if store != nil {
		defer store.Close()
	}

	frontend, err := registry.Create(flagRenderer, registry.Options{Script: script})
	if err != nil {
		return err
	}
	if err := frontend.Init(rt); err != nil {
		return err
	}

	dm := config.NewDifficultyManager(cfg.Difficulty)
	loop := platform.NewLoop(game, frontend, platform.LoopConfig{
		TickInterval:  time.Duration(cfg.Timing.TickMS) * time.Millisecond,
		FrameInterval: rt.FrameInterval(),
		Pace: func(level int) time.Duration {
			return dm.TickInterval(cfg.Timing.TickMS, level)
		},
		Mode:     string(preset),
		Recorder: recorder,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, runErr := loop.Run(ctx)
	closeErr := frontend.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return closeErr
	}

	fmt.Printf("Level %d  Score %d  Fill %.1f%%  (%s)\n", sum.Level, sum.Score, sum.Fill, sum.Outcome)
	return nil
}
