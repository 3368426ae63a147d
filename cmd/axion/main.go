// axion is a territory-capture arcade game for the terminal.
//
// Usage:
//
//	axion play               - Play interactively
//	axion sim                - Run a scripted game headless and print the result
//	axion scores [mode]      - Show high scores and recent runs
//	axion renderers          - List available frontends
//	axion config dump        - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible games
//	--db <path>          - Score database (default: ~/.axion/axion.db)
//	--config <path>      - Custom config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination while the TUI owns the terminal
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register frontends
	_ "github.com/vovakirdan/axion/internal/platform/ascii"
	_ "github.com/vovakirdan/axion/internal/platform/tcellui"
	_ "github.com/vovakirdan/axion/internal/platform/tui"
)

var (
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "axion",
	Short: "Axion - claim territory in your terminal",
	Long: `Axion is a territory-capture arcade game. Leave the safe border, draw a
trail through open space and close it to claim everything the bouncing balls
cannot reach. Fill 75% of the board to clear a level.

Available commands:
  play       - Play interactively
  sim        - Run a scripted game headless
  scores     - View high scores and recent runs
  renderers  - List available frontends
  config     - Inspect the configuration

Examples:
  axion play
  axion play --difficulty hard
  axion sim --seed 42 --script "5R3D5L"
  axion scores --browse`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.axion/axion.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.axion/axion.log", "Log file used while the TUI is running")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(renderersCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. When toFile is set the log goes to
// --log-file so it does not tear the TUI; the returned func closes it.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "axion",
		Level:           level,
	})
	return logger, closeFn, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
