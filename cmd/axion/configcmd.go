package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/axion/internal/config"
)

var flagDumpDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would use, after the --config file,
the difficulty preset and the size flags are applied. Redirect it to
~/.axion/configs/axion.yaml to start a custom config.

Examples:
  axion config dump
  axion config dump --difficulty hard
  axion config dump --defaults > ~/.axion/configs/axion.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	addGameFlags(configDumpCmd)
	configDumpCmd.Flags().BoolVar(&flagDumpDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) error {
	if flagDumpDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
