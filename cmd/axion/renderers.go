package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/axion/internal/registry"
)

var renderersCmd = &cobra.Command{
	Use:   "renderers",
	Short: "List available frontends",
	Args:  cobra.NoArgs,
	Run:   runRenderers,
}

func runRenderers(cmd *cobra.Command, args []string) {
	infos := registry.List()
	if len(infos) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()
	for _, info := range infos {
		fmt.Printf("  %-8s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Use: axion play --renderer <name>")
}
