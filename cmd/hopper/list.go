package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows a list of all scenes that can be passed to 'hopper play'.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	color.Yellow("Available scenes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	id := color.New(color.FgCyan).SprintFunc()
	for _, g := range games {
		fmt.Printf("  %s  %s\n", id(fmt.Sprintf("%-*s", maxIDLen, g.ID)), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'hopper play <id>' to play.")
}
