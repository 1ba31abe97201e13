package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show stored progress",
	Long: `Display the best score, the score carried by the run in progress,
and the lives left, as stored in the progress database.

Examples:
  hopper progress
  hopper progress --db ./hopper.db`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget stored progress",
	Long: `Delete the stored best score, last score and lives. The next game
starts from a fresh run.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func runProgress(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadHopper("")
	if err != nil {
		cfg = config.DefaultHopperConfig()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer store.Close()

	p, err := storage.LoadProgress(store, cfg.Lives.Max)
	if err != nil {
		color.Yellow("Warning: %v", err)
	}

	color.Yellow("Hopper progress")
	fmt.Println()
	fmt.Println(progressTable(p, cfg.Lives.Max).View())
	fmt.Println()
	color.Cyan("Best: %d", p.HighScore)
	return nil
}

// progressTable lays out the stored values in a static table.
func progressTable(p storage.Progress, maxLives int) table.Model {
	columns := []table.Column{
		{Title: "Key", Width: 10},
		{Title: "Meaning", Width: 20},
		{Title: "Value", Width: 8},
	}
	rows := []table.Row{
		{storage.KeyHighScore, "best score", strconv.Itoa(p.HighScore)},
		{storage.KeyLastScore, "current run score", strconv.Itoa(p.LastScore)},
		{storage.KeyLives, "lives left", fmt.Sprintf("%d/%d", p.Lives, maxLives)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

func runReset(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer store.Close()

	if err := storage.ClearProgress(store); err != nil {
		return fmt.Errorf("clearing progress: %w", err)
	}
	color.Green("Progress cleared.")
	return nil
}
