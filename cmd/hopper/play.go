package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hopper/internal/audio"
	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/engine"
	"github.com/vovakirdan/hopper/internal/games/hopper"
	"github.com/vovakirdan/hopper/internal/platform/tui"
	"github.com/vovakirdan/hopper/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Play the game",
	Long: `Start playing. The scene defaults to "game".

Controls:
  Enter / click PLAY  - Start the run
  Space/Up/W / click  - Jump
  P/Esc               - Pause
  Ctrl+S              - Save a screenshot
  Q/Ctrl+C            - Quit

Difficulty options:
  easy   - Start at lowest enemy speed, progresses with score
  normal - Start at 30% difficulty, progresses with score
  hard   - Start at 70% difficulty, progresses with score
  fixed  - No progression (the default config behaviour)

Examples:
  hopper play
  hopper play --difficulty hard
  hopper play --config ./my-hopper.yaml
  hopper play --mute --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom hopper config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")
}

func runPlay(_ *cobra.Command, args []string) error {
	sceneID := hopper.Key
	if len(args) == 1 {
		sceneID = args[0]
	}

	if !registry.Exists(sceneID) {
		return fmt.Errorf("unknown scene %q, run 'hopper list' to see available scenes", sceneID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	needW, needH := cfg.ScreenW, cfg.ScreenH+2
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, hopper needs at least %dx%d\n", w, h, needW, needH)
	}

	// Config path and difficulty must be set before the scene is created
	hopper.SetConfigPath(flagConfig)
	hopper.SetDifficultyPreset(preset)

	store := openStore(logger)
	defer store.Close()

	var backend audio.Backend = audio.NewBell(os.Stderr)
	if flagMute {
		backend = audio.Mute{}
	}

	banner := tui.NewBanner()
	game, err := registry.Create(sceneID, engine.Systems{
		Store:   store,
		Audio:   audio.NewManager(backend, logger),
		Display: banner,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}

	logger.Info("starting", "scene", sceneID, "fps", cfg.TickRate, "difficulty", string(preset), "mute", flagMute)
	if err := tui.Run(game, cfg, tui.Options{Banner: banner, Logger: logger}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
