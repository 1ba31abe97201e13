// hopper is a terminal arcade game: jump over the rolling enemy to score.
//
// Usage:
//
//	hopper play [scene]      - Play (default scene: game)
//	hopper list              - List available scenes
//	hopper progress          - Show stored best score, last score and lives
//	hopper reset             - Forget stored progress
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.hopper/hopper.db)
//	--log-file <path>    - Set log file (default: ~/.hopper/hopper.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/hopper/internal/games/hopper"
	"github.com/vovakirdan/hopper/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Hopper - jump over the enemy in your terminal",
	Long: `Hopper is a one-button arcade game for the terminal.

Press PLAY, then jump over the rolling enemy. Every landing on top of it
scores a point. Get pushed off the left edge and you lose a life.

Available commands:
  play      - Start the game
  list      - Show all available scenes
  progress  - Show stored best score and lives
  reset     - Forget stored progress

Examples:
  hopper play
  hopper play --difficulty hard
  hopper progress
  hopper reset`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopper/hopper.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.hopper/hopper.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger writes to the log file, since the game owns the terminal.
// The returned func closes the file and must be called on exit.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	closeLog := func() {}
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "hopper",
		Level:           level,
	})
	return logger, closeLog, nil
}

// openStore opens the progress database, falling back to memory so the
// game still works without persistence.
func openStore(logger *log.Logger) storage.KV {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database, progress will not be saved", "path", flagDBPath, "error", err)
		return storage.NewMemory()
	}
	return store
}
