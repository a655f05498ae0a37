// hypnos is a vertical climber played in the terminal.
//
// Usage:
//
//	hypnos list              - List available game variants
//	hypnos play <game>       - Play a variant
//	hypnos menu              - Start menu to pick a variant interactively
//	hypnos serve             - Start SSH server for remote play
//	hypnos scores <game>     - Show the best runs for a variant
//	hypnos config <game>     - Print the effective config as YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hypnos/runs.db)
//	--log <path>    - Write game logs to a file
//	--verbose       - Log every simulation event
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hypnos/internal/games/climber"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hypnos",
	Short: "Hypnos - climb as high as you can in your terminal",
	Long: `Hypnos is a vertical climber for the terminal. Jump between platforms,
shoot patrolling enemies, collect gems and never look down.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective config

Examples:
  hypnos list
  hypnos play climber
  hypnos play climber_classic --seed 42
  hypnos menu --log ./hypnos.log --verbose
  hypnos serve --ssh :2222
  hypnos scores climber`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hypnos/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log every simulation event")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging opens the log file and hands the logger to the game.
// Without --log the logger discards everything so the TUI stays clean.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "hypnos",
		})
	}

	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	climber.SetLogger(logger)
	return nil
}
