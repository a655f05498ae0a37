package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hypnos/internal/config"
	"github.com/vovakirdan/hypnos/internal/core"
	"github.com/vovakirdan/hypnos/internal/games/climber"
	"github.com/vovakirdan/hypnos/internal/platform/tui"
	"github.com/vovakirdan/hypnos/internal/registry"
	"github.com/vovakirdan/hypnos/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game variant",
	Long: `Start playing the specified variant.

Controls:
  A/D, Left/Right   - Move left/right
  S/Down            - Stop
  Space/W/Up        - Jump (again in mid-air while jumps remain)
  Mouse click       - Shoot at the clicked cell
  F                 - Shoot straight up
  P/Esc             - Pause
  B/Esc             - Back (when paused or after game over)
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  hypnos play climber
  hypnos play climber_classic
  hypnos play climber --seed 7
  hypnos play climber --config ./my-climber.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'hypnos list' to see available games", gameID)
	}

	// Fail before entering the alt screen rather than falling back silently
	if _, err := config.LoadClimber(gameID, flagConfig); err != nil {
		return err
	}
	climber.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run history. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("run history disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}
