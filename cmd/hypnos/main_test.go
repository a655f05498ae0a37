package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hypnos/internal/config"
	"github.com/vovakirdan/hypnos/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	// Flags are package globals, reset what earlier runs may have set
	flagConfig, flagDefaults, flagLimit = "", false, 10
	flagDBPath = filepath.Join(t.TempDir(), "runs.db")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, id := range []string{config.VariantClimber, config.VariantClassic} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestConfigCommandPrintsValidYAML(t *testing.T) {
	out, err := execute(t, "config", config.VariantClassic)
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	var cfg config.ClimberConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("printed config is invalid: %v", err)
	}
	if cfg.Player.MaxJumps != 1 {
		t.Errorf("MaxJumps = %d, expected the classic value 1", cfg.Player.MaxJumps)
	}
}

func TestConfigCommandUnknownGame(t *testing.T) {
	if _, err := execute(t, "config", "pong"); err == nil {
		t.Error("config for an unknown game should fail")
	}
}

func TestScoresCommand(t *testing.T) {
	out, err := execute(t, "scores", config.VariantClimber)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("unexpected output for empty history:\n%s", out)
	}

	// Seed the same database the next run will open
	dbPath := filepath.Join(t.TempDir(), "seeded.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveRun(storage.Run{GameID: config.VariantClimber, Score: 321, Height: 123, Outcome: "fell"})
	store.Close()

	out, err = execute(t, "scores", config.VariantClimber, "--db", dbPath)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	for _, want := range []string{"321", "123m", "fell", "Runs: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("scores output missing %q:\n%s", want, out)
		}
	}
}

func TestScoresCommandUnknownGame(t *testing.T) {
	if _, err := execute(t, "scores", "pong"); err == nil {
		t.Error("scores for an unknown game should fail")
	}
}
