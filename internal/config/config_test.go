package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultsAreValid(t *testing.T) {
	for _, variant := range []string{VariantClimber, VariantClassic} {
		if err := DefaultFor(variant).Validate(); err != nil {
			t.Errorf("default %s config invalid: %v", variant, err)
		}
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	for _, variant := range []string{VariantClimber, VariantClassic} {
		var cfg ClimberConfig
		if err := yaml.Unmarshal(GetDefaultYAML(variant), &cfg); err != nil {
			t.Fatalf("embedded %s yaml does not parse: %v", variant, err)
		}
		if want := DefaultFor(variant); !reflect.DeepEqual(cfg, want) {
			t.Errorf("embedded %s yaml differs from hardcoded default:\n got  %+v\n want %+v", variant, cfg, want)
		}
	}
}

func TestLoadClimberEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadClimber(VariantClimber, "")
	if err != nil {
		t.Fatalf("LoadClimber() failed: %v", err)
	}
	if cfg.Player.MaxJumps != 2 {
		t.Errorf("MaxJumps = %d, expected 2", cfg.Player.MaxJumps)
	}

	classic, err := LoadClimber(VariantClassic, "")
	if err != nil {
		t.Fatalf("LoadClimber(classic) failed: %v", err)
	}
	if classic.Player.MaxJumps != 1 || classic.Level.Extent != 1 {
		t.Errorf("classic config = jumps %d extent %v, expected 1 and 1", classic.Player.MaxJumps, classic.Level.Extent)
	}
}

func TestLoadClimberUnknownVariant(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := LoadClimber("pong", ""); err == nil {
		t.Error("LoadClimber should fail for an unknown variant")
	}
}

func TestLoadClimberUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultClimberConfig()
	cfg.Player.MaxHealth = 7
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(home, ".hypnos", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "climber.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadClimber(VariantClimber, "")
	if err != nil {
		t.Fatalf("LoadClimber() failed: %v", err)
	}
	if loaded.Player.MaxHealth != 7 {
		t.Errorf("MaxHealth = %d, expected user override 7", loaded.Player.MaxHealth)
	}
}

func TestLoadClimberCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	custom := strings.Replace(string(GetDefaultYAML(VariantClimber)), "max_jumps: 2", "max_jumps: 3", 1)
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClimber(VariantClimber, path)
	if err != nil {
		t.Fatalf("LoadClimber() failed: %v", err)
	}
	if cfg.Player.MaxJumps != 3 {
		t.Errorf("MaxJumps = %d, expected 3", cfg.Player.MaxJumps)
	}
}

func TestLoadClimberCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadClimber(VariantClimber, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadClimber(VariantClimber, bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	// Parses fine but fails validation: empty world
	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("scoring:\n  height: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadClimber(VariantClimber, empty)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClimberConfig)
		field  string
	}{
		{"non-positive platform width", func(c *ClimberConfig) { c.Level.MinPlatformWidth = 0 }, "level.min_platform_width"},
		{"inverted width range", func(c *ClimberConfig) { c.Level.MaxPlatformWidth = 10 }, "level.max_platform_width"},
		{"inverted gap range", func(c *ClimberConfig) { c.Level.MaxGap = 1 }, "level.max_gap"},
		{"platform wider than world", func(c *ClimberConfig) { c.Level.MaxPlatformWidth = 5000 }, "exceeds world.width"},
		{"zero jumps", func(c *ClimberConfig) { c.Player.MaxJumps = 0 }, "player.max_jumps"},
		{"zero health", func(c *ClimberConfig) { c.Player.MaxHealth = 0 }, "player.max_health"},
		{"probability above one", func(c *ClimberConfig) { c.Level.EnemyProbability = 1.5 }, "level.enemy_probability"},
		{"unknown tier", func(c *ClimberConfig) { c.Collectible.Tiers[0].Name = "mythic" }, "unknown tier"},
		{"duplicate tier", func(c *ClimberConfig) { c.Collectible.Tiers[1].Name = "common" }, "duplicate tier"},
		{"no tiers with collectibles", func(c *ClimberConfig) { c.Collectible.Tiers = nil }, "collectible.tiers is empty"},
		{"zero projectile speed", func(c *ClimberConfig) { c.Projectile.Speed = 0 }, "projectile.speed"},
		{"zero particle lifetime", func(c *ClimberConfig) { c.Particle.Lifetime = 0 }, "particle.lifetime"},
		{"zero world", func(c *ClimberConfig) { c.World.Height = 0 }, "world.height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultClimberConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err.Error(), tc.field)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultClimberConfig()
	cfg.Player.MaxJumps = 0
	cfg.Enemy.FireRate = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "player.max_jumps") || !strings.Contains(msg, "enemy.fire_rate") {
		t.Errorf("expected both problems in %q", msg)
	}
}

func TestCollectibleTierLookup(t *testing.T) {
	cc := DefaultClimberConfig().Collectible

	tier, ok := cc.Tier("legendary")
	if !ok || tier.Points != 20 || !tier.Boost {
		t.Errorf("Tier(legendary) = %+v, %v", tier, ok)
	}
	if _, ok := cc.Tier("mythic"); ok {
		t.Error("Tier(mythic) should not exist")
	}
}
