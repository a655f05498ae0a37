package config

import (
	_ "embed"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

//go:embed defaults/climber_classic.yaml
var defaultClassicYAML []byte

// DefaultClimberConfig returns the default configuration for the full climber.
func DefaultClimberConfig() ClimberConfig {
	return ClimberConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:         40,
			Height:        40,
			Speed:         5,
			JumpStrength:  12,
			Gravity:       0.8,
			MaxJumps:      2,
			MaxHealth:     3,
			ShootCooldown: 30, // 500ms at 60 ticks/s
			FallDeath:     200,
		},
		Enemy: EnemyConfig{
			Width:    40,
			Height:   40,
			Speed:    3,
			FireRate: 120, // 2s at 60 ticks/s
		},
		Projectile: ProjectileConfig{
			Width:  5,
			Height: 5,
			Speed:  10,
		},
		Particle: ParticleConfig{
			Size:     3,
			Count:    20,
			Lifetime: 20,
			MaxSpeed: 2,
		},
		Collectible: CollectibleConfig{
			Width:  30,
			Height: 30,
			Tiers: []TierConfig{
				{Name: "common", Points: 5},
				{Name: "rare", Points: 10},
				{Name: "legendary", Points: 20, Boost: true},
			},
			BoostDuration:   1800, // 30s
			BoostMultiplier: 2,
		},
		Level: LevelConfig{
			Extent:                 10,
			MinPlatformWidth:       50,
			MaxPlatformWidth:       150,
			MinPlatformHeight:      10,
			MaxPlatformHeight:      40,
			FloorHeight:            20,
			MinGap:                 40,
			MaxGap:                 200,
			EnemyProbability:       0.3,
			CollectibleProbability: 0.3,
		},
		Scoring: ScoringConfig{
			Height:       true,
			Kills:        true,
			Collectibles: true,
			KillPoints:   10,
		},
	}
}

// DefaultClassicConfig returns the default configuration for the classic
// single-jump climber.
func DefaultClassicConfig() ClimberConfig {
	cfg := DefaultClimberConfig()
	cfg.Player.Width = 50
	cfg.Player.Height = 50
	cfg.Player.JumpStrength = 15
	cfg.Player.Gravity = 1
	cfg.Player.MaxJumps = 1
	cfg.Enemy.Width = 50
	cfg.Enemy.Height = 50
	cfg.Collectible.Tiers = []TierConfig{{Name: "common", Points: 5}}
	cfg.Collectible.BoostDuration = 0
	cfg.Collectible.BoostMultiplier = 1
	cfg.Level.Extent = 1
	cfg.Level.CollectibleProbability = 0
	cfg.Scoring.Collectibles = false
	cfg.Scoring.ContactKills = true
	return cfg
}

// DefaultFor returns the hardcoded default for a variant.
func DefaultFor(variant string) ClimberConfig {
	if variant == VariantClassic {
		return DefaultClassicConfig()
	}
	return DefaultClimberConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantClimber:
		return defaultClimberYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
