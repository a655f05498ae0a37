package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for precondition violations.
// All problems are reported at once, each wrapping ErrInvalidConfig.
func (c ClimberConfig) Validate() error {
	var v validator

	v.positive("world.width", c.World.Width)
	v.positive("world.height", c.World.Height)

	v.positive("player.width", c.Player.Width)
	v.positive("player.height", c.Player.Height)
	v.nonNegative("player.speed", c.Player.Speed)
	v.positive("player.jump_strength", c.Player.JumpStrength)
	v.nonNegative("player.gravity", c.Player.Gravity)
	v.atLeast("player.max_jumps", c.Player.MaxJumps, 1)
	v.atLeast("player.max_health", c.Player.MaxHealth, 1)
	v.atLeast("player.shoot_cooldown", c.Player.ShootCooldown, 0)
	v.positive("player.fall_death", c.Player.FallDeath)
	if c.Player.Width > c.World.Width {
		v.fail("player.width %v exceeds world.width %v", c.Player.Width, c.World.Width)
	}

	v.positive("enemy.width", c.Enemy.Width)
	v.positive("enemy.height", c.Enemy.Height)
	v.nonNegative("enemy.speed", c.Enemy.Speed)
	v.atLeast("enemy.fire_rate", c.Enemy.FireRate, 1)

	v.positive("projectile.width", c.Projectile.Width)
	v.positive("projectile.height", c.Projectile.Height)
	v.positive("projectile.speed", c.Projectile.Speed)

	v.positive("particle.size", c.Particle.Size)
	v.atLeast("particle.count", c.Particle.Count, 0)
	v.atLeast("particle.lifetime", c.Particle.Lifetime, 1)
	v.nonNegative("particle.max_speed", c.Particle.MaxSpeed)

	c.validateCollectibles(&v)
	c.validateLevel(&v)

	v.atLeast("scoring.kill_points", c.Scoring.KillPoints, 0)

	return v.err()
}

func (c ClimberConfig) validateCollectibles(v *validator) {
	cc := c.Collectible
	v.positive("collectible.width", cc.Width)
	v.positive("collectible.height", cc.Height)
	v.atLeast("collectible.boost_duration", cc.BoostDuration, 0)
	v.atLeast("collectible.boost_multiplier", cc.BoostMultiplier, 1)

	if len(cc.Tiers) == 0 && c.Level.CollectibleProbability > 0 {
		v.fail("collectible.tiers is empty but level.collectible_probability is %v", c.Level.CollectibleProbability)
	}
	seen := make(map[string]bool, len(cc.Tiers))
	for i, t := range cc.Tiers {
		if !knownTier(t.Name) {
			v.fail("collectible.tiers[%d]: unknown tier %q", i, t.Name)
		}
		if seen[t.Name] {
			v.fail("collectible.tiers[%d]: duplicate tier %q", i, t.Name)
		}
		seen[t.Name] = true
		v.atLeast(fmt.Sprintf("collectible.tiers[%d].points", i), t.Points, 0)
	}
}

func (c ClimberConfig) validateLevel(v *validator) {
	l := c.Level
	v.positive("level.extent", l.Extent)
	v.atLeast("level.min_platform_width", l.MinPlatformWidth, 1)
	v.atLeast("level.min_platform_height", l.MinPlatformHeight, 1)
	v.atLeast("level.min_gap", l.MinGap, 1)
	v.atLeast("level.floor_height", l.FloorHeight, 0)
	if l.MaxPlatformWidth < l.MinPlatformWidth {
		v.fail("level.max_platform_width %d is below min_platform_width %d", l.MaxPlatformWidth, l.MinPlatformWidth)
	}
	if l.MaxPlatformHeight < l.MinPlatformHeight {
		v.fail("level.max_platform_height %d is below min_platform_height %d", l.MaxPlatformHeight, l.MinPlatformHeight)
	}
	if l.MaxGap < l.MinGap {
		v.fail("level.max_gap %d is below min_gap %d", l.MaxGap, l.MinGap)
	}
	if float64(l.MaxPlatformWidth) > c.World.Width {
		v.fail("level.max_platform_width %d exceeds world.width %v", l.MaxPlatformWidth, c.World.Width)
	}
	v.probability("level.enemy_probability", l.EnemyProbability)
	v.probability("level.collectible_probability", l.CollectibleProbability)
}

func knownTier(name string) bool {
	switch name {
	case "common", "rare", "legendary":
		return true
	}
	return false
}

// validator accumulates validation failures.
type validator struct {
	errs []error
}

func (v *validator) fail(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
}

func (v *validator) positive(field string, val float64) {
	if val <= 0 {
		v.fail("%s must be positive, got %v", field, val)
	}
}

func (v *validator) nonNegative(field string, val float64) {
	if val < 0 {
		v.fail("%s must not be negative, got %v", field, val)
	}
}

func (v *validator) atLeast(field string, val, min int) {
	if val < min {
		v.fail("%s must be at least %d, got %d", field, min, val)
	}
}

func (v *validator) probability(field string, p float64) {
	if p < 0 || p > 1 {
		v.fail("%s must be within [0, 1], got %v", field, p)
	}
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}
