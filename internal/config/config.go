// Package config provides YAML-based game configuration loading and
// validation for the climber variants.
package config

// Variant names double as registry IDs and config file names.
const (
	VariantClimber = "climber"
	VariantClassic = "climber_classic"
)

// ClimberConfig contains all configuration for a climber session.
type ClimberConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Particle    ParticleConfig    `yaml:"particle"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Level       LevelConfig       `yaml:"level"`
	Scoring     ScoringConfig     `yaml:"scoring"`
}

// WorldConfig defines the visible world size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player kinematics and combat parameters.
// Times are in ticks, distances in world units per tick.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	JumpStrength  float64 `yaml:"jump_strength"`
	Gravity       float64 `yaml:"gravity"`
	MaxJumps      int     `yaml:"max_jumps"`
	MaxHealth     int     `yaml:"max_health"`
	ShootCooldown int     `yaml:"shoot_cooldown"`
	FallDeath     float64 `yaml:"fall_death"` // Drop below peak that ends the session
}

// EnemyConfig defines enemy size, patrol speed and fire rate.
type EnemyConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	FireRate int     `yaml:"fire_rate"` // Ticks between shots
}

// ProjectileConfig defines projectile size and speed.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// ParticleConfig defines the explosion burst.
type ParticleConfig struct {
	Size     float64 `yaml:"size"`
	Count    int     `yaml:"count"`
	Lifetime int     `yaml:"lifetime"`  // Ticks
	MaxSpeed float64 `yaml:"max_speed"` // Per-axis bound of the random velocity
}

// TierConfig defines one collectible tier.
type TierConfig struct {
	Name   string `yaml:"name"`
	Points int    `yaml:"points"`
	Boost  bool   `yaml:"boost"`
}

// CollectibleConfig defines collectible size, tiers and the boost window.
type CollectibleConfig struct {
	Width           float64      `yaml:"width"`
	Height          float64      `yaml:"height"`
	Tiers           []TierConfig `yaml:"tiers"`
	BoostDuration   int          `yaml:"boost_duration"` // Ticks
	BoostMultiplier int          `yaml:"boost_multiplier"`
}

// LevelConfig defines procedural platform generation.
type LevelConfig struct {
	Extent                 float64 `yaml:"extent"` // Vertical budget in screen heights
	MinPlatformWidth       int     `yaml:"min_platform_width"`
	MaxPlatformWidth       int     `yaml:"max_platform_width"`
	MinPlatformHeight      int     `yaml:"min_platform_height"`
	MaxPlatformHeight      int     `yaml:"max_platform_height"`
	FloorHeight            int     `yaml:"floor_height"` // First platform sits this far above the floor
	MinGap                 int     `yaml:"min_gap"`
	MaxGap                 int     `yaml:"max_gap"`
	EnemyProbability       float64 `yaml:"enemy_probability"`
	CollectibleProbability float64 `yaml:"collectible_probability"`
}

// ScoringConfig selects which score components make up the total.
type ScoringConfig struct {
	Height       bool `yaml:"height"`
	Kills        bool `yaml:"kills"`
	Collectibles bool `yaml:"collectibles"`
	KillPoints   int  `yaml:"kill_points"`
	ContactKills bool `yaml:"contact_kills"` // Enemy contact also awards kill points
}

// Tier returns the tier config with the given name.
func (c CollectibleConfig) Tier(name string) (TierConfig, bool) {
	for _, t := range c.Tiers {
		if t.Name == name {
			return t, true
		}
	}
	return TierConfig{}, false
}
