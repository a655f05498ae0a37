package sim

import (
	"math/rand"

	"github.com/vovakirdan/hypnos/internal/config"
	"github.com/vovakirdan/hypnos/internal/core"
)

// EnemySpawn describes an enemy placed by the generator.
type EnemySpawn struct {
	Body   core.Rect
	Patrol float64 // Initial horizontal velocity, sign is the direction
}

// CollectibleSpawn describes a collectible placed by the generator.
type CollectibleSpawn struct {
	Body   core.Rect
	Tier   Tier
	Points int
	Boost  bool
}

// Layout is the output of the level generator, bottom platform first.
type Layout struct {
	Platforms    []core.Rect
	Enemies      []EnemySpawn
	Collectibles []CollectibleSpawn
}

// Generate builds a platform column from the world floor upward until the
// vertical extent budget is spent. After each platform an enemy and a
// collectible are placed on top of it with the configured probabilities.
// The bottom platform never carries an enemy since the player spawns there.
//
// The output depends only on cfg and the state of rng.
func Generate(rng *rand.Rand, cfg config.ClimberConfig) Layout {
	var layout Layout

	lvl := cfg.Level
	worldW := cfg.World.Width
	worldH := cfg.World.Height

	y := worldH - float64(lvl.FloorHeight)
	limit := worldH - worldH*lvl.Extent - float64(lvl.FloorHeight)

	for y > limit {
		width := randRange(rng, lvl.MinPlatformWidth, lvl.MaxPlatformWidth)
		height := randRange(rng, lvl.MinPlatformHeight, lvl.MaxPlatformHeight)
		x := randRange(rng, 0, int(worldW)-width)
		platform := core.NewRect(float64(x), y, float64(width), float64(height))
		first := len(layout.Platforms) == 0
		layout.Platforms = append(layout.Platforms, platform)

		y -= float64(randRange(rng, lvl.MinGap, lvl.MaxGap))

		if rng.Float64() < lvl.EnemyProbability && !first {
			layout.Enemies = append(layout.Enemies, placeEnemy(rng, cfg.Enemy, platform))
		}

		if len(cfg.Collectible.Tiers) > 0 && rng.Float64() < lvl.CollectibleProbability {
			layout.Collectibles = append(layout.Collectibles, placeCollectible(rng, cfg.Collectible, platform))
		}
	}

	return layout
}

func placeEnemy(rng *rand.Rand, ec config.EnemyConfig, platform core.Rect) EnemySpawn {
	x := randRange(rng, int(platform.Left()), int(platform.Right()-ec.Width))
	patrol := ec.Speed
	if rng.Intn(2) == 0 {
		patrol = -patrol
	}
	return EnemySpawn{
		Body:   core.NewRect(float64(x), platform.Top()-ec.Height, ec.Width, ec.Height),
		Patrol: patrol,
	}
}

func placeCollectible(rng *rand.Rand, cc config.CollectibleConfig, platform core.Rect) CollectibleSpawn {
	tc := cc.Tiers[rng.Intn(len(cc.Tiers))]
	tier, _ := ParseTier(tc.Name)
	x := randRange(rng, int(platform.Left()), int(platform.Right()-cc.Width))
	return CollectibleSpawn{
		Body:   core.NewRect(float64(x), platform.Top()-cc.Height, cc.Width, cc.Height),
		Tier:   tier,
		Points: tc.Points,
		Boost:  tc.Boost,
	}
}

// randRange returns an integer in [lo, hi]. A collapsed range returns lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
