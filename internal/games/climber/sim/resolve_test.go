package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hypnos/internal/config"
	"github.com/vovakirdan/hypnos/internal/core"
)

func TestLandingSnapsToPlatformTop(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)
	addPlatform(w, core.NewRect(300, 400, 200, 40))

	p := w.Player()
	p.Body.SetBottom(395)
	p.Vel.Y = 10

	f := w.Step(Intents{})

	assert.Equal(t, 400.0, p.Body.Bottom(), "no tunneling into the platform")
	assert.Equal(t, 0.0, p.Vel.Y)
	assert.True(t, p.Player.OnGround)
	assert.Equal(t, 1, countEvents(f, EventLanded))
}

func TestLandingNeverEndsBelowPlatformTop(t *testing.T) {
	cfg := config.DefaultClimberConfig()

	for _, vy := range []float64{0.5, 3, 7.9, 15, 25} {
		w := emptyWorld(t, cfg)
		plat := addPlatform(w, core.NewRect(300, 400, 200, 40))
		p := w.Player()
		p.Body.SetBottom(399)
		p.Vel.Y = vy

		w.Step(Intents{})

		assert.LessOrEqual(t, p.Body.Bottom(), plat.Body.Top(), "vy=%v", vy)
	}
}

func TestLandingOnStackedPlatformsUsesHighestTop(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)
	low := addPlatform(w, core.NewRect(300, 400, 200, 10))
	high := addPlatform(w, core.NewRect(300, 360, 200, 40))

	p := w.Player()
	p.Body.SetTop(350)
	p.Vel.Y = 15

	f := w.Step(Intents{})

	assert.Equal(t, high.Body.Top(), p.Body.Bottom())
	assert.Less(t, p.Body.Bottom(), low.Body.Top())
	assert.Equal(t, 0.0, p.Vel.Y)
	assert.True(t, p.Player.OnGround)
	assert.Equal(t, 1, countEvents(f, EventLanded))
}

func TestUndersideHitOnStackedPlatformsUsesLowestBottom(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)
	addPlatform(w, core.NewRect(300, 440, 200, 40))
	addPlatform(w, core.NewRect(300, 480, 200, 20))

	p := w.Player()
	p.Body.SetTop(505)
	p.Vel.Y = -30

	w.Step(Intents{})

	assert.Equal(t, 500.0, p.Body.Top())
	assert.Equal(t, 0.0, p.Vel.Y)
}

func TestUndersideHitStopsAscent(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)
	addPlatform(w, core.NewRect(300, 480, 200, 20))

	p := w.Player()
	p.Body.SetTop(505)
	p.Vel.Y = -10

	w.Step(Intents{})

	assert.Equal(t, 500.0, p.Body.Top())
	assert.Equal(t, 0.0, p.Vel.Y)
	assert.False(t, p.Player.OnGround)
}

func TestRestingOnPlatform(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)
	addPlatform(w, core.NewRect(300, 400, 200, 40))

	p := w.Player()
	p.Body.SetBottom(398)
	settle(t, w)
	require.InDelta(t, 400, p.Body.Bottom(), 1e-9)

	for i := 0; i < 30; i++ {
		f := w.Step(Intents{})
		assert.True(t, p.Player.OnGround)
		assert.Zero(t, countEvents(f, EventLanded))
		assert.InDelta(t, 400, p.Body.Bottom(), 1e-9)
	}
}

func TestWalkingOffPlatformFalls(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)
	addPlatform(w, core.NewRect(360, 400, 60, 40))

	p := w.Player()
	p.Body.SetBottom(398)
	settle(t, w)

	w.Step(Intents{Right: true})
	for i := 0; i < 20 && p.Body.Left() <= 420; i++ {
		w.Step(Intents{})
	}
	w.Step(Intents{})
	assert.False(t, p.Player.OnGround)
	assert.Greater(t, p.Body.Bottom(), 400.0)
}

func TestEnemyContactLastHealth(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	p := w.Player()
	p.Player.Health = 1
	addEnemy(w, p.Body, 0)

	f := w.Step(Intents{})

	assert.Empty(t, w.Entities(KindEnemy), "enemy destroyed by contact")
	assert.Equal(t, 0, p.Player.Health)
	assert.Equal(t, OutcomeDiedCombat, f.Status.Outcome)
	assert.Equal(t, 1, countEvents(f, EventEnemyContact))
	assert.Equal(t, 1, countEvents(f, EventSessionEnded))

	// Terminal sessions do not advance
	f = w.Step(Intents{})
	assert.Empty(t, f.Events)
	assert.Equal(t, OutcomeDiedCombat, f.Status.Outcome)
}

func TestEnemyContactHealthNeverNegative(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	p := w.Player()
	p.Player.Health = 1
	addEnemy(w, p.Body, 0)
	addEnemy(w, p.Body, 0)

	f := w.Step(Intents{})
	assert.Equal(t, 0, p.Player.Health)
	assert.Equal(t, 2, countEvents(f, EventEnemyContact))
	assert.Equal(t, 1, countEvents(f, EventSessionEnded))
}

func TestEnemyContactScoring(t *testing.T) {
	rich := config.DefaultClimberConfig()
	w := emptyWorld(t, rich)
	addEnemy(w, w.Player().Body, 0)
	w.Step(Intents{})
	assert.Equal(t, rich.Player.MaxHealth-1, w.Player().Player.Health)
	assert.Zero(t, w.Session().KillScore)

	classic := config.DefaultClassicConfig()
	w = emptyWorld(t, classic)
	addEnemy(w, w.Player().Body, 0)
	f := w.Step(Intents{})
	assert.Equal(t, classic.Scoring.KillPoints, w.Session().KillScore)
	assert.Equal(t, classic.Scoring.KillPoints, f.Status.EventScore)
}

func TestCollectiblePickup(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	p := w.Player()
	w.spawnCollectible(CollectibleSpawn{Body: p.Body, Tier: TierRare, Points: 10})

	f := w.Step(Intents{})
	assert.Empty(t, w.Entities(KindCollectible))
	assert.Equal(t, 10, w.Session().CollectibleScore)
	assert.Equal(t, 10, p.Player.Score)
	require.Equal(t, 1, countEvents(f, EventCollected))
	assert.Equal(t, TierRare, f.Events[0].Tier)
	assert.False(t, f.Status.Boosted)
}

func TestLegendaryBoost(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	p := w.Player()
	w.spawnCollectible(CollectibleSpawn{Body: p.Body, Tier: TierLegendary, Points: 20, Boost: true})
	f := w.Step(Intents{})
	assert.Equal(t, 1, countEvents(f, EventBoostStarted))
	assert.True(t, f.Status.Boosted)
	assert.Equal(t, cfg.Collectible.BoostDuration, w.Session().Boost)
	assert.Equal(t, 20, w.Session().CollectibleScore)

	w.spawnCollectible(CollectibleSpawn{Body: p.Body, Tier: TierRare, Points: 10})
	w.Step(Intents{})
	assert.Equal(t, 20+10*cfg.Collectible.BoostMultiplier, w.Session().CollectibleScore)

	w.session.Boost = 2
	f = w.Step(Intents{})
	assert.True(t, f.Status.Boosted)
	f = w.Step(Intents{})
	assert.False(t, f.Status.Boosted)
	assert.Equal(t, 1, countEvents(f, EventBoostEnded))
}

func TestCollectiblesExcludedFromClassicScore(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	w := emptyWorld(t, cfg)

	p := w.Player()
	w.spawnCollectible(CollectibleSpawn{Body: p.Body, Tier: TierCommon, Points: 5})
	f := w.Step(Intents{})

	assert.Equal(t, 5, w.Session().CollectibleScore)
	assert.Zero(t, f.Status.EventScore)
	assert.Equal(t, f.Status.HeightScore, f.Status.Score)
}

func TestProjectileKillsOneEnemy(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	body := core.NewRect(100, 100, cfg.Enemy.Width, cfg.Enemy.Height)
	addEnemy(w, body, 0)
	addEnemy(w, body, 0)
	addProjectile(w, OwnerPlayer, core.CenteredAt(120, 120, 5, 5), core.Vec{})

	f := w.Step(Intents{})

	assert.Len(t, w.Entities(KindEnemy), 1, "one projectile destroys one enemy")
	assert.Empty(t, w.Entities(KindProjectile))
	assert.Len(t, w.Entities(KindParticle), cfg.Particle.Count)
	assert.Equal(t, 1, countEvents(f, EventEnemyKilled))
	assert.Equal(t, cfg.Scoring.KillPoints, w.Session().KillScore)
}

func TestDestroyedEnemyNotHitTwice(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	addEnemy(w, core.NewRect(100, 100, cfg.Enemy.Width, cfg.Enemy.Height), 0)
	addProjectile(w, OwnerPlayer, core.CenteredAt(120, 120, 5, 5), core.Vec{})
	second := addProjectile(w, OwnerPlayer, core.CenteredAt(121, 121, 5, 5), core.Vec{})

	f := w.Step(Intents{})

	assert.Empty(t, w.Entities(KindEnemy))
	require.Len(t, w.Entities(KindProjectile), 1, "second projectile survives")
	assert.Equal(t, second.ID, w.Entities(KindProjectile)[0].ID)
	assert.Equal(t, 1, countEvents(f, EventEnemyKilled))
	assert.Equal(t, cfg.Scoring.KillPoints, w.Session().KillScore)
}

func TestEnemyProjectileIgnoresEnemies(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	addEnemy(w, core.NewRect(100, 100, cfg.Enemy.Width, cfg.Enemy.Height), 0)
	addProjectile(w, OwnerEnemy, core.CenteredAt(120, 120, 5, 5), core.Vec{})

	w.Step(Intents{})
	assert.Len(t, w.Entities(KindEnemy), 1)
	assert.Len(t, w.Entities(KindProjectile), 1)
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	p := w.Player()
	c := p.Center()
	addProjectile(w, OwnerEnemy, core.CenteredAt(c.X, c.Y, 5, 5), core.Vec{})

	f := w.Step(Intents{})

	assert.Equal(t, cfg.Player.MaxHealth-1, p.Player.Health)
	assert.Empty(t, w.Entities(KindProjectile))
	assert.Len(t, w.Entities(KindParticle), cfg.Particle.Count)
	assert.Equal(t, 1, countEvents(f, EventPlayerHit))
	assert.Equal(t, OutcomeNone, f.Status.Outcome)
	assert.Same(t, p, w.Player(), "player is never removed")
}

func TestDestroyIgnoresPlayer(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	w := emptyWorld(t, cfg)

	w.Destroy(w.Player().ID)
	f := w.Step(Intents{})
	assert.Equal(t, KindPlayer, f.Sprites[len(f.Sprites)-1].Kind)
}
