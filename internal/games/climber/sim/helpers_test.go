package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hypnos/internal/config"
	"github.com/vovakirdan/hypnos/internal/core"
)

// emptyWorld returns a world with the generated level cleared so tests can
// place entities by hand. Only the player remains.
func emptyWorld(t *testing.T, cfg config.ClimberConfig) *World {
	t.Helper()
	w, err := NewWorld(cfg, 1)
	require.NoError(t, err)
	w.platforms = nil
	w.enemies = nil
	w.collectibles = nil
	return w
}

func addPlatform(w *World, r core.Rect) *Entity {
	e := &Entity{ID: w.allocID(), Kind: KindPlatform, Body: r}
	w.platforms = append(w.platforms, e)
	return e
}

func addEnemy(w *World, r core.Rect, patrol float64) *Entity {
	return w.spawnEnemy(EnemySpawn{Body: r, Patrol: patrol})
}

func addProjectile(w *World, owner Owner, r core.Rect, vel core.Vec) *Entity {
	e := &Entity{
		ID:         w.allocID(),
		Kind:       KindProjectile,
		Body:       r,
		Vel:        vel,
		Projectile: &ProjectileState{Owner: owner},
	}
	w.projectiles = append(w.projectiles, e)
	return e
}

// settle steps an idle world until the player stands on something.
func settle(t *testing.T, w *World) {
	t.Helper()
	for i := 0; i < 200; i++ {
		w.Step(Intents{})
		if w.player.Player.OnGround {
			return
		}
	}
	t.Fatal("player never landed")
}

func countEvents(f Frame, kind EventKind) int {
	n := 0
	for _, ev := range f.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
