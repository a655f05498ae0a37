// Package sim implements the climber simulation core: the entity model,
// level generator, fixed-tick step, interaction resolver and session score.
//
// The package is pure: it never touches the terminal, files or clocks.
// The caller feeds Intents once per tick and draws the returned Frame.
//
// Coordinates are view coordinates with y growing downward. The camera
// scroll is accumulated in World.Scroll so that world y = view y - scroll;
// heights and the world floor are tracked in world coordinates.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/hypnos/internal/config"
	"github.com/vovakirdan/hypnos/internal/core"
)

// World owns every entity of a session and the session state.
// It is not safe for concurrent use; a single frame loop drives it.
type World struct {
	cfg config.ClimberConfig
	rng *rand.Rand

	player       *Entity
	platforms    []*Entity
	enemies      []*Entity
	collectibles []*Entity
	projectiles  []*Entity
	particles    []*Entity

	nextID   EntityID
	doomed   map[EntityID]bool // Destroyed this frame, removed by sweep
	scroll   float64
	tick     uint64
	session  Session
	events   []Event
	wasFirm  bool // Player had support at the end of the previous frame
	initialY float64
}

// NewWorld validates cfg, generates the level from seed and spawns the player.
func NewWorld(cfg config.ClimberConfig, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	w := &World{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
		doomed: make(map[EntityID]bool),
	}

	layout := Generate(w.rng, cfg)
	for _, p := range layout.Platforms {
		w.platforms = append(w.platforms, &Entity{ID: w.allocID(), Kind: KindPlatform, Body: p})
	}
	for _, e := range layout.Enemies {
		w.spawnEnemy(e)
	}
	for _, c := range layout.Collectibles {
		w.spawnCollectible(c)
	}
	w.spawnPlayer()
	w.updateHeightScore()

	return w, nil
}

func (w *World) allocID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

func (w *World) spawnPlayer() {
	pc := w.cfg.Player
	x := w.cfg.World.Width/2 - pc.Width/2
	y := w.cfg.World.Height - pc.Height - float64(w.cfg.Level.FloorHeight)

	w.player = &Entity{
		ID:   w.allocID(),
		Kind: KindPlayer,
		Body: core.NewRect(x, y, pc.Width, pc.Height),
		Player: &PlayerState{
			JumpsLeft: pc.MaxJumps,
			Health:    pc.MaxHealth,
			MaxHeight: y,
			SinceShot: pc.ShootCooldown, // Ready to fire on the first tick
		},
	}
	w.initialY = y
}

func (w *World) spawnEnemy(s EnemySpawn) *Entity {
	e := &Entity{
		ID:    w.allocID(),
		Kind:  KindEnemy,
		Body:  s.Body,
		Vel:   core.Vec{X: s.Patrol},
		Enemy: &EnemyState{},
	}
	w.enemies = append(w.enemies, e)
	return e
}

func (w *World) spawnCollectible(s CollectibleSpawn) *Entity {
	e := &Entity{
		ID:          w.allocID(),
		Kind:        KindCollectible,
		Body:        s.Body,
		Collectible: &CollectibleState{Tier: s.Tier, Points: s.Points, Boost: s.Boost},
	}
	w.collectibles = append(w.collectibles, e)
	return e
}

// spawnProjectile fires from source toward target. It returns nil when
// source and target coincide since no direction exists.
func (w *World) spawnProjectile(owner Owner, source, target core.Vec) *Entity {
	pc := w.cfg.Projectile
	vel := core.Direction(source, target, pc.Speed)
	if vel == (core.Vec{}) {
		return nil
	}
	e := &Entity{
		ID:         w.allocID(),
		Kind:       KindProjectile,
		Body:       core.CenteredAt(source.X, source.Y, pc.Width, pc.Height),
		Vel:        vel,
		Projectile: &ProjectileState{Owner: owner},
	}
	w.projectiles = append(w.projectiles, e)
	return e
}

// burst spawns the explosion particles centered at p.
func (w *World) burst(p core.Vec) {
	pc := w.cfg.Particle
	for i := 0; i < pc.Count; i++ {
		vel := core.Vec{
			X: (w.rng.Float64()*2 - 1) * pc.MaxSpeed,
			Y: (w.rng.Float64()*2 - 1) * pc.MaxSpeed,
		}
		w.particles = append(w.particles, &Entity{
			ID:       w.allocID(),
			Kind:     KindParticle,
			Body:     core.CenteredAt(p.X, p.Y, pc.Size, pc.Size),
			Vel:      vel,
			Particle: &ParticleState{Lifetime: pc.Lifetime},
		})
	}
}

// Destroy marks an entity for removal at the end of the frame.
// The player cannot be destroyed.
func (w *World) Destroy(id EntityID) {
	if w.player != nil && id == w.player.ID {
		return
	}
	w.doomed[id] = true
}

// destroyed reports whether the entity was marked this frame.
func (w *World) destroyed(e *Entity) bool {
	return w.doomed[e.ID]
}

// sweep removes every marked entity in a single pass, preserving order.
func (w *World) sweep() {
	if len(w.doomed) == 0 {
		return
	}
	w.enemies = w.filter(w.enemies)
	w.collectibles = w.filter(w.collectibles)
	w.projectiles = w.filter(w.projectiles)
	w.particles = w.filter(w.particles)
	w.platforms = w.filter(w.platforms)
	clear(w.doomed)
}

func (w *World) filter(list []*Entity) []*Entity {
	kept := list[:0]
	for _, e := range list {
		if !w.doomed[e.ID] {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}

// emit records an event for the current frame.
func (w *World) emit(ev Event) {
	ev.Tick = w.tick
	w.events = append(w.events, ev)
}

// end terminates the session once and records the event.
func (w *World) end(o Outcome) {
	if w.session.end(o) {
		w.emit(Event{Kind: EventSessionEnded, ID: w.player.ID, Outcome: o})
	}
}

// group returns the live collection for a kind.
func (w *World) group(k Kind) []*Entity {
	switch k {
	case KindPlayer:
		return []*Entity{w.player}
	case KindEnemy:
		return w.enemies
	case KindPlatform:
		return w.platforms
	case KindCollectible:
		return w.collectibles
	case KindProjectile:
		return w.projectiles
	case KindParticle:
		return w.particles
	default:
		return nil
	}
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.ClimberConfig {
	return w.cfg
}

// Player returns the player entity. Callers must not mutate it.
func (w *World) Player() *Entity {
	return w.player
}

// Entities returns the live entities of a kind. Callers must not mutate them.
func (w *World) Entities(k Kind) []*Entity {
	return w.group(k)
}

// Scroll returns the accumulated camera offset.
func (w *World) Scroll() float64 {
	return w.scroll
}

// Tick returns the number of simulated steps.
func (w *World) Tick() uint64 {
	return w.tick
}

// Session returns a copy of the session state.
func (w *World) Session() Session {
	return w.session
}

// Outcome returns the terminal outcome, OutcomeNone while running.
func (w *World) Outcome() Outcome {
	return w.session.Outcome
}

// Height returns the best height climbed above the spawn point.
func (w *World) Height() int {
	return int(w.initialY - w.player.Player.MaxHeight)
}
