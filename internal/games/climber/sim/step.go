package sim

import (
	"math"

	"github.com/vovakirdan/hypnos/internal/core"
)

// contactEpsilon absorbs floating point drift when comparing edges.
const contactEpsilon = 1e-6

// Intents are the decoded player commands for one tick.
type Intents struct {
	Left  bool
	Right bool
	Stop  bool
	Jump  bool
	Quit  bool
	Shoot *core.Vec // Target point in view coordinates, nil when not shooting
}

// Sprite is one entry of the render list.
type Sprite struct {
	Rect  core.Rect
	Kind  Kind
	Tier  Tier  // Collectibles only
	Owner Owner // Projectiles only
}

// Status is the score and health summary for the presentation layer.
type Status struct {
	Score       int
	EventScore  int
	HeightScore int
	Health      int
	MaxHealth   int
	JumpsLeft   int
	Outcome     Outcome
	Boosted     bool
}

// Frame is the result of a step.
type Frame struct {
	Tick    uint64
	Sprites []Sprite
	Status  Status
	Events  []Event
}

// updater advances one entity by a tick.
type updater func(w *World, e *Entity)

// updaters is the per-variant dispatch table. Static kinds have no entry.
var updaters = [kindCount]updater{
	KindPlayer:     updatePlayer,
	KindEnemy:      updateEnemy,
	KindProjectile: updateProjectile,
	KindParticle:   updateParticle,
}

// updateOrder lists the kinds in the order they are advanced.
var updateOrder = []Kind{KindPlayer, KindEnemy, KindProjectile, KindParticle}

// Step advances the world by one fixed tick and returns the frame to draw.
// Once the session is terminal the world no longer changes and Step only
// reports the final frame.
func (w *World) Step(in Intents) Frame {
	w.events = nil

	if w.session.Outcome.Terminal() {
		return w.frame()
	}

	w.tick++

	if in.Quit {
		w.end(OutcomeQuit)
		return w.frame()
	}

	w.tickBoost()
	w.applyIntents(in)

	for _, k := range updateOrder {
		fn := updaters[k]
		// Groups are fetched per kind so enemy shots fly on the tick they are fired
		for _, e := range w.group(k) {
			if !w.destroyed(e) {
				fn(w, e)
			}
		}
	}

	// A fatal fall ends the tick before any interaction lands
	if w.session.Outcome.Terminal() {
		w.sweep()
		return w.frame()
	}

	w.resolve()
	w.sweep()
	w.scrollFollow()
	w.updateHeightScore()

	return w.frame()
}

func (w *World) applyIntents(in Intents) {
	p := w.player
	ps := p.Player
	pc := w.cfg.Player

	if in.Left {
		p.Vel.X = -pc.Speed
	}
	if in.Right {
		p.Vel.X = pc.Speed
	}
	if in.Stop {
		p.Vel.X = 0
	}

	if in.Jump && ps.JumpsLeft > 0 {
		p.Vel.Y = -pc.JumpStrength
		ps.OnGround = false
		ps.JumpsLeft--
		w.emit(Event{Kind: EventJumped, ID: p.ID})
	}

	if ps.SinceShot < pc.ShootCooldown {
		ps.SinceShot++
	}
	if in.Shoot != nil && ps.SinceShot >= pc.ShootCooldown {
		if proj := w.spawnProjectile(OwnerPlayer, p.Center(), *in.Shoot); proj != nil {
			ps.SinceShot = 0
			w.emit(Event{Kind: EventShot, ID: proj.ID})
		}
	}
}

// updatePlayer applies gravity, integrates, clamps to the world and checks
// for a fatal fall.
func updatePlayer(w *World, p *Entity) {
	ps := p.Player
	pc := w.cfg.Player

	if !ps.OnGround {
		p.Vel.Y += pc.Gravity
	}
	p.Body.Translate(p.Vel.X, p.Vel.Y)

	if p.Body.Left() < 0 {
		p.Body.SetLeft(0)
	} else if p.Body.Right() > w.cfg.World.Width {
		p.Body.SetRight(w.cfg.World.Width)
	}

	floor := w.floor()
	if p.Body.Bottom() >= floor {
		p.Body.SetBottom(floor)
		p.Vel.Y = 0
	}

	worldY := p.Body.Top() - w.scroll
	if worldY < ps.MaxHeight {
		ps.MaxHeight = worldY
	}
	if worldY-ps.MaxHeight > pc.FallDeath {
		w.end(OutcomeDiedFall)
	}
}

// updateEnemy patrols between the world edges and fires at the player.
func updateEnemy(w *World, e *Entity) {
	e.Body.Translate(e.Vel.X, 0)
	if e.Body.Left() < 0 {
		e.Body.SetLeft(0)
		e.Vel.X = math.Abs(e.Vel.X)
	} else if e.Body.Right() > w.cfg.World.Width {
		e.Body.SetRight(w.cfg.World.Width)
		e.Vel.X = -math.Abs(e.Vel.X)
	}

	e.Enemy.SinceShot++
	if e.Enemy.SinceShot >= w.cfg.Enemy.FireRate {
		e.Enemy.SinceShot = 0
		if proj := w.spawnProjectile(OwnerEnemy, e.Center(), w.player.Center()); proj != nil {
			w.emit(Event{Kind: EventEnemyShot, ID: e.ID})
		}
	}
}

// updateProjectile moves a projectile and culls it once fully off screen.
func updateProjectile(w *World, e *Entity) {
	e.Body.Translate(e.Vel.X, e.Vel.Y)
	b := e.Body
	if b.Right() < 0 || b.Left() > w.cfg.World.Width || b.Bottom() < 0 || b.Top() > w.cfg.World.Height {
		w.Destroy(e.ID)
	}
}

// updateParticle moves a particle and expires it when its lifetime runs out.
func updateParticle(w *World, e *Entity) {
	e.Body.Translate(e.Vel.X, e.Vel.Y)
	e.Particle.Lifetime--
	if e.Particle.Lifetime <= 0 {
		w.Destroy(e.ID)
	}
}

// floor returns the view y of the world floor.
func (w *World) floor() float64 {
	return w.cfg.World.Height + w.scroll
}

// tickBoost counts down an active boost window.
func (w *World) tickBoost() {
	if w.session.Boost == 0 {
		return
	}
	w.session.Boost--
	if w.session.Boost == 0 {
		w.emit(Event{Kind: EventBoostEnded, ID: w.player.ID})
	}
}

// multiplier returns the point multiplier for event scores.
func (w *World) multiplier() int {
	if w.session.Boosted() {
		return w.cfg.Collectible.BoostMultiplier
	}
	return 1
}

// scrollFollow pins the player below the top quarter of the view and moves
// everything else down by the overshoot.
func (w *World) scrollFollow() {
	quarter := w.cfg.World.Height / 4
	top := w.player.Body.Top()
	if top >= quarter {
		return
	}
	shift := quarter - top
	w.player.Body.SetTop(quarter)
	for _, k := range []Kind{KindPlatform, KindEnemy, KindCollectible, KindProjectile, KindParticle} {
		for _, e := range w.group(k) {
			e.Body.Translate(0, shift)
		}
	}
	w.scroll += shift
}

// updateHeightScore derives the height score from the best height reached.
func (w *World) updateHeightScore() {
	w.session.HeightScore = int(w.cfg.World.Height - w.player.Player.MaxHeight)
}

// Snapshot returns the current frame without advancing the world.
func (w *World) Snapshot() Frame {
	f := w.frame()
	f.Events = nil
	return f
}

func (w *World) frame() Frame {
	ps := w.player.Player
	sc := w.cfg.Scoring
	return Frame{
		Tick:    w.tick,
		Sprites: w.sprites(),
		Status: Status{
			Score:       w.session.Total(sc),
			EventScore:  w.session.EventScore(sc),
			HeightScore: w.session.HeightScore,
			Health:      ps.Health,
			MaxHealth:   w.cfg.Player.MaxHealth,
			JumpsLeft:   ps.JumpsLeft,
			Outcome:     w.session.Outcome,
			Boosted:     w.session.Boosted(),
		},
		Events: w.events,
	}
}

// sprites builds the render list in draw order: platforms, collectibles,
// enemies, projectiles, particles, player.
func (w *World) sprites() []Sprite {
	n := len(w.platforms) + len(w.collectibles) + len(w.enemies) + len(w.projectiles) + len(w.particles) + 1
	out := make([]Sprite, 0, n)
	for _, e := range w.platforms {
		out = append(out, Sprite{Rect: e.Body, Kind: KindPlatform})
	}
	for _, e := range w.collectibles {
		out = append(out, Sprite{Rect: e.Body, Kind: KindCollectible, Tier: e.Collectible.Tier})
	}
	for _, e := range w.enemies {
		out = append(out, Sprite{Rect: e.Body, Kind: KindEnemy})
	}
	for _, e := range w.projectiles {
		out = append(out, Sprite{Rect: e.Body, Kind: KindProjectile, Owner: e.Projectile.Owner})
	}
	for _, e := range w.particles {
		out = append(out, Sprite{Rect: e.Body, Kind: KindParticle})
	}
	out = append(out, Sprite{Rect: w.player.Body, Kind: KindPlayer})
	return out
}
