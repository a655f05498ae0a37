package sim

import (
	"math"

	"github.com/vovakirdan/hypnos/internal/core"
)

// resolve runs the interaction passes in order. Entities destroyed by an
// earlier pass are skipped by later ones until the sweep removes them.
func (w *World) resolve() {
	w.resolvePlatforms()
	w.resolveEnemyContact()
	w.resolveCollectibles()
	w.resolvePlayerShots()
	w.resolveEnemyShots()
}

// resolvePlatforms settles the player against platforms and the floor.
// On-ground is recomputed from scratch; jumps refill only when the player
// goes from airborne to supported.
func (w *World) resolvePlatforms() {
	p := w.player
	ps := p.Player

	ps.OnGround = false

	// Falling lands on the highest overlapped top, rising stops under the
	// lowest overlapped bottom.
	var touched []*Entity
	for _, plat := range w.platforms {
		if p.Body.Overlaps(plat.Body) {
			touched = append(touched, plat)
		}
	}

	switch {
	case len(touched) == 0:
	case p.Vel.Y > 0:
		top := touched[0].Body.Top()
		for _, plat := range touched[1:] {
			top = math.Min(top, plat.Body.Top())
		}
		p.Body.SetBottom(top)
		p.Vel.Y = 0
		ps.OnGround = true
	case p.Vel.Y < 0:
		bottom := touched[0].Body.Bottom()
		for _, plat := range touched[1:] {
			bottom = math.Max(bottom, plat.Body.Bottom())
		}
		p.Body.SetTop(bottom)
		p.Vel.Y = 0
	default:
		for _, plat := range touched {
			if restingOn(p.Body, plat.Body) {
				ps.OnGround = true
				break
			}
		}
	}

	if p.Vel.Y == 0 && math.Abs(p.Body.Bottom()-w.floor()) <= contactEpsilon {
		ps.OnGround = true
	}

	if ps.OnGround && !w.wasFirm {
		ps.JumpsLeft = w.cfg.Player.MaxJumps
		w.emit(Event{Kind: EventLanded, ID: p.ID})
	}
	w.wasFirm = ps.OnGround
}

// restingOn reports whether body stands on the top edge of support.
func restingOn(body, support core.Rect) bool {
	if body.Right() < support.Left() || body.Left() > support.Right() {
		return false
	}
	return math.Abs(body.Bottom()-support.Top()) <= contactEpsilon
}

// resolveEnemyContact damages the player and destroys every touched enemy.
func (w *World) resolveEnemyContact() {
	p := w.player
	for _, e := range w.enemies {
		if w.destroyed(e) || !p.Body.Overlaps(e.Body) {
			continue
		}
		w.Destroy(e.ID)

		points := 0
		if w.cfg.Scoring.ContactKills {
			points = w.cfg.Scoring.KillPoints * w.multiplier()
			w.session.KillScore += points
			p.Player.Score += points
		}
		w.emit(Event{Kind: EventEnemyContact, ID: e.ID, Points: points})
		w.damagePlayer()
	}
}

// resolveCollectibles awards and removes every touched collectible.
func (w *World) resolveCollectibles() {
	p := w.player
	for _, c := range w.collectibles {
		if w.destroyed(c) || !p.Body.Overlaps(c.Body) {
			continue
		}
		w.Destroy(c.ID)

		cs := c.Collectible
		points := cs.Points * w.multiplier()
		w.session.CollectibleScore += points
		p.Player.Score += points
		w.emit(Event{Kind: EventCollected, ID: c.ID, Points: points, Tier: cs.Tier})

		if cs.Boost && w.cfg.Collectible.BoostDuration > 0 {
			if !w.session.Boosted() {
				w.emit(Event{Kind: EventBoostStarted, ID: p.ID})
			}
			w.session.Boost = w.cfg.Collectible.BoostDuration
		}
	}
}

// resolvePlayerShots matches player projectiles against enemies. A projectile
// destroys at most one enemy.
func (w *World) resolvePlayerShots() {
	for _, proj := range w.projectiles {
		if w.destroyed(proj) || proj.Projectile.Owner != OwnerPlayer {
			continue
		}
		for _, e := range w.enemies {
			if w.destroyed(e) || !proj.Body.Overlaps(e.Body) {
				continue
			}
			w.Destroy(proj.ID)
			w.Destroy(e.ID)
			w.burst(e.Center())

			points := w.cfg.Scoring.KillPoints * w.multiplier()
			w.session.KillScore += points
			w.player.Player.Score += points
			w.emit(Event{Kind: EventEnemyKilled, ID: e.ID, Points: points})
			break
		}
	}
}

// resolveEnemyShots matches enemy projectiles against the player.
func (w *World) resolveEnemyShots() {
	p := w.player
	for _, proj := range w.projectiles {
		if w.destroyed(proj) || proj.Projectile.Owner != OwnerEnemy {
			continue
		}
		if !proj.Body.Overlaps(p.Body) {
			continue
		}
		w.Destroy(proj.ID)
		w.burst(p.Center())
		w.emit(Event{Kind: EventPlayerHit, ID: proj.ID})
		w.damagePlayer()
	}
}

// damagePlayer removes one health point and ends the session at zero.
func (w *World) damagePlayer() {
	ps := w.player.Player
	if ps.Health > 0 {
		ps.Health--
	}
	if ps.Health == 0 {
		w.end(OutcomeDiedCombat)
	}
}
