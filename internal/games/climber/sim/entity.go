package sim

import (
	"strings"

	"github.com/vovakirdan/hypnos/internal/core"
)

// EntityID identifies an entity for the lifetime of a world. IDs are never reused.
type EntityID uint64

// Kind tags the entity variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlatform
	KindCollectible
	KindProjectile
	KindParticle
	kindCount // Sentinel value for dispatch tables
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlatform:
		return "platform"
	case KindCollectible:
		return "collectible"
	case KindProjectile:
		return "projectile"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Tier is the collectible category.
type Tier uint8

const (
	TierCommon Tier = iota
	TierRare
	TierLegendary
)

// String returns the string representation of a tier.
func (t Tier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierRare:
		return "rare"
	case TierLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// ParseTier converts a string to a Tier.
// Returns TierCommon and false if the string is not recognized.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(s) {
	case "common":
		return TierCommon, true
	case "rare":
		return TierRare, true
	case "legendary":
		return TierLegendary, true
	default:
		return TierCommon, false
	}
}

// Owner selects which side fired a projectile and therefore its target set.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns the string representation of an owner.
func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// PlayerState is the player-specific state.
type PlayerState struct {
	OnGround  bool
	JumpsLeft int
	Health    int
	MaxHeight float64 // Smallest world y reached (y grows downward)
	Score     int     // Raw event points before score composition
	SinceShot int     // Ticks since the last shot
}

// EnemyState is the enemy-specific state. Patrol velocity lives in Entity.Vel.X.
type EnemyState struct {
	SinceShot int
}

// CollectibleState is the collectible-specific state.
type CollectibleState struct {
	Tier   Tier
	Points int
	Boost  bool // Pickup starts a boost window
}

// ProjectileState is the projectile-specific state.
type ProjectileState struct {
	Owner Owner
}

// ParticleState is the particle-specific state.
type ParticleState struct {
	Lifetime int // Remaining steps
}

// Entity is a closed tagged variant. Exactly one of the state pointers
// matching Kind is non-nil; platforms carry no state.
type Entity struct {
	ID   EntityID
	Kind Kind
	Body core.Rect
	Vel  core.Vec

	Player      *PlayerState
	Enemy       *EnemyState
	Collectible *CollectibleState
	Projectile  *ProjectileState
	Particle    *ParticleState
}

// Center returns the center of the entity body.
func (e *Entity) Center() core.Vec {
	return e.Body.CenterVec()
}
