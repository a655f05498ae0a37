package sim

// EventKind represents the type of a simulation event.
type EventKind uint8

const (
	EventJumped       EventKind = iota
	EventLanded                 // On-ground false -> true
	EventShot                   // Player fired
	EventEnemyShot              // Enemy fired
	EventEnemyContact           // Player touched an enemy
	EventEnemyKilled            // Player projectile destroyed an enemy
	EventPlayerHit              // Enemy projectile struck the player
	EventCollected
	EventBoostStarted
	EventBoostEnded
	EventSessionEnded
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventLanded:
		return "landed"
	case EventShot:
		return "shot"
	case EventEnemyShot:
		return "enemy_shot"
	case EventEnemyContact:
		return "enemy_contact"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventCollected:
		return "collected"
	case EventBoostStarted:
		return "boost_started"
	case EventBoostEnded:
		return "boost_ended"
	case EventSessionEnded:
		return "session_ended"
	default:
		return "unknown"
	}
}

// Event records something that happened during a step.
// Fields that do not apply to the kind are zero.
type Event struct {
	Kind    EventKind
	Tick    uint64
	ID      EntityID // Entity the event is about
	Points  int      // Points awarded
	Tier    Tier     // Collected tier
	Outcome Outcome  // Terminal outcome for EventSessionEnded
}
