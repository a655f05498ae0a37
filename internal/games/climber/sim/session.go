package sim

import "github.com/vovakirdan/hypnos/internal/config"

// Outcome is the terminal state of a session.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeQuit
	OutcomeDiedFall
	OutcomeDiedCombat
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeQuit:
		return "quit"
	case OutcomeDiedFall:
		return "fell"
	case OutcomeDiedCombat:
		return "killed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o != OutcomeNone
}

// Session holds the score components and the terminal outcome.
type Session struct {
	Outcome          Outcome
	KillScore        int
	CollectibleScore int
	HeightScore      int
	Boost            int // Remaining boost ticks, 0 when inactive
}

// EventScore returns the event points enabled by the scoring config.
func (s Session) EventScore(sc config.ScoringConfig) int {
	total := 0
	if sc.Kills {
		total += s.KillScore
	}
	if sc.Collectibles {
		total += s.CollectibleScore
	}
	return total
}

// Total returns the displayed score: enabled event points plus height.
func (s Session) Total(sc config.ScoringConfig) int {
	total := s.EventScore(sc)
	if sc.Height {
		total += s.HeightScore
	}
	return total
}

// Boosted reports whether a boost window is active.
func (s Session) Boosted() bool {
	return s.Boost > 0
}

// end moves the session to a terminal outcome. The first terminal wins.
func (s *Session) end(o Outcome) bool {
	if s.Outcome.Terminal() || !o.Terminal() {
		return false
	}
	s.Outcome = o
	return true
}
