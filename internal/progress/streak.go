// Package progress holds the pure progress rules: streak advancement,
// achievement unlocks, the daily challenge and streak tiers.
package progress

import "github.com/VolkofAndrey/micro-rest-app/internal/domain"

// AdvanceStreak applies one completion on today to the streak.
//
// A completion on the same day as the last one leaves the streak unchanged.
// A completion on the following day extends it. Anything else, including a
// missing or future last date, restarts it at 1.
func AdvanceStreak(s domain.StreakState, today domain.Day) domain.StreakState {
	if !s.LastActivityDate.IsZero() {
		if s.LastActivityDate == today {
			return s
		}
		if s.LastActivityDate.AddDays(1) == today {
			return domain.StreakState{Count: s.Count + 1, LastActivityDate: today}
		}
	}
	return domain.StreakState{Count: 1, LastActivityDate: today}
}

// Tier is the badge shown next to a streak.
type Tier struct {
	Name  string
	Emoji string
	Min   int
}

var tiers = []Tier{
	{Name: "crown", Emoji: "👑", Min: 30},
	{Name: "star", Emoji: "⭐", Min: 14},
	{Name: "gem", Emoji: "💎", Min: 7},
	{Name: "sprout", Emoji: "🌱", Min: 0},
}

// TierFor returns the highest tier whose threshold streak reaches.
func TierFor(streak int) Tier {
	for _, t := range tiers {
		if streak >= t.Min {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
