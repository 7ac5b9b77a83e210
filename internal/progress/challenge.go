package progress

import (
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

// DailyChallengeFor picks the challenge for a calendar day. The choice is
// stable for the whole day and rotates through the list day by day.
func DailyChallengeFor(challenges []domain.DailyChallenge, day domain.Day) (domain.DailyChallenge, bool) {
	if len(challenges) == 0 {
		return domain.DailyChallenge{}, false
	}
	idx := day.DaysSinceEpoch() % len(challenges)
	if idx < 0 {
		idx += len(challenges)
	}
	return challenges[idx], true
}

// ChallengeStatus is the day's challenge and how far along it is.
type ChallengeStatus struct {
	Challenge domain.DailyChallenge
	Progress  int
}

func (s ChallengeStatus) Complete() bool {
	return s.Progress >= s.Challenge.Count
}

// CategoryLookup resolves an activity id to its category. Unknown ids return
// false and are not counted.
type CategoryLookup func(activityID string) (domain.Category, bool)

// ChallengeProgress counts entries completed on day, in loc, whose activity
// belongs to the challenge's category.
func ChallengeProgress(c domain.DailyChallenge, history []domain.HistoryEntry, day domain.Day, loc *time.Location, lookup CategoryLookup) ChallengeStatus {
	n := 0
	for _, h := range history {
		if domain.DayOf(h.Time(loc), loc) != day {
			continue
		}
		cat, ok := lookup(h.ActivityID)
		if ok && cat == c.Category {
			n++
		}
	}
	return ChallengeStatus{Challenge: c, Progress: n}
}
