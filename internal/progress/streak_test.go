package progress

import (
	"testing"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) domain.Day {
	return domain.Day{Year: y, Month: m, Dom: d}
}

func TestAdvanceStreak(t *testing.T) {
	today := day(2025, 3, 15)

	tests := []struct {
		name string
		in   domain.StreakState
		want domain.StreakState
	}{
		{
			name: "first ever completion",
			in:   domain.StreakState{},
			want: domain.StreakState{Count: 1, LastActivityDate: today},
		},
		{
			name: "same day is unchanged",
			in:   domain.StreakState{Count: 4, LastActivityDate: today},
			want: domain.StreakState{Count: 4, LastActivityDate: today},
		},
		{
			name: "yesterday extends",
			in:   domain.StreakState{Count: 4, LastActivityDate: day(2025, 3, 14)},
			want: domain.StreakState{Count: 5, LastActivityDate: today},
		},
		{
			name: "two day gap resets",
			in:   domain.StreakState{Count: 9, LastActivityDate: day(2025, 3, 13)},
			want: domain.StreakState{Count: 1, LastActivityDate: today},
		},
		{
			name: "future date resets",
			in:   domain.StreakState{Count: 9, LastActivityDate: day(2025, 3, 20)},
			want: domain.StreakState{Count: 1, LastActivityDate: today},
		},
		{
			name: "count without date restarts",
			in:   domain.StreakState{Count: 3},
			want: domain.StreakState{Count: 1, LastActivityDate: today},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdvanceStreak(tt.in, today))
		})
	}
}

func TestAdvanceStreak_AcrossMonthAndYear(t *testing.T) {
	s := domain.StreakState{Count: 2, LastActivityDate: day(2024, 12, 31)}
	got := AdvanceStreak(s, day(2025, 1, 1))
	assert.Equal(t, 3, got.Count)

	s = domain.StreakState{Count: 2, LastActivityDate: day(2024, 2, 28)}
	got = AdvanceStreak(s, day(2024, 2, 29))
	assert.Equal(t, 3, got.Count, "leap day follows Feb 28")
}

func TestAdvanceStreak_ScenarioLocalMidnight(t *testing.T) {
	// Completions at 23:59 and 00:01 local are on consecutive days even
	// though they fall on the same UTC date.
	loc := time.FixedZone("UTC+3", 3*60*60)
	first := time.Date(2025, 3, 14, 23, 59, 0, 0, loc)
	second := time.Date(2025, 3, 15, 0, 1, 0, 0, loc)

	s := AdvanceStreak(domain.StreakState{}, domain.DayOf(first, loc))
	s = AdvanceStreak(s, domain.DayOf(second, loc))
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, day(2025, 3, 15), s.LastActivityDate)
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, "sprout", TierFor(0).Name)
	assert.Equal(t, "sprout", TierFor(6).Name)
	assert.Equal(t, "gem", TierFor(7).Name)
	assert.Equal(t, "gem", TierFor(13).Name)
	assert.Equal(t, "star", TierFor(14).Name)
	assert.Equal(t, "crown", TierFor(30).Name)
	assert.Equal(t, "👑", TierFor(365).Emoji)
}
