package formatter

import (
	"testing"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/VolkofAndrey/micro-rest-app/internal/progress"
	"github.com/stretchr/testify/assert"
)

func TestFormatProfile(t *testing.T) {
	resp := &contract.ProfileResponse{
		Streak:         domain.StreakState{Count: 8, LastActivityDate: domain.Day{Year: 2026, Month: 4, Dom: 2}},
		Tier:           progress.TierFor(8),
		TotalPractices: 21,
		FavoritesCount: 3,
		Achievements: []progress.AchievementStatus{
			{Achievement: domain.Achievement{Emoji: "🌱", Title: "First Step", Description: "Complete one practice"}, Unlocked: true},
			{Achievement: domain.Achievement{Emoji: "🔥", Title: "Month Strong", Description: "30-day streak"}},
		},
		UnlockedCount: 1,
		Challenge: &contract.ChallengeView{
			Challenge: domain.DailyChallenge{Emoji: "🌬️", Text: "Breathe twice", Count: 2, Category: domain.CategoryBreathing},
			Progress:  1,
		},
	}

	out := stripANSI(FormatProfile(resp, testLabels{}))
	assert.Contains(t, out, "8 days")
	assert.Contains(t, out, resp.Tier.Name)
	assert.Contains(t, out, "Last practice: 2026-04-02")
	assert.Contains(t, out, "Practices: 21")
	assert.Contains(t, out, "Favorites: 3")
	assert.Contains(t, out, "TODAY'S CHALLENGE")
	assert.Contains(t, out, "Breathe twice (Breathing)")
	assert.Contains(t, out, "1/2")
	assert.NotContains(t, out, "complete")
	assert.Contains(t, out, "ACHIEVEMENTS 1/2")
	assert.Contains(t, out, "✔ 🌱 First Step")
	assert.Contains(t, out, "○ 🔥 Month Strong")
}

func TestFormatProfile_NoChallengeNoHistory(t *testing.T) {
	resp := &contract.ProfileResponse{Tier: progress.TierFor(0)}
	out := stripANSI(FormatProfile(resp, testLabels{}))

	assert.Contains(t, out, "0 days")
	assert.NotContains(t, out, "Last practice")
	assert.NotContains(t, out, "CHALLENGE")
	assert.Contains(t, out, "None defined.")
}

func TestFormatSettings(t *testing.T) {
	out := stripANSI(FormatSettings(domain.Settings{DarkMode: true, Notifications: domain.NotificationsUnset}))
	assert.Contains(t, out, "Theme:         dark")
	assert.Contains(t, out, "Notifications: not set")
	assert.Contains(t, out, "Onboarded:     no")

	out = stripANSI(FormatSettings(domain.Settings{Notifications: domain.NotificationsDisabled, OnboardingDone: true}))
	assert.Contains(t, out, "Theme:         light")
	assert.Contains(t, out, "Notifications: off")
	assert.Contains(t, out, "Onboarded:     yes")
}
