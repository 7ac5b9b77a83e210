package contract

import (
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/VolkofAndrey/micro-rest-app/internal/progress"
)

type ChallengeView struct {
	Challenge domain.DailyChallenge
	Progress  int
	Complete  bool
}

type ProfileResponse struct {
	Streak         domain.StreakState
	Tier           progress.Tier
	TotalPractices int
	FavoritesCount int
	Achievements   []progress.AchievementStatus
	UnlockedCount  int
	// Challenge is nil when the catalog defines no challenges.
	Challenge *ChallengeView
	Settings  domain.Settings
}
