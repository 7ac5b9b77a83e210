package service

import (
	"context"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/VolkofAndrey/micro-rest-app/internal/progress"
)

type profileService struct {
	catalog Catalog
	store   StateStore
}

func NewProfileService(catalog Catalog, store StateStore) ProfileService {
	return &profileService{catalog: catalog, store: store}
}

func (s *profileService) Get(ctx context.Context) (*contract.ProfileResponse, error) {
	history := s.store.History()
	streak := s.store.Streak()

	statuses := progress.AchievementStatuses(s.catalog.Achievements(), progress.Measures{
		TotalCompleted: len(history),
		Streak:         streak.Count,
	})
	unlocked := 0
	for _, st := range statuses {
		if st.Unlocked {
			unlocked++
		}
	}

	resp := &contract.ProfileResponse{
		Streak:         streak,
		Tier:           progress.TierFor(streak.Count),
		TotalPractices: len(history),
		FavoritesCount: len(s.store.Favorites()),
		Achievements:   statuses,
		UnlockedCount:  unlocked,
		Settings:       s.store.Settings(),
	}

	loc := s.store.Location()
	today := domain.DayOf(s.store.Now(), loc)
	if c, ok := progress.DailyChallengeFor(s.catalog.Challenges(), today); ok {
		st := progress.ChallengeProgress(c, history, today, loc, s.categoryOf)
		resp.Challenge = &contract.ChallengeView{
			Challenge: c,
			Progress:  st.Progress,
			Complete:  st.Complete(),
		}
	}
	return resp, nil
}

func (s *profileService) categoryOf(activityID string) (domain.Category, bool) {
	a, ok := s.catalog.ByID(activityID)
	if !ok {
		return "", false
	}
	return a.Category, true
}
