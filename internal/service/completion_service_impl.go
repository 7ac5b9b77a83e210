package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/VolkofAndrey/micro-rest-app/internal/progress"
)

type completionService struct {
	catalog  Catalog
	store    StateStore
	observer UseCaseObserver
}

func NewCompletionService(catalog Catalog, store StateStore, observers ...UseCaseObserver) CompletionService {
	return &completionService{
		catalog:  catalog,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *completionService) Complete(ctx context.Context, req contract.CompletionRequest) (resp *contract.CompletionResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"activity": req.ActivityID,
		"emotion":  string(req.Context.Emotion),
		"location": string(req.Context.Location),
	}
	defer observe(ctx, s.observer, "complete-activity", startedAt, fields, &err)

	activity, ok := s.catalog.ByID(req.ActivityID)
	if !ok {
		err = &contract.CompletionError{
			Code:    contract.CompletionErrUnknownActivity,
			Message: fmt.Sprintf("no activity with id %q", req.ActivityID),
		}
		return nil, err
	}
	if err = validateCompletionContext(req.Context); err != nil {
		return nil, err
	}

	defs := s.catalog.Achievements()
	before := unlockedSet(defs, len(s.store.History()), s.store.Streak().Count)

	entry, err := s.store.AppendHistory(ctx, activity.ID, req.Context.Emotion, req.Context.Location)
	if err != nil {
		return nil, fmt.Errorf("recording completion: %w", err)
	}

	streak := s.store.Streak()
	after := progress.EvaluateAchievements(defs, len(s.store.History()), streak.Count)

	resp = &contract.CompletionResponse{
		Entry:    entry,
		Activity: activity,
		Streak:   streak,
	}
	for _, id := range after {
		if before[id] {
			continue
		}
		for _, d := range defs {
			if d.ID == id {
				resp.NewlyUnlocked = append(resp.NewlyUnlocked, d)
			}
		}
	}
	fields["streak"] = streak.Count
	fields["unlocked"] = len(resp.NewlyUnlocked)
	return resp, nil
}

func unlockedSet(defs []domain.Achievement, historyLen, streak int) map[string]bool {
	set := make(map[string]bool)
	for _, id := range progress.EvaluateAchievements(defs, historyLen, streak) {
		set[id] = true
	}
	return set
}

// validateCompletionContext accepts a concrete emotion and location, or the
// same mode sentinel in both slots.
func validateCompletionContext(c domain.CompletionContext) error {
	if c.Emotion.IsMode() || c.Location.IsMode() {
		if c.Emotion != c.Location {
			return &contract.CompletionError{
				Code:    contract.CompletionErrInvalidContext,
				Message: fmt.Sprintf("mixed context %s/%s", c.Emotion, c.Location),
			}
		}
		return nil
	}
	if !c.Emotion.ValidEmotionTag() || !c.Location.ValidLocationTag() {
		return &contract.CompletionError{
			Code:    contract.CompletionErrInvalidContext,
			Message: fmt.Sprintf("unknown context %s/%s", c.Emotion, c.Location),
		}
	}
	return nil
}
