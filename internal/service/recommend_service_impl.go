package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/VolkofAndrey/micro-rest-app/internal/recommend"
)

type recommendService struct {
	catalog  Catalog
	store    StateStore
	observer UseCaseObserver

	mu  sync.Mutex
	src recommend.Source
}

func NewRecommendService(
	catalog Catalog,
	store StateStore,
	src recommend.Source,
	observers ...UseCaseObserver,
) RecommendService {
	return &recommendService{
		catalog:  catalog,
		store:    store,
		src:      src,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recommendService) Recommend(ctx context.Context, req contract.RecommendRequest) (resp *contract.RecommendResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"mode": string(req.Mode)}
	defer observe(ctx, s.observer, "recommend", startedAt, fields, &err)

	if err = validateRecommendRequest(req); err != nil {
		return nil, err
	}

	resp = &contract.RecommendResponse{
		Outcome: contract.OutcomeNoCandidates,
		Request: req,
		Context: req.CompletionContext(),
	}

	var (
		candidates []domain.Activity
		picked     domain.Activity
		ok         bool
	)
	recent := s.store.RecentlyUsed()

	s.mu.Lock()
	switch req.Mode {
	case contract.ModeSOS:
		candidates = s.catalog.All()
		picked, ok = recommend.SelectSOS(candidates, s.src)
		resp.CandidateCount = len(s.catalog.SOS())
	case contract.ModeQuick:
		candidates = s.catalog.ByCategory(req.Category)
		picked, ok = recommend.Select(candidates, recent, s.src)
		resp.CandidateCount = len(candidates)
	default:
		candidates = s.catalog.ForContext(req.Emotion, req.Location)
		picked, ok = recommend.Select(candidates, recent, s.src)
		resp.CandidateCount = len(candidates)
		resp.Reaction = s.catalog.Emotion(req.Emotion).Reaction
	}
	s.mu.Unlock()

	fields["candidates"] = resp.CandidateCount
	if !ok {
		fields["outcome"] = string(contract.OutcomeNoCandidates)
		return resp, nil
	}

	resp.Outcome = contract.OutcomeRecommended
	resp.Activity = picked
	resp.IsFavorite = s.store.IsFavorite(picked.ID)
	resp.Fresh = req.Mode == contract.ModeSOS || recommend.IsFresh(picked, recent)
	fields["outcome"] = string(contract.OutcomeRecommended)
	fields["activity"] = picked.ID
	fields["fresh"] = resp.Fresh
	return resp, nil
}

func validateRecommendRequest(req contract.RecommendRequest) error {
	switch req.Mode {
	case contract.ModeSOS:
		return nil
	case contract.ModeQuick:
		if !req.Category.Valid() {
			return &contract.RecommendError{
				Code:    contract.RecommendErrInvalidCategory,
				Message: fmt.Sprintf("unknown category %q", req.Category),
			}
		}
		return nil
	case contract.ModeGuided:
		if !req.Emotion.Valid() {
			return &contract.RecommendError{
				Code:    contract.RecommendErrInvalidEmotion,
				Message: fmt.Sprintf("unknown emotion %q", req.Emotion),
			}
		}
		if !req.Location.Valid() {
			return &contract.RecommendError{
				Code:    contract.RecommendErrInvalidLocation,
				Message: fmt.Sprintf("unknown location %q", req.Location),
			}
		}
		return nil
	default:
		return &contract.RecommendError{
			Code:    contract.RecommendErrInvalidMode,
			Message: fmt.Sprintf("unknown mode %q", req.Mode),
		}
	}
}
