package service

import (
	"context"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
)

type historyService struct {
	catalog  Catalog
	store    StateStore
	observer UseCaseObserver
}

func NewHistoryService(catalog Catalog, store StateStore, observers ...UseCaseObserver) HistoryService {
	return &historyService{
		catalog:  catalog,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

// List resolves history entries against the catalog, newest first. Entries
// whose activity no longer exists are skipped.
func (s *historyService) List(ctx context.Context, req contract.HistoryRequest) (*contract.HistoryResponse, error) {
	entries := s.store.History()
	loc := s.store.Location()

	resp := &contract.HistoryResponse{Total: len(entries)}
	for _, e := range entries {
		a, ok := s.catalog.ByID(e.ActivityID)
		if !ok {
			continue
		}
		if !matchesQuery(a.Title, req.Query) {
			continue
		}
		resp.Items = append(resp.Items, contract.HistoryItem{
			Entry:       e,
			Activity:    a,
			CompletedAt: e.Time(loc),
		})
		if req.Limit > 0 && len(resp.Items) == req.Limit {
			break
		}
	}
	return resp, nil
}

func (s *historyService) Remove(ctx context.Context, id string) (removed bool, err error) {
	startedAt := time.Now()
	fields := map[string]any{"entry": id}
	defer observe(ctx, s.observer, "remove-history", startedAt, fields, &err)

	removed, err = s.store.RemoveHistory(ctx, id)
	fields["removed"] = removed
	return removed, err
}
