package service

import (
	"context"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

type settingsService struct {
	store    StateStore
	observer UseCaseObserver
}

func NewSettingsService(store StateStore, observers ...UseCaseObserver) SettingsService {
	return &settingsService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.store.Settings(), nil
}

func (s *settingsService) SetTheme(ctx context.Context, dark bool) (err error) {
	defer observe(ctx, s.observer, "set-theme", time.Now(), map[string]any{"dark": dark}, &err)
	return s.store.SetTheme(ctx, dark)
}

func (s *settingsService) SetNotifications(ctx context.Context, enabled bool) (err error) {
	defer observe(ctx, s.observer, "set-notifications", time.Now(), map[string]any{"enabled": enabled}, &err)
	return s.store.SetNotificationsEnabled(ctx, enabled)
}

func (s *settingsService) MarkOnboarded(ctx context.Context) error {
	if s.store.Settings().OnboardingDone {
		return nil
	}
	return s.store.MarkOnboarded(ctx)
}
