// Package state is the durable, write-through store for everything the
// user accumulates: history, favorites, the recency queue, the streak and
// settings.
//
// Every mutation runs under the store's lock and inside one transaction.
// In-memory state changes only after the transaction commits, so a failed
// write leaves the store exactly as it was.
package state

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/db"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/VolkofAndrey/micro-rest-app/internal/progress"
	"github.com/VolkofAndrey/micro-rest-app/internal/repository"
	"github.com/google/uuid"
)

// Snapshot is a copy of the whole state at one instant.
type Snapshot struct {
	History      []domain.HistoryEntry
	Favorites    []string
	RecentlyUsed domain.RecencyQueue
	Streak       domain.StreakState
	Settings     domain.Settings
}

type Store struct {
	mu     sync.Mutex
	conn   db.DBTX
	uow    db.UnitOfWork
	now    func() time.Time
	loc    *time.Location
	logger *slog.Logger
	system func() bool

	history   []domain.HistoryEntry
	favorites domain.Favorites
	recent    domain.RecencyQueue
	streak    domain.StreakState
	settings  domain.Settings
}

type Option func(*Store)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the zone whose calendar days drive the streak.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithSystemTheme supplies the dark-mode default used when no theme was
// ever saved.
func WithSystemTheme(dark func() bool) Option {
	return func(s *Store) { s.system = dark }
}

// WithUnitOfWork replaces the transaction runner used for writes.
func WithUnitOfWork(uow db.UnitOfWork) Option {
	return func(s *Store) { s.uow = uow }
}

// Open rehydrates a store from database. Missing or corrupt values fall back
// to their defaults with a warning; Open itself only fails on a nil database.
func Open(ctx context.Context, database *sql.DB, opts ...Option) (*Store, error) {
	if database == nil {
		return nil, errors.New("state: nil database")
	}
	s := &Store{
		conn:   database,
		uow:    db.NewSQLiteUnitOfWork(database),
		now:    time.Now,
		loc:    time.Local,
		logger: slog.New(slog.DiscardHandler),
		system: func() bool { return false },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) {
	raw, err := repository.NewSQLiteStateRepo(s.conn).All(ctx)
	if err != nil {
		s.logger.Warn("state_load_failed", "error", err)
		raw = map[string]string{}
	}

	s.history = []domain.HistoryEntry{}
	if v, ok := raw[KeyHistory]; ok {
		entries, skipped, err := decodeHistory(v)
		switch {
		case err != nil:
			s.resetKey(KeyHistory, err)
		case skipped > 0:
			s.logger.Warn("state_history_entries_dropped", "count", skipped)
			s.history = entries
		default:
			s.history = entries
		}
	}

	s.favorites = domain.NewFavorites(nil)
	if v, ok := raw[KeyFavorites]; ok {
		if ids, err := decodeIDs(v); err != nil {
			s.resetKey(KeyFavorites, err)
		} else {
			s.favorites = domain.NewFavorites(ids)
		}
	}

	s.recent = domain.RecencyQueue{}
	if v, ok := raw[KeyLastUsed]; ok {
		if ids, err := decodeIDs(v); err != nil {
			s.resetKey(KeyLastUsed, err)
		} else {
			s.recent = domain.NewRecencyQueue(ids)
		}
	}

	s.streak = domain.StreakState{}
	if v, ok := raw[KeyStreak]; ok {
		if n, err := decodeStreak(v); err != nil {
			s.resetKey(KeyStreak, err)
		} else {
			s.streak.Count = n
		}
	}
	if v, ok := raw[KeyLastActivityDate]; ok {
		if d, err := domain.ParseDay(v); err != nil {
			s.resetKey(KeyLastActivityDate, err)
		} else {
			s.streak.LastActivityDate = d
		}
	}

	s.settings = domain.Settings{DarkMode: s.system()}
	if v, ok := raw[KeyTheme]; ok {
		if dark, err := decodeTheme(v); err != nil {
			s.resetKey(KeyTheme, err)
		} else {
			s.settings.DarkMode = dark
		}
	}
	if v, ok := raw[KeyNotifications]; ok {
		if on, err := decodeBool(v); err != nil {
			s.resetKey(KeyNotifications, err)
		} else if on {
			s.settings.Notifications = domain.NotificationsEnabled
		} else {
			s.settings.Notifications = domain.NotificationsDisabled
		}
	}
	if v, ok := raw[KeyOnboardingDone]; ok {
		if done, err := decodeBool(v); err != nil {
			s.resetKey(KeyOnboardingDone, err)
		} else {
			s.settings.OnboardingDone = done
		}
	}
}

func (s *Store) resetKey(key string, err error) {
	s.logger.Warn("state_key_reset", "key", key, "error", err)
}

// write persists values in one transaction.
func (s *Store) write(ctx context.Context, values map[string]string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteStateRepo(tx)
		for _, k := range writeOrder {
			v, ok := values[k]
			if !ok {
				continue
			}
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeOrder keeps multi-key writes deterministic.
var writeOrder = []string{
	KeyHistory, KeyLastUsed, KeyStreak, KeyLastActivityDate,
	KeyFavorites, KeyTheme, KeyNotifications, KeyOnboardingDone,
}

// AppendHistory records a completion of activityID now, moves it to the
// front of the recency queue and advances the streak. The error only reports
// a storage failure, in which case nothing changes.
func (s *Store) AppendHistory(ctx context.Context, activityID string, emotion, location domain.ContextTag) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ts := now.UnixMilli()
	if len(s.history) > 0 && ts < s.history[0].Timestamp {
		s.logger.Warn("state_clock_behind_history", "now_ms", ts, "newest_ms", s.history[0].Timestamp)
		ts = s.history[0].Timestamp
	}

	entry := domain.HistoryEntry{
		ID:         newEntryID(),
		ActivityID: activityID,
		Timestamp:  ts,
		Emotion:    emotion,
		Location:   location,
	}

	history := make([]domain.HistoryEntry, 0, len(s.history)+1)
	history = append(history, entry)
	history = append(history, s.history...)
	recent := s.recent.Push(activityID)
	streak := progress.AdvanceStreak(s.streak, domain.DayOf(now, s.loc))

	encoded, err := encodeHistory(history)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	lastUsed, err := encodeIDs(recent)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	if err := s.write(ctx, map[string]string{
		KeyHistory:          encoded,
		KeyLastUsed:         lastUsed,
		KeyStreak:           encodeInt(streak.Count),
		KeyLastActivityDate: streak.LastActivityDate.String(),
	}); err != nil {
		return domain.HistoryEntry{}, err
	}

	s.history = history
	s.recent = recent
	s.streak = streak
	return entry, nil
}

func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// RemoveHistory deletes the entry with the given id. A missing id is a
// no-op and reports false. The streak and recency queue are not rewound.
func (s *Store) RemoveHistory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, h := range s.history {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	history := make([]domain.HistoryEntry, 0, len(s.history)-1)
	history = append(history, s.history[:idx]...)
	history = append(history, s.history[idx+1:]...)

	encoded, err := encodeHistory(history)
	if err != nil {
		return false, err
	}
	if err := s.write(ctx, map[string]string{KeyHistory: encoded}); err != nil {
		return false, err
	}
	s.history = history
	return true, nil
}

// ToggleFavorite adds activityID to favorites if absent, removes it if
// present, and reports whether it is now a favorite.
func (s *Store) ToggleFavorite(ctx context.Context, activityID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, added := s.favorites.Toggle(activityID)
	encoded, err := encodeIDs(next.IDs())
	if err != nil {
		return s.favorites.Contains(activityID), err
	}
	if err := s.write(ctx, map[string]string{KeyFavorites: encoded}); err != nil {
		return s.favorites.Contains(activityID), err
	}
	s.favorites = next
	return added, nil
}

func (s *Store) SetTheme(ctx context.Context, dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(ctx, map[string]string{KeyTheme: encodeBool(dark)}); err != nil {
		return err
	}
	s.settings.DarkMode = dark
	return nil
}

func (s *Store) SetNotificationsEnabled(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(ctx, map[string]string{KeyNotifications: encodeBool(enabled)}); err != nil {
		return err
	}
	if enabled {
		s.settings.Notifications = domain.NotificationsEnabled
	} else {
		s.settings.Notifications = domain.NotificationsDisabled
	}
	return nil
}

// MarkOnboarded records that the first-run introduction was shown.
func (s *Store) MarkOnboarded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(ctx, map[string]string{KeyOnboardingDone: encodeBool(true)}); err != nil {
		return err
	}
	s.settings.OnboardingDone = true
	return nil
}

// History returns the entries newest first.
func (s *Store) History() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.HistoryEntry{}, s.history...)
}

// Favorites returns favorite ids in the order they were added.
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.IDs()
}

func (s *Store) IsFavorite(activityID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Contains(activityID)
}

func (s *Store) RecentlyUsed() domain.RecencyQueue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(domain.RecencyQueue{}, s.recent...)
}

func (s *Store) Streak() domain.StreakState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

func (s *Store) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Location is the zone used for calendar-day arithmetic.
func (s *Store) Location() *time.Location { return s.loc }

// Now returns the store's clock reading.
func (s *Store) Now() time.Time { return s.now() }

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		History:      append([]domain.HistoryEntry{}, s.history...),
		Favorites:    s.favorites.IDs(),
		RecentlyUsed: append(domain.RecencyQueue{}, s.recent...),
		Streak:       s.streak,
		Settings:     s.settings,
	}
}
