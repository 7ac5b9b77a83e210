package state

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/VolkofAndrey/micro-rest-app/internal/repository"
	"github.com/VolkofAndrey/micro-rest-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, values map[string]string) *Store {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStateRepo(database)
	for k, v := range values {
		require.NoError(t, repo.Set(context.Background(), k, v))
	}
	clock := testutil.NewClock(time.Date(2025, 3, 15, 9, 0, 0, 0, testLoc))
	return openStore(t, database, clock)
}

func TestLoad_DecodesEveryKey(t *testing.T) {
	s := seed(t, map[string]string{
		KeyHistory:          `[{"id":"h1","activityId":"breath-1","timestamp":1742018400000,"emotion":"ANXIOUS","location":"HOME"}]`,
		KeyFavorites:        `["visual-1","breath-1"]`,
		KeyLastUsed:         `["breath-1","breath-1","focus-2"]`,
		KeyStreak:           "6",
		KeyLastActivityDate: "2025-03-15",
		KeyTheme:            "false",
		KeyNotifications:    "true",
		KeyOnboardingDone:   "true",
	})

	snap := s.Snapshot()
	require.Len(t, snap.History, 1)
	assert.Equal(t, domain.HistoryEntry{
		ID: "h1", ActivityID: "breath-1", Timestamp: 1742018400000,
		Emotion: "ANXIOUS", Location: "HOME",
	}, snap.History[0])
	assert.Equal(t, []string{"visual-1", "breath-1"}, snap.Favorites)
	assert.Equal(t, domain.RecencyQueue{"breath-1", "focus-2"}, snap.RecentlyUsed)
	assert.Equal(t, domain.StreakState{Count: 6, LastActivityDate: domain.Day{Year: 2025, Month: 3, Dom: 15}}, snap.Streak)
	assert.Equal(t, domain.Settings{DarkMode: false, Notifications: domain.NotificationsEnabled, OnboardingDone: true}, snap.Settings)
}

func TestLoad_CorruptKeysResetIndividually(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStateRepo(database)
	ctx := context.Background()
	for k, v := range map[string]string{
		KeyHistory:          `{not json`,
		KeyFavorites:        `["ok"]`,
		KeyLastUsed:         `42`,
		KeyStreak:           "-3",
		KeyLastActivityDate: "someday",
		KeyTheme:            "dark",
		KeyNotifications:    "maybe",
	} {
		require.NoError(t, repo.Set(ctx, k, v))
	}

	var logs bytes.Buffer
	clock := testutil.NewClock(time.Date(2025, 3, 15, 9, 0, 0, 0, testLoc))
	s := openStore(t, database, clock, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	snap := s.Snapshot()
	assert.Empty(t, snap.History)
	assert.Equal(t, []string{"ok"}, snap.Favorites, "a healthy key survives its neighbours' corruption")
	assert.Empty(t, snap.RecentlyUsed)
	assert.Equal(t, domain.StreakState{}, snap.Streak)
	assert.True(t, snap.Settings.DarkMode, "legacy theme word is accepted")
	assert.Equal(t, domain.NotificationsUnset, snap.Settings.Notifications)

	out := logs.String()
	for _, key := range []string{KeyHistory, KeyLastUsed, KeyStreak, KeyLastActivityDate, KeyNotifications} {
		assert.Contains(t, out, "key="+key)
	}
}

func TestLoad_LegacyDateAndDroppedEntries(t *testing.T) {
	s := seed(t, map[string]string{
		KeyHistory:          `[{"id":"h1","activityId":"a","timestamp":1},{"id":"","activityId":"b","timestamp":0},{"id":"h3","timestamp":0}]`,
		KeyLastActivityDate: "Sat Mar 15 2025",
		KeyStreak:           "2",
	})

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, "h1", history[0].ID)
	assert.Equal(t, domain.Day{Year: 2025, Month: 3, Dom: 15}, s.Streak().LastActivityDate)
}

func TestLoad_CorruptStateIsRepairedOnNextWrite(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStateRepo(database)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, KeyHistory, `garbage`))

	clock := testutil.NewClock(time.Date(2025, 3, 15, 9, 0, 0, 0, testLoc))
	s := openStore(t, database, clock)
	_, err := s.AppendHistory(ctx, "a", domain.TagQuick, domain.TagQuick)
	require.NoError(t, err)

	raw, err := repo.Get(ctx, KeyHistory)
	require.NoError(t, err)
	entries, _, err := decodeHistory(raw)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
