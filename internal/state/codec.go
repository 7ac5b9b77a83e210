package state

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

// Keys in the kv_state table.
const (
	KeyHistory          = "history"
	KeyFavorites        = "favorites"
	KeyLastUsed         = "lastUsed"
	KeyStreak           = "streak"
	KeyLastActivityDate = "lastActivityDate"
	KeyTheme            = "theme"
	KeyNotifications    = "notifications"
	KeyOnboardingDone   = "onboardingDone"
)

func encodeHistory(h []domain.HistoryEntry) (string, error) {
	if h == nil {
		h = []domain.HistoryEntry{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return "", fmt.Errorf("encoding history: %w", err)
	}
	return string(b), nil
}

// decodeHistory rejects the whole value if it is not a JSON array. Entries
// missing an id or activity id are dropped and counted in skipped.
func decodeHistory(raw string) (entries []domain.HistoryEntry, skipped int, err error) {
	var decoded []domain.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, 0, fmt.Errorf("decoding history: %w", err)
	}
	entries = make([]domain.HistoryEntry, 0, len(decoded))
	for _, h := range decoded {
		if h.ID == "" || h.ActivityID == "" {
			skipped++
			continue
		}
		entries = append(entries, h)
	}
	return entries, skipped, nil
}

func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encoding ids: %w", err)
	}
	return string(b), nil
}

func decodeIDs(raw string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decoding ids: %w", err)
	}
	return ids, nil
}

func encodeInt(n int) string { return strconv.Itoa(n) }

func decodeStreak(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("decoding streak: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("decoding streak: negative value %d", n)
	}
	return n, nil
}

func encodeBool(b bool) string { return strconv.FormatBool(b) }

func decodeBool(raw string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("decoding flag: %w", err)
	}
	return b, nil
}

// decodeTheme also accepts the "dark"/"light" words older builds wrote.
func decodeTheme(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dark":
		return true, nil
	case "light":
		return false, nil
	}
	return decodeBool(raw)
}
