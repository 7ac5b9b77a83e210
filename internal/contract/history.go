package contract

import (
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

type HistoryRequest struct {
	// Query filters by activity title, ignoring case. Empty matches all.
	Query string
	// Limit caps the number of items; 0 means no limit.
	Limit int
}

// HistoryItem is a history entry joined with its catalog activity. Entries
// whose activity is no longer in the catalog never become items.
type HistoryItem struct {
	Entry       domain.HistoryEntry
	Activity    domain.Activity
	CompletedAt time.Time
}

type HistoryResponse struct {
	Items []HistoryItem
	// Total counts every stored entry, including dangling ones.
	Total int
}
