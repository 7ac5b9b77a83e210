package contract

import "github.com/VolkofAndrey/micro-rest-app/internal/domain"

type CompletionRequest struct {
	ActivityID string
	Context    domain.CompletionContext
}

type CompletionResponse struct {
	Entry    domain.HistoryEntry
	Activity domain.Activity
	Streak   domain.StreakState
	// NewlyUnlocked lists achievements this completion unlocked.
	NewlyUnlocked []domain.Achievement
}

type CompletionErrorCode string

const (
	CompletionErrUnknownActivity CompletionErrorCode = "UNKNOWN_ACTIVITY"
	CompletionErrInvalidContext  CompletionErrorCode = "INVALID_CONTEXT"
)

type CompletionError struct {
	Code    CompletionErrorCode
	Message string
}

func (e *CompletionError) Error() string {
	return string(e.Code) + ": " + e.Message
}
