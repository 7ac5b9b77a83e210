package contract

import "github.com/VolkofAndrey/micro-rest-app/internal/domain"

// RecommendMode is how the user asked for a suggestion.
type RecommendMode string

const (
	ModeGuided RecommendMode = "guided"
	ModeQuick  RecommendMode = "quick"
	ModeSOS    RecommendMode = "sos"
)

type RecommendRequest struct {
	Mode     RecommendMode
	Emotion  domain.Emotion
	Location domain.Location
	Category domain.Category
}

func NewGuidedRequest(e domain.Emotion, l domain.Location) RecommendRequest {
	return RecommendRequest{Mode: ModeGuided, Emotion: e, Location: l}
}

func NewQuickRequest(c domain.Category) RecommendRequest {
	return RecommendRequest{Mode: ModeQuick, Category: c}
}

func NewSOSRequest() RecommendRequest {
	return RecommendRequest{Mode: ModeSOS}
}

// CompletionContext is what a completion started from this request records.
func (r RecommendRequest) CompletionContext() domain.CompletionContext {
	switch r.Mode {
	case ModeSOS:
		return domain.SOSContext()
	case ModeQuick:
		return domain.QuickContext()
	default:
		return domain.GuidedContext(r.Emotion, r.Location)
	}
}

// RecommendOutcome separates "here is an activity" from the expected,
// non-error case of an empty candidate set.
type RecommendOutcome string

const (
	OutcomeRecommended  RecommendOutcome = "RECOMMENDED"
	OutcomeNoCandidates RecommendOutcome = "NO_CANDIDATES"
)

type RecommendResponse struct {
	Outcome  RecommendOutcome
	Request  RecommendRequest
	Activity domain.Activity
	// Context is recorded with the completion if the user goes ahead.
	Context        domain.CompletionContext
	CandidateCount int
	// Fresh is false when every candidate was recently used and the pick
	// came from the exhaustion fallback.
	Fresh      bool
	IsFavorite bool
	// Reaction is the supportive line shown for the chosen emotion.
	Reaction string
}

func (r RecommendResponse) Found() bool {
	return r.Outcome == OutcomeRecommended
}

type RecommendErrorCode string

const (
	RecommendErrInvalidMode     RecommendErrorCode = "INVALID_MODE"
	RecommendErrInvalidEmotion  RecommendErrorCode = "INVALID_EMOTION"
	RecommendErrInvalidLocation RecommendErrorCode = "INVALID_LOCATION"
	RecommendErrInvalidCategory RecommendErrorCode = "INVALID_CATEGORY"
)

type RecommendError struct {
	Code    RecommendErrorCode
	Message string
}

func (e *RecommendError) Error() string {
	return string(e.Code) + ": " + e.Message
}
