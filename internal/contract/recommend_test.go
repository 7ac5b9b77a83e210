package contract

import (
	"testing"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecommendRequest_CompletionContext(t *testing.T) {
	guided := NewGuidedRequest(domain.EmotionAngry, domain.LocationTransport)
	assert.Equal(t, domain.CompletionContext{Emotion: "ANGRY", Location: "TRANSPORT"}, guided.CompletionContext())

	assert.Equal(t, domain.SOSContext(), NewSOSRequest().CompletionContext())
	assert.Equal(t, domain.QuickContext(), NewQuickRequest(domain.CategoryFocus).CompletionContext())
}

func TestNewQuickRequest_SetsCategoryOnly(t *testing.T) {
	req := NewQuickRequest(domain.CategoryAudio)
	assert.Equal(t, ModeQuick, req.Mode)
	assert.Equal(t, domain.CategoryAudio, req.Category)
	assert.Empty(t, req.Emotion)
	assert.Empty(t, req.Location)
}

func TestRecommendResponse_Found(t *testing.T) {
	assert.True(t, RecommendResponse{Outcome: OutcomeRecommended}.Found())
	assert.False(t, RecommendResponse{Outcome: OutcomeNoCandidates}.Found())
}

func TestErrors_FormatCodeAndMessage(t *testing.T) {
	err := &RecommendError{Code: RecommendErrInvalidEmotion, Message: `unknown emotion "meh"`}
	assert.Equal(t, `INVALID_EMOTION: unknown emotion "meh"`, err.Error())

	cerr := &CompletionError{Code: CompletionErrUnknownActivity, Message: "nope"}
	assert.Equal(t, "UNKNOWN_ACTIVITY: nope", cerr.Error())
}
