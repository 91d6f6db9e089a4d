package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionSchema = &Schema{
	Name: "test-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
			"correctAnswer": map[string]any{"type": "string"},
		},
		"required": []string{"question", "options", "correctAnswer"},
	},
}

const questionJSON = `{"question":"Wat is de hoofdstad van Friesland?","options":["Leeuwarden","Sneek","Drachten","Heerenveen"],"correctAnswer":"Leeuwarden"}`

func TestReplyFinish(t *testing.T) {
	req := Request{Schema: questionSchema}

	resp, err := reply{text: "```json\n" + questionJSON + "\n```", model: "m", usage: Usage{3, 4}}.finish(req)
	require.NoError(t, err)
	assert.JSONEq(t, questionJSON, string(resp.Content))
	assert.Equal(t, "m", resp.Model)
	assert.Equal(t, 7, resp.Usage.Total())

	_, err = reply{text: questionJSON, truncated: true}.finish(req)
	var trunc *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &trunc, "truncation wins even over a valid body")

	_, err = reply{text: "\n"}.finish(Request{})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)

	resp, err = reply{text: "geen json"}.finish(Request{})
	require.NoError(t, err, "without a schema the text is passed through")
	assert.Equal(t, "geen json", string(resp.Content))
}

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		status    int
		transient bool
		check     func(error) bool
	}{
		{http.StatusTooManyRequests, true, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, true, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{0, true, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{http.StatusUnauthorized, false, func(err error) bool { return errors.Is(err, ErrRejectedKey) }},
		{http.StatusForbidden, false, func(err error) bool { return errors.Is(err, ErrRejectedKey) }},
	}
	for _, tt := range tests {
		err := classifyStatus(tt.status, cause)
		assert.True(t, tt.check(err), "status %d: %v", tt.status, err)
		assert.Equal(t, tt.transient, IsTransient(err), "status %d", tt.status)
		assert.ErrorIs(t, err, cause, "status %d keeps the cause", tt.status)
	}
}

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(questionJSON), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	assert.Equal(t, "mock", mock.ModelID())

	resp, err := mock.Generate(context.Background(), Request{System: "sys"})
	require.NoError(t, err)
	assert.Equal(t, questionJSON, string(resp.Content))
	assert.Equal(t, 15, resp.Usage.Total())

	_, err = mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail, "exhausted script")

	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, "sys", mock.Calls[0].System)
}

func TestPurposeContext(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
	assert.Equal(t, "lesson-questions", PurposeFrom(WithPurpose(context.Background(), "lesson-questions")))
}
