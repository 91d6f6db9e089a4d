package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var okReply = MockResponse{Content: json.RawMessage(questionJSON)}

func TestRetry(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	invalid := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{}`), Err: errors.New("bad")}}

	tests := []struct {
		name      string
		script    []MockResponse
		wantCalls int
		wantOK    bool
	}{
		{"first attempt", []MockResponse{okReply}, 1, true},
		{"transient then ok", []MockResponse{down, okReply}, 2, true},
		{"rate limit honours RetryAfter", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, okReply}, 2, true},
		{"gives up after max attempts", []MockResponse{down, down, down, okReply}, 3, false},
		{"invalid reply retried once", []MockResponse{invalid, invalid, okReply}, 2, false},
		{"truncation not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, okReply}, 1, false},
		{"rejected key not retried", []MockResponse{{Err: fmt.Errorf("%w: 401", ErrRejectedKey)}, okReply}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			resp, err := WithRetry(mock, fastRetry(3)).Generate(context.Background(), Request{})
			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, questionJSON, string(resp.Content))
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRetry_DefaultIsSingleAttempt(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, okReply)
	_, err := WithRetry(mock, DefaultConfig().Retry).Generate(context.Background(), Request{})
	assert.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_StopsWhenCancelled(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, okReply)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastRetry(3)
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_WaitStaysInBounds(t *testing.T) {
	r := WithRetry(nil, RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: time.Second, Multiplier: 2})
	for attempt := 0; attempt < 8; attempt++ {
		d := r.wait(attempt, errors.New("x"))
		assert.GreaterOrEqual(t, d, 80*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}
	assert.Equal(t, 3*time.Second, r.wait(0, &ErrRateLimit{RetryAfter: 3 * time.Second}))
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "blocking", p.ModelID())

	assert.Equal(t, Provider(blockingProvider{}), WithTimeout(blockingProvider{}, 0))
}
