package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// Session actions.
const (
	SessionActionStart    = "start"
	SessionActionComplete = "complete"
	SessionActionCancel   = "cancel"
)

// SessionEventData captures a lesson session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Action         string
	ProfileID      string
	Topic          string
	Mode           string
	Difficulty     string
	QuestionsTotal int
	CorrectAnswers int
	Score          int
	Points         int
	BestCombo      int
	DurationSecs   int
}

// SessionEvent is a stored lesson session event.
type SessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single LLM event, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// AppendSessionEvent records a lesson session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionEvents returns session events, newest first. An empty
	// profileID matches every profile.
	QuerySessionEvents(ctx context.Context, profileID string, opts QueryOpts) ([]SessionEvent, error)
}

// RecordRepo stores opaque payloads under string keys.
type RecordRepo interface {
	// Get returns the payload for key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)

	// Put creates or replaces the payload for key.
	Put(ctx context.Context, key string, payload []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
