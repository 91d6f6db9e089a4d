package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/abhisek/linguist/internal/store"
)

// LoggingProvider records every Generate call in the event store.
type LoggingProvider struct {
	inner   Provider
	backend string
	repo    store.EventRepo

	// dropped counts events the repo refused. The TUI owns the terminal,
	// so these are counted instead of printed.
	dropped atomic.Int64
}

// WithLogging wraps p. backend names the provider ("gemini", "openai", ...)
// in the recorded events.
func WithLogging(p Provider, backend string, repo store.EventRepo) *LoggingProvider {
	return &LoggingProvider{inner: p, backend: backend, repo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.backend,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
		if resp.Model != "" {
			ev.Model = resp.Model
		}
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		var inv *ErrInvalidResponse
		var trunc *ErrMaxTokensExceeded
		switch {
		case errors.As(err, &inv):
			ev.ResponseBody = string(inv.Content)
		case errors.As(err, &trunc):
			ev.ResponseBody = string(trunc.Content)
		}
	}

	if logErr := l.repo.AppendLLMRequest(context.WithoutCancel(ctx), ev); logErr != nil {
		l.dropped.Add(1)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

// Dropped is the number of events that could not be stored.
func (l *LoggingProvider) Dropped() int64 { return l.dropped.Load() }

// transcript renders req the way it is shown by `linguist llm view`.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
