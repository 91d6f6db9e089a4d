// Package llm talks to hosted language models. Every backend is reached
// through Provider, which always returns JSON checked against the schema
// the caller asked for.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Provider generates one structured reply per request.
type Provider interface {
	// Generate sends req and returns the model's reply. When req.Schema is
	// set the reply has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the backend model the provider targets.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the sender of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the reply must satisfy. Name is used as
// the cache key for the compiled schema and as the structured-output name
// on backends that need one, e.g. "lesson-questions".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a successful reply.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string
}

// Usage is the token accounting reported by the backend.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is the sum of input and output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// reply is what an adapter pulls out of its SDK's response before the
// checks every backend shares.
type reply struct {
	text      string
	model     string
	truncated bool
	usage     Usage
}

// finish turns r into a Response for req: fences are stripped, truncated
// and empty replies are rejected and the schema is enforced.
func (r reply) finish(req Request) (*Response, error) {
	content := stripCodeFence(r.text)
	if r.truncated {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if len(content) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("empty reply")}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: r.usage, Model: r.model}, nil
}
