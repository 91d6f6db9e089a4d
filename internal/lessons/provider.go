package lessons

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/linguist/internal/llm"
)

// Provider obtains a batch of questions for a lesson. It either returns a
// complete, validated batch or an error; never a partial batch.
type Provider interface {
	FetchQuestions(ctx context.Context, req LessonConfig) ([]Question, error)
}

// LLMProvider implements Provider on top of an llm.Provider.
type LLMProvider struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMProvider. A nil provider is allowed: every fetch then
// fails fast with a ConfigurationError.
func New(provider llm.Provider, cfg Config) *LLMProvider {
	if cfg.QuestionsPerLesson <= 0 {
		cfg.QuestionsPerLesson = QuestionsPerLesson
	}
	return &LLMProvider{provider: provider, config: cfg}
}

// Configured reports whether the provider has a credentialed backend.
func (p *LLMProvider) Configured() bool {
	return p != nil && p.provider != nil
}

// FetchQuestions asks the LLM for a lesson batch about req.Topic.
func (p *LLMProvider) FetchQuestions(ctx context.Context, req LessonConfig) ([]Question, error) {
	req = req.Normalize()
	if req.Topic == "" {
		return nil, &InvalidInputError{Err: ErrEmptyTopic}
	}
	if !p.Configured() {
		return nil, &ConfigurationError{Err: llm.ErrNoCredentials}
	}

	ctx = llm.WithPurpose(ctx, "lesson-questions")

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, p.config.QuestionsPerLesson)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	resp, err := p.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, &ContentGenerationError{Topic: req.Topic, Err: err}
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ContentGenerationError{Topic: req.Topic, Err: fmt.Errorf("parse LLM response: %w", err)}
	}

	questions := normalizeQuestions(raw.Questions)
	if len(questions) > p.config.QuestionsPerLesson {
		questions = questions[:p.config.QuestionsPerLesson]
	}

	// Run validators in order.
	for _, v := range p.config.Validators {
		if verr := v.Validate(questions); verr != nil {
			return nil, &ContentGenerationError{Topic: req.Topic, Err: verr}
		}
	}

	return questions, nil
}

// normalizeQuestions trims whitespace and numbers questions without an id.
func normalizeQuestions(raw []questionOutput) []Question {
	out := make([]Question, 0, len(raw))
	for i, r := range raw {
		q := Question{
			ID:            strings.TrimSpace(r.ID),
			Prompt:        strings.TrimSpace(r.Question),
			CorrectAnswer: strings.TrimSpace(r.CorrectAnswer),
			Explanation:   strings.TrimSpace(r.Explanation),
			Category:      strings.TrimSpace(r.Category),
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", i+1)
		}
		for _, opt := range r.Options {
			q.Options = append(q.Options, strings.TrimSpace(opt))
		}
		out = append(out, q)
	}
	return out
}
