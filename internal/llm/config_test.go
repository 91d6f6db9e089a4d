package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linguist/internal/store"
)

// clearKeyEnv blanks every variable the config readers look at.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range standardKeys {
		t.Setenv(k.env, "")
	}
	for _, name := range []string{
		"LINGUIST_LLM_PROVIDER", "LINGUIST_GEMINI_API_KEY", "LINGUIST_OPENAI_API_KEY",
		"LINGUIST_ANTHROPIC_API_KEY", "LINGUIST_OPENROUTER_API_KEY",
		"LINGUIST_LLM_MAX_ATTEMPTS", "LINGUIST_LLM_TIMEOUT",
	} {
		t.Setenv(name, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-3-flash-preview", resolveModel("gemini", cfg.Gemini.Model))
	assert.Equal(t, "gpt-4o-mini", resolveModel("openai", cfg.OpenAI.Model))
	assert.Equal(t, 1, cfg.Retry.MaxAttempts)
	assert.ErrorIs(t, cfg.Validate(), ErrNoCredentials)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-5-20250929", resolveModel("anthropic", "claude-sonnet"))
	assert.Equal(t, "claude-3-opus", resolveModel("anthropic", "claude-3-opus"), "unknown names pass through")
	assert.Equal(t, "gemini-flash", resolveModel("anthropic", "gemini-flash"), "aliases are per provider")
	assert.Equal(t, "x", resolveModel("openrouter", "x"))
}

func TestConfigFromEnv(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("LINGUIST_LLM_PROVIDER", "openai")
	t.Setenv("LINGUIST_OPENAI_API_KEY", "sk-test")
	t.Setenv("LINGUIST_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("LINGUIST_LLM_MAX_ATTEMPTS", "3")
	t.Setenv("LINGUIST_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())

	t.Setenv("LINGUIST_LLM_MAX_ATTEMPTS", "nul")
	t.Setenv("LINGUIST_LLM_TIMEOUT", "-1s")
	cfg = ConfigFromEnv()
	assert.Equal(t, 1, cfg.Retry.MaxAttempts, "bad values keep the default")
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestDiscoverConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		provider string
		key      func(Config) string
		want     string
	}{
		{"bare API_KEY is a gemini key", map[string]string{"API_KEY": "g-1"},
			"gemini", func(c Config) string { return c.Gemini.APIKey }, "g-1"},
		{"API_KEY beats GEMINI_API_KEY", map[string]string{"API_KEY": "g-1", "GEMINI_API_KEY": "g-2"},
			"gemini", func(c Config) string { return c.Gemini.APIKey }, "g-1"},
		{"gemini beats openai", map[string]string{"GEMINI_API_KEY": "g-2", "OPENAI_API_KEY": "o-1"},
			"gemini", func(c Config) string { return c.Gemini.APIKey }, "g-2"},
		{"anthropic", map[string]string{"ANTHROPIC_API_KEY": "a-1"},
			"anthropic", func(c Config) string { return c.Anthropic.APIKey }, "a-1"},
		{"openrouter last", map[string]string{"OPENROUTER_API_KEY": "r-1"},
			"openrouter", func(c Config) string { return c.OpenRouter.APIKey }, "r-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKeyEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, ok := DiscoverConfig()
			require.True(t, ok)
			assert.Equal(t, tt.provider, cfg.Provider)
			assert.Equal(t, tt.want, tt.key(cfg))
		})
	}

	t.Run("nothing set", func(t *testing.T) {
		clearKeyEnv(t)
		_, ok := DiscoverConfig()
		assert.False(t, ok)
	})
}

func TestResolveConfig(t *testing.T) {
	t.Run("no credentials", func(t *testing.T) {
		clearKeyEnv(t)
		_, err := ResolveConfig()
		assert.ErrorIs(t, err, ErrNoCredentials)

		_, err = NewProviderFromEnv(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNoCredentials)
	})

	t.Run("explicit settings win", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("LINGUIST_LLM_PROVIDER", "anthropic")
		t.Setenv("LINGUIST_ANTHROPIC_API_KEY", "a-explicit")
		t.Setenv("GEMINI_API_KEY", "g-discovered")

		cfg, err := ResolveConfig()
		require.NoError(t, err)
		assert.Equal(t, "anthropic", cfg.Provider)
		assert.Equal(t, "a-explicit", cfg.Anthropic.APIKey)
	})

	t.Run("incomplete explicit settings fall back", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("LINGUIST_LLM_PROVIDER", "openai")
		t.Setenv("API_KEY", "g-1")

		cfg, err := ResolveConfig()
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.Provider)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{Provider: "mock"}.Validate())
	assert.ErrorIs(t, Config{Provider: "openrouter"}.Validate(), ErrNoCredentials)
	assert.NoError(t, Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "k"}}.Validate())

	err := Config{Provider: "ollama"}.Validate()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCredentials)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, err = NewProvider(context.Background(), Config{Provider: "gemini"}, nil)
	assert.ErrorIs(t, err, ErrNoCredentials)

	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "sk-test"
	p, err = NewProvider(context.Background(), cfg, &recordingRepo{})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID(), "ModelID reaches through the decorators")
}

type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	fail   error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.fail != nil {
		return r.fail
	}
	r.events = append(r.events, data)
	return nil
}

func TestLogging(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(
		MockResponse{Content: []byte(questionJSON), Usage: Usage{InputTokens: 12, OutputTokens: 7}},
		MockResponse{Err: &ErrInvalidResponse{Content: []byte(`{"oops":true}`), Err: errors.New("bad")}},
		MockResponse{Err: &ErrMaxTokensExceeded{Content: []byte(`{"question":`)}},
	)
	p := WithLogging(mock, "mock", repo)
	ctx := WithPurpose(context.Background(), "lesson-questions")
	req := Request{
		System:   "Je bent een docent.",
		Messages: []Message{{Role: RoleUser, Content: "Onderwerp: Rome"}},
		Schema:   questionSchema,
	}

	_, err := p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	require.Len(t, repo.events, 3)
	ok := repo.events[0]
	assert.True(t, ok.Success)
	assert.Equal(t, "lesson-questions", ok.Purpose)
	assert.Equal(t, "mock", ok.Provider)
	assert.Equal(t, 12, ok.InputTokens)
	assert.Equal(t, questionJSON, ok.ResponseBody)
	assert.Contains(t, ok.RequestBody, "[system]\nJe bent een docent.")
	assert.Contains(t, ok.RequestBody, "[user]\nOnderwerp: Rome")
	assert.Contains(t, ok.RequestBody, "[schema: test-question]")

	assert.False(t, repo.events[1].Success)
	assert.NotEmpty(t, repo.events[1].ErrorMessage)
	assert.Equal(t, `{"oops":true}`, repo.events[1].ResponseBody)
	assert.Equal(t, `{"question":`, repo.events[2].ResponseBody)

	repo.fail = errors.New("disk full")
	mock = NewMockProvider(MockResponse{Content: []byte(questionJSON)})
	lp := WithLogging(mock, "mock", repo)
	_, err = lp.Generate(ctx, req)
	assert.NoError(t, err, "a lost event does not fail the request")
	assert.EqualValues(t, 1, lp.Dropped())
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-3-flash-preview")
	require.NotNil(t, c)
	assert.InDelta(t, 0.5, c.Cost(1_000_000, 0), 1e-9)
	assert.NotNil(t, LookupCost("google/gemini-2.5-flash"), "OpenRouter IDs match on the bare name")
	assert.Nil(t, LookupCost("no-such-model"))
}
