package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

var tipSchema = &Schema{
	Name: "test-tip",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tip": map[string]any{"type": "string"},
		},
		"required":             []any{"tip"},
		"additionalProperties": false,
	},
}

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

func TestMockProviderReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`)},
		MockJSON(map[string]string{"tip": "hola"}),
	)

	r1, err := mock.Generate(context.Background(), UserPrompt("sys", "first"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(r1.Content))

	r2, err := mock.Generate(context.Background(), UserPrompt("", "second"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tip":"hola"}`, string(r2.Content))
	assert.Equal(t, 100, r2.Usage.InputTokens)

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)

	calls := mock.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "sys", calls[0].System)
}

func TestGenerateJSON(t *testing.T) {
	type tip struct {
		Tip string `json:"tip"`
	}
	mock := NewMockProvider(MockJSON(tip{Tip: "Menciona el 98% de disolución."}))

	req := UserPrompt("", "x")
	req.Schema = tipSchema
	got, resp, err := GenerateJSON[tip](context.Background(), mock, req)
	require.NoError(t, err)
	assert.Equal(t, "Menciona el 98% de disolución.", got.Tip)
	assert.Equal(t, "mock", resp.Model)
}

func TestValidateResponse(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not json`)))
	assert.NoError(t, validateResponse(tipSchema, json.RawMessage(`{"tip":"ok"}`)))

	for name, raw := range map[string]string{
		"missing field": `{}`,
		"wrong type":    `{"tip":3}`,
		"extra field":   `{"tip":"ok","x":1}`,
		"not json":      `{"tip":`,
	} {
		t.Run(name, func(t *testing.T) {
			err := validateResponse(tipSchema, json.RawMessage(raw))
			var inv *ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, raw, string(inv.Content))
		})
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
	assert.Len(t, mock.Calls(), 3)
}

func TestRetryGivesUp(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		calls     int
	}{
		{
			name: "all attempts fail",
			responses: []MockResponse{
				{Err: &ErrProviderUnavailable{}}, {Err: &ErrProviderUnavailable{}}, {Err: &ErrProviderUnavailable{}},
			},
			calls: 3,
		},
		{
			name:      "max tokens is not retried",
			responses: []MockResponse{{Err: &ErrMaxTokensExceeded{}}},
			calls:     1,
		},
		{
			name: "invalid output retried once",
			responses: []MockResponse{
				{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Err: errors.New("bad again")}},
				{Content: json.RawMessage(`{}`)},
			},
			calls: 2,
		},
		{
			name:      "canceled context",
			responses: []MockResponse{{Err: context.Canceled}},
			calls:     1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			assert.Error(t, err)
			assert.Len(t, mock.Calls(), tt.calls)
		})
	}
}

func TestRetryBackoffBounds(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 5, InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}
	for attempt := range 5 {
		w := cfg.wait(attempt)
		assert.GreaterOrEqual(t, w, 80*time.Millisecond)
		assert.LessOrEqual(t, w, 360*time.Millisecond)
	}
}

type fakeEvents struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, d)
	return f.err
}

func TestLoggingRecordsEvents(t *testing.T) {
	events := &fakeEvents{}
	mock := NewMockProvider(MockJSON(map[string]string{"tip": "x"}), MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, ProviderMock, events, nil)

	ctx := WithPurpose(context.Background(), "sales-coach")
	req := UserPrompt("Eres un coach.", "Escenario 201")
	req.Schema = tipSchema
	_, err := p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	require.Len(t, events.events, 2)
	ok := events.events[0]
	assert.Equal(t, "sales-coach", ok.Purpose)
	assert.Equal(t, "mock", ok.Model)
	assert.True(t, ok.Success)
	assert.Equal(t, 100, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "[system]\nEres un coach.")
	assert.Contains(t, ok.RequestBody, "[schema: test-tip]")
	assert.JSONEq(t, `{"tip":"x"}`, ok.ResponseBody)

	failed := events.events[1]
	assert.False(t, failed.Success)
	assert.Equal(t, "boom", failed.ErrorMessage)
}

func TestLoggingFailureDoesNotFailRequest(t *testing.T) {
	events := &fakeEvents{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockJSON(map[string]int{"a": 1})), ProviderMock, events, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "unknown", events.events[0].Purpose)
}

func TestConfigFromEnv(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	t.Run("nothing set", func(t *testing.T) {
		cfg := ConfigFromEnv(env(nil))
		assert.Empty(t, cfg.Provider)
		assert.ErrorIs(t, cfg.Validate(), ErrNotConfigured)
	})

	t.Run("discovers first key", func(t *testing.T) {
		cfg := ConfigFromEnv(env(map[string]string{
			"GEMINI_API_KEY":        "g-key",
			"BIOFIT_OPENAI_API_KEY": "o-key",
		}))
		assert.Equal(t, ProviderOpenAI, cfg.Provider)
		assert.Equal(t, "g-key", cfg.Gemini.APIKey)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("explicit provider and overrides", func(t *testing.T) {
		cfg := ConfigFromEnv(env(map[string]string{
			"BIOFIT_LLM_PROVIDER":       "openrouter",
			"BIOFIT_OPENROUTER_API_KEY": "or-key",
			"BIOFIT_OPENROUTER_MODEL":   "anthropic/claude-3-haiku",
			"BIOFIT_LLM_TIMEOUT":        "5s",
			"BIOFIT_LLM_MAX_ATTEMPTS":   "1",
		}))
		assert.Equal(t, ProviderOpenRouter, cfg.Provider)
		assert.Equal(t, "anthropic/claude-3-haiku", cfg.Selected().Model)
		assert.Equal(t, defaultOpenRouterBaseURL, cfg.Selected().BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 1, cfg.Retry.MaxAttempts)
	})

	t.Run("missing key", func(t *testing.T) {
		cfg := ConfigFromEnv(env(map[string]string{"BIOFIT_LLM_PROVIDER": "anthropic"}))
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := ConfigFromEnv(env(map[string]string{"BIOFIT_LLM_PROVIDER": "watson"}))
		assert.ErrorContains(t, cfg.Validate(), "unknown LLM provider")
	})
}

func TestNewProviderMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, &fakeEvents{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, err = NewProvider(context.Background(), DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestOpenAIProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["model"] == "rate-limited" {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "slow down", "type": "rate_limit"}})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `{"tip":"Usa el PVP de $15.90."}`},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 12, "total_tokens": 52},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "k", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())

	req := UserPrompt("coach", "tip")
	req.Schema = tipSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 52, resp.Usage.TotalTokens)
	assert.JSONEq(t, `{"tip":"Usa el PVP de $15.90."}`, string(resp.Content))

	limited, err := NewOpenRouterProvider(ProviderConfig{APIKey: "k", Model: "rate-limited", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)
	_, err = limited.Generate(context.Background(), req)
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestOpenRouterDefaults(t *testing.T) {
	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "sk-or", Model: "anthropic/claude-3-haiku"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID())

	_, err = NewOpenRouterProvider(ProviderConfig{Model: "x"})
	assert.Error(t, err)
}

func TestAnthropicProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": `{"tip":"Pregunta por su dieta."}`}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "k", Model: "claude-haiku"}, option.WithBaseURL(server.URL), option.WithMaxRetries(0))
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())

	req := UserPrompt("coach", "tip")
	req.Schema = tipSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 80, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tip":    map[string]any{"type": "string"},
			"mood":   map[string]any{"type": "string", "enum": []any{"ok", "bad"}},
			"scores": map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
		},
		"required": []string{"tip"},
	})
	assert.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 3)
	assert.Equal(t, []string{"ok", "bad"}, s.Properties["mood"].Enum)
	assert.Equal(t, genai.TypeInteger, s.Properties["scores"].Items.Type)
	assert.Equal(t, []string{"tip"}, s.Required)
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.5-flash", resolveModel("gemini-2.5-flash", geminiModels))
}
