package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const halfJSON = `{"numerator":1,"denominator":2}`

func serve(t *testing.T, status int, body any) (string, *[]map[string]any) {
	t.Helper()
	var seen []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req map[string]any
		_ = json.Unmarshal(raw, &req)
		seen = append(seen, req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL, &seen
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 120, "output_tokens": 40},
	}
}

func chatCompletion(text, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": text},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 80, "completion_tokens": 20, "total_tokens": 100},
	}
}

func draftRequest() Request {
	return Request{
		System:    "You write fraction comparison questions.",
		Messages:  []Message{{Role: RoleUser, Content: "One fraction please."}},
		Schema:    fractionSchema(),
		MaxTokens: 256,
	}
}

func TestAnthropicProvider(t *testing.T) {
	t.Run("structured output", func(t *testing.T) {
		url, seen := serve(t, http.StatusOK, anthropicMessage(halfJSON, "end_turn"))
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku", BaseURL: url})
		require.NoError(t, err)
		assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())

		resp, err := p.Generate(context.Background(), draftRequest())
		require.NoError(t, err)
		assert.JSONEq(t, halfJSON, string(resp.Content))
		assert.Equal(t, Usage{InputTokens: 120, OutputTokens: 40, TotalTokens: 160}, resp.Usage)
		assert.Equal(t, StopEnd, resp.StopReason)

		require.Len(t, *seen, 1)
		assert.Equal(t, "claude-haiku-4-5-20251001", (*seen)[0]["model"])
	})

	t.Run("schema mismatch", func(t *testing.T) {
		url, _ := serve(t, http.StatusOK, anthropicMessage(`{"numerator":1}`, "end_turn"))
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", BaseURL: url})
		require.NoError(t, err)
		_, err = p.Generate(context.Background(), draftRequest())
		var inv *ErrInvalidResponse
		assert.ErrorAs(t, err, &inv)
	})

	t.Run("truncated", func(t *testing.T) {
		url, _ := serve(t, http.StatusOK, anthropicMessage(`{"numer`, "max_tokens"))
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", BaseURL: url})
		require.NoError(t, err)
		_, err = p.Generate(context.Background(), draftRequest())
		var trunc *ErrMaxTokensExceeded
		assert.ErrorAs(t, err, &trunc)
	})

	t.Run("rate limited", func(t *testing.T) {
		url, _ := serve(t, http.StatusTooManyRequests, map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
		})
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", BaseURL: url})
		require.NoError(t, err)
		_, err = p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 16})
		var rl *ErrRateLimit
		assert.ErrorAs(t, err, &rl)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewAnthropicProvider(AnthropicConfig{})
		assert.Error(t, err)
	})
}

func TestOpenAIProvider(t *testing.T) {
	t.Run("structured output", func(t *testing.T) {
		url, seen := serve(t, http.StatusOK, chatCompletion(halfJSON, "stop"))
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
		require.NoError(t, err)

		resp, err := p.Generate(context.Background(), draftRequest())
		require.NoError(t, err)
		assert.JSONEq(t, halfJSON, string(resp.Content))
		assert.Equal(t, 100, resp.Usage.TotalTokens)

		require.Len(t, *seen, 1)
		msgs := (*seen)[0]["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
		format := (*seen)[0]["response_format"].(map[string]any)
		assert.Equal(t, "json_schema", format["type"])
	})

	t.Run("server error", func(t *testing.T) {
		url, _ := serve(t, http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"type": "server_error", "message": "boom"},
		})
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: url + "/v1"})
		require.NoError(t, err)
		_, err = p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
		var down *ErrProviderUnavailable
		assert.ErrorAs(t, err, &down)
	})

	t.Run("length finish on structured output", func(t *testing.T) {
		url, _ := serve(t, http.StatusOK, chatCompletion(`{"numerator":`, "length"))
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: url + "/v1"})
		require.NoError(t, err)
		_, err = p.Generate(context.Background(), draftRequest())
		var trunc *ErrMaxTokensExceeded
		assert.ErrorAs(t, err, &trunc)
	})
}

func TestOpenRouterProvider(t *testing.T) {
	url, seen := serve(t, http.StatusOK, chatCompletion(halfJSON, "stop"))
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "or", Model: "anthropic/claude-3-haiku", BaseURL: url + "/v1"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID())

	_, err = p.Generate(context.Background(), draftRequest())
	require.NoError(t, err)
	require.Len(t, *seen, 1)
	assert.Equal(t, "anthropic/claude-3-haiku", (*seen)[0]["model"])

	_, err = NewOpenRouterProvider(OpenRouterConfig{Model: "x"})
	assert.Error(t, err)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-20250514", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "my-finetune", resolveModel("my-finetune", openaiModels))
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"maxItems": 3,
				"items":    fractionSchema().Definition,
			},
			"type": map[string]any{"type": "string", "enum": []any{"compare", "equivalent"}},
		},
		"required": []string{"options", "type"},
	})

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"options", "type"}, s.Required)
	opts := s.Properties["options"]
	require.NotNil(t, opts)
	assert.Equal(t, genai.TypeArray, opts.Type)
	assert.Equal(t, int64(2), *opts.MinItems)
	assert.Equal(t, int64(3), *opts.MaxItems)
	assert.Equal(t, genai.TypeInteger, opts.Items.Properties["denominator"].Type)
	assert.Equal(t, 1.0, *opts.Items.Properties["denominator"].Minimum)
	assert.Equal(t, []string{"circle", "rectangle", "liquid"}, opts.Items.Properties["visual"].Enum)
	assert.Equal(t, []string{"compare", "equivalent"}, s.Properties["type"].Enum)
}
