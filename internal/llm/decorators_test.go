package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
}

func ok(content string) MockResponse {
	return MockResponse{Content: json.RawMessage(content), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}}
}

func TestMockProvider(t *testing.T) {
	m := NewMockProvider(ok(halfJSON))
	m.AddResponse(MockResponse{Err: &ErrRateLimit{}})

	resp, err := m.Generate(context.Background(), Request{System: "sys"})
	require.NoError(t, err)
	assert.JSONEq(t, halfJSON, string(resp.Content))
	assert.Equal(t, "mock", resp.Model)

	_, err = m.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = m.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)

	assert.Equal(t, 3, m.CallCount())
	assert.Equal(t, "sys", m.Calls[0].System)
}

func TestMockProvider_AppliesSchema(t *testing.T) {
	m := NewMockProvider(ok(`{"numerator":2}`))
	_, err := m.Generate(context.Background(), Request{Schema: fractionSchema()})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		replies   []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first try", []MockResponse{ok(`{}`)}, false, 1},
		{"transient then ok", []MockResponse{down(), ok(`{}`)}, false, 2},
		{"rate limit honours retry-after", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, ok(`{}`)}, false, 2},
		{"gives up after max attempts", []MockResponse{down(), down(), down(), ok(`{}`)}, true, 3},
		{"truncation is final", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, ok(`{}`)}, true, 1},
		{"invalid response retried once", []MockResponse{
			{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
			{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
			ok(`{}`),
		}, true, 2},
		{"context error is final", []MockResponse{{Err: context.DeadlineExceeded}, ok(`{}`)}, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockProvider(tt.replies...)
			_, err := WithRetry(m, fastRetry()).Generate(context.Background(), Request{})
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
			assert.Equal(t, tt.wantCalls, m.CallCount())
		})
	}
}

func TestRetry_StopsOnCancel(t *testing.T) {
	m := NewMockProvider(down(), ok(`{}`))
	p := WithRetry(m, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := p.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, m.CallCount())
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "slow", p.ModelID())

	var same Provider = slowProvider{}
	assert.Equal(t, same, WithTimeout(same, 0))
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewMockProvider(ok(halfJSON), down())
	p := WithLogging(m, zap.New(core))

	ctx := WithPurpose(context.Background(), "question-draft")
	_, err := p.Generate(ctx, Request{Schema: fractionSchema()})
	require.NoError(t, err)
	_, err = p.Generate(ctx, Request{})
	require.Error(t, err)

	info := logs.FilterMessage("llm request").All()
	require.Len(t, info, 1)
	fields := info[0].ContextMap()
	assert.Equal(t, "llm", info[0].LoggerName)
	assert.Equal(t, "question-draft", fields["purpose"])
	assert.Equal(t, "test-fraction", fields["schema"])
	assert.EqualValues(t, 10, fields["input_tokens"])
	assert.NotContains(t, fields, "cost_usd")

	assert.Equal(t, 1, logs.FilterMessage("llm exchange").Len())
	failed := logs.FilterMessage("llm request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
}

func TestPurposeFrom(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
	assert.Equal(t, "ping", PurposeFrom(WithPurpose(context.Background(), "ping")))
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, err = NewProvider(context.Background(), Config{Provider: "openai"}, nil)
	assert.ErrorContains(t, err, "FRACTIZ_OPENAI_API_KEY")

	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "or"
	p, err = NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())
	_, isTimeout := p.(*TimeoutProvider)
	assert.True(t, isTimeout)
}
