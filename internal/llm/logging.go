package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type purposeKey struct{}

// WithPurpose labels every request made with ctx, e.g. "question-draft".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider writes one structured log entry per request with its
// purpose, latency, token usage and estimated cost.
type LoggingProvider struct {
	inner  Provider
	logger *zap.Logger
}

func WithLogging(p Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, logger: logger.Named("llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("model", l.inner.ModelID()),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}
	if err != nil {
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	fields = append(fields,
		zap.String("served_by", resp.Model),
		zap.String("stop_reason", resp.StopReason),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)
	if c := LookupCost(resp.Model); c != nil {
		fields = append(fields, zap.Float64("cost_usd", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
	}
	l.logger.Info("llm request", fields...)
	if ce := l.logger.Check(zap.DebugLevel, "llm exchange"); ce != nil {
		ce.Write(zap.String("system", req.System), zap.Int("messages", len(req.Messages)), zap.ByteString("response", resp.Content))
	}
	return resp, nil
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
