package llm

import (
	"context"
	"encoding/json"
)

// Provider is the interface every LLM backend implements. The question
// drafter only ever needs a single structured completion per call.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the backend asks for schema-constrained JSON and the returned
	// Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model the provider sends requests to.
	ModelID() string
}

// Request is a single completion request.
type Request struct {
	System   string
	Messages []Message

	// Schema, when non-nil, constrains the response to JSON of this shape.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name doubles as the OpenAI schema name
// and the validator cache key, so it must be unique per shape,
// e.g. "fraction-question-draft".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the normalized output of a completion.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is one of "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Stop reasons shared by every backend.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)
