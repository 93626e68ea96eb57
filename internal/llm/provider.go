// Package llm abstracts the model backends used for quiz generation. A
// Provider takes a prompt plus an optional JSON schema and returns validated
// JSON; retry and logging wrap every configured provider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the boundary the quiz generator talks to.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema the
	// returned Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, makes the provider use its structured-output
	// mechanism and validates the response before returning it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape the model must produce,
// e.g. "topic-quiz".
type Schema struct {
	Name        string
	Description string

	// Definition is a JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model output plus accounting.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw model
	// text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request, which can be a
	// dated snapshot of the configured alias.
	Model string

	// StopReason is normalized across providers to "end" or "max_tokens".
	StopReason string
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
