// Package llm is a small provider-neutral client for the hosted language
// models used by the sales coach.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider generates one completion per call.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the output is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model the provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Schema is the JSON Schema the output must match. Name is kebab-case and
// doubles as the cache key for the compiled schema.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the validated JSON object when a schema was requested,
	// otherwise the raw text.
	Content json.RawMessage
	Usage   Usage
	Model   string
	// StopReason is "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// GenerateJSON runs req and decodes the structured output into T.
func GenerateJSON[T any](ctx context.Context, p Provider, req Request) (T, *Response, error) {
	var out T
	resp, err := p.Generate(ctx, req)
	if err != nil {
		return out, nil, err
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return out, resp, &ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("decode: %w", err)}
	}
	return out, resp, nil
}
