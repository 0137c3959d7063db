// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gateway sends prompts to a generative model backend and returns
// the raw response envelope. It hides transport, authentication, and
// backend-specific response shapes behind a mockable Invoker interface.
package gateway

import "context"

// Invoker abstracts the model backend so tests can supply a mock. One call
// is one outbound network round trip; implementations never retry.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (*Envelope, error)
}

// Request is a single prompt for the model backend.
type Request struct {
	// Prompt is the full prompt text. Must be non-empty.
	Prompt string `json:"prompt"`

	// Model selects the model tier by identifier. Call sites choose
	// between a fast/cheap tier and a high-capability tier.
	Model string `json:"model"`

	// Grounding enables augmenting the response with live web search.
	Grounding bool `json:"groundingEnabled,omitempty"`

	// ResponseSchema constrains the model output to JSON matching the
	// descriptor. Nil requests plain text.
	ResponseSchema *Schema `json:"responseSchema,omitempty"`
}

// Schema is a structural contract (field names, types, required-ness)
// supplied to the model to constrain its output.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Envelope is the backend response. Exactly one of the text-bearing shapes
// is expected to be populated; the normalizer tries them in a fixed order.
type Envelope struct {
	Output         string          `json:"output,omitempty"`
	Text           string          `json:"text,omitempty"`
	Candidates     []Candidate     `json:"candidates,omitempty"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

// Candidate is one generated answer in the nested response shape.
type Candidate struct {
	Content Content `json:"content"`
}

// Content holds the parts of a candidate answer.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a single text fragment of a candidate answer.
type Part struct {
	Text string `json:"text"`
}

// PromptFeedback carries backend metadata about the prompt, including
// safety-block information when the model declined to answer.
type PromptFeedback struct {
	BlockReason   string         `json:"blockReason,omitempty"`
	SafetyRatings []SafetyRating `json:"safetyRatings,omitempty"`
}

// SafetyRating is one content-policy category judgment.
type SafetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability,omitempty"`
}
