// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize extracts a usable text payload from the heterogeneous
// response envelopes the gateway can return.
package normalize

import (
	"errors"
	"strings"

	"github.com/pdiddy/paper-scout/internal/gateway"
)

// ErrEmptyOutput reports that no extractor found usable text in the
// envelope. Shape mismatch alone is not an error; only the total absence
// of non-whitespace text is.
var ErrEmptyOutput = errors.New("no usable text in model response")

// extractor pulls a text payload out of one known envelope shape, returning
// the empty string when the shape is absent.
type extractor func(env *gateway.Envelope) string

// extractors is the fixed priority order: direct output field, direct text
// field, then the nested candidate/content/parts shape.
var extractors = []extractor{
	fromOutput,
	fromText,
	fromCandidates,
}

// ExtractText returns the first non-empty text payload found in the
// envelope, with surrounding whitespace trimmed. It returns ErrEmptyOutput
// when every shape is absent or empty.
func ExtractText(env *gateway.Envelope) (string, error) {
	if env == nil {
		return "", ErrEmptyOutput
	}
	for _, ex := range extractors {
		if text := strings.TrimSpace(ex(env)); text != "" {
			return text, nil
		}
	}
	return "", ErrEmptyOutput
}

// StripCodeFence removes a surrounding Markdown code fence if the model
// wrapped a payload in one despite instructions. A language tag such as
// "json" on the opening fence line is dropped with it.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if len(first) <= 10 && !strings.ContainsAny(first, "[{") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func fromOutput(env *gateway.Envelope) string { return env.Output }

func fromText(env *gateway.Envelope) string { return env.Text }

// fromCandidates concatenates the text parts of the first candidate.
func fromCandidates(env *gateway.Envelope) string {
	if len(env.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range env.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}
