// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scout turns a free-text research query into structured paper
// records via a two-stage model pipeline: web-grounded free-text retrieval,
// then strict JSON structuring.
package scout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/paper-scout/internal/gateway"
	"github.com/pdiddy/paper-scout/internal/normalize"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// maxCandidates bounds how many papers stage 1 asks the model for.
const maxCandidates = 7

// Pipeline runs the two-stage search. It is stateless: every call is
// independent and the only suspend points are the gateway round trips.
type Pipeline struct {
	gw  gateway.Invoker
	cfg types.GatewayConfig
}

// New builds a Pipeline on top of an injected gateway.
func New(gw gateway.Invoker, cfg types.GatewayConfig) *Pipeline {
	return &Pipeline{gw: gw, cfg: cfg}
}

// SearchPapers runs retrieval then structuring and returns the structured
// records. Errors from either stage propagate to the caller as-is:
// a SafetyBlockError or TransportError from retrieval is fatal, while empty
// retrieval output short-circuits to an empty result without a second model
// call. Stage-2 output that is not a well-formed JSON array raises a
// StructuringError; partial results are never returned.
func (p *Pipeline) SearchPapers(ctx context.Context, query string) (records []types.PaperRecord, err error) {
	// Panics from deep inside JSON handling or a misbehaving Invoker are
	// surfaced as a single unexpected-error kind rather than crashing the
	// caller.
	defer func() {
		if r := recover(); r != nil {
			records, err = nil, &UnexpectedError{Value: r}
		}
	}()

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty: provide a research question")
	}

	raw, err := p.retrieve(ctx, query)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		// Legitimate "no results found": stage 2 is skipped entirely.
		return []types.PaperRecord{}, nil
	}

	return p.structure(ctx, raw)
}

// retrieve is stage 1: ask the high-capability model, with web grounding,
// for candidate papers rendered as plain prose. Empty output is not an
// error here; it becomes the empty-string sentinel.
func (p *Pipeline) retrieve(ctx context.Context, query string) (string, error) {
	prompt, err := renderRetrievalPrompt(query, maxCandidates)
	if err != nil {
		return "", err
	}

	env, err := p.gw.Invoke(ctx, gateway.Request{
		Prompt:    prompt,
		Model:     p.cfg.ProModel,
		Grounding: true,
	})
	if err != nil {
		return "", err
	}

	text, err := normalize.ExtractText(env)
	if errors.Is(err, normalize.ErrEmptyOutput) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

// structure is stage 2: feed the raw retrieval text to the cheaper model
// with a strict schema descriptor and parse the JSON array it returns.
// The raw text is transient; nothing outside this call retains it.
func (p *Pipeline) structure(ctx context.Context, raw string) ([]types.PaperRecord, error) {
	prompt, err := renderStructuringPrompt(raw)
	if err != nil {
		return nil, err
	}

	env, err := p.gw.Invoke(ctx, gateway.Request{
		Prompt:         prompt,
		Model:          p.cfg.FastModel,
		ResponseSchema: paperListSchema,
	})
	if err != nil {
		return nil, err
	}

	text, err := normalize.ExtractText(env)
	if err != nil {
		return nil, err
	}

	return parsePapers(text)
}

// parsePapers decodes the structuring output into PaperRecords. Anything
// other than a well-formed top-level JSON array is a StructuringError.
func parsePapers(text string) ([]types.PaperRecord, error) {
	payload := normalize.StripCodeFence(text)

	if !strings.HasPrefix(payload, "[") {
		return nil, &StructuringError{Cause: fmt.Errorf("top-level value is not an array")}
	}

	var items []paperPayload
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, &StructuringError{Cause: err}
	}

	records := make([]types.PaperRecord, 0, len(items))
	for _, item := range items {
		records = append(records, item.toRecord())
	}
	return records, nil
}
