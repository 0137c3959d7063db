// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/paper-scout/internal/httputil"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// defaultTimeout is the HTTP timeout applied when the config gives none.
// The pipeline itself defines no deadlines; this is the only place one is set.
const defaultTimeout = 90 * time.Second

// RelayClient invokes the model through a server-side relay endpoint. The
// relay holds the provider API key; the client authenticates to the relay
// with its own bearer credential.
type RelayClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewRelayClient builds a RelayClient from config. It fails fast when the
// endpoint or credential is absent so a misconfigured process dies at
// startup, not on the first search.
func NewRelayClient(cfg types.GatewayConfig) (*RelayClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("gateway endpoint not configured")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gateway API key not configured")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &RelayClient{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Invoke sends one prompt to the relay and returns the raw envelope. Exactly
// one outbound call is made; there is no retry. A non-2xx status or network
// failure yields a TransportError, and a backend refusal recorded in the
// prompt feedback yields a SafetyBlockError.
func (c *RelayClient) Invoke(ctx context.Context, req Request) (*Envelope, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("empty prompt")
	}
	if req.Model == "" {
		return nil, fmt.Errorf("no model specified")
	}

	httpReq, err := httputil.NewJSONRequest(ctx, http.MethodPost, c.endpoint, req)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Status: resp.StatusCode, Body: httputil.ErrorBody(resp)}
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding gateway response: %w", err)
	}

	if err := blockedErr(&env); err != nil {
		return nil, err
	}

	return &env, nil
}

// blockedErr inspects the prompt feedback and returns a SafetyBlockError
// when the backend declined the prompt.
func blockedErr(env *Envelope) error {
	fb := env.PromptFeedback
	if fb == nil || fb.BlockReason == "" {
		return nil
	}

	var categories []string
	for _, r := range fb.SafetyRatings {
		if r.Category != "" {
			categories = append(categories, r.Category)
		}
	}
	return &SafetyBlockError{Reason: fb.BlockReason, Categories: categories}
}
