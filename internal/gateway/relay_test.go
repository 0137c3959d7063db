// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func testConfig(endpoint string) types.GatewayConfig {
	return types.GatewayConfig{
		Endpoint:  endpoint,
		APIKey:    "test-key",
		FastModel: "fast-model",
		ProModel:  "pro-model",
		Timeout:   5 * time.Second,
	}
}

// --- construction ---

func TestNewRelayClientFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		cfg    types.GatewayConfig
		errMsg string
	}{
		{"missing endpoint", types.GatewayConfig{APIKey: "k"}, "endpoint"},
		{"missing API key", types.GatewayConfig{Endpoint: "https://relay.example"}, "API key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRelayClient(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewRelayClientDefaultsTimeout(t *testing.T) {
	cfg := testConfig("https://relay.example")
	cfg.Timeout = 0
	c, err := NewRelayClient(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
}

// --- request construction ---

func TestInvokeRequestBody(t *testing.T) {
	var captured map[string]any
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"output":"hello"}`))
	}))
	defer ts.Close()

	c, err := NewRelayClient(testConfig(ts.URL))
	require.NoError(t, err)

	env, err := c.Invoke(context.Background(), Request{
		Prompt:    "find papers",
		Model:     "pro-model",
		Grounding: true,
		ResponseSchema: &Schema{
			Type:  "array",
			Items: &Schema{Type: "string"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", env.Output)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "find papers", captured["prompt"])
	assert.Equal(t, "pro-model", captured["model"])
	assert.Equal(t, true, captured["groundingEnabled"])
	require.Contains(t, captured, "responseSchema")

	schema := captured["responseSchema"].(map[string]any)
	assert.Equal(t, "array", schema["type"])
}

func TestInvokeOmitsOptionalFields(t *testing.T) {
	var captured map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"text":"ok"}`))
	}))
	defer ts.Close()

	c, err := NewRelayClient(testConfig(ts.URL))
	require.NoError(t, err)

	_, err = c.Invoke(context.Background(), Request{Prompt: "p", Model: "m"})
	require.NoError(t, err)

	assert.NotContains(t, captured, "groundingEnabled")
	assert.NotContains(t, captured, "responseSchema")
}

func TestInvokeRejectsEmptyInputs(t *testing.T) {
	c, err := NewRelayClient(testConfig("https://relay.example"))
	require.NoError(t, err)

	_, err = c.Invoke(context.Background(), Request{Model: "m"})
	assert.ErrorContains(t, err, "empty prompt")

	_, err = c.Invoke(context.Background(), Request{Prompt: "p"})
	assert.ErrorContains(t, err, "no model")
}

// --- error taxonomy ---

func TestInvokeTransportErrorOnStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("relay exploded\n"))
	}))
	defer ts.Close()

	c, err := NewRelayClient(testConfig(ts.URL))
	require.NoError(t, err)

	_, err = c.Invoke(context.Background(), Request{Prompt: "p", Model: "m"})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusBadGateway, te.Status)
	assert.Equal(t, "relay exploded", te.Body)
}

func TestInvokeTransportErrorOnNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	c, err := NewRelayClient(testConfig(ts.URL))
	require.NoError(t, err)

	_, err = c.Invoke(context.Background(), Request{Prompt: "p", Model: "m"})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.Status)
	assert.Error(t, te.Unwrap())
}

func TestInvokeSafetyBlock(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"promptFeedback": {
				"blockReason": "SAFETY",
				"safetyRatings": [
					{"category": "HARM_CATEGORY_DANGEROUS_CONTENT", "probability": "HIGH"},
					{"category": "HARM_CATEGORY_HARASSMENT", "probability": "MEDIUM"}
				]
			}
		}`))
	}))
	defer ts.Close()

	c, err := NewRelayClient(testConfig(ts.URL))
	require.NoError(t, err)

	_, err = c.Invoke(context.Background(), Request{Prompt: "p", Model: "m"})
	var sb *SafetyBlockError
	require.ErrorAs(t, err, &sb)
	assert.Equal(t, "SAFETY", sb.Reason)
	assert.Equal(t, []string{"HARM_CATEGORY_DANGEROUS_CONTENT", "HARM_CATEGORY_HARASSMENT"}, sb.Categories)

	// A safety block is not a transport failure.
	var te *TransportError
	assert.False(t, errors.As(err, &te))
}

func TestInvokeMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	c, err := NewRelayClient(testConfig(ts.URL))
	require.NoError(t, err)

	_, err = c.Invoke(context.Background(), Request{Prompt: "p", Model: "m"})
	assert.ErrorContains(t, err, "decoding gateway response")
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"transport with body",
			&TransportError{Status: 500, Body: "boom"},
			"gateway returned HTTP 500: boom",
		},
		{
			"transport without body",
			&TransportError{Status: 404},
			"gateway returned HTTP 404",
		},
		{
			"safety block with categories",
			&SafetyBlockError{Reason: "SAFETY", Categories: []string{"A", "B"}},
			"model declined to answer: SAFETY (categories: A, B)",
		},
		{
			"safety block without categories",
			&SafetyBlockError{Reason: "OTHER"},
			"model declined to answer: OTHER",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
