// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"fmt"
	"strings"
)

// TransportError reports a network-level failure or a non-2xx response from
// the relay. It is distinct from SafetyBlockError: a blocked prompt is a
// successful round trip that the backend declined to answer.
type TransportError struct {
	// Status is the HTTP status code, or zero for network-level failures.
	Status int

	// Body is the textual error body returned with a non-2xx status.
	Body string

	// Err is the underlying error for network-level failures.
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway request failed: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("gateway returned HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("gateway returned HTTP %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SafetyBlockError reports that the backend declined to generate content for
// a prompt. It carries the block reason and the content-policy categories
// reported by the backend.
type SafetyBlockError struct {
	Reason     string
	Categories []string
}

func (e *SafetyBlockError) Error() string {
	if len(e.Categories) == 0 {
		return fmt.Sprintf("model declined to answer: %s", e.Reason)
	}
	return fmt.Sprintf("model declined to answer: %s (categories: %s)",
		e.Reason, strings.Join(e.Categories, ", "))
}
