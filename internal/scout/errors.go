// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scout

import "fmt"

// StructuringError reports that stage-2 model output was not a valid,
// well-typed JSON array. It is distinct from transport and safety errors:
// the round trip succeeded, but the payload is unusable.
type StructuringError struct {
	Cause error
}

func (e *StructuringError) Error() string {
	return fmt.Sprintf("structuring model output: %v", e.Cause)
}

func (e *StructuringError) Unwrap() error { return e.Cause }

// UnexpectedError wraps a recovered panic value that is not one of the
// standard error kinds.
type UnexpectedError struct {
	Value any
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected failure during search: %v", e.Value)
}
