package service

import (
	"fmt"
	"strings"
)

// ParseError indicates the model response text did not contain a parseable
// JSON object. Snippet carries a truncated prefix of the offending text for
// diagnostics.
type ParseError struct {
	Msg     string
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response: %s", e.Msg)
}

// ValidationError aggregates every structural mismatch found between the
// parsed JSON and the expected response shape.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "response validation failed: " + strings.Join(e.Issues, "; ")
}

// UpstreamError wraps a failure of the external model call itself.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "model request failed: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
