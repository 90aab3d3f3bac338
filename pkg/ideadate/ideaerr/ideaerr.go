// Package ideaerr implements the engine's error taxonomy (§7): a small set
// of classified errors that the engine recovers from locally wherever
// possible, never throwing across its own boundary. Callers that need to
// distinguish failure kinds use errors.As against Error.
package ideaerr

import "fmt"

// Kind classifies an engine error.
type Kind string

const (
	// KindInvariantViolation signals an illegal patch; the offending
	// candidate or batch is discarded.
	KindInvariantViolation Kind = "invariant_violation"
	// KindResolverFailure is carried in telemetry only; the engine treats
	// it as an empty candidate list and falls back to mock candidates.
	KindResolverFailure Kind = "resolver_failure"
	// KindSchemaValidation marks a malformed stop or plan profile; recovered
	// by clamping when possible, otherwise the stop is excluded from
	// scoring and flagged missing_stop_profile in its consumers.
	KindSchemaValidation Kind = "schema_validation"
	// KindCancellation is surfaced to the caller; no partial SuggestionPack
	// is published after it.
	KindCancellation Kind = "cancellation"
)

// Error is the engine's classified error type.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New constructs an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs an Error of the given kind wrapping cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// InvariantViolation is a convenience constructor.
func InvariantViolation(message string) *Error {
	return New(KindInvariantViolation, message)
}

// SchemaValidation is a convenience constructor.
func SchemaValidation(message string) *Error {
	return New(KindSchemaValidation, message)
}
