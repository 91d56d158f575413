package httpclient

import (
	"errors"
	"fmt"
)

var (
	// ErrRetriesExhausted matches a [*RequestError] whose every attempt
	// failed with a retryable kind.
	ErrRetriesExhausted = errors.New("retries exhausted")
	ErrEmptyURL         = errors.New("empty url")
	// ErrAmbiguousBody is returned when a request carries both a form and a
	// JSON body.
	ErrAmbiguousBody = errors.New("form and json body are mutually exclusive")
	// ErrNilFailure replaces a nil error passed to [Fail].
	ErrNilFailure = errors.New("failure without error")
)

// RequestError describes a failed logical request.
type RequestError struct {
	Method string
	URL    string
	// Attempts is the number of attempts made, zero when the request was
	// rejected before sending.
	Attempts int
	// Kind is the category of the last failure.
	Kind FailureKind
	// Exhausted is set when every allowed attempt failed with a retryable kind.
	Exhausted bool
	Err       error
}

func (e *RequestError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("Failed to %s %s after %d attempts: %v", e.Method, e.URL, e.Attempts, e.Err)
	}

	return fmt.Sprintf("Failed to %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrRetriesExhausted) hold for exhausted requests.
func (e *RequestError) Is(target error) bool {
	return target == ErrRetriesExhausted && e.Exhausted
}
