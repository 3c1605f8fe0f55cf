package finassist

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Result is the single envelope every backend call resolves to. A call
// either succeeded and carries its payload, or failed and carries one
// human-readable message (plus the ticker it was about, when there is one).
// Service functions never report a failure twice: one call, one envelope.
type Result[T any] struct {
	data    T
	failed  bool
	message string
	ticker  string
}

// Ok wraps a successful payload.
func Ok[T any](data T) Result[T] { return Result[T]{data: data} }

// Fail builds a failed result from a ready-made message.
func Fail[T any](ticker, message string) Result[T] {
	return Result[T]{failed: true, message: message, ticker: ticker}
}

// Failf builds a failed result from a format string.
func Failf[T any](ticker, format string, args ...any) Result[T] {
	return Fail[T](ticker, fmt.Sprintf(format, args...))
}

// Err reports whether the call failed.
func (r Result[T]) Err() bool { return r.failed }

// Message returns the failure message, empty on success.
func (r Result[T]) Message() string { return r.message }

// Ticker returns the identifier the failed call was about, if any.
func (r Result[T]) Ticker() string { return r.ticker }

// Data returns the payload. It is only meaningful when Err() is false.
func (r Result[T]) Data() T { return r.data }

// Unwrap converts the envelope back to the usual Go pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.failed {
		var zero T
		return zero, errors.New(r.message)
	}
	return r.data, nil
}

// MarshalJSON emits the payload itself on success, and the error envelope
// {"error":true,"message":...,"ticker":...} on failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if !r.failed {
		return json.Marshal(r.data)
	}
	env := struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
		Ticker  string `json:"ticker,omitempty"`
	}{true, r.message, r.ticker}
	return json.Marshal(env)
}
