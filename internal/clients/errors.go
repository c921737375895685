// Package clients holds the error type shared by the external API wrappers.
package clients

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies an external API failure
type Kind string

const (
	KindNotConfigured Kind = "not_configured"
	KindNotFound      Kind = "not_found"
	KindTimeout       Kind = "timeout"
	KindUpstream      Kind = "upstream"
	KindDecode        Kind = "decode"
)

// FetchError is returned by every external API wrapper.
// Callers decide whether to fall back; the wrappers never do.
type FetchError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewError builds a FetchError, classifying context deadline errors as KindTimeout
func NewError(kind Kind, op string, err error) *FetchError {
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	return &FetchError{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err is a FetchError of the given kind
func IsKind(err error, kind Kind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}
