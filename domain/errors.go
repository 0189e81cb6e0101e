package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput means no usable text remained after sanitization. Raised
	// locally, before any remote call.
	ErrEmptyInput = errors.New("no usable text after sanitization")

	// ErrUnknownPersona means the requested persona id is not in the registry.
	ErrUnknownPersona = errors.New("unknown persona")

	// ErrNoAlternateAvailable means the registry holds fewer than two personas
	// so no alternate voice can be picked.
	ErrNoAlternateAvailable = errors.New("no alternate persona available")

	// ErrSynthesisUnavailable means the synthesis credentials are absent from
	// the runtime environment. Unlike text generation there is no offline
	// substitute for audio, so this is a hard failure.
	ErrSynthesisUnavailable = errors.New("speech synthesis is not configured")
)

// UpstreamError is a non-success response from a remote service.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream service returned %d: %s", e.Status, e.Body)
}
