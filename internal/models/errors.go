package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	ErrConnectionRejected  = errors.New("wallet connection rejected")
	ErrValidationFailed    = errors.New("validation failed")
	ErrRequestFailed       = errors.New("token request failed")
	ErrMalformedResponse   = fmt.Errorf("%w: malformed response", ErrRequestFailed)

	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrSubmissionInFlight = errors.New("a token submission is already in progress")
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidImage       = errors.New("invalid image")
	ErrPreviewNotFound    = errors.New("preview not found")
)

// ValidationError carries one message per invalid field, keyed by the JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// RequestError is returned when the token API answers with a non-2xx status.
type RequestError struct {
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequestFailed, e.Status)
}

func (e *RequestError) Unwrap() error { return ErrRequestFailed }
