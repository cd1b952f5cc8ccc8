package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"clinic-support-router/pkg/anthropic"
	"clinic-support-router/pkg/deepseek"
	"clinic-support-router/pkg/gemini"
	"clinic-support-router/pkg/openai"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrEmptyResponse indicates the vendor answered without any text
	ErrEmptyResponse = errors.New("empty response")

	// ErrUnknownProvider indicates a provider name with no client behind it
	ErrUnknownProvider = errors.New("unknown provider")
)

// ErrorKind categorises backend failures.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindAuth      ErrorKind = "auth"
	KindRateLimit ErrorKind = "rate_limit"
	KindTimeout   ErrorKind = "timeout"
	KindUnknown   ErrorKind = "unknown"
)

// BackendError wraps a vendor failure with its provider and kind.
type BackendError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("provider %s (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first BackendError in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// NewBackendError classifies err and wraps it. An existing BackendError is returned as is.
func NewBackendError(provider string, err error) *BackendError {
	var be *BackendError
	if errors.As(err, &be) {
		return be
	}
	return &BackendError{Provider: provider, Kind: classify(err), Err: err}
}

func classify(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	if code, ok := statusCode(err); ok {
		return kindFromStatus(code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindTransport
	}

	return KindUnknown
}

func statusCode(err error) (int, bool) {
	var gemErr *gemini.APIError
	if errors.As(err, &gemErr) {
		return gemErr.StatusCode, true
	}
	var dsErr *deepseek.APIError
	if errors.As(err, &dsErr) {
		return dsErr.StatusCode, true
	}
	if code, ok := openai.StatusCode(err); ok {
		return code, true
	}
	return anthropic.StatusCode(err)
}

func kindFromStatus(code int) ErrorKind {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return KindAuth
	case code == http.StatusTooManyRequests:
		return KindRateLimit
	case code == http.StatusRequestTimeout:
		return KindTimeout
	case code >= 500:
		return KindTransport
	default:
		return KindUnknown
	}
}
