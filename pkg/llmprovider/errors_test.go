package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"clinic-support-router/pkg/deepseek"
	"clinic-support-router/pkg/gemini"

	"github.com/stretchr/testify/assert"
)

type fakeNetErr struct{ timeout bool }

func (e fakeNetErr) Error() string   { return "net failure" }
func (e fakeNetErr) Timeout() bool   { return e.timeout }
func (e fakeNetErr) Temporary() bool { return false }

var _ net.Error = fakeNetErr{}

func TestNewBackendError_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"gemini unauthorized", &gemini.APIError{StatusCode: http.StatusUnauthorized}, KindAuth},
		{"gemini forbidden", &gemini.APIError{StatusCode: http.StatusForbidden}, KindAuth},
		{"gemini rate limited", &gemini.APIError{StatusCode: http.StatusTooManyRequests}, KindRateLimit},
		{"deepseek server error", &deepseek.APIError{StatusCode: http.StatusBadGateway}, KindTransport},
		{"deepseek bad request", &deepseek.APIError{StatusCode: http.StatusBadRequest}, KindUnknown},
		{"wrapped status", fmt.Errorf("call: %w", &gemini.APIError{StatusCode: 503}), KindTransport},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), KindTimeout},
		{"net timeout", fakeNetErr{timeout: true}, KindTimeout},
		{"net failure", fakeNetErr{}, KindTransport},
		{"plain", errors.New("something odd"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := NewBackendError("p", tt.err)
			assert.Equal(t, tt.want, be.Kind)
			assert.Equal(t, "p", be.Provider)
			assert.ErrorIs(t, be, tt.err)
		})
	}
}

func TestNewBackendError_KeepsExisting(t *testing.T) {
	orig := &BackendError{Provider: "gemini", Kind: KindAuth, Err: errors.New("bad key")}
	got := NewBackendError("other", fmt.Errorf("wrapped: %w", orig))
	assert.Same(t, orig, got)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("x")))
	assert.Equal(t, KindRateLimit, KindOf(fmt.Errorf("%w: %w", ErrAllProvidersFailed,
		&BackendError{Provider: "groq", Kind: KindRateLimit, Err: errors.New("429")})))
}
