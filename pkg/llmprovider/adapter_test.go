package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-support-router/pkg/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiAdapter(t *testing.T, handler http.HandlerFunc) *GeminiAdapter {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	require.NoError(t, err)
	return NewGeminiAdapter(client)
}

func TestGeminiAdapter_Invoke(t *testing.T) {
	adapter := newGeminiAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ORDER\n"}]}}]}`))
	})

	text, err := adapter.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "ORDER\n", text)
	assert.Equal(t, "gemini", adapter.Name())
	assert.Equal(t, gemini.DefaultModel, adapter.Model())
}

func TestGeminiAdapter_EmptyResponse(t *testing.T) {
	adapter := newGeminiAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := adapter.Invoke(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, KindUnknown, KindOf(err))
}

func TestGeminiAdapter_RateLimited(t *testing.T) {
	adapter := newGeminiAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	})

	_, err := adapter.Invoke(context.Background(), "prompt")
	var be *BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, KindRateLimit, be.Kind)
	assert.Equal(t, "gemini", be.Provider)
}

type slowProvider struct{}

func (slowProvider) Invoke(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", NewBackendError("slow", ctx.Err())
}
func (slowProvider) Name() string  { return "slow" }
func (slowProvider) Model() string { return "slow-model" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)

	_, err := p.Invoke(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
	assert.Equal(t, "slow", p.Name())
}

func TestWithTimeout_Disabled(t *testing.T) {
	var p Provider = slowProvider{}
	assert.Equal(t, p, WithTimeout(p, 0))
}

func TestBackendFunc(t *testing.T) {
	var b Backend = BackendFunc(func(ctx context.Context, prompt string) (string, error) {
		return "echo:" + prompt, nil
	})
	text, err := b.Invoke(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "echo:x", text)
}
