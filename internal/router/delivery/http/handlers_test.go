package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinic-support-router/internal/middleware"
	"clinic-support-router/internal/router"
	"clinic-support-router/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRouter struct {
	output router.Output
	query  string
}

func (m *mockRouter) Route(ctx context.Context, query string) string {
	return m.Resolve(ctx, query).Answer
}

func (m *mockRouter) Resolve(ctx context.Context, query string) router.Output {
	m.query = query
	return m.output
}

func (m *mockRouter) Classify(ctx context.Context, query string) router.Classification {
	m.query = query
	return m.output.Classification
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(uc router.Router) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoute(t *testing.T) {
	uc := &mockRouter{output: router.Output{
		Answer: "Order ORD123 for Max: Heartguard Plus - Status: shipped. Tracking number: TRK829103",
		Intent: router.IntentOrder,
		Source: router.SourceFallback,
		Classification: router.Classification{
			Intent:  router.IntentOrder,
			Source:  router.SourceFallback,
			Latency: 120 * time.Millisecond,
			Err:     errors.New("provider gemini (timeout): deadline exceeded"),
		},
	}}
	r := setup(uc)

	w := post(r, "/api/v1/route", `{"query":"  Where is my order ORD123?  "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Where is my order ORD123?", uc.query)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got routeResp
	require.NoError(t, json.Unmarshal(env.Data, &got))

	assert.Equal(t, uc.output.Answer, got.Answer)
	assert.Equal(t, "ORDER", got.Intent)
	assert.Equal(t, "fallback", got.Source)
	assert.Equal(t, int64(120), got.Classification.LatencyMs)
	assert.False(t, got.Classification.Valid)
	assert.Contains(t, got.Classification.Error, "timeout")
}

func TestClassify(t *testing.T) {
	uc := &mockRouter{output: router.Output{Classification: router.Classification{
		Raw:    "FAQ",
		Intent: router.IntentFAQ,
		Valid:  true,
		Source: router.SourceLLM,
	}}}
	r := setup(uc)

	w := post(r, "/api/v1/classify", `{"query":"Are you open on Sunday?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got classificationResp
	require.NoError(t, json.Unmarshal(env.Data, &got))

	assert.Equal(t, "FAQ", got.Intent)
	assert.Equal(t, "llm", got.Source)
	assert.True(t, got.Valid)
	assert.Empty(t, got.Error)
}

func TestRoute_InvalidRequests(t *testing.T) {
	r := setup(&mockRouter{})

	tests := []struct {
		name string
		body string
	}{
		{"missing query", `{}`},
		{"blank query", `{"query":"   "}`},
		{"not json", `query=hello`},
		{"too long", `{"query":"` + strings.Repeat("a", maxQueryLen+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, "/api/v1/route", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
