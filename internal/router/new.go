package router

import (
	"context"

	"clinic-support-router/pkg/llmprovider"
	"clinic-support-router/pkg/log"
)

// Router is the interface for support query routing
type Router interface {
	Route(ctx context.Context, query string) string
	Resolve(ctx context.Context, query string) Output
	Classify(ctx context.Context, query string) Classification
}

// SupportRouter classifies a query with an LLM backend and dispatches it to a responder.
type SupportRouter struct {
	backend llmprovider.Backend
	faq     Responder
	order   Responder
	mode    MatchMode
	l       log.Logger
}

var _ Router = (*SupportRouter)(nil)

// New creates a new SupportRouter. An empty mode means MatchContains.
func New(l log.Logger, backend llmprovider.Backend, faq, order Responder, mode MatchMode) *SupportRouter {
	if mode == "" {
		mode = MatchContains
	}
	return &SupportRouter{
		backend: backend,
		faq:     faq,
		order:   order,
		mode:    mode,
		l:       l,
	}
}
