package router

import (
	"context"
	"fmt"
	"time"

	"clinic-support-router/pkg/llmprovider"
)

// Classify asks the backend once and falls back to keywords when the answer is unusable.
// It never fails: errors are reported on the Classification.
func (r *SupportRouter) Classify(ctx context.Context, query string) Classification {
	prompt := BuildPrompt(query)

	start := time.Now()
	raw, err := r.invoke(ctx, prompt)
	c := Classification{Raw: raw, Latency: time.Since(start)}

	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		c.Err = err
		c.Intent, c.Source = FallbackIntent(query), SourceFallback
		return c
	}

	intent, ok := r.mode.Normalize(raw)
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgAmbiguous, raw)
		c.Err = ErrAmbiguous
		c.Intent, c.Source = FallbackIntent(query), SourceFallback
		return c
	}

	c.Intent, c.Valid, c.Source = intent, true, SourceLLM
	r.l.Debugf(ctx, "%s: classified as %s in %s", LogPrefixClassify, intent, c.Latency)
	return c
}

// Resolve classifies the query and returns the chosen responder's answer.
func (r *SupportRouter) Resolve(ctx context.Context, query string) Output {
	c := r.Classify(ctx, query)

	var answer string
	switch c.Intent {
	case IntentOrder:
		answer = r.order.Handle(ctx, query)
	default:
		answer = r.faq.Handle(ctx, query)
	}

	r.l.Infof(ctx, "%s: intent=%s source=%s", LogPrefixResolve, c.Intent, c.Source)
	return Output{
		Answer:         answer,
		Intent:         c.Intent,
		Source:         c.Source,
		Classification: c,
	}
}

// Route returns the answer text for query.
func (r *SupportRouter) Route(ctx context.Context, query string) string {
	return r.Resolve(ctx, query).Answer
}

// invoke shields the router from a panicking backend.
func (r *SupportRouter) invoke(ctx context.Context, prompt string) (raw string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &llmprovider.BackendError{
				Provider: "unknown",
				Kind:     llmprovider.KindUnknown,
				Err:      fmt.Errorf("%w: %v", ErrBackendPanic, rec),
			}
		}
	}()
	return r.backend.Invoke(ctx, prompt)
}
