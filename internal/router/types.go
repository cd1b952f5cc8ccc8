package router

import (
	"context"
	"time"
)

// Intent is the routing label.
type Intent string

const (
	IntentFAQ   Intent = "FAQ"
	IntentOrder Intent = "ORDER"

	// IntentInvalid is only produced by the normalizer and never dispatched.
	IntentInvalid Intent = ""
)

// Source tells where the final intent came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// MatchMode selects how raw model text is mapped to an intent.
type MatchMode string

// Classification is the outcome of one classification attempt.
// Raw, Valid, Latency and Err describe the model call; Intent and Source the final decision.
type Classification struct {
	Raw     string
	Intent  Intent
	Valid   bool
	Latency time.Duration
	Err     error
	Source  Source
}

// Output is a routed answer.
type Output struct {
	Answer         string
	Intent         Intent
	Source         Source
	Classification Classification
}

// Responder answers a query for one intent. "Not found" is an answer, not an error.
type Responder interface {
	Handle(ctx context.Context, query string) string
}
