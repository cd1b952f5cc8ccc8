package evaluation

import (
	"io"
	"time"

	"clinic-support-router/internal/router"
	"clinic-support-router/pkg/log"

	"golang.org/x/time/rate"
)

// Evaluator runs labelled cases against backends, one case and one backend at a time.
type Evaluator struct {
	l     log.Logger
	out   io.Writer
	mode  router.MatchMode
	pause *rate.Limiter
}

// Config configures an Evaluator.
type Config struct {
	// Out receives the console progress; nil discards it.
	Out io.Writer
	// Pause separates consecutive backends.
	Pause time.Duration
	// MatchMode selects how raw output is labelled; empty means contains.
	MatchMode router.MatchMode
}

// New creates a new Evaluator.
func New(l log.Logger, cfg Config) *Evaluator {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	mode := cfg.MatchMode
	if mode == "" {
		mode = router.MatchContains
	}
	return &Evaluator{
		l:     l,
		out:   out,
		mode:  mode,
		pause: rate.NewLimiter(rate.Every(cfg.Pause), 1),
	}
}
