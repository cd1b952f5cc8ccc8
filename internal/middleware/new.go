package middleware

import (
	"clinic-support-router/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the HTTP middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
