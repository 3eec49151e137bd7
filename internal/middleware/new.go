package middleware

import (
	"dbt-guide/pkg/log"
)

// Config holds the middleware settings read from configuration.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
