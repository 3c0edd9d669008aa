package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cyphera/taxjar-go/internal/constants"
)

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// LoggingMiddleware creates a middleware that logs requests and responses
func LoggingMiddleware(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next, logger: logger}
	}
}

type loggingRoundTripper struct {
	next   http.RoundTripper
	logger *zap.Logger
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// never log the Authorization header
	l.logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", req.Header.Get(RequestIDHeader)))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		l.logger.Debug("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	l.logger.Debug("HTTP response received",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = constants.RequestIDHeader

// CorrelationIDMiddleware stamps every outgoing request with a fresh
// X-Request-Id unless the caller already set one.
func CorrelationIDMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(RequestIDHeader) != "" {
				return next.RoundTrip(req)
			}
			// RoundTrippers must not modify the caller's request
			clone := req.Clone(req.Context())
			clone.Header.Set(RequestIDHeader, uuid.New().String())
			return next.RoundTrip(clone)
		})
	}
}

// RateLimitMiddleware blocks each request until the limiter grants a token or
// the request context ends. It never retries.
func RateLimitMiddleware(limiter *rate.Limiter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, errors.Wrap(err, "rate limiter")
			}
			return next.RoundTrip(req)
		})
	}
}
