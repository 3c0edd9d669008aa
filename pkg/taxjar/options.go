package taxjar

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Option configures a Client at construction time.
type Option func(*options)

// Middleware wraps the transport used for every request.
type Middleware func(http.RoundTripper) http.RoundTripper

//go:generate mockgen -source=options.go -destination=../mocks/mock_metrics_collector.go -package=mocks

// MetricsCollector receives one observation per request.
type MetricsCollector interface {
	RecordRequestDuration(method, path string, statusCode int, duration time.Duration)
	RecordRequestCount(method, path string, statusCode int)
	RecordRequestError(method, path string)
}

type options struct {
	baseURL     string
	timeout     time.Duration
	httpClient  *http.Client
	apiVersion  string
	headers     map[string]string
	logger      *zap.Logger
	middlewares []Middleware
	metrics     MetricsCollector
	limiter     *rate.Limiter
}

// WithBaseURL points the client at another endpoint, e.g. SandboxAPIURL or a
// local fake server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTimeout bounds every request. Defaults to 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient supplies the transport. The client is copied, never mutated.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithAPIVersion sends the x-api-version header on every request.
func WithAPIVersion(version string) Option {
	return func(o *options) {
		o.apiVersion = version
	}
}

// WithHeader adds a static header to every request.
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithLogger sets the logger. Defaults to the package-global logger, which is
// silent unless initialised.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMiddleware wraps the transport. The first middleware added is outermost.
func WithMiddleware(m Middleware) Option {
	return func(o *options) {
		o.middlewares = append(o.middlewares, m)
	}
}

// WithMetricsCollector installs a metrics hook.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		o.metrics = collector
	}
}

// WithRateLimit throttles the client to rps requests per second with the given
// burst. Requests wait for a token; nothing is retried.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		if rps <= 0 {
			o.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}
