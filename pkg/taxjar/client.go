// Package taxjar is a client for the TaxJar v2 sales tax API.
//
// Every method issues exactly one HTTP request, never retries and never caches.
// Non-2xx answers come back as *RemoteError, bodies that do not match the
// expected envelope as *ContractError, and a missing API key at construction as
// *ConfigurationError.
//
//	client, err := taxjar.NewClient(os.Getenv("TAXJAR_API_KEY"))
//	if err != nil {
//	    return err
//	}
//	tax, err := client.TaxForOrder(ctx, taxjar.TaxParams{...})
package taxjar

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	httpClient "github.com/cyphera/taxjar-go/internal/client/http"
	"github.com/cyphera/taxjar-go/internal/config"
	"github.com/cyphera/taxjar-go/internal/constants"
	"github.com/cyphera/taxjar-go/internal/logger"
)

const (
	// DefaultAPIURL is the production endpoint.
	DefaultAPIURL = constants.DefaultAPIURL
	// SandboxAPIURL is TaxJar's sandbox endpoint.
	SandboxAPIURL = constants.SandboxAPIURL
)

// Client talks to the TaxJar API. It is immutable after NewClient and safe for
// concurrent use.
type Client struct {
	apiKey     string
	apiVersion string
	httpClient *httpClient.HTTPClient
	logger     *zap.Logger
}

// Ensure Client implements the interface
var _ API = (*Client)(nil)

// NewClient builds a client. A blank apiKey falls back to TAXJAR_API_KEY from
// the environment (or a .env file); when that is blank too, a
// *ConfigurationError matching ErrMissingAPIKey is returned. No network I/O
// happens here. An unreadable configuration is reported as a
// *ConfigurationError for "config" rather than ignored.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var cfg *config.Config
	loadConfig := func() (*config.Config, error) {
		if cfg == nil {
			loaded, err := config.Load(".")
			if err != nil {
				return nil, &ConfigurationError{Field: "config", Err: err}
			}
			cfg = &loaded
		}
		return cfg, nil
	}

	key := strings.TrimSpace(apiKey)
	if key == "" {
		loaded, err := loadConfig()
		if err != nil {
			return nil, err
		}
		key = loaded.APIKey
	}
	if key == "" {
		return nil, &ConfigurationError{Field: "apiKey", Err: ErrMissingAPIKey}
	}

	baseURL := strings.TrimSpace(o.baseURL)
	if baseURL == "" {
		loaded, err := loadConfig()
		if err != nil {
			return nil, err
		}
		baseURL = loaded.APIURL
	}
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		if err == nil {
			err = errors.Errorf("%q is not an absolute URL", baseURL)
		}
		return nil, &ConfigurationError{Field: "baseURL", Err: err}
	}

	log := o.logger
	if log == nil {
		log = logger.Log
	}
	log = log.With(zap.String("component", "taxjar"))

	clientOptions := []httpClient.ClientOption{
		httpClient.WithHTTPClient(o.httpClient),
		httpClient.WithBaseURL(baseURL),
		httpClient.WithLogger(log),
		httpClient.WithMetricsCollector(o.metrics),
	}
	if o.timeout > 0 {
		clientOptions = append(clientOptions, httpClient.WithTimeout(o.timeout))
	}
	if o.apiVersion != "" {
		clientOptions = append(clientOptions, httpClient.WithDefaultHeader(constants.APIVersionHeader, o.apiVersion))
	}
	for k, v := range o.headers {
		clientOptions = append(clientOptions, httpClient.WithDefaultHeader(k, v))
	}
	for _, m := range o.middlewares {
		clientOptions = append(clientOptions, httpClient.WithMiddleware(httpClient.Middleware(m)))
	}
	if o.limiter != nil {
		clientOptions = append(clientOptions, httpClient.WithMiddleware(httpClient.RateLimitMiddleware(o.limiter)))
	}
	clientOptions = append(clientOptions,
		httpClient.WithMiddleware(httpClient.CorrelationIDMiddleware()),
		httpClient.WithMiddleware(httpClient.LoggingMiddleware(log)),
	)

	return &Client{
		apiKey:     key,
		apiVersion: o.apiVersion,
		httpClient: httpClient.NewHTTPClient(clientOptions...),
		logger:     log,
	}, nil
}

// BaseURL returns the endpoint the client was built for.
func (c *Client) BaseURL() string {
	return c.httpClient.GetBaseURL()
}
