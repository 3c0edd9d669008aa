package taxjar

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	// ErrMissingAPIKey is matched by the *ConfigurationError returned when no
	// usable API key could be resolved.
	ErrMissingAPIKey = errors.New("taxjar: please provide a TaxJar API key")

	// ErrMissingEnvelope is wrapped by *ContractError when the response lacks the
	// expected top-level key or carries null under it.
	ErrMissingEnvelope = errors.New("envelope key missing or null")
)

// ConfigurationError is returned by NewClient when the client cannot be built.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("taxjar: invalid configuration for %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// RemoteError is returned for every non-2xx response. Body is the response body
// exactly as the service sent it.
type RemoteError struct {
	StatusCode int
	Status     string
	Body       []byte
	Method     string
	Path       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("taxjar: %s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, e.Status, string(e.Body))
}

// ErrorDetail is TaxJar's usual error payload.
type ErrorDetail struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// Detail parses the body as a TaxJar error payload. It returns nil when the
// body has some other shape.
func (e *RemoteError) Detail() *ErrorDetail {
	var detail ErrorDetail
	if err := json.Unmarshal(e.Body, &detail); err != nil {
		return nil
	}
	if detail.Error == "" && detail.Detail == "" {
		return nil
	}
	return &detail
}

// ContractError means the service answered 2xx but the body did not have the
// shape this client expects.
type ContractError struct {
	Envelope string
	Body     []byte
	Err      error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("taxjar: unexpected response for %q envelope: %v", e.Envelope, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by a *RemoteError anywhere in
// err's chain, or 0.
func StatusCode(err error) int {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
