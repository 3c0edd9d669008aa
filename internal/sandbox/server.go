// Package sandbox serves a fake TaxJar v2 API from canned fixtures. It backs
// the `taxjar sandbox` command and the client's tests.
package sandbox

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"net/http"
	"path"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Fixture returns the raw bytes of a named fixture, e.g. "taxes.json".
func Fixture(name string) ([]byte, error) {
	data, err := fixtures.ReadFile(path.Join("fixtures", name))
	if err != nil {
		return nil, errors.Wrapf(err, "unknown fixture %s", name)
	}
	return data, nil
}

// RecordedRequest is one request as the server received it.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type stubbedResponse struct {
	status int
	body   []byte
}

// Server is an in-process fake of the TaxJar API. It is safe for concurrent
// use.
type Server struct {
	apiKey string
	router *gin.Engine
	logger *zap.Logger

	mu       sync.Mutex
	requests []RecordedRequest
	stubs    map[string]stubbedResponse
}

// Option configures a Server.
type Option func(*Server)

// WithLogger logs every request through logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a server that accepts only requests bearing apiKey.
func New(apiKey string, opts ...Option) *Server {
	s := &Server{
		apiKey: apiKey,
		logger: zap.NewNop(),
		stubs:  make(map[string]stubbedResponse),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.record())
	router.Use(s.authenticate())
	router.Use(s.stubbed())
	s.registerRoutes(router)
	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, fmt.Sprintf("No such route '%s %s'", c.Request.Method, c.Request.URL.Path))
	})

	s.router = router
	return s
}

// Handler returns the server as an http.Handler, e.g. for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Stub overrides the response for one method and path, e.g. ("POST", "/v2/taxes").
func (s *Server) Stub(method, path string, status int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[method+" "+path] = stubbedResponse{status: status, body: body}
}

// StubFixture overrides the response for one method and path with a fixture.
func (s *Server) StubFixture(method, path string, status int, name string) error {
	body, err := Fixture(name)
	if err != nil {
		return err
	}
	s.Stub(method, path, status, body)
	return nil
}

// Requests returns every request received so far, oldest first.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Reset forgets recorded requests and stubs.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.stubs = make(map[string]stubbedResponse)
}

func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			var err error
			body, err = io.ReadAll(c.Request.Body)
			if err != nil {
				writeError(c, http.StatusBadRequest, fmt.Sprintf("Unreadable request body: %v", err))
				c.Abort()
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:   c.Request.Method,
			Path:     c.Request.URL.Path,
			RawQuery: c.Request.URL.RawQuery,
			Header:   c.Request.Header.Clone(),
			Body:     body,
		})
		s.mu.Unlock()

		c.Next()

		s.logger.Debug("sandbox request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("request_id", c.GetHeader("X-Request-Id")))
	}
}

func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+s.apiKey {
			writeError(c, http.StatusUnauthorized, fmt.Sprintf("Not authorized for route '%s %s'", c.Request.Method, c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) stubbed() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		stub, ok := s.stubs[c.Request.Method+" "+c.Request.URL.Path]
		s.mu.Unlock()
		if !ok {
			c.Next()
			return
		}
		c.Data(stub.status, "application/json; charset=utf-8", stub.body)
		c.Abort()
	}
}

func writeError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{
		"status": status,
		"error":  http.StatusText(status),
		"detail": detail,
	})
}
