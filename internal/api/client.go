// Package api implements the HTTP client for the Government Services Portal
// chat endpoints.
package api

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/nkumar/govbot/internal/models"
)

// PortalClientInterface defines the client operations consumers depend on.
// Satisfied by PortalClient and by MockPortalClient in tests.
type PortalClientInterface interface {
	Send(message string) (string, error)
	Reset() (string, error)
	BaseURL() string
	Close()
	IsClosed() bool
}

// PortalClient talks to the portal backend. The underlying HTTP client keeps
// a cookie jar: the backend tracks the conversation step in a session cookie,
// so all requests of one run must share the jar.
type PortalClient struct {
	httpClient tls_client.HttpClient
	baseURL    string
	timeout    time.Duration

	mu     sync.RWMutex
	closed bool
}

var _ PortalClientInterface = (*PortalClient)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*PortalClient)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *PortalClient) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client (used by tests)
func WithHTTPClient(hc tls_client.HttpClient) ClientOption {
	return func(c *PortalClient) {
		c.httpClient = hc
	}
}

// NewClient creates a new PortalClient for the given base URL
func NewClient(baseURL string, opts ...ClientOption) (*PortalClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = models.DefaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("invalid base URL %q: missing http(s) scheme", baseURL)
	}

	client := &PortalClient{
		baseURL: baseURL,
		timeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		// Browser-profile client: some portal deployments sit behind WAFs that
		// reject unknown client fingerprints. The jar carries the session cookie.
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout.Seconds())),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithCookieJar(tls_client.NewCookieJar()),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// BaseURL returns the configured portal base URL
func (c *PortalClient) BaseURL() string {
	return c.baseURL
}

// Close marks the client closed; subsequent requests fail fast
func (c *PortalClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// IsClosed returns whether the client is closed
func (c *PortalClient) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
