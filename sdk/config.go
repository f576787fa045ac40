package sdk

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultPort is the Prism gateway port.
	DefaultPort = 9440

	// APIPrefix is the fixed path prefix of the Prism v2.0 REST API.
	APIPrefix = "api/nutanix/v2.0"

	// DefaultTimeout bounds a whole request, body included.
	DefaultTimeout = 30 * time.Second

	// DefaultConnectTimeout bounds TCP connect and TLS handshake.
	DefaultConnectTimeout = 5 * time.Second
)

// ClientConfig contains the configuration for creating a new Prism API client.
type ClientConfig struct {
	// Host is the cluster virtual IP, a CVM address or a hostname, without scheme or port.
	Host string

	// Port is the Prism gateway port.
	// Default: 9440
	Port int

	// Username is the Prism user for HTTP Basic authentication.
	Username string

	// Password is the Prism password for HTTP Basic authentication.
	Password string

	// Timeout is the overall per-request timeout.
	// Default: 30 seconds
	Timeout time.Duration

	// ConnectTimeout bounds connection establishment (TCP + TLS handshake).
	// Default: 5 seconds
	ConnectTimeout time.Duration

	// HTTPClient is the HTTP client to use for requests.
	// Optional: if nil, a client that skips certificate verification is created
	// (see newHTTPClient).
	HTTPClient *http.Client

	// Logger receives debug output for every request. Optional.
	Logger *zap.Logger

	// Observer is notified after every request completes. Optional.
	Observer RequestObserver
}

// Validate checks if the client configuration is valid and sets defaults.
func (c *ClientConfig) Validate() error {
	c.Host = strings.TrimSpace(c.Host)
	if c.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}

	// Scheme and path are fixed by the client
	if strings.Contains(c.Host, "://") || strings.Contains(c.Host, "/") {
		return fmt.Errorf("%w: host must be a bare address or hostname, got %q", ErrInvalidConfig, c.Host)
	}

	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}

	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrMissingAuth)
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.Timeout < 0 || c.ConnectTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}

	if c.HTTPClient == nil {
		c.HTTPClient = newHTTPClient(c.Timeout, c.ConnectTimeout)
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return nil
}

// BaseURL returns https://host:port/api/nutanix/v2.0 for this configuration.
func (c *ClientConfig) BaseURL() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("https://%s/%s", net.JoinHostPort(c.Host, strconv.Itoa(port)), APIPrefix)
}
