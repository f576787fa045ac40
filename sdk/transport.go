package sdk

import (
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"time"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// newHTTPClient builds the default client used when ClientConfig.HTTPClient is nil.
//
// Certificate verification is disabled: Prism ships with a self-signed
// certificate and the report is read-only. Callers that pin a CA should pass
// their own HTTPClient.
func newHTTPClient(timeout, connectTimeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: connectTimeout,
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // self-signed Prism certificates
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// drainAndCloseBody reads and closes the response body to ensure connection reuse.
func drainAndCloseBody(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
