package testfixtures

import (
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
)

// Credentials accepted by the fake Prism endpoint.
const (
	Username = "admin"
	Password = "nutanix/4u"
)

// apiPrefix mirrors the path prefix the client targets.
const apiPrefix = "/api/nutanix/v2.0/"

// PrismServer is a TLS test server answering the two resources a report needs.
// It presents a self-signed certificate, as a real cluster does.
type PrismServer struct {
	Server *httptest.Server
	Host   string
	Port   int

	// Bodies maps resource name to the JSON body returned with 200.
	Bodies map[string]string

	// Statuses maps resource name to a forced status code.
	Statuses map[string]int

	requests atomic.Int64
}

// NewPrismServer starts a fake Prism endpoint serving the default fixtures.
// The server is closed when the test ends.
func NewPrismServer(t *testing.T) *PrismServer {
	t.Helper()

	ps := &PrismServer{
		Bodies: map[string]string{
			"cluster":            ClusterJSON,
			"storage_containers": ContainersJSON,
		},
		Statuses: map[string]int{},
	}

	ps.Server = httptest.NewTLSServer(http.HandlerFunc(ps.handle))
	t.Cleanup(ps.Server.Close)

	u, err := url.Parse(ps.Server.URL)
	if err != nil {
		t.Fatalf("failed to parse server URL: %v", err)
	}
	host, port, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("failed to split server address: %v", err)
	}
	ps.Host = host
	ps.Port, err = strconv.Atoi(port)
	if err != nil {
		t.Fatalf("failed to parse server port: %v", err)
	}

	return ps
}

// Requests returns the number of requests served so far.
func (ps *PrismServer) Requests() int {
	return int(ps.requests.Load())
}

func (ps *PrismServer) handle(w http.ResponseWriter, r *http.Request) {
	ps.requests.Add(1)

	user, pass, ok := r.BasicAuth()
	if !ok || user != Username || pass != Password {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Authentication required."}`))
		return
	}

	if !strings.HasPrefix(r.URL.Path, apiPrefix) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	resource := strings.TrimPrefix(r.URL.Path, apiPrefix)

	if status, ok := ps.Statuses[resource]; ok {
		w.WriteHeader(status)
		return
	}

	body, ok := ps.Bodies[resource]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}
