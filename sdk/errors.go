package sdk

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/Orkogithub/nutanix-cluster-info/models"
)

// Configuration errors. Request failures are returned as *models.Error instead.
var (
	// ErrInvalidConfig indicates the client configuration is invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrMissingAuth indicates required authentication credentials were not provided.
	ErrMissingAuth = errors.New("missing authentication credentials")
)

// transportError classifies a failure from http.Client.Do.
// Deadlines of any origin (client timeout, dial timeout, context) count as timeouts;
// a canceled context is reported as Canceled, not as a connection failure.
func transportError(resource string, err error) *models.Error {
	kind := models.KindConnectionFailed

	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		kind = models.KindCanceled
	case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
		kind = models.KindTimeout
	}

	return &models.Error{Kind: kind, Resource: resource, Err: err}
}

// statusError classifies a non-2xx final status.
func statusError(resource string, statusCode int) *models.Error {
	e := &models.Error{Resource: resource, StatusCode: statusCode}

	switch {
	case statusCode == http.StatusUnauthorized:
		e.Kind = models.KindAuthFailed
	case statusCode >= 400 && statusCode < 500:
		e.Kind = models.KindClientError
	case statusCode >= 500 && statusCode < 600:
		e.Kind = models.KindServerError
	default:
		e.Kind = models.KindInvalidResponse
	}

	return e
}
