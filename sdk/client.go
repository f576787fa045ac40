package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Orkogithub/nutanix-cluster-info/models"
)

// Prism v2.0 resources consumed by the report.
const (
	ResourceCluster           = "cluster"
	ResourceStorageContainers = "storage_containers"
)

// RequestObserver is notified once per completed request.
// statusCode is 0 when no response was received.
type RequestObserver interface {
	ObserveRequest(resource string, statusCode int, duration time.Duration, err error)
}

// Client is a read-only client for the Prism v2.0 REST API.
// Every call is a single GET: there are no retries and no pagination.
type Client struct {
	// BaseURL is https://host:port/api/nutanix/v2.0.
	BaseURL string

	// Username is the HTTP Basic user.
	Username string

	// HTTPClient is the HTTP client used for requests.
	HTTPClient *http.Client

	password string
	logger   *zap.Logger
	observer RequestObserver
}

// NewClient creates a new Prism API client with the given configuration.
func NewClient(config ClientConfig) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		BaseURL:    config.BaseURL(),
		Username:   config.Username,
		HTTPClient: config.HTTPClient,
		password:   config.Password,
		logger:     config.Logger,
		observer:   config.Observer,
	}, nil
}

// Get fetches one resource and decodes its JSON body into dest.
//
// Failures are returned as *models.Error: Timeout, ConnectionFailed,
// AuthFailed (401), ClientError (other 4xx), ServerError (5xx) or
// InvalidResponse (undecodable body, unexpected status).
func (c *Client) Get(ctx context.Context, resource string, dest interface{}) error {
	resource = strings.Trim(resource, "/")

	start := time.Now()
	statusCode, err := c.get(ctx, resource, dest)
	duration := time.Since(start)

	if c.observer != nil {
		c.observer.ObserveRequest(resource, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Debug("Prism API request failed",
			zap.String("resource", resource),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.Error(err))
		return err
	}

	c.logger.Debug("Prism API request completed",
		zap.String("resource", resource),
		zap.Int("status", statusCode),
		zap.Duration("duration", duration))
	return nil
}

func (c *Client) get(ctx context.Context, resource string, dest interface{}) (int, error) {
	url := fmt.Sprintf("%s/%s", c.BaseURL, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &models.Error{Kind: models.KindConnectionFailed, Resource: resource, Err: err}
	}
	c.addAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, transportError(resource, err)
	}
	defer drainAndCloseBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := statusError(resource, resp.StatusCode)
		apiErr.Message = c.parseErrorMessage(resp)
		return resp.StatusCode, apiErr
	}

	if err := c.parseJSONResponse(resp, dest); err != nil {
		kind := models.KindInvalidResponse
		// A body cut short by a timeout or cancellation keeps that classification
		if transportErr := transportError(resource, err); transportErr.Kind != models.KindConnectionFailed {
			kind = transportErr.Kind
		}
		return resp.StatusCode, &models.Error{Kind: kind, Resource: resource, StatusCode: resp.StatusCode, Err: err}
	}

	return resp.StatusCode, nil
}

// parseJSONResponse parses a JSON response body into the provided destination.
func (c *Client) parseJSONResponse(resp *http.Response, dest interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}

// parseErrorMessage extracts the Prism error message from an error response, if any.
func (c *Client) parseErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return ""
	}

	var apiErr models.ErrorBody
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}

	return strings.TrimSpace(apiErr.Message)
}

// GetCluster fetches the cluster descriptor.
func (c *Client) GetCluster(ctx context.Context) (*models.ClusterDescriptor, error) {
	var cluster models.ClusterDescriptor
	if err := c.Get(ctx, ResourceCluster, &cluster); err != nil {
		return nil, err
	}
	return &cluster, nil
}

// GetStorageContainers fetches the storage container collection.
func (c *Client) GetStorageContainers(ctx context.Context) (*models.ContainerCollection, error) {
	var containers models.ContainerCollection
	if err := c.Get(ctx, ResourceStorageContainers, &containers); err != nil {
		return nil, err
	}
	return &containers, nil
}
