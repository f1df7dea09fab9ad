package requester

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	httppkg "github.com/piresc/movecar/internal/pkg/http"
	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/piresc/movecar/internal/pkg/retry"
)

// NotifyInput is what a requester submits when notifying an owner
type NotifyInput struct {
	Plate    string              `json:"license"`
	Message  string              `json:"message,omitempty"`
	Location *models.Coordinates `json:"location,omitempty"`
	Delayed  bool                `json:"delayed"`
}

// VerifyResult is the answer of the verify-license endpoint
type VerifyResult struct {
	Success bool   `json:"success"`
	License string `json:"license"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// APIError is a non-2xx answer of the move-car API
type APIError struct {
	StatusCode int
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("movecar api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("movecar api: %d %s", e.StatusCode, e.Message)
}

// Client calls the move-car HTTP API. Read-only calls are retried on
// transport errors and 5xx answers; notifies are sent once.
type Client struct {
	http    *httppkg.Client
	lang    string
	retrier *retry.Retrier
}

// NewClient creates an API client for the service at baseURL. lang, when
// set, selects the language of server messages.
func NewClient(baseURL string, timeout time.Duration, lang string) *Client {
	return &Client{
		http:    httppkg.NewClient(httppkg.Config{BaseURL: baseURL, Timeout: timeout}),
		lang:    lang,
		retrier: retry.New(retryConfig(retry.DefaultConfig())),
	}
}

func retryConfig(config retry.Config) retry.Config {
	config.IsRetryable = func(err error) bool {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr.StatusCode >= http.StatusInternalServerError
		}
		return true
	}
	return config
}

// VerifyLicense checks whether a plate is registered
func (c *Client) VerifyLicense(ctx context.Context, plate string) (*VerifyResult, error) {
	var result VerifyResult
	err := c.retrier.Execute(ctx, func(ctx context.Context) error {
		return apiErrorFrom(c.http.PostJSON(ctx, c.endpoint("/api/verify-license", nil), map[string]string{"license": plate}, &result))
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Notify sends one notify. Server-side delivery may take a while when the
// input is delayed.
func (c *Client) Notify(ctx context.Context, in NotifyInput) error {
	return apiErrorFrom(c.http.PostJSON(ctx, c.endpoint("/api/notify", nil), in, nil))
}

// CheckStatus polls the request status of a plate
func (c *Client) CheckStatus(ctx context.Context, plate string) (*models.StatusView, error) {
	var view models.StatusView
	err := c.retrier.Execute(ctx, func(ctx context.Context) error {
		return apiErrorFrom(c.http.GetJSON(ctx, c.endpoint("/api/check-status", url.Values{"plate": {plate}}), &view))
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	if c.lang != "" {
		if query == nil {
			query = url.Values{}
		}
		query.Set("lang", c.lang)
	}
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// apiErrorFrom turns a non-2xx answer into an APIError carrying the
// server message and Retry-After; other errors pass through.
func apiErrorFrom(err error) error {
	var httpErr *httppkg.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	apiErr := &APIError{StatusCode: httpErr.StatusCode}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(httpErr.Body, &body) == nil {
		apiErr.Message = body.Error
		if apiErr.Message == "" {
			apiErr.Message = body.Message
		}
	}

	if seconds, err := strconv.Atoi(httpErr.Header.Get("Retry-After")); err == nil && seconds > 0 {
		apiErr.RetryAfter = time.Duration(seconds) * time.Second
	}
	return apiErr
}
