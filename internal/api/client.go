package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prideconnect/prideconnect/internal/errors"
	"github.com/prideconnect/prideconnect/internal/version"
)

// DefaultTimeout bounds every request to the backend. Timeouts surface as
// network errors, never as hangs.
const DefaultTimeout = 30 * time.Second

// Client is the Pride Connect platform API client.
//
// All pages and the session store share one Client. The bearer token attached
// to outgoing requests is owned by the session store: only
// [Client.SetToken] changes it, and only the store calls SetToken, so the
// authorization header can never drift from the session's token.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests and by
// callers that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new platform API client. baseURL must already be
// normalized (see [NormalizeBaseURL]); the "/api" prefix is appended here.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL + "/api",
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken sets the bearer token attached to subsequent requests.
// An empty token clears the authorization header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the bearer token currently attached to requests.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.GetInfo().UserAgent())
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ue, ok := err.(*url.Error); ok && ue.Timeout() {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "request timed out", err)
		}
		return nil, errors.NewNetworkError(err)
	}

	return resp, nil
}

// apiError is the backend's error envelope (FastAPI-style "detail" field).
type apiError struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (e *apiError) text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

// parseResponse decodes the response body into target and maps failure
// statuses onto the client error taxonomy.
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)

		detail := ""
		var errResp apiError
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			detail = errResp.text()
		}
		if detail == "" {
			detail = string(respBody)
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return errors.NewUnauthorizedError(detail)
		case resp.StatusCode == http.StatusNotFound:
			return errors.NewNotFoundError(detail)
		case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
			return errors.NewValidationError(detail)
		case resp.StatusCode >= 500:
			return errors.NewServerError(resp.StatusCode, detail)
		default:
			return errors.NewServerError(resp.StatusCode, detail)
		}
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeDecode, "decode response", err)
		}
	}

	return nil
}

// get issues a GET request and decodes the response into target.
func (c *Client) get(ctx context.Context, path string, query url.Values, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

// post issues a POST request and decodes the response into target.
func (c *Client) post(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}

// put issues a PUT request and decodes the response into target.
func (c *Client) put(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return parseResponse(resp, target)
}
