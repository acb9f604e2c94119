package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ErrNotFound is returned when the API reports a missing record
var ErrNotFound = errors.New("record not found")

// APIError is a non-success response from the site API, either an HTTP
// error status or a success:false envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// Client talks to the nonprofit site's JSON API under /api/*.
// Admin mutations authenticate with a bearer token from the token source;
// a nil token source leaves requests unauthenticated (public endpoints).
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	logger     *zap.Logger
}

// NewClient creates an API client for the given base URL
func NewClient(baseURL string, tokens oauth2.TokenSource, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// ListParams are the query parameters every list endpoint accepts
type ListParams struct {
	Type     string
	Status   string
	Category string
	Priority string
	Search   string
	Limit    int
}

// Values encodes the set parameters into a query string
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Type != "" {
		v.Set("type", p.Type)
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Priority != "" {
		v.Set("priority", p.Priority)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// Result is the single list contract exposed to callers. Both legacy wire
// shapes (the {success,data,total,error} envelope and the bare array) decode
// into it; callers never learn which one a resource used.
type Result[T any] struct {
	Items []T
	Total int
}

// envelope is the older of the two wire shapes. Success is a pointer so a
// bare record, which has no success key, can be told apart from an envelope.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Error   string          `json:"error"`
}

func (e *envelope) enveloped() bool { return e.Success != nil }
func (e *envelope) ok() bool        { return e.Success != nil && *e.Success }

// decodeList normalizes either wire shape into a Result
func decodeList[T any](body []byte) (Result[T], error) {
	var res Result[T]
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &res.Items); err != nil {
			return res, fmt.Errorf("failed to decode list response: %w", err)
		}
		res.Total = len(res.Items)
		return res, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return res, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if !env.enveloped() {
		return res, fmt.Errorf("unrecognized list response shape")
	}
	if !env.ok() {
		return res, &APIError{StatusCode: http.StatusOK, Message: env.Error}
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &res.Items); err != nil {
			return res, fmt.Errorf("failed to decode envelope data: %w", err)
		}
	}
	if env.Total != nil {
		res.Total = *env.Total
	} else {
		res.Total = len(res.Items)
	}
	return res, nil
}

// decodeOne normalizes a single-record response, enveloped or bare
func decodeOne[T any](body []byte) (*T, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.enveloped() {
		if !env.ok() {
			return nil, &APIError{StatusCode: http.StatusOK, Message: env.Error}
		}
		var out T
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return nil, fmt.Errorf("failed to decode envelope data: %w", err)
		}
		return &out, nil
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &out, nil
}

// do performs a request and returns the raw response body
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to obtain API token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		var env envelope
		msg := ""
		if json.Unmarshal(data, &env) == nil {
			msg = env.Error
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return data, nil
}

// idQuery builds the ?id=<id> query mutation endpoints use
func idQuery(id string) url.Values {
	v := url.Values{}
	v.Set("id", id)
	return v
}
