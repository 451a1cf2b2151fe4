package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURL is the local development backend address used when no
// base URL is configured.
const DefaultBaseURL = "http://localhost:3001"

// TokenSource supplies the bearer token attached to every request. An
// empty string means "no session"; the Authorization header is still sent
// and public endpoints ignore it.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token value.
type StaticToken string

// Token returns the static token value.
func (s StaticToken) Token() string { return string(s) }

// Client issues JSON requests against the Jobly backend. Every call is a
// fresh round trip: no retries, no caching, no timeout beyond what the
// caller's context imposes.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	trace      io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTrace directs per-request debug traces to w. Traces are diagnostic
// only and never alter behavior.
func WithTrace(w io.Writer) Option {
	return func(c *Client) { c.trace = w }
}

// NewClient creates a Client for the backend at baseURL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: http.DefaultClient,
		trace:      io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request performs a single call against the backend and returns the raw
// response body. For GET, data is encoded as query parameters; for every
// other method it is sent as the JSON request body and no query parameters
// are added. Failures of any kind surface as *Error: transport problems
// become a one-element generic message sequence, non-2xx responses carry
// the server's message field normalized into a sequence. No other error
// shape escapes this method.
func (c *Client) Request(ctx context.Context, method, endpoint string, data map[string]any) (json.RawMessage, error) {
	reqID := uuid.New()
	fmt.Fprintf(c.trace, "api call [%s]: %s %s data=%v\n", reqID, method, endpoint, data)

	target := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	var body io.Reader
	if method == http.MethodGet {
		if len(data) > 0 {
			params := url.Values{}
			for key, value := range data {
				params.Set(key, fmt.Sprint(value))
			}
			target += "?" + params.Encode()
		}
	} else {
		if data == nil {
			data = map[string]any{}
		}
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, &Error{
				Messages: []string{"failed to encode request body"},
				Cause:    err,
			}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), target, body)
	if err != nil {
		return nil, &Error{
			Messages: []string{fmt.Sprintf("failed to create request for %s", endpoint)},
			Cause:    err,
		}
	}

	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(c.trace, "api error [%s]: %v\n", reqID, err)
		return nil, &Error{
			Messages: []string{"network error: could not reach server"},
			Cause:    err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Messages:   []string{"failed to read response body"},
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fmt.Fprintf(c.trace, "api error [%s]: status %d body=%s\n", reqID, resp.StatusCode, respBody)
		var envelope errorEnvelope
		_ = json.Unmarshal(respBody, &envelope)
		return nil, &Error{
			Messages:   normalizeMessages(envelope.Error.Message, fmt.Sprintf("request failed with status %d", resp.StatusCode)),
			StatusCode: resp.StatusCode,
		}
	}

	return respBody, nil
}

// get performs a GET request and decodes the response into out.
func (c *Client) get(ctx context.Context, endpoint string, data map[string]any, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, data, out)
}

// do performs a request and, when out is non-nil, decodes the response
// body into it.
func (c *Client) do(ctx context.Context, method, endpoint string, data map[string]any, out any) error {
	respBody, err := c.Request(ctx, method, endpoint, data)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{
			Messages: []string{fmt.Sprintf("failed to decode response from %s", endpoint)},
			Cause:    err,
		}
	}
	return nil
}
