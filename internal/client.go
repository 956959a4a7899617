package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// apiPrefix is prepended to every endpoint path.
	apiPrefix = "/api"
	// loginPath is exempt from session-expiry handling: a 401 during login
	// means bad credentials, not an expired session.
	loginPath = "/auth/login"

	defaultTimeout = 30 * time.Second
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// BaseURL is the backend root, without the /api prefix.
	BaseURL string
	// HTTPClient overrides the underlying transport. Optional.
	HTTPClient *http.Client
	// Tokens supplies the session token for every request. Defaults to an
	// in-memory store.
	Tokens TokenStore
	// OnSessionExpired is invoked after the token has been cleared in
	// response to an unauthenticated 401. Optional.
	OnSessionExpired func()
}

// Client performs HTTP calls against the back-office API with token
// attachment, serialization and error normalization handled uniformly.
// Resource modules hang off it via accessors such as Products() and Chat().
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           TokenStore
	onSessionExpired func()
}

// NewClient creates a client from cfg.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	return &Client{
		baseURL:          strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:       httpClient,
		tokens:           tokens,
		onSessionExpired: cfg.OnSessionExpired,
	}, nil
}

// Tokens exposes the client's token store.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// FormPayload carries a multipart request body. The content type includes the
// boundary chosen by the writer that produced the body, so the request core
// must not replace it with a JSON content type.
type FormPayload struct {
	ContentType string
	Body        io.Reader
}

// NewFileForm builds a multipart payload with a single file part plus
// optional extra string fields.
func NewFileForm(fieldName, fileName string, r io.Reader, fields map[string]string) (*FormPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}
	return &FormPayload{ContentType: w.FormDataContentType(), Body: &buf}, nil
}

// do performs one API call. body is nil, a *FormPayload, or any
// JSON-serializable value. On success the response body is decoded into out
// (when out is non-nil); on a non-2xx status a normalized *APIError or
// *AuthError is returned. Network failures propagate wrapped, not normalized.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case *FormPayload:
		reader = b.Body
		contentType = b.ContentType
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	// Caller-supplied headers win on key collision.
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !strings.HasPrefix(path, loginPath) {
		// Session expired. Handled here so every resource module behaves
		// identically, whether or not the caller inspects the error.
		if err := c.tokens.Clear(); err != nil {
			LogWarn("Failed to clear session token: %v", err)
		}
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return NormalizeError(resp.StatusCode, data)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return NormalizeError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

// Post performs a POST request with a JSON or multipart body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, nil, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, nil, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Page is the normalized shape of every list response.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// decodePage accepts both list shapes the backend emits, a bare JSON array
// and an {items, total} envelope, and normalizes to a Page.
func decodePage[T any](data []byte) (Page[T], error) {
	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		return Page[T]{Items: items, Total: len(items)}, nil
	}
	var page Page[T]
	if err := json.Unmarshal(data, &page); err != nil {
		return Page[T]{}, fmt.Errorf("failed to decode list response: %w", err)
	}
	return page, nil
}

// getPage performs a GET request against a list endpoint and normalizes the
// response shape.
func getPage[T any](ctx context.Context, c *Client, path string) (Page[T], error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, &raw); err != nil {
		return Page[T]{}, err
	}
	return decodePage[T](raw)
}

// withQuery appends the encoded query parameters to path. Empty values are
// expected to have been omitted by the caller.
func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
