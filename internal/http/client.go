// Package http provides the HTTP transport for the phpList REST API:
// URL construction, session header injection, JSON codec plumbing, and
// status classification into the typed errors of pkg/phplist.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/phplist/go-client/pkg/phplist"
)

// apiPrefix is the REST path prefix appended to the base URL. Endpoint
// paths are resolved underneath it.
const apiPrefix = "/api/v2"

// sessionHeader carries the session key on authenticated requests.
const sessionHeader = "php-auth-pw"

const defaultUserAgent = "phplist-go-client/1.0"

// Client handles HTTP communication with the phpList API.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     phplist.Logger
	debug      bool

	mu      sync.RWMutex
	session string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger phplist.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured
// logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets a hard timeout on the underlying HTTP client.
// Per-request deadlines via context remain the preferred mechanism.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig enables retries for transient failures (connection
// errors, 429, and 5xx responses).
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if retryWaitMin > 0 {
			c.httpClient.RetryWaitMin = retryWaitMin
		}

		if retryWaitMax > 0 {
			c.httpClient.RetryWaitMax = retryWaitMax
		}
	}
}

// NewClient creates a new HTTP client for the given installation base
// URL. Retries are disabled unless WithRetryConfig turns them on: most
// of the API's write endpoints are not idempotent.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Keep the final response so non-2xx statuses classify normally
	// after retries are exhausted.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// SetSession installs the session key sent with subsequent requests.
func (c *Client) SetSession(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = key
}

// SessionKey returns the current session key, or "" when logged out.
func (c *Client) SessionKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.session
}

// ClearSession discards the session key.
func (c *Client) ClearSession() {
	c.SetSession("")
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
	// Raw skips JSON decoding of the response body; used for CSV and
	// plain-text endpoints.
	Raw bool
}

// Response represents an API response. Data holds the decoded JSON
// payload; for 2xx object payloads without an explicit "success" flag
// one is added, matching the server's own convention for mutations.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Data       any
}

// Do executes a request against the API.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req.Path, req.Query)

	bodyReader, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if session := c.SessionKey(); session != "" {
		httpReq.Header.Set(sessionHeader, session)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil && httpResp == nil {
		return nil, phplist.NewTransportError(err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, phplist.NewTransportError(err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"size":   len(body),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, classifyError(httpResp.StatusCode, body)
	}

	if !req.Raw {
		resp.Data = decodeSuccessBody(body)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetRaw performs a GET request and returns the body undecoded.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query, Raw: true})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PostMultipart performs a POST with a multipart form carrying one file
// plus the scalar fields of the payload.
func (c *Client) PostMultipart(ctx context.Context, path string, fields *phplist.Payload, fileField, filename string, file io.Reader) (*Response, error) {
	if file == nil {
		return nil, phplist.ErrImportFileRequired
	}

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	if fields != nil {
		for _, key := range fields.Keys() {
			value, _ := fields.Get(key)
			if err := writer.WriteField(key, formValue(value)); err != nil {
				return nil, fmt.Errorf("writing form field %s: %w", key, err)
			}
		}
	}

	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copying form file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    buf.Bytes(),
		Headers: map[string]string{"Content-Type": writer.FormDataContentType()},
	})
}

// buildURL joins the base URL, the API prefix, the endpoint path, and
// the query string.
func (c *Client) buildURL(path string, query url.Values) string {
	fullURL := c.baseURL + apiPrefix + "/" + strings.TrimPrefix(path, "/")

	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	return fullURL
}

// encodeBody turns a request body into a reader plus content type.
// Payloads and arbitrary values marshal to JSON; raw byte slices pass
// through for multipart callers that bring their own Content-Type.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case *phplist.Payload:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling payload: %w", err)
		}

		return bytes.NewReader(data), "application/json", nil
	case io.Reader:
		return nil, "", phplist.ErrUnsupportedBodyType
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling body: %w", err)
		}

		return bytes.NewReader(data), "application/json", nil
	}
}

// decodeSuccessBody decodes a 2xx JSON body. Empty or non-JSON bodies
// degrade to an empty object; object payloads gain "success": true when
// the server did not include the flag itself.
func decodeSuccessBody(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return map[string]any{}
	}

	if object, ok := data.(map[string]any); ok {
		if _, present := object["success"]; !present {
			object["success"] = true
		}

		return object
	}

	return data
}

// classifyError maps a non-2xx response to the typed error taxonomy.
func classifyError(statusCode int, body []byte) error {
	var data map[string]any

	_ = json.Unmarshal(body, &data)

	message, _ := data["message"].(string)

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return phplist.NewAuthenticationError(message, statusCode)
	case http.StatusNotFound:
		return phplist.NewNotFoundError(message, statusCode)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return phplist.NewValidationError(message, statusCode, fieldErrors(data["errors"]))
	default:
		return phplist.NewAPIError(message, statusCode)
	}
}

// fieldErrors normalizes the "errors" member of a validation response.
// Values may arrive as a single string or a list of strings per field.
func fieldErrors(raw any) map[string][]string {
	object, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	result := make(map[string][]string, len(object))

	for field, value := range object {
		switch v := value.(type) {
		case string:
			result[field] = []string{v}
		case []any:
			messages := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					messages = append(messages, s)
				}
			}

			result[field] = messages
		}
	}

	return result
}

// formValue renders a payload value as a form field. Booleans use the
// server's 1/0 convention.
func formValue(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "1"
		}

		return "0"
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
