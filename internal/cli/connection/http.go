package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// RequestTimeout is the fixed deadline for a single request.
const RequestTimeout = 30 * time.Second

// userAgent identifies the CLI to the server.
const userAgent = "planka-cli/1.0"

// Client provides HTTP communication with a Planka server.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
	log     hclog.Logger
}

// New creates a client for the given server. The scheme defaults to
// http:// when missing and any trailing slash is stripped. token may
// be empty for unauthenticated calls (login).
func New(server, token string, log hclog.Logger) *Client {
	baseURL := strings.TrimRight(server, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		log:     log,
		hc: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// BaseURL returns the normalized base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the current bearer token, empty if unauthenticated.
func (c *Client) Token() string {
	return c.token
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Close releases the underlying transport. The client must not be
// used afterwards.
func (c *Client) Close() {
	c.hc.CloseIdleConnections()
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.addHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("request", "method", method, "path", path)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	c.log.Debug("response", "method", method, "path", path, "status", resp.StatusCode)
	return resp, nil
}

// Upload performs a multipart POST carrying the file's content under
// the given form field. The Content-Type is the multipart boundary
// header, never application/json. A file that cannot be read surfaces
// as a local error before anything is sent.
func (c *Client) Upload(ctx context.Context, path, field, filePath string) (*http.Response, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.addHeaders(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.log.Debug("upload", "path", path, "file", filePath)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	c.log.Debug("response", "method", http.MethodPost, "path", path, "status", resp.StatusCode)
	return resp, nil
}

// addHeaders adds authentication and common headers.
func (c *Client) addHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", userAgent)
}

// Decode consumes a response. A non-2xx status becomes an *APIError
// (or *AuthError for 401/403) carrying the body verbatim; callers
// never receive a decoded result alongside an error. On success the
// body is decoded into target when target is non-nil.
func Decode(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return statusError(resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}
