package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config holds the settings a Client is built from
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the library backend REST API
type Client struct {
	BaseURL    string
	userAgent  string
	httpClient *http.Client

	users *Resource[models.User]
	books *Resource[models.Book]
}

// endpoint describes how one resource family behaves on the wire
type endpoint struct {
	path string
	// acceptJSON sends Accept: application/json
	acceptJSON bool
	// errorBody reads {"error": "..."} from failed responses
	errorBody bool
}

// New creates a new API client
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		BaseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	c.users = &Resource[models.User]{
		client:   c,
		endpoint: endpoint{path: "/users", acceptJSON: true, errorBody: true},
	}
	c.books = &Resource[models.Book]{
		client:   c,
		endpoint: endpoint{path: "/books"},
	}
	return c
}

// Users returns the user resource
func (c *Client) Users() *Resource[models.User] {
	return c.users
}

// Books returns the book resource
func (c *Client) Books() *Resource[models.Book] {
	return c.books
}

// Pages fetches the navigation entries offered by the backend
func (c *Client) Pages(ctx context.Context) ([]models.Page, error) {
	ep := endpoint{path: "/pages", acceptJSON: true, errorBody: true}
	body, err := c.do(ctx, ep, http.MethodGet, ep.path, nil)
	if err != nil {
		return nil, err
	}

	var pages []models.Page
	if err := json.Unmarshal(body, &pages); err != nil {
		return nil, fmt.Errorf("%w: failed to decode pages: %v", ErrInvalidResponse, err)
	}
	return pages, nil
}

// do sends one request and returns the body of a 2xx response.
// Anything else comes back as a *RequestError.
func (c *Client) do(ctx context.Context, ep endpoint, method, path string, payload any) ([]byte, error) {
	target := c.BaseURL + path

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if ep.acceptJSON {
		req.Header.Set("Accept", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	slog.Debug("Sending request", "method", method, "url", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(method, target, err)
	}
	defer resp.Body.Close()

	slog.Debug("Response received", "method", method, "url", target, "status", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(method, target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ""
		if ep.errorBody && method != http.MethodDelete {
			msg = errorMessage(body)
		}
		return nil, httpError(method, target, resp.StatusCode, msg)
	}

	return body, nil
}

// errorMessage pulls the "error" field out of a JSON error body
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}

func joinPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}
