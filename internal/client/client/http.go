package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bookhubb/bookhub/internal/client/models"
	"github.com/bookhubb/bookhub/internal/common"
	"github.com/bookhubb/bookhub/internal/logging"
)

// maxErrorBody caps how much of an error response is kept in StatusError.
const maxErrorBody = 512

// HTTPClient implements Client over the BookHub REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout sets a per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewBookHubClient returns a client for the API rooted at baseURL.
func NewBookHubClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse api base url: unsupported scheme %q", u.Scheme)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// userRecord is the wire shape of GET /api/auth/{id}.
type userRecord struct {
	LegacyID string      `json:"_id"`
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// GetUser fetches the user record for userID. The returned ID is the
// record's own identifier, never userID.
func (c *HTTPClient) GetUser(ctx context.Context, credential, userID string) (*models.User, error) {
	var rec userRecord
	if err := c.do(ctx, http.MethodGet, "/api/auth/"+url.PathEscape(userID), credential, nil, &rec); err != nil {
		return nil, err
	}

	id := rec.LegacyID
	if id == "" {
		id = rec.ID
	}
	if id == "" {
		return nil, errors.New("get user: record has no identifier")
	}

	return &models.User{ID: id, Name: rec.Name, Email: rec.Email, Role: rec.Role}, nil
}

func (c *HTTPClient) ListOwnedBooks(ctx context.Context, credential, ownerID string) ([]models.Book, error) {
	return c.listBooks(ctx, credential, "/api/books/"+url.PathEscape(ownerID))
}

func (c *HTTPClient) ListSavedBooks(ctx context.Context, credential, userID string) ([]models.Book, error) {
	return c.listBooks(ctx, credential, "/api/books/saved-books/"+url.PathEscape(userID))
}

func (c *HTTPClient) listBooks(ctx context.Context, credential, path string) ([]models.Book, error) {
	var books []models.Book
	if err := c.do(ctx, http.MethodGet, path, credential, nil, &books); err != nil {
		return nil, err
	}
	return models.CanonicalBooks(books), nil
}

// CreateBook posts a new listing and returns the stored record.
func (c *HTTPClient) CreateBook(ctx context.Context, credential string, book models.NewBook) (*models.Book, error) {
	var created models.Book
	if err := c.do(ctx, http.MethodPost, "/api/books", credential, book, &created); err != nil {
		return nil, err
	}
	created = created.Canonical()
	return &created, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path, credential string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+credential)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
