// Package fetch provides HTTP clients for the two remote text sources: the
// Project Gutenberg book archive and the Wikipedia extract API. The analysis
// core is agnostic to provenance; both clients return plain text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	internalErrors "github.com/zipfview/go-text-analyzer/internal/errors"
)

const (
	// DefaultGutenbergBaseURL is the public Project Gutenberg mirror.
	DefaultGutenbergBaseURL = "https://www.gutenberg.org"

	defaultFetchTimeout = 30 * time.Second

	// maxBookBytes bounds how much of a book is read; the plain-text file
	// for a long novel is a few megabytes.
	maxBookBytes = 64 << 20
)

// GutenbergClient fetches the plain-text edition of a book by its numeric ID.
type GutenbergClient struct {
	baseURL    string
	httpClient *http.Client
}

// GutenbergOption configures a GutenbergClient.
type GutenbergOption func(*GutenbergClient)

// WithGutenbergHTTPClient overrides the default HTTP client.
func WithGutenbergHTTPClient(client *http.Client) GutenbergOption {
	return func(c *GutenbergClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewGutenbergClient creates a Gutenberg client. An empty baseURL selects the
// public archive.
func NewGutenbergClient(baseURL string, opts ...GutenbergOption) *GutenbergClient {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultGutenbergBaseURL
	}
	client := &GutenbergClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultFetchTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// FetchBook downloads the UTF-8 plain-text edition of the given book.
func (c *GutenbergClient) FetchBook(ctx context.Context, bookID int) (string, error) {
	if bookID <= 0 {
		return "", internalErrors.NewValidationError("gutenberg_id", "must be a positive integer")
	}

	url := fmt.Sprintf("%s/files/%d/%d-0.txt", c.baseURL, bookID, bookID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building gutenberg request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching gutenberg book %d: %w", bookID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return "", internalErrors.NewBookNotFoundError(bookID)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gutenberg returned status %d for book %d", resp.StatusCode, bookID)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBookBytes))
	if err != nil {
		return "", fmt.Errorf("reading gutenberg response: %w", err)
	}
	return string(body), nil
}
