package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	internalErrors "github.com/zipfview/go-text-analyzer/internal/errors"
)

const (
	// DefaultWikipediaBaseURL is the English Wikipedia API host.
	DefaultWikipediaBaseURL = "https://en.wikipedia.org"

	wikipediaUserAgent = "go-text-analyzer/1.0"
)

// WikipediaClient fetches the plain-text extract of an article by title.
type WikipediaClient struct {
	baseURL    string
	httpClient *http.Client
}

// WikipediaOption configures a WikipediaClient.
type WikipediaOption func(*WikipediaClient)

// WithWikipediaHTTPClient overrides the default HTTP client.
func WithWikipediaHTTPClient(client *http.Client) WikipediaOption {
	return func(c *WikipediaClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewWikipediaClient creates a Wikipedia client. An empty baseURL selects the
// English Wikipedia.
func NewWikipediaClient(baseURL string, opts ...WikipediaOption) *WikipediaClient {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultWikipediaBaseURL
	}
	client := &WikipediaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// wikipediaResponse models the extract query payload. Pages are keyed by
// page ID; the key "-1" means the title did not resolve.
type wikipediaResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// FetchArticle returns the plain-text extract of the article with the given
// title.
func (c *WikipediaClient) FetchArticle(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", internalErrors.NewValidationError("wiki_title", "cannot be empty")
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("format", "json")

	endpoint := fmt.Sprintf("%s/w/api.php?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building wikipedia request: %w", err)
	}
	req.Header.Set("User-Agent", wikipediaUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching wikipedia article '%s': %w", title, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia returned status %d for '%s'", resp.StatusCode, title)
	}

	var payload wikipediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding wikipedia response: %w", err)
	}

	for pageID, page := range payload.Query.Pages {
		if pageID == "-1" {
			return "", internalErrors.NewArticleNotFoundError(title)
		}
		return page.Extract, nil
	}
	return "", internalErrors.NewArticleNotFoundError(title)
}
