// Package newsapi is the REST client for the news-search provider
// (newsapi.org "everything" endpoint).
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/amapara27/Horizon/internal/domain"
)

// Client queries the news-search API. The zero API key is a valid
// configuration: Available reports false and callers should skip the search.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a news-search client. baseURL is the API root, e.g.
// "https://newsapi.org/v2".
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Available reports whether an API key is configured.
func (c *Client) Available() bool { return c.apiKey != "" }

// SearchQuery holds the parameters of one article search.
type SearchQuery struct {
	Query    string
	Language string
	SortBy   string // e.g. "publishedAt"
	PageSize int
	From     time.Time // zero means no lower bound
}

// apiResponse is the provider's response envelope.
type apiResponse struct {
	Status   string       `json:"status"`
	Message  string       `json:"message"`
	Articles []apiArticle `json:"articles"`
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	URLToImage  string `json:"urlToImage"`
}

// Search runs an article search and returns articles most recent first, as
// sorted by the provider. Provider-level failures (transport errors, non-2xx,
// status != "ok") are returned as errors; zero matches is a nil error with an
// empty slice.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]domain.NewsArticle, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("apiKey", c.apiKey)
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if !q.From.IsZero() {
		params.Set("from", q.From.Format("2006-01-02"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsapi: read response: %w", err)
	}

	var decoded apiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || decoded.Status != "ok" {
		msg := decoded.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("newsapi: %w: %s", domain.ErrUpstreamUnavailable, msg)
	}

	articles := make([]domain.NewsArticle, 0, len(decoded.Articles))
	for _, a := range decoded.Articles {
		articles = append(articles, domain.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			ImageURL:    a.URLToImage,
		})
	}

	return articles, nil
}
