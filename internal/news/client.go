// Package news fetches recent headlines for a company and labels each one
// with a polarity-based sentiment.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stockdash/internal/model"
)

const defaultPageSize = 5

// Client fetches articles from the NewsAPI /v2/everything endpoint.
type Client struct {
	BaseURL  string
	APIKey   string
	PageSize int
	HTTP     *http.Client
}

// NewClient creates a NewsAPI client. pageSize <= 0 falls back to 5.
func NewClient(apiKey string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Client{
		BaseURL:  "https://newsapi.org",
		APIKey:   apiKey,
		PageSize: pageSize,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// newsAPIResponse is the subset of the NewsAPI payload we consume.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"articles"`
}

// Fetch returns up to PageSize recent English articles for the given company
// token, newest first, each labeled with the sentiment of its description.
func (c *Client) Fetch(ctx context.Context, company string) ([]model.NewsItem, error) {
	q := url.Values{}
	q.Set("q", company)
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", fmt.Sprintf("%d", c.PageSize))

	endpoint := c.BaseURL + "/v2/everything?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read news body: %w", err)
	}

	var payload newsAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("news api error: %s", payload.Message)
	}

	items := make([]model.NewsItem, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		items = append(items, model.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			Sentiment:   Label(Polarity(a.Description)),
		})
	}
	return items, nil
}
