package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

type response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

type NewsAPI struct {
	APIKey   string
	Endpoint string
}

// FetchNews queries the everything endpoint and returns up to max articles
// plus the provider-reported total result count.
func (n NewsAPI) FetchNews(ctx context.Context, query string, max int) ([]Article, int, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("sortBy", "publishedAt")
	if max > 0 {
		params.Add("pageSize", fmt.Sprintf("%d", max))
	}
	params.Add("apiKey", n.APIKey)

	reqURL := fmt.Sprintf("%s?%s", n.Endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("newsapi error: %s", resp.Status)
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Articles, result.TotalResults, nil
}
