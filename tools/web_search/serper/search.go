package serper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jarvis-tutor/jarvis/tools/web_search/models"
	"github.com/jarvis-tutor/jarvis/utils"
)

const DefaultEndpoint = "https://google.serper.dev/search"

type Search struct {
	ApiKey   string
	Endpoint string // defaults to DefaultEndpoint; overridable for tests
}

func (s Search) Discover(ctx context.Context, q string, k int) ([]models.Result, int, error) {
	// https://serper.dev/ docs
	payload := map[string]any{"q": q, "num": k}

	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(string(body)))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("X-API-KEY", s.ApiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("serper error: %s", resp.Status)
	}
	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, 0, err
	}

	var out []models.Result
	if items, ok := raw["organic"].([]any); ok {
		for i, it := range items {
			if i >= k {
				break
			}
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, models.Result{
				Title:       utils.Str(m["title"]),
				URL:         utils.Str(m["link"]),
				Snippet:     utils.Str(m["snippet"]),
				PublishedAt: utils.Str(m["date"]),
			})
		}
	}
	return out, len(out), nil
}
