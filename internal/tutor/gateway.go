package tutor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jarvis-tutor/jarvis/news/newsapi"
	"github.com/jarvis-tutor/jarvis/tools/web_search"
)

// SearchGateway retrieves ranked evidence for a query.
type SearchGateway interface {
	Search(ctx context.Context, query string, category Category) (*ResultSet, error)
}

// NewsFetcher is the news-category provider consumed by the gateway.
type NewsFetcher interface {
	FetchNews(ctx context.Context, query string, max int) ([]newsapi.Article, int, error)
}

// Gateway dispatches to the configured web and news providers and maps
// transport failures to ErrSearchUnavailable.
type Gateway struct {
	Web        web_search.WebSearcher
	News       NewsFetcher
	MaxResults int
	Timeout    time.Duration
	Logger     *log.Logger
}

func (g *Gateway) Search(ctx context.Context, query string, category Category) (*ResultSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}

	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	max := g.MaxResults
	if max <= 0 {
		max = 10
	}

	switch category {
	case CategoryNews:
		articles, total, err := g.News.FetchNews(ctx, query, max)
		if err != nil {
			g.logf("news search failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
		}
		rs := &ResultSet{Category: CategoryNews, TotalResults: total}
		for _, a := range articles {
			item := Item{Title: a.Title, Snippet: a.Description, URL: a.URL}
			if !a.PublishedAt.IsZero() {
				item.PublishedAt = a.PublishedAt.Format(time.RFC3339)
			}
			rs.Items = append(rs.Items, item)
		}
		return rs, nil
	case CategoryWeb:
		results, total, err := g.Web.Discover(ctx, query, max)
		if err != nil {
			g.logf("web search failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
		}
		rs := &ResultSet{Category: CategoryWeb, TotalResults: total}
		for _, r := range results {
			rs.Items = append(rs.Items, Item{Title: r.Title, Snippet: r.Snippet, URL: r.URL, PublishedAt: r.PublishedAt})
		}
		return rs, nil
	default:
		return nil, fmt.Errorf("unsupported search category: %q", category)
	}
}

func (g *Gateway) logf(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Printf(format, args...)
	}
}
