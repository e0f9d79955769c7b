package web_search

import (
	"context"

	"github.com/jarvis-tutor/jarvis/tools/web_search/brave"
	"github.com/jarvis-tutor/jarvis/tools/web_search/models"
	"github.com/jarvis-tutor/jarvis/tools/web_search/serper"
)

type WebSearcher interface {
	// Discover returns up to k ranked results for q plus the provider-reported
	// total result count (len(results) when the provider does not report one).
	Discover(ctx context.Context, q string, k int) ([]models.Result, int, error)
}

type Provider string

const (
	SerperProvider Provider = "serper"
	BraveProvider  Provider = "brave"
)

type Error struct{ Msg string }

func (e *Error) Error() string { return e.Msg }

var ErrUnsupportedProvider = &Error{"unsupported provider"}

func NewWebSearcher(provider Provider, apiKey string) (WebSearcher, error) {
	switch provider {
	case SerperProvider:
		return serper.Search{ApiKey: apiKey}, nil
	case BraveProvider:
		return brave.Search{ApiKey: apiKey}, nil
	default:
		return nil, ErrUnsupportedProvider
	}
}
