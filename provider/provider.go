package provider

import (
	"context"
	"errors"

	"github.com/jarvis-tutor/jarvis/config"
	"github.com/jarvis-tutor/jarvis/models"
	gemini_provider "github.com/jarvis-tutor/jarvis/provider/gemini"
)

// Client represents different LLM providers
type Client string

const (
	Gemini    Client = "gemini"
	OpenAI    Client = "openai"
	Anthropic Client = "anthropic"
)

// Provider is the interface that all LLM implementations must satisfy
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (models.ImageResult, error)
}

// NewProvider creates a new LLM client based on the provided configuration
func NewProvider(client Client, cfg config.ProvidersConfig) (Provider, error) {
	switch client {
	case Gemini:
		if cfg.Gemini.APIKey == "" {
			return nil, errors.New("gemini api key not set (providers.gemini.api_key)")
		}
		return gemini_provider.NewGeminiClient(
			cfg.Gemini.APIKey,
			cfg.Gemini.Model,
			cfg.Gemini.ImageModel,
			cfg.Gemini.Temperature,
			cfg.Gemini.MaxTokens,
			cfg.Gemini.Timeout,
		), nil
	case OpenAI:
		return nil, errors.New("openai client not implemented yet")
	case Anthropic:
		return nil, errors.New("anthropic client not implemented yet")
	default:
		return nil, errors.New("unsupported LLM provider")
	}
}
