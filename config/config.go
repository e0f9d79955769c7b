package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the tutoring backend
type Config struct {
	General      GeneralConfig      `mapstructure:"general"`
	Providers    ProvidersConfig    `mapstructure:"providers"`
	Search       SearchConfig       `mapstructure:"search"`
	Verification VerificationConfig `mapstructure:"verification"`
	Telemetry    TelemetryConfig    `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Listen   string `mapstructure:"listen"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ProvidersConfig contains LLM provider configurations
type ProvidersConfig struct {
	Default string       `mapstructure:"default"` // gemini, openai, anthropic
	Gemini  GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig configures the Google Gemini client
type GeminiConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	ImageModel  string        `mapstructure:"image_model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// SearchConfig configures the search gateway
type SearchConfig struct {
	Provider     string        `mapstructure:"provider"` // serper or brave, for the web category
	SerperAPIKey string        `mapstructure:"serper_api_key"`
	BraveAPIKey  string        `mapstructure:"brave_api_key"`
	NewsAPI      NewsAPIConfig `mapstructure:"newsapi"`
	MaxResults   int           `mapstructure:"max_results"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// NewsAPIConfig configures the news-category provider
type NewsAPIConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"`
}

// VerificationConfig controls the answer-verification pipeline
type VerificationConfig struct {
	Threshold      float64       `mapstructure:"threshold"`
	TopEvidence    int           `mapstructure:"top_evidence"`
	FetchTopResult bool          `mapstructure:"fetch_top_result"`
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`
	FetchMaxChars  int           `mapstructure:"fetch_max_chars"`
}

func (v VerificationConfig) Validate() error {
	if v.Threshold < 0 || v.Threshold > 1 {
		return fmt.Errorf("verification.threshold must be within [0,1], got %f", v.Threshold)
	}
	if v.TopEvidence < 0 {
		return fmt.Errorf("verification.top_evidence must be >= 0")
	}
	return nil
}

// TelemetryConfig contains monitoring settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig reads configuration from file and environment. Every knob has a
// default, so a missing config file is fine as long as the API keys arrive
// through JARVIS_* environment variables.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("general.listen", ":8787")
	viper.SetDefault("general.debug", false)
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("providers.default", "gemini")
	viper.SetDefault("providers.gemini.model", "gemini-2.0-flash")
	viper.SetDefault("providers.gemini.image_model", "imagen-3.0-generate-002")
	viper.SetDefault("providers.gemini.temperature", 0.4)
	viper.SetDefault("providers.gemini.max_tokens", 2048)
	viper.SetDefault("providers.gemini.timeout", 120*time.Second)
	viper.SetDefault("search.provider", "serper")
	viper.SetDefault("search.newsapi.endpoint", "https://newsapi.org/v2/everything")
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("search.timeout", 90*time.Second)
	viper.SetDefault("verification.threshold", 0.6)
	viper.SetDefault("verification.top_evidence", 3)
	viper.SetDefault("verification.fetch_top_result", false)
	viper.SetDefault("verification.fetch_timeout", 15*time.Second)
	viper.SetDefault("verification.fetch_max_chars", 20000)
	viper.SetDefault("telemetry.enabled", true)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)
		viper.AddConfigPath(filepath.Join(exeDir, ".."))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("JARVIS")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.Verification.Validate(); err != nil {
		panic(err)
	}
	return &config
}
