package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
general:
  listen: ":9000"
providers:
  gemini:
    api_key: test-key
    model: gemini-2.0-pro
search:
  provider: brave
  timeout: 120s
verification:
  threshold: 0.7
  top_evidence: 5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfig(path)
	if cfg.General.Listen != ":9000" {
		t.Fatalf("unexpected listen: %s", cfg.General.Listen)
	}
	if cfg.Providers.Gemini.APIKey != "test-key" || cfg.Providers.Gemini.Model != "gemini-2.0-pro" {
		t.Fatalf("unexpected gemini config: %+v", cfg.Providers.Gemini)
	}
	if cfg.Search.Provider != "brave" || cfg.Search.Timeout != 120*time.Second {
		t.Fatalf("unexpected search config: %+v", cfg.Search)
	}
	if cfg.Verification.Threshold != 0.7 || cfg.Verification.TopEvidence != 5 {
		t.Fatalf("unexpected verification config: %+v", cfg.Verification)
	}

	// Defaults survive when the file leaves keys unset.
	if cfg.Search.MaxResults != 10 {
		t.Fatalf("expected default max_results 10, got %d", cfg.Search.MaxResults)
	}
	if cfg.Verification.FetchTopResult {
		t.Fatalf("fetch_top_result should default to false")
	}
	if cfg.Providers.Gemini.Timeout != 120*time.Second {
		t.Fatalf("expected default gemini timeout, got %s", cfg.Providers.Gemini.Timeout)
	}
}

func TestLoadConfigRejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("verification:\n  threshold: 1.5\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range threshold")
		}
	}()
	LoadConfig(path)
}
