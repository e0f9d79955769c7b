package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDiscoverCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-KEY"); got != "test-key" {
			t.Errorf("unexpected api key %q", got)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["q"] != "ai regulations" {
			t.Errorf("unexpected q %v", payload["q"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic":[
			{"title":"first","link":"https://a","snippet":"s1","date":"2026-01-01"},
			{"title":"second","link":"https://b","snippet":"s2"},
			{"title":"third","link":"https://c","snippet":"s3"}
		]}`))
	}))
	defer srv.Close()

	s := Search{ApiKey: "test-key", Endpoint: srv.URL}
	results, total, err := s.Discover(context.Background(), "ai regulations", 2)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(results) != 2 || total != 2 {
		t.Fatalf("expected 2 results capped at k, got %d (total %d)", len(results), total)
	}
	if results[0].Title != "first" || results[0].URL != "https://a" || results[0].PublishedAt != "2026-01-01" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
}

func TestDiscoverNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	s := Search{ApiKey: "bad-key", Endpoint: srv.URL}
	if _, _, err := s.Discover(context.Background(), "anything", 5); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}
