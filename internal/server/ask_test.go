package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jarvis-tutor/jarvis/internal/tutor"
	"github.com/jarvis-tutor/jarvis/internal/verify"
)

type fakeAsker struct {
	out          tutor.Outcome
	err          error
	routePersona tutor.Persona
	routeAnswer  string
	routeErr     error
}

func (f *fakeAsker) Ask(ctx context.Context, req tutor.AskRequest) (tutor.Outcome, error) {
	if f.err != nil {
		return tutor.Outcome{}, f.err
	}
	return f.out, nil
}

func (f *fakeAsker) RouteAsk(ctx context.Context, question string) (tutor.Persona, string, error) {
	if f.routeErr != nil {
		return tutor.Persona{}, "", f.routeErr
	}
	return f.routePersona, f.routeAnswer, nil
}

func postJSON(t *testing.T, handler func(echo.Context) error, path, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	return rec, handler(ctx)
}

func TestAskEmptyQuestionReturns400(t *testing.T) {
	h := &AskHandler{Orch: &fakeAsker{err: tutor.ErrInvalidInput}}
	_, err := postJSON(t, h.ask, "/api/ask", `{"question":"","enableWebSearch":true}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %#v", err)
	}
}

func TestAskGenerationFailureReturns502(t *testing.T) {
	h := &AskHandler{Orch: &fakeAsker{err: tutor.ErrGenerationFailed}}
	_, err := postJSON(t, h.ask, "/api/ask", `{"question":"why?"}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 error, got %#v", err)
	}
}

func TestAskPlainResponseOmitsVerificationFields(t *testing.T) {
	h := &AskHandler{Orch: &fakeAsker{out: tutor.Outcome{Kind: tutor.OutcomePlain, Answer: "blue light scatters"}}}
	rec, err := postJSON(t, h.ask, "/api/ask", `{"question":"why is the sky blue?","enableWebSearch":false}`)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["answer"] != "blue light scatters" {
		t.Fatalf("unexpected answer: %v", body["answer"])
	}
	if body["verificationUsed"] != false {
		t.Fatalf("verificationUsed must be false, got %v", body["verificationUsed"])
	}
	if _, present := body["semanticVerification"]; present {
		t.Fatalf("semanticVerification must be omitted, got %v", body["semanticVerification"])
	}
	if _, present := body["searchResults"]; present {
		t.Fatalf("searchResults must be omitted, got %v", body["searchResults"])
	}
}

func TestAskDegradedResponseStillSucceeds(t *testing.T) {
	h := &AskHandler{Orch: &fakeAsker{out: tutor.Outcome{
		Kind:    tutor.OutcomeDegraded,
		Answer:  "best-effort answer",
		Warning: "live search was unavailable; the answer could not be verified",
	}}}
	rec, err := postJSON(t, h.ask, "/api/ask", `{"question":"latest AI rules?","enableWebSearch":true}`)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("degraded response must stay 200, got %d", rec.Code)
	}

	var resp askResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.VerificationUsed {
		t.Fatalf("verificationUsed must be false on degradation")
	}
	if resp.Answer != "best-effort answer" || resp.Warning == "" {
		t.Fatalf("unexpected degraded body: %+v", resp)
	}
	if resp.SemanticVerification != nil {
		t.Fatalf("degraded response must omit semanticVerification")
	}
}

func TestAskVerifiedResponseBody(t *testing.T) {
	decision := verify.Decide(0.82, 0.6)
	h := &AskHandler{Orch: &fakeAsker{out: tutor.Outcome{
		Kind:   tutor.OutcomeVerified,
		Answer: verify.VerifiedBanner + "\n\nannotated answer",
		Results: &tutor.ResultSet{
			Category:     tutor.CategoryNews,
			TotalResults: 12,
			Items:        []tutor.Item{{Title: "t", Snippet: "s", URL: "https://example.com"}},
		},
		Decision: &decision,
	}}}
	rec, err := postJSON(t, h.ask, "/api/ask", `{"question":"latest AI rules?","enableWebSearch":true}`)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	var resp askResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.VerificationUsed {
		t.Fatalf("verificationUsed must be true")
	}
	sv := resp.SemanticVerification
	if sv == nil {
		t.Fatalf("expected semanticVerification")
	}
	if sv.Verdict != "verified" || !sv.IsVerified || sv.SimilarityScore != 0.82 || sv.Threshold != 0.6 {
		t.Fatalf("unexpected semanticVerification: %+v", sv)
	}
	news, ok := resp.SearchResults["news"]
	if !ok || news.TotalResults != 12 || len(news.Items) != 1 {
		t.Fatalf("unexpected searchResults: %+v", resp.SearchResults)
	}
	if !strings.Contains(resp.Answer, verify.VerifiedBanner) {
		t.Fatalf("expected banner in answer, got %q", resp.Answer)
	}
}

func TestAgentRoutesQuestion(t *testing.T) {
	h := &AskHandler{Orch: &fakeAsker{
		routePersona: tutor.Persona{Name: "math"},
		routeAnswer:  "step one: isolate x",
	}}
	rec, err := postJSON(t, h.agent, "/api/agent", `{"question":"solve for x"}`)
	if err != nil {
		t.Fatalf("agent: %v", err)
	}
	var resp agentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Agent != "math" || resp.Answer != "step one: isolate x" {
		t.Fatalf("unexpected agent response: %+v", resp)
	}
}
