package tutor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jarvis-tutor/jarvis/config"
	"github.com/jarvis-tutor/jarvis/internal/telemetry"
	"github.com/jarvis-tutor/jarvis/internal/verify"
	"github.com/jarvis-tutor/jarvis/news/newsapi"
	"github.com/jarvis-tutor/jarvis/provider"
	"github.com/jarvis-tutor/jarvis/tools/web_fetch"
	"github.com/jarvis-tutor/jarvis/tools/web_search"
)

// Orchestrator runs the per-request answer pipeline: generate, search,
// score, decide, annotate. It holds no per-request state.
type Orchestrator struct {
	cfg     *config.Config
	logger  *log.Logger
	llm     provider.Provider
	gateway SearchGateway
	fetcher web_fetch.WebFetcher // optional evidence enrichment, may be nil
}

// New wires an orchestrator from explicit capabilities. Tests substitute
// fakes here.
func New(cfg *config.Config, logger *log.Logger, llm provider.Provider, gateway SearchGateway, fetcher web_fetch.WebFetcher) *Orchestrator {
	return &Orchestrator{cfg: cfg, logger: logger, llm: llm, gateway: gateway, fetcher: fetcher}
}

// NewOrchestrator builds an orchestrator with real providers from config.
func NewOrchestrator(cfg *config.Config, logger *log.Logger) (*Orchestrator, error) {
	llm, err := provider.NewProvider(provider.Client(cfg.Providers.Default), cfg.Providers)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	apiKey := cfg.Search.SerperAPIKey
	if web_search.Provider(cfg.Search.Provider) == web_search.BraveProvider {
		apiKey = cfg.Search.BraveAPIKey
	}
	searcher, err := web_search.NewWebSearcher(web_search.Provider(cfg.Search.Provider), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create web searcher: %w", err)
	}

	gateway := &Gateway{
		Web:        searcher,
		News:       newsapi.NewsAPI{APIKey: cfg.Search.NewsAPI.APIKey, Endpoint: cfg.Search.NewsAPI.Endpoint},
		MaxResults: cfg.Search.MaxResults,
		Timeout:    cfg.Search.Timeout,
		Logger:     logger,
	}

	var fetcher web_fetch.WebFetcher
	if cfg.Verification.FetchTopResult {
		fetcher, err = web_fetch.NewWebFetcher(web_fetch.ChromedpFetcherType, cfg.Verification.FetchTimeout, cfg.Verification.FetchMaxChars)
		if err != nil {
			return nil, fmt.Errorf("failed to create web fetcher: %w", err)
		}
	}

	return New(cfg, logger, llm, gateway, fetcher), nil
}

// LLM exposes the orchestrator's underlying completion provider.
func (o *Orchestrator) LLM() provider.Provider {
	return o.llm
}

// Ask runs the full pipeline for one question. ErrInvalidInput and
// ErrGenerationFailed fail the request; search failures degrade instead.
func (o *Orchestrator) Ask(ctx context.Context, req AskRequest) (Outcome, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Outcome{}, ErrInvalidInput
	}
	category := req.Category
	if category == "" {
		category = CategoryNews
	}
	if category != CategoryNews && category != CategoryWeb {
		return Outcome{}, fmt.Errorf("%w: unsupported search category %q", ErrInvalidInput, category)
	}

	requestID := uuid.New().String()
	started := time.Now()
	o.logger.Printf("[%s] question received (web_search=%t)", requestID, req.EnableWebSearch)

	answer, err := o.llm.Complete(ctx, generalPersona.System, question)
	if err != nil {
		telemetry.AskRequests.WithLabelValues("failed").Inc()
		return Outcome{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if !req.EnableWebSearch {
		o.finish(requestID, started, OutcomePlain, verify.VerdictNotChecked)
		return Outcome{Kind: OutcomePlain, Answer: answer}, nil
	}

	results, err := o.gateway.Search(ctx, question, category)
	if err != nil {
		telemetry.SearchFailures.Inc()
		o.logger.Printf("[%s] search degraded: %v", requestID, err)
		o.finish(requestID, started, OutcomeDegraded, verify.VerdictNotChecked)
		return Outcome{
			Kind:    OutcomeDegraded,
			Answer:  answer,
			Warning: "live search was unavailable; the answer could not be verified",
		}, nil
	}
	if len(results.Items) == 0 {
		o.finish(requestID, started, OutcomeDegraded, verify.VerdictNotChecked)
		return Outcome{
			Kind:    OutcomeDegraded,
			Answer:  answer,
			Results: results,
			Warning: "search returned no results; the answer could not be verified",
		}, nil
	}

	evidence := o.buildEvidence(ctx, requestID, results)
	score := verify.Score(answer, evidence)
	decision := verify.Decide(score, o.cfg.Verification.Threshold)

	var snippets []string
	if decision.Verdict == verify.VerdictOutdated {
		snippets = topSnippets(results, o.cfg.Verification.TopEvidence)
	}
	annotated := verify.Annotate(answer, decision, snippets)

	o.finish(requestID, started, OutcomeVerified, decision.Verdict)
	return Outcome{Kind: OutcomeVerified, Answer: annotated, Results: results, Decision: &decision}, nil
}

// RouteAsk answers with the subject persona matching the question.
func (o *Orchestrator) RouteAsk(ctx context.Context, question string) (Persona, string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Persona{}, "", ErrInvalidInput
	}
	persona := RoutePersona(question)
	answer, err := o.llm.Complete(ctx, persona.System, question)
	if err != nil {
		return persona, "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return persona, answer, nil
}

// buildEvidence concatenates titles and snippets, optionally extended with
// readable text from the top-ranked page.
func (o *Orchestrator) buildEvidence(ctx context.Context, requestID string, rs *ResultSet) string {
	var sb strings.Builder
	for _, item := range rs.Items {
		sb.WriteString(item.Title)
		sb.WriteString(" ")
		sb.WriteString(item.Snippet)
		sb.WriteString(" ")
	}

	if o.fetcher != nil && len(rs.Items) > 0 && rs.Items[0].URL != "" {
		page, err := o.fetcher.Exec(ctx, rs.Items[0].URL)
		if err != nil {
			o.logger.Printf("[%s] evidence fetch skipped: %v", requestID, err)
		} else if page.Text != "" {
			sb.WriteString(page.Text)
		}
	}
	return sb.String()
}

func (o *Orchestrator) finish(requestID string, started time.Time, kind OutcomeKind, verdict verify.Verdict) {
	elapsed := time.Since(started)
	telemetry.AskRequests.WithLabelValues(string(kind)).Inc()
	telemetry.Verdicts.WithLabelValues(string(verdict)).Inc()
	telemetry.AskDuration.Observe(elapsed.Seconds())
	o.logger.Printf("[%s] finalized kind=%s verdict=%s in %s", requestID, kind, verdict, elapsed.Round(time.Millisecond))
}

func topSnippets(rs *ResultSet, k int) []string {
	if k <= 0 {
		k = 3
	}
	var out []string
	for _, item := range rs.Items {
		s := strings.TrimSpace(item.Snippet)
		if s == "" {
			s = strings.TrimSpace(item.Title)
		}
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == k {
			break
		}
	}
	return out
}
