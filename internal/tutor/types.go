package tutor

import (
	"github.com/jarvis-tutor/jarvis/internal/verify"
)

// Category selects which kind of search evidence backs verification.
type Category string

const (
	CategoryNews Category = "news"
	CategoryWeb  Category = "web"
)

// Item is one piece of retrieved evidence.
type Item struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at,omitempty"`
}

// ResultSet is the ranked evidence returned for one request. It lives only
// for the scope of that request.
type ResultSet struct {
	Category     Category `json:"category"`
	TotalResults int      `json:"total_results"`
	Items        []Item   `json:"items"`
}

// AskRequest is a single tutoring question.
type AskRequest struct {
	Question        string
	EnableWebSearch bool
	Category        Category // defaults to news
}

// OutcomeKind tags the final state of a request so illegal field
// combinations are unrepresentable.
type OutcomeKind string

const (
	// OutcomePlain: web search was not requested; answer is unannotated.
	OutcomePlain OutcomeKind = "plain"
	// OutcomeVerified: verification ran; Decision and Results are set.
	OutcomeVerified OutcomeKind = "verified"
	// OutcomeDegraded: search failed or returned nothing; answer is usable
	// but unverified, Warning says why.
	OutcomeDegraded OutcomeKind = "degraded"
)

// Outcome is the finalized result of one ask.
type Outcome struct {
	Kind     OutcomeKind
	Answer   string
	Results  *ResultSet
	Decision *verify.Decision
	Warning  string
}

// VerificationUsed reports whether the answer was checked against evidence.
func (o Outcome) VerificationUsed() bool { return o.Kind == OutcomeVerified }

// Verdict returns the verification verdict for this outcome.
func (o Outcome) Verdict() verify.Verdict {
	if o.Decision == nil {
		return verify.VerdictNotChecked
	}
	return o.Decision.Verdict
}
