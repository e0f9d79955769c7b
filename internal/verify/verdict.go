package verify

import (
	"fmt"
	"strings"
)

// Verdict is the outcome of checking a generated answer against live search
// evidence.
type Verdict string

const (
	VerdictVerified   Verdict = "verified"
	VerdictOutdated   Verdict = "outdated"
	VerdictNotChecked Verdict = "not_checked"
)

// DefaultThreshold is the similarity score at or above which an answer is
// considered verified.
const DefaultThreshold = 0.6

const (
	VerifiedBanner = "[Verified with Live Data]"
	OutdatedBanner = "[Potentially Outdated - cross-check with recent sources]"
)

// Decision is the result of applying a threshold to a similarity score.
type Decision struct {
	Score     float64
	Threshold float64
	Verdict   Verdict
}

func (d Decision) IsVerified() bool { return d.Verdict == VerdictVerified }

// Decide maps a similarity score to a verdict. A score equal to the threshold
// counts as verified. A non-positive threshold falls back to DefaultThreshold.
func Decide(score, threshold float64) Decision {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	verdict := VerdictOutdated
	if score >= threshold {
		verdict = VerdictVerified
	}
	return Decision{Score: score, Threshold: threshold, Verdict: verdict}
}

// Annotate prepends the banner matching the decision. For outdated answers the
// top evidence snippets are appended as supplementary context. Unchecked
// answers pass through untouched.
func Annotate(answer string, d Decision, snippets []string) string {
	switch d.Verdict {
	case VerdictVerified:
		return fmt.Sprintf("%s\n\n%s", VerifiedBanner, answer)
	case VerdictOutdated:
		var sb strings.Builder
		sb.WriteString(OutdatedBanner)
		sb.WriteString("\n\n")
		sb.WriteString(answer)
		if len(snippets) > 0 {
			sb.WriteString("\n\nLatest from the web:")
			for _, s := range snippets {
				s = strings.TrimSpace(s)
				if s == "" {
					continue
				}
				sb.WriteString("\n- ")
				sb.WriteString(s)
			}
		}
		return sb.String()
	default:
		return answer
	}
}
