package verify

import (
	"math"
	"strings"
	"unicode"
)

// stopwords are excluded from scoring so boilerplate words do not inflate
// overlap between unrelated texts.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {},
	"the": {}, "this": {}, "to": {}, "was": {}, "were": {}, "will": {},
	"with": {},
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []string
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		out = append(out, f)
	}
	return out
}

func termFreq(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	return tf
}

// Score computes the cosine similarity between the term-frequency vectors of
// the answer and the evidence text. It is deterministic, returns a value in
// [0,1], and returns exactly 0.0 when the evidence carries no tokens.
func Score(answer, evidence string) float64 {
	evTokens := tokenize(evidence)
	if len(evTokens) == 0 {
		return 0.0
	}
	ansTokens := tokenize(answer)
	if len(ansTokens) == 0 {
		return 0.0
	}

	a := termFreq(ansTokens)
	b := termFreq(evTokens)

	var dotProduct, normA, normB float64
	for term, fa := range a {
		normA += fa * fa
		if fb, ok := b[term]; ok {
			dotProduct += fa * fb
		}
	}
	for _, fb := range b {
		normB += fb * fb
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	score := dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
	// Guard against float drift past the boundaries.
	return math.Min(1.0, math.Max(0.0, score))
}
