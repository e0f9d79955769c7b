package tutor

import "strings"

// Persona is a subject-specific tutoring agent.
type Persona struct {
	Name   string
	System string
}

var (
	mathPersona = Persona{
		Name: "math",
		System: "You are JARVIS, a patient math tutor. Work through problems step by step, " +
			"show intermediate results, and point out common mistakes. Never skip algebra steps.",
	}
	codePersona = Persona{
		Name: "code",
		System: "You are JARVIS, a programming tutor. Explain concepts with short runnable " +
			"examples, name the language explicitly, and prefer idiomatic solutions over clever ones.",
	}
	generalPersona = Persona{
		Name: "general",
		System: "You are JARVIS, a friendly tutor. Give clear, accurate explanations at the " +
			"student's level and suggest one follow-up question to deepen understanding.",
	}
)

var mathKeywords = []string{
	"equation", "integral", "derivative", "algebra", "geometry", "calculus",
	"matrix", "probability", "theorem", "solve for", "fraction", "polynomial",
}

var codeKeywords = []string{
	"code", "function", "compile", "bug", "python", "javascript", "golang",
	"java", "algorithm", "api", "loop", "array", "variable", "syntax",
}

// RoutePersona picks the subject persona whose keywords match the question,
// falling back to the general tutor.
func RoutePersona(question string) Persona {
	q := strings.ToLower(question)
	for _, kw := range mathKeywords {
		if strings.Contains(q, kw) {
			return mathPersona
		}
	}
	for _, kw := range codeKeywords {
		if strings.Contains(q, kw) {
			return codePersona
		}
	}
	return generalPersona
}
