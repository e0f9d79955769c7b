package tutor

import "testing"

func TestRoutePersona(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"How do I solve for x in this equation?", "math"},
		{"What is the derivative of sin(x)?", "math"},
		{"Why does my Python loop never terminate?", "code"},
		{"Explain this golang syntax error", "code"},
		{"Who wrote Hamlet?", "general"},
		{"", "general"},
	}
	for _, tc := range cases {
		if got := RoutePersona(tc.question); got.Name != tc.want {
			t.Fatalf("RoutePersona(%q) = %s, want %s", tc.question, got.Name, tc.want)
		}
	}
}
