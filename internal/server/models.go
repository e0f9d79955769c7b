package server

import (
	"github.com/jarvis-tutor/jarvis/internal/tutor"
)

type askRequest struct {
	Question        string `json:"question"`
	EnableWebSearch bool   `json:"enableWebSearch"`
	Category        string `json:"category,omitempty"` // news (default) or web
}

type resultSetPayload struct {
	TotalResults int          `json:"total_results"`
	Items        []tutor.Item `json:"items"`
}

type semanticVerification struct {
	SimilarityScore float64 `json:"similarity_score"`
	IsVerified      bool    `json:"is_verified"`
	Verdict         string  `json:"verdict"`
	Threshold       float64 `json:"threshold"`
}

type askResponse struct {
	Answer               string                      `json:"answer"`
	VerificationUsed     bool                        `json:"verificationUsed"`
	SearchResults        map[string]resultSetPayload `json:"searchResults,omitempty"`
	SemanticVerification *semanticVerification       `json:"semanticVerification,omitempty"`
	Warning              string                      `json:"warning,omitempty"`
}

type agentRequest struct {
	Question string `json:"question"`
}

type agentResponse struct {
	Agent  string `json:"agent"`
	Answer string `json:"answer"`
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

type imageResponse struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// toAskResponse flattens the tagged outcome into the wire shape.
func toAskResponse(out tutor.Outcome) askResponse {
	resp := askResponse{
		Answer:           out.Answer,
		VerificationUsed: out.VerificationUsed(),
		Warning:          out.Warning,
	}
	if out.Results != nil {
		resp.SearchResults = map[string]resultSetPayload{
			string(out.Results.Category): {
				TotalResults: out.Results.TotalResults,
				Items:        out.Results.Items,
			},
		}
	}
	if out.Decision != nil {
		resp.SemanticVerification = &semanticVerification{
			SimilarityScore: out.Decision.Score,
			IsVerified:      out.Decision.IsVerified(),
			Verdict:         string(out.Decision.Verdict),
			Threshold:       out.Decision.Threshold,
		}
	}
	return resp
}
