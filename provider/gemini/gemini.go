package gemini_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jarvis-tutor/jarvis/models"
)

const (
	geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models"
)

// client implements the provider interface using Google's Gemini API
type client struct {
	apiKey          string
	completionModel string
	imageModel      string
	temperature     float64
	maxTokens       int
	httpClient      *http.Client
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Role  string        `json:"role,omitempty"`
	Parts []contentPart `json:"parts"`
}

// generateRequest represents a generateContent request to the Gemini API
type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
	GenerationConfig  struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	} `json:"generationConfig"`
}

// generateResponse represents a generateContent response from the Gemini API
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(apiKey, completionModel, imageModel string, temperature float64, maxTokens int, timeout time.Duration) *client {
	return &client{
		apiKey:          apiKey,
		completionModel: completionModel,
		imageModel:      imageModel,
		temperature:     temperature,
		maxTokens:       maxTokens,
		httpClient:      &http.Client{Timeout: timeout},
	}
}

// Complete sends a single-turn completion request and returns the model's text.
func (c *client) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []contentPart{{Text: user}}}},
	}
	if system != "" {
		reqBody.SystemInstruction = &content{Parts: []contentPart{{Text: system}}}
	}
	reqBody.GenerationConfig.Temperature = c.temperature
	reqBody.GenerationConfig.MaxOutputTokens = c.maxTokens

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiAPIBase, c.completionModel, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned status: %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty completion")
	}
	return text, nil
}

// GenerateImage calls the Imagen predict endpoint for the configured image model.
func (c *client) GenerateImage(ctx context.Context, prompt string) (models.ImageResult, error) {
	requestBody := map[string]interface{}{
		"instances":  []map[string]string{{"prompt": prompt}},
		"parameters": map[string]int{"sampleCount": 1},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return models.ImageResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:predict?key=%s", geminiAPIBase, c.imageModel, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return models.ImageResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ImageResult{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ImageResult{}, fmt.Errorf("gemini API returned status: %d", resp.StatusCode)
	}

	var predResp struct {
		Predictions []struct {
			MimeType           string `json:"mimeType"`
			BytesBase64Encoded string `json:"bytesBase64Encoded"`
		} `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&predResp); err != nil {
		return models.ImageResult{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(predResp.Predictions) == 0 {
		return models.ImageResult{}, fmt.Errorf("gemini returned no predictions")
	}

	p := predResp.Predictions[0]
	mime := p.MimeType
	if mime == "" {
		mime = "image/png"
	}
	return models.ImageResult{MimeType: mime, Data: p.BytesBase64Encoded}, nil
}
