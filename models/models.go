package models

// ImageResult is a generated image returned by a provider.
type ImageResult struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded image bytes
}
