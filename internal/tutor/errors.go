package tutor

import "errors"

var (
	// ErrInvalidInput rejects a request before any outbound call is made.
	ErrInvalidInput = errors.New("question must not be empty")

	// ErrGenerationFailed means the completion provider failed; the request
	// cannot be answered.
	ErrGenerationFailed = errors.New("answer generation failed")

	// ErrSearchUnavailable means the search provider failed or timed out.
	// Callers treat it as zero results, never as a request failure.
	ErrSearchUnavailable = errors.New("search unavailable")
)
