package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	Classify(ctx context.Context, params ClassifyRequest) (ClassifyResponse, error)
	Embed(ctx context.Context, params EmbedRequest) (EmbedResponse, error)
	Summarize(ctx context.Context, params SummarizeRequest) (SummarizeResponse, error)
	AnalyzeWeek(ctx context.Context, params AnalyzeWeekRequest) (AnalyzeWeekResponse, error)
}

// ClassifyRequest holds the note content to classify
type ClassifyRequest struct {
	Content string `json:"content"`
}

// ClassifyResponse holds the predicted note type and tag suggestions.
// Type is a free string here; callers coerce it into the closed note type set.
type ClassifyResponse struct {
	Type string   `json:"type"`
	Tags []string `json:"tags"`
}

// EmbedRequest holds the note content to embed
type EmbedRequest struct {
	Content string `json:"content"`
}

// EmbedResponse holds a dense embedding vector
type EmbedResponse struct {
	Vector []float64 `json:"vector"`
}

// SummarizeRequest holds a digest of note excerpts to summarize
type SummarizeRequest struct {
	Digest string `json:"digest"`
}

// SummarizeResponse holds a short free-text summary
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// AnalyzeWeekRequest holds a digest of one week of note activity
type AnalyzeWeekRequest struct {
	Digest string `json:"digest"`
}

// AnalyzeWeekResponse holds a narrative summary plus a coarse sentiment label
type AnalyzeWeekResponse struct {
	Summary   string `json:"summary"`
	Sentiment string `json:"sentiment"`
}
