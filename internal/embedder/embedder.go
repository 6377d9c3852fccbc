// Package embedder produces dense vectors for note content.
package embedder

import (
	"context"
	"fmt"

	"github.com/avast/retry-go"

	"github.com/lwhite702/klutr/internal/inference"
)

const (
	// maxContentLength bounds the prefix submitted to the embedding model.
	// Larger than the classifier's since embeddings tolerate longer context.
	maxContentLength = 8000

	// Embeddings are load-bearing for clustering, so they get more attempts
	// with exponential backoff before the error surfaces.
	maxAttempts = 3
)

// Embedder embeds note content via an inference client.
type Embedder struct {
	inference inference.Client
	opts      []retry.Option
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithRetryOptions appends retry options, used by tests to drop delays.
func WithRetryOptions(opts ...retry.Option) Option {
	return func(e *Embedder) {
		e.opts = append(e.opts, opts...)
	}
}

// New creates a new Embedder.
func New(client inference.Client, opts ...Option) *Embedder {
	e := &Embedder{inference: client}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Embed returns an embedding vector for the given content. Unlike
// classification, a final failure here surfaces as an error: clustering
// cannot proceed without the vector. Re-embedding identical content is safe.
func (e *Embedder) Embed(ctx context.Context, content string) ([]float64, error) {
	var vector []float64
	opts := append([]retry.Option{
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	}, e.opts...)

	if err := retry.Do(
		func() error {
			response, err := e.inference.Embed(ctx, inference.EmbedRequest{
				Content: truncate(content, maxContentLength),
			})
			if err != nil {
				if !inference.IsRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			vector = response.Vector
			return nil
		},
		opts...,
	); err != nil {
		return nil, fmt.Errorf("inference.Embed() > %w", err)
	}
	return vector, nil
}

func truncate(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit])
}
