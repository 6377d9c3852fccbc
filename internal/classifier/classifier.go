// Package classifier assigns a type label and tags to raw note content.
package classifier

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/lwhite702/klutr/internal/inference"
	"github.com/lwhite702/klutr/internal/note"
)

const (
	// maxContentLength bounds the prefix submitted to the model.
	maxContentLength = 2000

	maxTags      = 5
	maxTagLength = 32

	// Classification is best-effort metadata, so it gets a single cheap
	// retry with a fixed delay before falling back.
	maxAttempts = 2
	retryDelay  = time.Second
)

// Classifier classifies note content via an inference client.
type Classifier struct {
	inference  inference.Client
	retryDelay time.Duration
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRetryDelay overrides the fixed delay between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Classifier) {
		c.retryDelay = d
	}
}

// New creates a new Classifier.
func New(client inference.Client, opts ...Option) *Classifier {
	c := &Classifier{
		inference:  client,
		retryDelay: retryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns a type label and tag set for the given content. It never
// fails: any provider error falls back to unclassified with no tags, because
// classification must not block note processing.
func (c *Classifier) Classify(ctx context.Context, content string) note.Classification {
	var response inference.ClassifyResponse
	err := retry.Do(
		func() error {
			resp, err := c.inference.Classify(ctx, inference.ClassifyRequest{
				Content: truncate(content, maxContentLength),
			})
			if err != nil {
				if !inference.IsRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			response = resp
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		slog.Default().Warn("classification failed, falling back to unclassified",
			"error", err,
		)
		return note.Classification{Type: note.TypeUnclassified, Tags: []string{}}
	}

	return note.Classification{
		Type: note.ParseType(response.Type),
		Tags: normalizeTags(response.Tags),
	}
}

// normalizeTags lowercases tags and drops empty, oversized, and duplicate
// entries. Malformed tags are dropped, not errored.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, maxTags)
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || len(tag) > maxTagLength {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
		if len(normalized) == maxTags {
			break
		}
	}
	return normalized
}

func truncate(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit])
}
