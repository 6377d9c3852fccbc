package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/lwhite702/klutr/internal/inference"
	"github.com/lwhite702/klutr/internal/note"
)

const (
	// sampleSize caps the most-recent notes fed into the weekly digest.
	sampleSize = 50

	// excerptLength bounds each note excerpt within the digest.
	excerptLength = 200

	analyzeAttempts = 3
)

// Generator produces one narrative insight per user per ISO week.
type Generator struct {
	notes     note.Repository
	insights  Repository
	inference inference.Client
	retryOpts []retry.Option
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRetryOptions appends retry options, used by tests to drop delays.
func WithRetryOptions(opts ...retry.Option) GeneratorOption {
	return func(g *Generator) {
		g.retryOpts = append(g.retryOpts, opts...)
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(notes note.Repository, insights Repository, client inference.Client, opts ...GeneratorOption) *Generator {
	g := &Generator{
		notes:     notes,
		insights:  insights,
		inference: client,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate upserts the insight for the week containing now. A week with no
// notes produces no row at all. Unlike classification, a provider failure
// here surfaces as an error: an insight is either correct or absent, never a
// guessed placeholder.
func (g *Generator) Generate(ctx context.Context, userID string, now time.Time) error {
	weekStart := WeekStart(now)
	notes, err := g.notes.FindCreatedBetween(ctx, userID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return fmt.Errorf("notes.FindCreatedBetween() > %w", err)
	}
	if len(notes) == 0 {
		slog.Default().Info("no notes this week, skipping insight",
			"userID", userID,
			"weekStart", weekStart,
		)
		return nil
	}

	sample := notes
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	var response inference.AnalyzeWeekResponse
	if err := retry.Do(
		func() error {
			resp, err := g.inference.AnalyzeWeek(ctx, inference.AnalyzeWeekRequest{
				Digest: buildDigest(weekStart, len(notes), sample),
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
		append([]retry.Option{
			retry.Context(ctx),
			retry.Attempts(analyzeAttempts),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
		}, g.retryOpts...)...,
	); err != nil {
		return fmt.Errorf("inference.AnalyzeWeek() > %w", err)
	}

	if err := g.insights.Upsert(ctx, userID, weekStart,
		response.Summary, parseSentiment(response.Sentiment), len(notes)); err != nil {
		return fmt.Errorf("insights.Upsert() > %w", err)
	}
	slog.Default().Info("weekly insight updated",
		"userID", userID,
		"weekStart", weekStart,
		"noteCount", len(notes),
	)
	return nil
}

// buildDigest condenses one week of notes into a prompt-sized digest.
func buildDigest(weekStart time.Time, total int, sample []note.Note) string {
	var digest strings.Builder
	fmt.Fprintf(&digest, "Week of %s: %d notes\n\n", weekStart.Format("2006-01-02"), total)
	for _, n := range sample {
		fmt.Fprintf(&digest, "- [%s] %s\n", n.Type, excerpt(n.Content))
	}
	return digest.String()
}

// parseSentiment coerces a raw sentiment label into the known set,
// defaulting to neutral.
func parseSentiment(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	}
	return SentimentNeutral
}

func excerpt(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}
