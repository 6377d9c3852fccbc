// Package pipeline orchestrates the note organization batch jobs.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lwhite702/klutr/internal/note"
	"github.com/lwhite702/klutr/internal/stack"
	"github.com/lwhite702/klutr/internal/user"
)

//go:generate mockgen -source=pipeline.go -destination=../mocks/pipeline/mock_pipeline.go -package=mock_pipeline

// defaultBatchSize caps how many pending notes are classified or embedded
// per user per pass. The nightly cadence catches up on any remainder.
const defaultBatchSize = 50

// Classifier assigns a type and tags to note content. It never fails.
type Classifier interface {
	Classify(ctx context.Context, content string) note.Classification
}

// Embedder produces an embedding vector for note content.
type Embedder interface {
	Embed(ctx context.Context, content string) ([]float64, error)
}

// ClusterEngine reassigns a user's notes to clusters.
type ClusterEngine interface {
	Cluster(ctx context.Context, userID string) error
}

// StackBuilder re-derives a user's stacks from cluster labels.
type StackBuilder interface {
	Build(ctx context.Context, userID string) ([]stack.Stack, error)
}

// InsightGenerator writes the weekly insight for a user.
type InsightGenerator interface {
	Generate(ctx context.Context, userID string, now time.Time) error
}

// Runner walks all users sequentially and keeps their notes organized.
// A failure inside one user's processing is logged and skipped so the
// remaining users still run; only a failure to list users aborts the batch.
type Runner struct {
	users      user.Repository
	notes      note.Repository
	classifier Classifier
	embedder   Embedder
	engine     ClusterEngine
	stacks     StackBuilder
	insights   InsightGenerator
	batchSize  int
	now        func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithBatchSize overrides the per-user classification/embedding batch cap.
func WithBatchSize(size int) RunnerOption {
	return func(r *Runner) {
		if size > 0 {
			r.batchSize = size
		}
	}
}

// NewRunner creates a new Runner.
func NewRunner(
	users user.Repository,
	notes note.Repository,
	classifier Classifier,
	embedder Embedder,
	engine ClusterEngine,
	stacks StackBuilder,
	insights InsightGenerator,
	opts ...RunnerOption,
) *Runner {
	r := &Runner{
		users:      users,
		notes:      notes,
		classifier: classifier,
		embedder:   embedder,
		engine:     engine,
		stacks:     stacks,
		insights:   insights,
		batchSize:  defaultBatchSize,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the nightly pass: classify, embed, cluster, and rebuild
// stacks for every user.
func (r *Runner) Run(ctx context.Context) error {
	userIDs, err := r.users.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("users.ListIDs() > %w", err)
	}

	for _, userID := range userIDs {
		if err := r.ProcessUser(ctx, userID); err != nil {
			slog.Default().Error("user pipeline failed, continuing with next user",
				"userID", userID,
				"error", err,
			)
		}
	}
	return nil
}

// RunWeekly executes the nightly pass plus the weekly insight for every user.
func (r *Runner) RunWeekly(ctx context.Context) error {
	userIDs, err := r.users.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("users.ListIDs() > %w", err)
	}

	now := r.now()
	for _, userID := range userIDs {
		if err := r.ProcessUser(ctx, userID); err != nil {
			slog.Default().Error("user pipeline failed, continuing with next user",
				"userID", userID,
				"error", err,
			)
			continue
		}
		if err := r.insights.Generate(ctx, userID, now); err != nil {
			slog.Default().Error("weekly insight failed, continuing with next user",
				"userID", userID,
				"error", err,
			)
		}
	}
	return nil
}

// ProcessUser runs the full organization sequence for one user.
func (r *Runner) ProcessUser(ctx context.Context, userID string) error {
	if err := r.classifyPending(ctx, userID); err != nil {
		return err
	}
	if err := r.embedPending(ctx, userID); err != nil {
		return err
	}
	if err := r.engine.Cluster(ctx, userID); err != nil {
		return fmt.Errorf("engine.Cluster() > %w", err)
	}
	if _, err := r.stacks.Build(ctx, userID); err != nil {
		return fmt.Errorf("stacks.Build() > %w", err)
	}
	return nil
}

// classifyPending classifies notes still typed unclassified. A provider
// failure persists the safe default, so every note gets exactly one write.
func (r *Runner) classifyPending(ctx context.Context, userID string) error {
	pending, err := r.notes.FindUnclassified(ctx, userID, r.batchSize)
	if err != nil {
		return fmt.Errorf("notes.FindUnclassified() > %w", err)
	}

	for _, n := range pending {
		classification := r.classifier.Classify(ctx, n.Content)
		if err := r.notes.UpdateClassification(ctx, userID, n.ID, classification); err != nil {
			return fmt.Errorf("notes.UpdateClassification() > %w", err)
		}
	}
	if len(pending) > 0 {
		slog.Default().Info("classified pending notes", "userID", userID, "count", len(pending))
	}
	return nil
}

// embedPending embeds notes that lack a vector, sequentially. An embedding
// failure aborts this user's pass: clustering without the vector would only
// churn assignments.
func (r *Runner) embedPending(ctx context.Context, userID string) error {
	pending, err := r.notes.FindWithoutEmbedding(ctx, userID, r.batchSize)
	if err != nil {
		return fmt.Errorf("notes.FindWithoutEmbedding() > %w", err)
	}

	for _, n := range pending {
		vector, err := r.embedder.Embed(ctx, n.Content)
		if err != nil {
			return fmt.Errorf("embedder.Embed(note %s) > %w", n.ID, err)
		}
		if err := r.notes.UpdateEmbedding(ctx, n.ID, vector); err != nil {
			return fmt.Errorf("notes.UpdateEmbedding() > %w", err)
		}
	}
	if len(pending) > 0 {
		slog.Default().Info("embedded pending notes", "userID", userID, "count", len(pending))
	}
	return nil
}
