package stack

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/avast/retry-go"

	"github.com/lwhite702/klutr/internal/inference"
	"github.com/lwhite702/klutr/internal/note"
)

const (
	// minClusterSize is the smallest cluster promoted to a stack.
	// Single-note stacks add noise, not organization.
	minClusterSize = 2

	// sampleSize caps the most-recent notes fed to the summarizer.
	sampleSize = 5

	// excerptLength bounds each note excerpt within the digest.
	excerptLength = 200

	summarizeAttempts = 3
)

// Builder derives stacks from a user's clustered notes.
type Builder struct {
	notes     note.Repository
	stacks    Repository
	inference inference.Client
	retryOpts []retry.Option
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithRetryOptions appends retry options, used by tests to drop delays.
func WithRetryOptions(opts ...retry.Option) BuilderOption {
	return func(b *Builder) {
		b.retryOpts = append(b.retryOpts, opts...)
	}
}

// NewBuilder creates a new Builder.
func NewBuilder(notes note.Repository, stacks Repository, client inference.Client, opts ...BuilderOption) *Builder {
	b := &Builder{
		notes:     notes,
		stacks:    stacks,
		inference: client,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build groups the user's clustered notes by label and upserts one stack per
// cluster holding at least minClusterSize notes. A summarization failure for
// one cluster falls back to a default summary and never blocks the others.
func (b *Builder) Build(ctx context.Context, userID string) ([]Stack, error) {
	notes, err := b.notes.FindClustered(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notes.FindClustered() > %w", err)
	}

	groups := groupByCluster(notes)
	built := make([]Stack, 0, len(groups))
	for _, group := range groups {
		if len(group.notes) < minClusterSize {
			continue
		}

		summary := b.summarize(ctx, group.label, group.notes)
		if err := b.stacks.Upsert(ctx, userID, group.label, len(group.notes), summary); err != nil {
			return nil, fmt.Errorf("stacks.Upsert(%s) > %w", group.label, err)
		}
		slog.Default().Debug("stack updated",
			"userID", userID,
			"cluster", group.label,
			"noteCount", len(group.notes),
		)
		built = append(built, Stack{
			UserID:    userID,
			Cluster:   group.label,
			Name:      group.label,
			NoteCount: len(group.notes),
			Summary:   summary,
		})
	}
	return built, nil
}

type clusterGroup struct {
	label string
	notes []note.Note
}

// groupByCluster buckets notes by label and orders the groups by descending
// note count. Notes within a group keep their repository order (newest first).
func groupByCluster(notes []note.Note) []clusterGroup {
	byLabel := make(map[string][]note.Note)
	for _, n := range notes {
		if !n.Cluster.Valid || n.Cluster.String == "" {
			continue
		}
		byLabel[n.Cluster.String] = append(byLabel[n.Cluster.String], n)
	}

	groups := make([]clusterGroup, 0, len(byLabel))
	for label, members := range byLabel {
		groups = append(groups, clusterGroup{label: label, notes: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].notes) != len(groups[j].notes) {
			return len(groups[i].notes) > len(groups[j].notes)
		}
		return groups[i].label < groups[j].label
	})
	return groups
}

// summarize asks the model for a one-line summary of the cluster's most
// recent notes, falling back to a generic summary on failure.
func (b *Builder) summarize(ctx context.Context, label string, notes []note.Note) string {
	sample := notes
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	var digest strings.Builder
	fmt.Fprintf(&digest, "Cluster: %s\n\n", label)
	for _, n := range sample {
		fmt.Fprintf(&digest, "- %s\n", excerpt(n.Content))
	}

	var response inference.SummarizeResponse
	err := retry.Do(
		func() error {
			resp, err := b.inference.Summarize(ctx, inference.SummarizeRequest{Digest: digest.String()})
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
			retry.Attempts(summarizeAttempts),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
		}, b.retryOpts...)...,
	)
	if err != nil || response.Summary == "" {
		slog.Default().Warn("stack summarization failed, using fallback summary",
			"cluster", label,
			"error", err,
		)
		return fmt.Sprintf("Collection of %s notes", label)
	}
	return response.Summary
}

func excerpt(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}
