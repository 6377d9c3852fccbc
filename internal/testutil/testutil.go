// Package testutil provides shared test fixtures for notes.
package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lwhite702/klutr/internal/note"
)

// NoteOption configures a note fixture.
type NoteOption func(*note.Note)

// WithType sets the note's type.
func WithType(t note.Type) NoteOption {
	return func(n *note.Note) {
		n.Type = t
	}
}

// WithContent sets the note's content.
func WithContent(content string) NoteOption {
	return func(n *note.Note) {
		n.Content = content
	}
}

// WithCreatedAt sets the note's creation time.
func WithCreatedAt(createdAt time.Time) NoteOption {
	return func(n *note.Note) {
		n.CreatedAt = createdAt
	}
}

// WithCluster sets the note's cluster assignment.
func WithCluster(label string, confidence float64, clusteredAt time.Time) NoteOption {
	return func(n *note.Note) {
		n.Cluster = sql.NullString{String: label, Valid: true}
		n.ClusterConfidence = sql.NullFloat64{Float64: confidence, Valid: true}
		n.ClusteredAt = sql.NullTime{Time: clusteredAt, Valid: true}
	}
}

// WithArchived marks the note archived.
func WithArchived() NoteOption {
	return func(n *note.Note) {
		n.Archived = true
	}
}

// NewNote creates a note fixture with sensible defaults.
func NewNote(t *testing.T, id, userID string, opts ...NoteOption) note.Note {
	t.Helper()

	n := note.Note{
		ID:        id,
		UserID:    userID,
		Content:   "note " + id,
		Type:      note.TypeUnclassified,
		CreatedAt: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// NewEmbeddedNote creates a note fixture carrying an embedding vector.
func NewEmbeddedNote(t *testing.T, id, userID string, vector []float64, opts ...NoteOption) note.Note {
	t.Helper()

	n := NewNote(t, id, userID, opts...)
	encoded, err := note.EncodeVector(vector)
	require.NoError(t, err)
	n.Embedding = sql.NullString{String: encoded, Valid: true}
	return n
}
