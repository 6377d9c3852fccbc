package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/note/mock_repository.go -package=mock_note

// Repository defines operations for managing notes and their tags.
type Repository interface {
	Create(ctx context.Context, note *Note) error
	FindByID(ctx context.Context, id string) (*Note, error)
	FindUnclassified(ctx context.Context, userID string, limit int) ([]Note, error)
	FindWithoutEmbedding(ctx context.Context, userID string, limit int) ([]Note, error)
	FindEmbedded(ctx context.Context, userID string) ([]Note, error)
	FindClustered(ctx context.Context, userID string) ([]Note, error)
	FindCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]Note, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	UpdateClassification(ctx context.Context, userID, noteID string, classification Classification) error
	UpdateEmbedding(ctx context.Context, noteID string, vector []float64) error
	UpdateCluster(ctx context.Context, noteID, cluster string, confidence float64, clusteredAt time.Time) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts a note.
func (r *DBRepository) Create(ctx context.Context, note *Note) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO notes (id, user_id, content, type, archived) VALUES (?, ?, ?, ?, ?)",
		note.ID, note.UserID, note.Content, note.Type, note.Archived)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert note) > %w", err)
	}
	return nil
}

// FindByID returns a note by ID, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id string) (*Note, error) {
	var n Note
	err := r.db.GetContext(ctx, &n, "SELECT * FROM notes WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(note) > %w", err)
	}
	return &n, nil
}

// FindUnclassified returns non-archived notes still typed "unclassified",
// oldest first, capped at limit.
func (r *DBRepository) FindUnclassified(ctx context.Context, userID string, limit int) ([]Note, error) {
	var notes []Note
	err := r.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE user_id = ? AND type = ? AND archived = FALSE ORDER BY created_at LIMIT ?",
		userID, TypeUnclassified, limit)
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(unclassified notes) > %w", err)
	}
	return notes, nil
}

// FindWithoutEmbedding returns non-archived notes lacking an embedding,
// oldest first, capped at limit.
func (r *DBRepository) FindWithoutEmbedding(ctx context.Context, userID string, limit int) ([]Note, error) {
	var notes []Note
	err := r.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE user_id = ? AND embedding IS NULL AND archived = FALSE ORDER BY created_at LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(notes without embedding) > %w", err)
	}
	return notes, nil
}

// FindEmbedded returns all non-archived notes that have an embedding.
func (r *DBRepository) FindEmbedded(ctx context.Context, userID string) ([]Note, error) {
	var notes []Note
	err := r.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE user_id = ? AND embedding IS NOT NULL AND archived = FALSE ORDER BY created_at",
		userID)
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(embedded notes) > %w", err)
	}
	return notes, nil
}

// FindClustered returns all non-archived notes carrying a cluster label.
func (r *DBRepository) FindClustered(ctx context.Context, userID string) ([]Note, error) {
	var notes []Note
	err := r.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE user_id = ? AND cluster IS NOT NULL AND archived = FALSE ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(clustered notes) > %w", err)
	}
	return notes, nil
}

// FindCreatedBetween returns non-archived notes created within [from, to),
// newest first.
func (r *DBRepository) FindCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]Note, error) {
	var notes []Note
	err := r.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE user_id = ? AND archived = FALSE AND created_at >= ? AND created_at < ? ORDER BY created_at DESC",
		userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(notes created between) > %w", err)
	}
	return notes, nil
}

// CountByUser returns the total non-archived note count for a user.
func (r *DBRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM notes WHERE user_id = ? AND archived = FALSE", userID)
	if err != nil {
		return 0, fmt.Errorf("db.GetContext(note count) > %w", err)
	}
	return count, nil
}

// UpdateClassification sets the note's type and replaces its tag links.
// Tags are upserted by (user_id, name) so they are created lazily on first use.
func (r *DBRepository) UpdateClassification(ctx context.Context, userID, noteID string, classification Classification) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE notes SET type = ? WHERE id = ?",
		classification.Type, noteID); err != nil {
		return fmt.Errorf("tx.ExecContext(update note type) > %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM note_tags WHERE note_id = ?", noteID); err != nil {
		return fmt.Errorf("tx.ExecContext(delete note_tags) > %w", err)
	}

	for _, name := range classification.Tags {
		result, err := tx.ExecContext(ctx,
			"INSERT INTO tags (user_id, name) VALUES (?, ?) ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)",
			userID, name)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(upsert tag) > %w", err)
		}
		tagID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("result.LastInsertId() > %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO note_tags (note_id, tag_id) VALUES (?, ?)",
			noteID, tagID); err != nil {
			return fmt.Errorf("tx.ExecContext(insert note_tag) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// UpdateEmbedding stores a note's embedding vector.
func (r *DBRepository) UpdateEmbedding(ctx context.Context, noteID string, vector []float64) error {
	encoded, err := EncodeVector(vector)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx,
		"UPDATE notes SET embedding = ? WHERE id = ?", encoded, noteID); err != nil {
		return fmt.Errorf("db.ExecContext(update embedding) > %w", err)
	}
	return nil
}

// UpdateCluster writes a note's cluster label, confidence, and assignment
// timestamp in a single statement so the triple is never partially updated.
func (r *DBRepository) UpdateCluster(ctx context.Context, noteID, cluster string, confidence float64, clusteredAt time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE notes SET cluster = ?, cluster_confidence = ?, clustered_at = ? WHERE id = ?",
		cluster, confidence, clusteredAt, noteID); err != nil {
		return fmt.Errorf("db.ExecContext(update cluster) > %w", err)
	}
	return nil
}
