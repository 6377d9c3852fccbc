package stack

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/stack/mock_repository.go -package=mock_stack

// Repository defines operations for persisting stacks.
type Repository interface {
	FindByUser(ctx context.Context, userID string) ([]Stack, error)
	Upsert(ctx context.Context, userID, cluster string, noteCount int, summary string) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByUser returns all stacks for a user, most populous first.
func (r *DBRepository) FindByUser(ctx context.Context, userID string) ([]Stack, error) {
	var stacks []Stack
	err := r.db.SelectContext(ctx, &stacks,
		"SELECT * FROM stacks WHERE user_id = ? ORDER BY note_count DESC, cluster", userID)
	if err != nil {
		return nil, fmt.Errorf("db.SelectContext(stacks) > %w", err)
	}
	return stacks, nil
}

// Upsert creates the stack for (userID, cluster) or updates its count and
// summary in place. The unique key on (user_id, cluster) guarantees a single
// row per pair, and pinned is never touched on update.
func (r *DBRepository) Upsert(ctx context.Context, userID, cluster string, noteCount int, summary string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stacks (user_id, cluster, name, note_count, summary)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE note_count = VALUES(note_count), summary = VALUES(summary)`,
		userID, cluster, cluster, noteCount, summary)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert stack) > %w", err)
	}
	return nil
}
