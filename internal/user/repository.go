// Package user provides user listing for the batch pipeline.
package user

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/user/mock_repository.go -package=mock_user

// Repository defines user lookup operations.
type Repository interface {
	ListIDs(ctx context.Context) ([]string, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// ListIDs returns the IDs of all users, oldest account first.
func (r *DBRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, "SELECT id FROM users ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(user ids) > %w", err)
	}
	return ids, nil
}
