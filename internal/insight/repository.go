package insight

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/insight/mock_repository.go -package=mock_insight

// Repository defines operations for persisting weekly insights.
type Repository interface {
	FindByWeek(ctx context.Context, userID string, weekStart time.Time) (*WeeklyInsight, error)
	Upsert(ctx context.Context, userID string, weekStart time.Time, summary, sentiment string, noteCount int) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByWeek returns the insight for (userID, weekStart), or nil if absent.
func (r *DBRepository) FindByWeek(ctx context.Context, userID string, weekStart time.Time) (*WeeklyInsight, error) {
	var insight WeeklyInsight
	err := r.db.GetContext(ctx, &insight,
		"SELECT * FROM weekly_insights WHERE user_id = ? AND week_start = ?", userID, weekStart)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(weekly_insight) > %w", err)
	}
	return &insight, nil
}

// Upsert creates the insight for (userID, weekStart) or updates it in place.
// The unique key on (user_id, week_start) guarantees one row per week.
func (r *DBRepository) Upsert(ctx context.Context, userID string, weekStart time.Time, summary, sentiment string, noteCount int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO weekly_insights (user_id, week_start, summary, sentiment, note_count)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE summary = VALUES(summary), sentiment = VALUES(sentiment), note_count = VALUES(note_count)`,
		userID, weekStart, summary, sentiment, noteCount)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert weekly_insight) > %w", err)
	}
	return nil
}
