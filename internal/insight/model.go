// Package insight generates weekly narrative summaries of note activity.
package insight

import (
	"time"
)

// Sentiment is the coarse tone label attached to a weekly insight.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// WeeklyInsight is an owner-scoped narrative for one ISO week.
// At most one row exists per (user_id, week_start) pair.
type WeeklyInsight struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	WeekStart time.Time `db:"week_start"`
	Summary   string    `db:"summary"`
	Sentiment string    `db:"sentiment"`
	NoteCount int       `db:"note_count"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// WeekStart normalizes a point in time to the Monday 00:00 UTC that starts
// its week.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -daysSinceMonday)
}
