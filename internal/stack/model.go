// Package stack builds and persists smart stacks from clustered notes.
package stack

import (
	"time"
)

// Stack is an owner-scoped aggregation of notes sharing a cluster label.
// At most one stack exists per (user_id, cluster) pair.
type Stack struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Cluster   string    `db:"cluster"`
	Name      string    `db:"name"`
	NoteCount int       `db:"note_count"`
	Summary   string    `db:"summary"`
	Pinned    bool      `db:"pinned"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
