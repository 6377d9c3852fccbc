// Package note provides the note domain model and repository.
package note

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Type is the closed set of note type labels.
type Type string

const (
	TypeIdea         Type = "idea"
	TypeTask         Type = "task"
	TypeContact      Type = "contact"
	TypeLink         Type = "link"
	TypeImage        Type = "image"
	TypeVoice        Type = "voice"
	TypeMisc         Type = "misc"
	TypeNope         Type = "nope"
	TypeUnclassified Type = "unclassified"
)

// ParseType coerces a raw label into the closed type set.
// Anything outside the set becomes TypeUnclassified.
func ParseType(raw string) Type {
	switch Type(raw) {
	case TypeIdea, TypeTask, TypeContact, TypeLink, TypeImage, TypeVoice, TypeMisc, TypeNope, TypeUnclassified:
		return Type(raw)
	}
	return TypeUnclassified
}

// Note represents a single captured note.
type Note struct {
	ID                string          `db:"id" yaml:"id"`
	UserID            string          `db:"user_id" yaml:"user_id"`
	Content           string          `db:"content" yaml:"content"`
	Type              Type            `db:"type" yaml:"type"`
	Embedding         sql.NullString  `db:"embedding" yaml:"-"`
	Cluster           sql.NullString  `db:"cluster" yaml:"cluster,omitempty"`
	ClusterConfidence sql.NullFloat64 `db:"cluster_confidence" yaml:"cluster_confidence,omitempty"`
	ClusteredAt       sql.NullTime    `db:"clustered_at" yaml:"clustered_at,omitempty"`
	Archived          bool            `db:"archived" yaml:"archived"`
	CreatedAt         time.Time       `db:"created_at" yaml:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" yaml:"updated_at"`
	Tags              []Tag           `db:"-" yaml:"tags,omitempty"`
}

// Tag is an owner-scoped label, unique per (user_id, name).
type Tag struct {
	ID        int64     `db:"id" yaml:"id"`
	UserID    string    `db:"user_id" yaml:"user_id"`
	Name      string    `db:"name" yaml:"name"`
	CreatedAt time.Time `db:"created_at" yaml:"created_at"`
}

// Classification is the outcome of classifying one note.
type Classification struct {
	Type Type
	Tags []string
}

// Vector decodes the note's embedding. Returns nil when the note has none.
func (n Note) Vector() ([]float64, error) {
	if !n.Embedding.Valid || n.Embedding.String == "" {
		return nil, nil
	}
	var v []float64
	if err := json.Unmarshal([]byte(n.Embedding.String), &v); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(embedding) > %w", err)
	}
	return v, nil
}

// EncodeVector serializes an embedding for storage in the embedding column.
func EncodeVector(v []float64) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(embedding) > %w", err)
	}
	return string(encoded), nil
}
