// Package noteimport seeds notes from a YAML file, used for backfills and
// local development.
package noteimport

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lwhite702/klutr/internal/note"
)

// Entry is one importable note in the YAML file.
type Entry struct {
	UserID   string `yaml:"user_id"`
	Content  string `yaml:"content"`
	Archived bool   `yaml:"archived,omitempty"`
}

// Importer creates notes from an import file. Imported notes start
// unclassified with no embedding; the next pipeline pass organizes them.
type Importer struct {
	notes note.Repository
}

// NewImporter creates a new Importer.
func NewImporter(notes note.Repository) *Importer {
	return &Importer{notes: notes}
}

// Import reads a YAML list of entries and creates one note per entry,
// returning the number created. Entries without a user or content are
// skipped with a warning.
func (i *Importer) Import(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return 0, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}

	created := 0
	for index, entry := range entries {
		if entry.UserID == "" || entry.Content == "" {
			slog.Default().Warn("skipping import entry without user_id or content",
				"path", path,
				"index", index,
			)
			continue
		}

		n := note.Note{
			ID:       uuid.NewString(),
			UserID:   entry.UserID,
			Content:  entry.Content,
			Type:     note.TypeUnclassified,
			Archived: entry.Archived,
		}
		if err := i.notes.Create(ctx, &n); err != nil {
			return created, fmt.Errorf("notes.Create(entry %d) > %w", index, err)
		}
		created++
	}
	return created, nil
}
