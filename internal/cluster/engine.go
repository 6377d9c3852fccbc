package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lwhite702/klutr/internal/note"
)

const (
	// DistanceThreshold is the acceptance threshold for a centroid
	// assignment. A note is accepted only when its nearest centroid is
	// strictly closer than this.
	DistanceThreshold = 0.35

	// MiscEligibleNoteCount is the total note count a user must exceed
	// before below-threshold notes are routed to the Misc bucket.
	MiscEligibleNoteCount = 10

	// MiscConfidence is the fixed confidence for Misc assignments.
	MiscConfidence = 0.5

	// MiscLabel is the catch-all cluster label.
	MiscLabel = "Misc"
)

// clusterNames maps a note type to its human-readable cluster label.
var clusterNames = map[note.Type]string{
	note.TypeIdea:    "Ideas",
	note.TypeTask:    "Tasks",
	note.TypeContact: "Contacts",
	note.TypeLink:    "Links",
	note.TypeImage:   "Images",
	note.TypeVoice:   "Voice Memos",
	note.TypeMisc:    MiscLabel,
}

// LabelForType returns the cluster label for a note type,
// falling back to Misc for unmapped types.
func LabelForType(t note.Type) string {
	if name, ok := clusterNames[t]; ok {
		return name
	}
	return MiscLabel
}

// Accepts reports whether a nearest-centroid distance qualifies for a
// direct assignment. The comparison is strict, so a distance equal to
// DistanceThreshold is rejected.
func Accepts(distance float64) bool {
	return distance < DistanceThreshold
}

// Centroid is the mean embedding of all notes sharing one type. Centroids
// are recomputed from scratch on every pass and never persisted.
type Centroid struct {
	Label  string
	Vector []float64
	Size   int
}

// Engine assigns each embedded note of a user to its nearest type centroid.
type Engine struct {
	notes note.Repository
	now   func() time.Time
}

// NewEngine creates a new Engine.
func NewEngine(notes note.Repository) *Engine {
	return &Engine{
		notes: notes,
		now:   time.Now,
	}
}

// Cluster recomputes centroids over the user's embedded notes and assigns
// every note to a cluster label. Notes below the acceptance threshold go to
// the Misc bucket once the user has more than MiscEligibleNoteCount notes;
// before that they are left unassigned. A user with no embedded notes is a
// no-op.
func (e *Engine) Cluster(ctx context.Context, userID string) error {
	notes, err := e.notes.FindEmbedded(ctx, userID)
	if err != nil {
		return fmt.Errorf("notes.FindEmbedded() > %w", err)
	}
	if len(notes) == 0 {
		slog.Default().Debug("no embedded notes to cluster", "userID", userID)
		return nil
	}

	total, err := e.notes.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("notes.CountByUser() > %w", err)
	}

	vectors := make(map[string][]float64, len(notes))
	for _, n := range notes {
		v, err := n.Vector()
		if err != nil {
			return fmt.Errorf("note %s: %w", n.ID, err)
		}
		vectors[n.ID] = v
	}

	centroids := computeCentroids(notes, vectors)
	slog.Default().Debug("computed centroids",
		"userID", userID,
		"centroids", len(centroids),
		"notes", len(notes),
	)

	assignedAt := e.now().UTC()
	assigned, skipped := 0, 0
	for _, n := range notes {
		label, distance, ok := nearest(vectors[n.ID], centroids)

		switch {
		case ok && Accepts(distance):
			if err := e.notes.UpdateCluster(ctx, n.ID, label, 1-distance, assignedAt); err != nil {
				return fmt.Errorf("notes.UpdateCluster() > %w", err)
			}
			assigned++
		case total > MiscEligibleNoteCount:
			if err := e.notes.UpdateCluster(ctx, n.ID, MiscLabel, MiscConfidence, assignedAt); err != nil {
				return fmt.Errorf("notes.UpdateCluster() > %w", err)
			}
			assigned++
		default:
			// Too few notes for a meaningful Misc bucket; leave unassigned.
			skipped++
		}
	}

	slog.Default().Info("clustering pass complete",
		"userID", userID,
		"assigned", assigned,
		"skipped", skipped,
	)
	return nil
}

// computeCentroids partitions notes by type and returns one centroid per
// type with at least one embedded note. The nope and unclassified types are
// too unreliable to seed a centroid, though their notes can still be
// assigned to one.
func computeCentroids(notes []note.Note, vectors map[string][]float64) []Centroid {
	byType := make(map[note.Type][][]float64)
	var order []note.Type
	for _, n := range notes {
		if n.Type == note.TypeNope || n.Type == note.TypeUnclassified {
			continue
		}
		if _, ok := byType[n.Type]; !ok {
			order = append(order, n.Type)
		}
		byType[n.Type] = append(byType[n.Type], vectors[n.ID])
	}

	centroids := make([]Centroid, 0, len(order))
	for _, t := range order {
		centroids = append(centroids, Centroid{
			Label:  LabelForType(t),
			Vector: Mean(byType[t]),
			Size:   len(byType[t]),
		})
	}
	return centroids
}

// nearest returns the label and distance of the closest centroid.
// ok is false when there are no centroids.
func nearest(v []float64, centroids []Centroid) (label string, distance float64, ok bool) {
	distance = MaxDistance + 1
	for _, c := range centroids {
		if d := CosineDistance(v, c.Vector); d < distance {
			distance = d
			label = c.Label
			ok = true
		}
	}
	return label, distance, ok
}
