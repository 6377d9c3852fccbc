// Package cluster implements centroid-based clustering of embedded notes.
package cluster

import "math"

// MaxDistance is the cosine distance assigned when a distance is undefined
// (zero-norm vector or mismatched dimensionality). Cosine distance ranges
// [0, 2], so this keeps undefined pairs further away than any real pair.
const MaxDistance = 2.0

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 for zero-norm vectors or mismatched lengths.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// CosineDistance computes 1 - cosine similarity. A zero-norm vector never
// divides by zero; it is treated as maximally distant from everything.
func CosineDistance(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return MaxDistance
	}
	if isZero(a) || isZero(b) {
		return MaxDistance
	}
	return 1 - CosineSimilarity(a, b)
}

// Mean computes the coordinate-wise arithmetic mean of the given vectors.
// Returns nil for an empty input.
func Mean(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}
	mean := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		for i := range mean {
			if i < len(v) {
				mean[i] += v[i]
			}
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}
	return mean
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
