package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineDistance(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{
			name: "identical vectors have distance 0",
			a:    []float64{0.3, 0.4, 0.5},
			b:    []float64{0.3, 0.4, 0.5},
			want: 0,
		},
		{
			name: "orthogonal vectors have distance 1",
			a:    []float64{1, 0},
			b:    []float64{0, 1},
			want: 1,
		},
		{
			name: "opposite vectors have distance 2",
			a:    []float64{1, 0},
			b:    []float64{-1, 0},
			want: 2,
		},
		{
			name: "zero vector is maximally distant, no division by zero",
			a:    []float64{0, 0},
			b:    []float64{1, 0},
			want: MaxDistance,
		},
		{
			name: "both zero vectors are maximally distant",
			a:    []float64{0, 0},
			b:    []float64{0, 0},
			want: MaxDistance,
		},
		{
			name: "mismatched lengths are maximally distant",
			a:    []float64{1, 0},
			b:    []float64{1, 0, 0},
			want: MaxDistance,
		},
		{
			name: "empty vectors are maximally distant",
			a:    nil,
			b:    nil,
			want: MaxDistance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineDistance(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{
			name: "identical direction",
			a:    []float64{2, 0},
			b:    []float64{7, 0},
			want: 1,
		},
		{
			name: "zero vector similarity is 0",
			a:    []float64{0, 0},
			b:    []float64{1, 1},
			want: 0,
		},
		{
			name: "length mismatch similarity is 0",
			a:    []float64{1},
			b:    []float64{1, 1},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name    string
		vectors [][]float64
		want    []float64
	}{
		{
			name:    "empty input returns nil",
			vectors: nil,
			want:    nil,
		},
		{
			name:    "single vector is its own mean",
			vectors: [][]float64{{1, 2, 3}},
			want:    []float64{1, 2, 3},
		},
		{
			name:    "coordinate-wise mean",
			vectors: [][]float64{{1, 0}, {1, 0}, {0.9, 0.1}},
			want:    []float64{0.9666666666666667, 0.03333333333333333},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.vectors)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.InDeltaSlice(t, tt.want, got, 1e-9)
		})
	}
}
