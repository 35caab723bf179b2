// Package vector provides similarity metrics over equal-length vectors.
package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/viterin/vek"
)

// ErrDimensionMismatch is returned when two vectors of different lengths
// are compared.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// CosineSimilarity returns dot(a,b) / (|a|*|b|), in [-1, 1]. A zero
// magnitude on either side yields 0 rather than an error.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("cosine similarity: %w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	magA := math.Sqrt(vek.Dot(a, a))
	magB := math.Sqrt(vek.Dot(b, b))
	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return vek.Dot(a, b) / (magA * magB), nil
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("euclidean distance: %w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return vek.Distance(a, b), nil
}

// Norm returns the Euclidean magnitude of v.
func Norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return math.Sqrt(vek.Dot(v, v))
}

// Normalize scales v to unit magnitude in place. A zero-magnitude vector
// is left untouched rather than divided by zero.
func Normalize(v []float64) {
	mag := Norm(v)
	if mag == 0 {
		return
	}
	vek.MulNumber_Inplace(v, 1/mag)
}
