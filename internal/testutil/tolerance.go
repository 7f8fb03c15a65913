package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireFinite fails t when any element is NaN or infinite.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireNonAscending fails t at the first element that rises above its
// predecessor. Frequency trajectories of an approaching-then-receding
// source must satisfy this.
func RequireNonAscending(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			t.Fatalf("index %d: value rises %v -> %v", i-1, data[i-1], data[i])
		}
	}
}

// MaxAbsDiff returns the largest absolute difference between two slices of
// equal length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
