package spatial

import "testing"

func TestPointIndexCountWithin(t *testing.T) {
	center := [2]float64{-118.25, 34.05}

	// Two points within ~0.1 mi of the center, one roughly 7 miles east.
	lons := []float64{-118.25, -118.2501, -118.13}
	lats := []float64{34.05, 34.0501, 34.05}

	idx := NewPointIndex(lons, lats)
	if idx.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", idx.Len())
	}

	if got := idx.CountWithin(center[0], center[1], 0.5); got != 2 {
		t.Errorf("CountWithin(0.5 mi) = %d; want 2", got)
	}
	if got := idx.CountWithin(center[0], center[1], 10); got != 3 {
		t.Errorf("CountWithin(10 mi) = %d; want 3", got)
	}
	if got := idx.CountWithin(-117.0, 34.05, 0.5); got != 0 {
		t.Errorf("CountWithin far away = %d; want 0", got)
	}
}
