package spatial

import (
	"errors"
	"testing"
)

func TestEdges(t *testing.T) {
	edges := Edges(0, 1, 0.25)
	want := []float64{0, 0.25, 0.5, 0.75, 1.0}
	if len(edges) != len(want) {
		t.Fatalf("Edges(0, 1, 0.25) has %d edges; want %d", len(edges), len(want))
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("edge[%d] = %v; want %v", i, edges[i], want[i])
		}
	}
}

func TestEdgesDegenerateExtent(t *testing.T) {
	edges := Edges(5, 5, 0.5)
	if len(edges) < 2 {
		t.Fatalf("Edges(5, 5, 0.5) returned %d edges; want at least 2", len(edges))
	}
}

func TestBinBelow(t *testing.T) {
	edges := []float64{0, 0.25, 0.5, 0.75, 1.0}

	cases := []struct {
		name    string
		v       float64
		want    int
		wantErr bool
	}{
		{"inside first bin", 0.1, 0, false},
		{"on interior edge goes to lower bin", 0.25, 0, false},
		{"just past interior edge", 0.26, 1, false},
		{"at last edge", 1.0, 3, false},
		{"at first edge", 0, 0, true},
		{"below extent", -0.5, 0, true},
		{"beyond extent", 1.1, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BinBelow(edges, tc.v)
			if tc.wantErr {
				if !errors.Is(err, ErrOutsideExtent) {
					t.Fatalf("BinBelow(%v) error = %v; want ErrOutsideExtent", tc.v, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BinBelow(%v) returned error: %v", tc.v, err)
			}
			if got != tc.want {
				t.Errorf("BinBelow(%v) = %d; want %d", tc.v, got, tc.want)
			}
		})
	}
}

func TestHistogram2DCounts(t *testing.T) {
	lonEdges := []float64{0, 0.5, 1.0}
	latEdges := []float64{0, 0.5, 1.0}
	lons := []float64{0.1, 0.3, 0.3, 1.0, 2.0}
	lats := []float64{0.2, 0.7, 0.2, 1.0, 2.0}

	h := NewHistogram2D(lons, lats, lonEdges, latEdges)

	if h.Total != 4 {
		t.Errorf("Total = %d; want 4 (out-of-range point ignored)", h.Total)
	}
	if got := h.Counts[0][0]; got != 2 {
		t.Errorf("Counts[0][0] = %d; want 2", got)
	}
	if got := h.Counts[0][1]; got != 1 {
		t.Errorf("Counts[0][1] = %d; want 1", got)
	}
	// Data maximum lands in the final bin.
	if got := h.Counts[1][1]; got != 1 {
		t.Errorf("Counts[1][1] = %d; want 1", got)
	}
	if got := h.Max(); got != 2 {
		t.Errorf("Max() = %d; want 2", got)
	}
}

func TestHistogram2DLocate(t *testing.T) {
	h := NewHistogram2D(nil, nil, []float64{0, 0.5, 1.0}, []float64{0, 0.5, 1.0})

	i, j, err := h.Locate(0.6, 0.2)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if i != 1 || j != 0 {
		t.Errorf("Locate(0.6, 0.2) = (%d, %d); want (1, 0)", i, j)
	}

	if _, _, err := h.Locate(1.5, 0.2); !errors.Is(err, ErrOutsideExtent) {
		t.Errorf("Locate outside lon extent error = %v; want ErrOutsideExtent", err)
	}
	if _, _, err := h.Locate(0.6, 0); !errors.Is(err, ErrOutsideExtent) {
		t.Errorf("Locate at first lat edge error = %v; want ErrOutsideExtent", err)
	}
}

func TestHistogram2DCenter(t *testing.T) {
	h := NewHistogram2D(nil, nil, []float64{0, 0.5, 1.0}, []float64{0, 1.0, 2.0})
	lon, lat := h.Center(1, 0)
	if lon != 0.75 || lat != 0.5 {
		t.Errorf("Center(1, 0) = (%v, %v); want (0.75, 0.5)", lon, lat)
	}
}
