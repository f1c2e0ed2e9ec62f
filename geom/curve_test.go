package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func vecClose(a, b r3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestNewCurveDegenerate(t *testing.T) {
	if c := NewCurve(nil); c != nil {
		t.Error("expected nil curve for empty input")
	}
	if c := NewCurve([]r3.Vec{{X: 1}}); c != nil {
		t.Error("expected nil curve for single point")
	}
}

func TestPointAtPassesThroughControlPoints(t *testing.T) {
	pts := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: 2, Y: 1, Z: 1},
		{X: 3, Y: 0, Z: 0},
	}
	c := NewCurve(pts)

	// Catmull-Rom interpolates its control points at t = i/(n-1).
	n := len(pts) - 1
	for i, want := range pts {
		tt := float64(i) / float64(n)
		got := c.PointAt(tt)
		if !vecClose(got, want, 0.01) {
			t.Errorf("PointAt(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestPointAtWraps(t *testing.T) {
	c := NewCurve([]r3.Vec{{X: 0}, {X: 1}, {X: 2}})

	a := c.PointAt(0.25)
	b := c.PointAt(1.25)
	if !vecClose(a, b, 1e-9) {
		t.Errorf("PointAt should wrap: %v != %v", a, b)
	}

	// t=1 is the endpoint, not a wrap.
	end := c.PointAt(1)
	if !vecClose(end, r3.Vec{X: 2}, 1e-9) {
		t.Errorf("PointAt(1) = %v, want endpoint {2 0 0}", end)
	}

	start := c.PointAt(0)
	wrapped := c.PointAt(2)
	if !vecClose(start, wrapped, 1e-9) {
		t.Errorf("PointAt(2) should wrap to start: %v != %v", wrapped, start)
	}
}

func TestPointAtContinuity(t *testing.T) {
	c := NewCurve([]r3.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: -1}, {X: 3, Y: 0}, {X: 4, Y: 2},
	})

	// Small steps in t must produce small steps in space.
	prev := c.PointAt(0)
	for i := 1; i <= 1000; i++ {
		cur := c.PointAt(float64(i) / 1001)
		if r3.Norm(r3.Sub(cur, prev)) > 0.1 {
			t.Fatalf("discontinuity at t=%v", float64(i)/1001)
		}
		prev = cur
	}
}

func TestCurvesFromFlat(t *testing.T) {
	tests := []struct {
		name  string
		paths [][]float64
		want  int
	}{
		{"empty", nil, 0},
		{"one valid", [][]float64{{0, 0, 0, 1, 1, 1}}, 1},
		{"degenerate single point skipped", [][]float64{{0, 0, 0}}, 0},
		{"partial triple dropped", [][]float64{{0, 0, 0, 1, 1, 1, 9}}, 1},
		{"partial leaves one point", [][]float64{{0, 0, 0, 9, 9}}, 0},
		{"mixed", [][]float64{{0, 0, 0}, {0, 0, 0, 1, 0, 0, 2, 0, 0}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurvesFromFlat(tt.paths)
			if len(got) != tt.want {
				t.Errorf("got %d curves, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	curves := DefaultPaths()
	if len(curves) < 4 {
		t.Fatalf("expected several embedded paths, got %d", len(curves))
	}
	for i, c := range curves {
		if c.NumPoints() < 2 {
			t.Errorf("curve %d has %d points", i, c.NumPoints())
		}
	}
}
