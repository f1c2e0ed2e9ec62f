// Package geom provides the smooth 3D curves that pathways and ambient
// flow particles travel along.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Curve is an immutable Catmull-Rom spline through a fixed sequence of
// control points. Endpoints are clamped, so the curve passes through the
// first and last control point.
type Curve struct {
	points []r3.Vec
}

// NewCurve builds a curve through the given control points.
// Returns nil for degenerate input (fewer than 2 points).
func NewCurve(points []r3.Vec) *Curve {
	if len(points) < 2 {
		return nil
	}
	pts := make([]r3.Vec, len(points))
	copy(pts, points)
	return &Curve{points: pts}
}

// NumPoints returns the number of control points.
func (c *Curve) NumPoints() int {
	return len(c.points)
}

// PointAt evaluates the curve at parameter t. t=1 is the final control
// point; values outside [0,1] wrap, so advancing t past 1 loops back to
// the start of the curve.
func (c *Curve) PointAt(t float64) r3.Vec {
	if t < 0 || t > 1 {
		t -= math.Floor(t)
	}

	n := len(c.points) - 1
	ft := t * float64(n)
	seg := int(ft)
	if seg >= n {
		seg = n - 1
	}
	u := ft - float64(seg)

	p0 := c.clamped(seg - 1)
	p1 := c.points[seg]
	p2 := c.points[seg+1]
	p3 := c.clamped(seg + 2)

	return catmullRom(p0, p1, p2, p3, u)
}

// clamped returns control point i with the index clamped into range,
// duplicating endpoints for the spline's phantom neighbors.
func (c *Curve) clamped(i int) r3.Vec {
	if i < 0 {
		i = 0
	}
	if i >= len(c.points) {
		i = len(c.points) - 1
	}
	return c.points[i]
}

// catmullRom evaluates the uniform Catmull-Rom basis for one segment.
func catmullRom(p0, p1, p2, p3 r3.Vec, u float64) r3.Vec {
	u2 := u * u
	u3 := u2 * u

	a := r3.Scale(2, p1)
	b := r3.Scale(u, r3.Sub(p2, p0))
	cc := r3.Scale(u2, r3.Add(r3.Sub(r3.Scale(2, p0), r3.Scale(5, p1)), r3.Sub(r3.Scale(4, p2), p3)))
	d := r3.Scale(u3, r3.Add(r3.Sub(r3.Scale(3, p1), p0), r3.Sub(p3, r3.Scale(3, p2))))

	return r3.Scale(0.5, r3.Add(r3.Add(a, b), r3.Add(cc, d)))
}

// CurvesFromFlat converts the external polyline format (one flat list of
// floats per path, grouped in consecutive x,y,z triples) into curves.
// Trailing partial triples are dropped, and paths that end up with fewer
// than 2 points are skipped silently.
func CurvesFromFlat(paths [][]float64) []*Curve {
	curves := make([]*Curve, 0, len(paths))
	for _, flat := range paths {
		n := len(flat) / 3
		if n < 2 {
			continue
		}
		pts := make([]r3.Vec, n)
		for i := 0; i < n; i++ {
			pts[i] = r3.Vec{X: flat[i*3], Y: flat[i*3+1], Z: flat[i*3+2]}
		}
		if c := NewCurve(pts); c != nil {
			curves = append(curves, c)
		}
	}
	return curves
}
