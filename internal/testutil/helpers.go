// Package testutil provides reusable test helpers for the chart data
// pipeline tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// Default tolerances for curve and bounds comparisons.
const (
	DefaultTolerance = 1e-9
	CurveTolerance   = 1e-6
)

// Points builds a float64 point slice from interleaved x,y pairs.
func Points(xy ...float64) []data.Point[float64] {
	if len(xy)%2 != 0 {
		panic("testutil: Points requires interleaved x,y pairs")
	}
	pts := make([]data.Point[float64], 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		pts = append(pts, data.Pt(xy[i], xy[i+1]))
	}
	return pts
}

// SinePoints generates n samples of amp*sin(2*pi*cycles*i/n) at x = i.
func SinePoints(n int, amp, cycles float64) []data.Point[float64] {
	pts := make([]data.Point[float64], n)
	for i := range pts {
		pts[i] = data.Pt(float64(i), amp*math.Sin(2*math.Pi*cycles*float64(i)/float64(n)))
	}
	return pts
}

// BruteBounds recomputes the exact envelope of pts from scratch, serving as
// the oracle for the containers' incremental bounds tracking.
func BruteBounds(pts []data.Point[float64]) data.Bounds[float64] {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return data.Bounds[float64]{
		MinX: floats.Min(xs),
		MaxX: floats.Max(xs),
		MinY: floats.Min(ys),
		MaxY: floats.Max(ys),
	}
}

// AssertPointsInDelta verifies got matches want element-wise within tol.
func AssertPointsInDelta(t *testing.T, want, got []data.Point[float64], tol float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return false
	}
	for i := range want {
		if !assert.InDelta(t, want[i].X, got[i].X, tol, "point %d x", i) {
			return false
		}
		if !assert.InDelta(t, want[i].Y, got[i].Y, tol, "point %d y", i) {
			return false
		}
	}
	return true
}

// AssertMonotonicX verifies the x coordinates of pts never decrease.
func AssertMonotonicX[F numeric.Real](t *testing.T, pts []data.Point[F]) bool {
	t.Helper()
	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[i-1].X {
			return assert.Fail(t, "x not monotonic",
				"pts[%d].X=%v < pts[%d].X=%v", i, pts[i].X, i-1, pts[i-1].X)
		}
	}
	return true
}

// AssertNoNaNPoints verifies no coordinate in pts is NaN or Inf.
func AssertNoNaNPoints(t *testing.T, pts []data.Point[float64]) bool {
	t.Helper()
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			return assert.Fail(t, "bad x", "pts[%d].X=%v", i, p.X)
		}
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return assert.Fail(t, "bad y", "pts[%d].Y=%v", i, p.Y)
		}
	}
	return true
}

// FillSentinel overwrites dst with a recognizable marker value so tests can
// verify a failed operation left the destination untouched.
func FillSentinel(dst []data.Point[float64], v float64) {
	for i := range dst {
		dst[i] = data.Pt(v, v)
	}
}

// AssertAllSentinel verifies every point in dst still carries the marker.
func AssertAllSentinel(t *testing.T, dst []data.Point[float64], v float64) bool {
	t.Helper()
	for i, p := range dst {
		if p.X != v || p.Y != v {
			return assert.Fail(t, "destination modified", "dst[%d]=%v", i, p)
		}
	}
	return true
}
