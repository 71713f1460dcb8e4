package curve

import (
	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// bezierInterp fits a composite cubic Bezier curve through in. Control
// points are derived from central-difference tangents divided by six, so
// adjacent segments share a tangent line at each anchor and the composite
// curve is C1 continuous.
func bezierInterp[F numeric.Real](in []data.Point[F], subdivisions int, closed bool, dst []data.Point[F]) int {
	n := len(in)
	segments := n - 1
	if closed {
		segments = n
	}
	w := 0
	for i := 0; i < segments; i++ {
		k := (i + 1) % n
		a, b := in[i], in[k]
		ta := bezierTangent(in, i, closed)
		tb := bezierTangent(in, k, closed)
		c1 := data.Point[F]{
			X: a.X + numeric.ScaleRatio(ta.X, 1, 6),
			Y: a.Y + numeric.ScaleRatio(ta.Y, 1, 6),
		}
		c2 := data.Point[F]{
			X: b.X - numeric.ScaleRatio(tb.X, 1, 6),
			Y: b.Y - numeric.ScaleRatio(tb.Y, 1, 6),
		}
		for j := 0; j < subdivisions; j++ {
			dst[w] = casteljau(a, c1, c2, b, j, subdivisions)
			w++
		}
	}
	if !closed {
		dst[w] = in[n-1]
		w++
	}
	return w
}

// bezierTangent returns the central-difference tangent at anchor i, with
// one-sided differences at open endpoints.
func bezierTangent[F numeric.Real](in []data.Point[F], i int, closed bool) data.Point[F] {
	n := len(in)
	if closed {
		p := in[(i-1+n)%n]
		q := in[(i+1)%n]
		return data.Point[F]{X: q.X - p.X, Y: q.Y - p.Y}
	}
	switch i {
	case 0:
		return data.Point[F]{X: F(2) * (in[1].X - in[0].X), Y: F(2) * (in[1].Y - in[0].Y)}
	case n - 1:
		return data.Point[F]{X: F(2) * (in[n-1].X - in[n-2].X), Y: F(2) * (in[n-1].Y - in[n-2].Y)}
	default:
		return data.Point[F]{X: in[i+1].X - in[i-1].X, Y: in[i+1].Y - in[i-1].Y}
	}
}

// casteljau evaluates a cubic Bezier segment at the rational parameter
// num/den by repeated rational lerps. Unlike the Bernstein basis, which
// needs the fractional parameter itself, every intermediate here stays in
// the backend's own arithmetic, so integer backends produce moving
// interior points instead of collapsing to the segment head.
func casteljau[F numeric.Real](a, c1, c2, b data.Point[F], num, den int) data.Point[F] {
	p01 := a.Lerp(c1, num, den)
	p12 := c1.Lerp(c2, num, den)
	p23 := c2.Lerp(b, num, den)
	p01 = p01.Lerp(p12, num, den)
	p12 = p12.Lerp(p23, num, den)
	return p01.Lerp(p12, num, den)
}

// casteljau1 is the scalar form of casteljau, for curves whose x is
// generated separately.
func casteljau1[F numeric.Real](a, c1, c2, b F, num, den int) F {
	p01 := numeric.Lerp(a, c1, num, den)
	p12 := numeric.Lerp(c1, c2, num, den)
	p23 := numeric.Lerp(c2, b, num, den)
	p01 = numeric.Lerp(p01, p12, num, den)
	p12 = numeric.Lerp(p12, p23, num, den)
	return numeric.Lerp(p01, p12, num, den)
}
