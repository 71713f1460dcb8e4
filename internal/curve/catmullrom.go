package curve

import (
	"math"

	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// catmullRomInterp fits a cardinal spline through in. Tangents are scaled
// central differences, (1-tension)*(next-prev), so tension 0.5 reproduces
// the classic Catmull-Rom tangent 0.5*(next-prev) and tension 1 collapses
// to straight segments. Open curves extend each end with a mirrored
// virtual neighbor.
func catmullRomInterp[F numeric.Real](in []data.Point[F], cfg Config, dst []data.Point[F]) int {
	n := len(in)
	s := cfg.Subdivisions
	// Tangent scale as an integer ratio so it survives integer backends.
	num := int(math.Round((1 - cfg.Tension) * tensionScale))

	segments := n - 1
	if cfg.Closed {
		segments = n
	}
	w := 0
	for i := 0; i < segments; i++ {
		k := (i + 1) % n
		p1, p2 := in[i], in[k]

		var p0, p3 data.Point[F]
		switch {
		case cfg.Closed:
			p0 = in[(i-1+n)%n]
			p3 = in[(k+1)%n]
		default:
			if i == 0 {
				p0 = mirrorPoint(in[0], in[1])
			} else {
				p0 = in[i-1]
			}
			if k == n-1 {
				p3 = mirrorPoint(in[n-1], in[n-2])
			} else {
				p3 = in[k+1]
			}
		}

		m1 := data.Point[F]{
			X: numeric.ScaleRatio(p2.X-p0.X, num, tensionScale),
			Y: numeric.ScaleRatio(p2.Y-p0.Y, num, tensionScale),
		}
		m2 := data.Point[F]{
			X: numeric.ScaleRatio(p3.X-p1.X, num, tensionScale),
			Y: numeric.ScaleRatio(p3.Y-p1.Y, num, tensionScale),
		}

		for j := 0; j < s; j++ {
			dst[w] = hermitePoint(p1, p2, m1, m2, j, s)
			w++
		}
	}
	if !cfg.Closed {
		dst[w] = in[n-1]
		w++
	}
	return w
}

// mirrorPoint reflects b through a, the virtual neighbor used past an
// open curve's endpoints.
func mirrorPoint[F numeric.Real](a, b data.Point[F]) data.Point[F] {
	return data.Point[F]{X: F(2)*a.X - b.X, Y: F(2)*a.Y - b.Y}
}

// hermitePoint evaluates the cubic Hermite segment with endpoints p1, p2
// and tangents m1, m2 at the rational parameter num/den. The segment is
// converted to its Bezier form, c1 = p1 + m1/3 and c2 = p2 - m2/3, and
// evaluated by casteljau so integer backends trace the curve too.
func hermitePoint[F numeric.Real](p1, p2, m1, m2 data.Point[F], num, den int) data.Point[F] {
	c1 := data.Point[F]{
		X: p1.X + numeric.ScaleRatio(m1.X, 1, 3),
		Y: p1.Y + numeric.ScaleRatio(m1.Y, 1, 3),
	}
	c2 := data.Point[F]{
		X: p2.X - numeric.ScaleRatio(m2.X, 1, 3),
		Y: p2.Y - numeric.ScaleRatio(m2.Y, 1, 3),
	}
	return casteljau(p1, c1, c2, p2, num, den)
}
