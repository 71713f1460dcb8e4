package curve

import (
	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
)

func splineInterp[F numeric.Real](in []data.Point[F], subdivisions int, closed bool, dst []data.Point[F]) int {
	if closed {
		return closedSplineInterp(in, subdivisions, dst)
	}
	return naturalSplineInterp(in, subdivisions, dst)
}

// naturalSplineInterp evaluates the natural cubic spline through in,
// treating y as a function of x. Second derivatives come from the
// tridiagonal moment system solved with the Thomas algorithm; natural
// boundary conditions pin both end moments at zero.
//
// Coincident x values make the system singular, so such inputs degrade to
// straight segments.
func naturalSplineInterp[F numeric.Real](in []data.Point[F], subdivisions int, dst []data.Point[F]) int {
	n := len(in)
	for i := 1; i < n; i++ {
		if in[i].X == in[i-1].X {
			return linearInterp(in, subdivisions, false, dst)
		}
	}

	// m holds the second derivative at each sample, cp and dp the
	// forward-sweep scratch.
	var m, cp, dp [MaxInputPoints]F
	six := F(6)
	for i := 1; i < n-1; i++ {
		h0 := in[i].X - in[i-1].X
		h1 := in[i+1].X - in[i].X
		diag := F(2)*(h0+h1) - h0*cp[i-1]
		cp[i] = h1 / diag
		rhs := six * ((in[i+1].Y-in[i].Y)/h1 - (in[i].Y-in[i-1].Y)/h0)
		dp[i] = (rhs - h0*dp[i-1]) / diag
	}
	for i := n - 2; i >= 1; i-- {
		m[i] = dp[i] - cp[i]*m[i+1]
	}

	// Each segment is re-expressed as a cubic Bezier in the rational
	// parameter j/subdivisions. The segment-end slopes follow from the
	// moments, scaled by h because the parameter runs over [0,1] while the
	// spline is a function of x.
	w := 0
	for i := 0; i < n-1; i++ {
		p0, p1 := in[i], in[i+1]
		h := p1.X - p0.X
		hh := h * h
		d := p1.Y - p0.Y
		t0 := d - hh*(F(2)*m[i]+m[i+1])/six
		t1 := d + hh*(m[i]+F(2)*m[i+1])/six
		c1 := p0.Y + numeric.ScaleRatio(t0, 1, 3)
		c2 := p1.Y - numeric.ScaleRatio(t1, 1, 3)
		for j := 0; j < subdivisions; j++ {
			dst[w] = data.Point[F]{
				X: numeric.Lerp(p0.X, p1.X, j, subdivisions),
				Y: casteljau1(p0.Y, c1, c2, p1.Y, j, subdivisions),
			}
			w++
		}
	}
	dst[w] = in[n-1]
	w++
	return w
}

// closedSplineInterp fits a periodic parametric spline: x and y are each
// splined against a unit-spaced parameter that wraps from the last sample
// back to the first. The cyclic moment system is reduced to two ordinary
// tridiagonal solves with the Sherman-Morrison correction.
func closedSplineInterp[F numeric.Real](in []data.Point[F], subdivisions int, dst []data.Point[F]) int {
	n := len(in)
	var rhs, mx, my [MaxInputPoints]F
	six := F(6)

	for i := 0; i < n; i++ {
		prev := in[(i-1+n)%n].X
		next := in[(i+1)%n].X
		rhs[i] = six * (next - F(2)*in[i].X + prev)
	}
	solveCyclicMoments(rhs[:n], mx[:n])

	for i := 0; i < n; i++ {
		prev := in[(i-1+n)%n].Y
		next := in[(i+1)%n].Y
		rhs[i] = six * (next - F(2)*in[i].Y + prev)
	}
	solveCyclicMoments(rhs[:n], my[:n])

	// The parameter spacing is 1, so each segment's end slopes come
	// straight from the moments and the Bezier form evaluates with the
	// rational casteljau scheme.
	w := 0
	for i := 0; i < n; i++ {
		k := (i + 1) % n
		dX := in[k].X - in[i].X
		dY := in[k].Y - in[i].Y
		tx0 := dX - (F(2)*mx[i]+mx[k])/six
		tx1 := dX + (mx[i]+F(2)*mx[k])/six
		ty0 := dY - (F(2)*my[i]+my[k])/six
		ty1 := dY + (my[i]+F(2)*my[k])/six
		c1 := data.Point[F]{
			X: in[i].X + numeric.ScaleRatio(tx0, 1, 3),
			Y: in[i].Y + numeric.ScaleRatio(ty0, 1, 3),
		}
		c2 := data.Point[F]{
			X: in[k].X - numeric.ScaleRatio(tx1, 1, 3),
			Y: in[k].Y - numeric.ScaleRatio(ty1, 1, 3),
		}
		for j := 0; j < subdivisions; j++ {
			dst[w] = casteljau(in[i], c1, c2, in[k], j, subdivisions)
			w++
		}
	}
	return w
}

// solveCyclicMoments solves the periodic moment system
// m[i-1] + 4 m[i] + m[i+1] = rhs[i] with indices taken mod len(rhs).
func solveCyclicMoments[F numeric.Real](rhs, out []F) {
	n := len(rhs)
	var diag, u, xv, z, cp [MaxInputPoints]F
	four := F(4)
	gamma := -four
	for i := 0; i < n; i++ {
		diag[i] = four
	}
	diag[0] = four - gamma
	diag[n-1] = four - F(1)/gamma
	u[0] = gamma
	u[n-1] = F(1)

	solveTridiagUnit(diag[:n], rhs, xv[:n], cp[:n])
	solveTridiagUnit(diag[:n], u[:n], z[:n], cp[:n])

	fact := (xv[0] + xv[n-1]/gamma) / (F(1) + z[0] + z[n-1]/gamma)
	for i := 0; i < n; i++ {
		out[i] = xv[i] - fact*z[i]
	}
}

// solveTridiagUnit runs the Thomas algorithm on a tridiagonal system with
// unit sub- and super-diagonals.
func solveTridiagUnit[F numeric.Real](diag, rhs, out, cp []F) {
	n := len(diag)
	cp[0] = F(1) / diag[0]
	out[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		den := diag[i] - cp[i-1]
		cp[i] = F(1) / den
		out[i] = (rhs[i] - out[i-1]) / den
	}
	for i := n - 2; i >= 0; i-- {
		out[i] -= cp[i] * out[i+1]
	}
}
