package data

import "github.com/signal-slot/embedded-charts/internal/numeric"

// Bounds is the running (min, max) envelope of x and y over a point set.
// The zero value is meaningless on its own; emptiness is signalled by the
// ok boolean on the accessors that produce Bounds.
type Bounds[F numeric.Real] struct {
	MinX F
	MaxX F
	MinY F
	MaxY F
}

// BoundsOfPoint returns the degenerate envelope covering a single point.
func BoundsOfPoint[F numeric.Real](p Point[F]) Bounds[F] {
	return Bounds[F]{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
}

// BoundsOf computes the exact envelope of pts. ok is false for an empty
// slice.
func BoundsOf[F numeric.Real](pts []Point[F]) (b Bounds[F], ok bool) {
	if len(pts) == 0 {
		return Bounds[F]{}, false
	}
	b = BoundsOfPoint(pts[0])
	for _, p := range pts[1:] {
		b = b.Union(p)
	}
	return b, true
}

// Union returns the smallest envelope covering both b and p.
func (b Bounds[F]) Union(p Point[F]) Bounds[F] {
	return Bounds[F]{
		MinX: numeric.Min(b.MinX, p.X),
		MaxX: numeric.Max(b.MaxX, p.X),
		MinY: numeric.Min(b.MinY, p.Y),
		MaxY: numeric.Max(b.MaxY, p.Y),
	}
}

// Merge returns the smallest envelope covering both b and o.
func (b Bounds[F]) Merge(o Bounds[F]) Bounds[F] {
	return Bounds[F]{
		MinX: numeric.Min(b.MinX, o.MinX),
		MaxX: numeric.Max(b.MaxX, o.MaxX),
		MinY: numeric.Min(b.MinY, o.MinY),
		MaxY: numeric.Max(b.MaxY, o.MaxY),
	}
}

// Width returns the x extent of the envelope.
func (b Bounds[F]) Width() F {
	return b.MaxX - b.MinX
}

// Height returns the y extent of the envelope.
func (b Bounds[F]) Height() F {
	return b.MaxY - b.MinY
}

// Contains reports whether p lies inside or on the edge of the envelope.
func (b Bounds[F]) Contains(p Point[F]) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
