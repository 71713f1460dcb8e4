// Package data implements the fixed-capacity sample containers at the core
// of the streaming pipeline: the overwriting ring buffer, the append-only
// static series, and the bounds envelope they both maintain.
//
// All containers allocate exactly once, at construction. Every operation
// afterwards is bounded-time and allocation-free, making the package
// suitable for hard-real-time producer loops.
package data

import "github.com/signal-slot/embedded-charts/internal/numeric"

// Point is a single 2-D sample. It is a plain value: copied into container
// slots on push, never shared or aliased.
type Point[F numeric.Real] struct {
	X F
	Y F
}

// Pt is a convenience constructor for Point literals.
func Pt[F numeric.Real](x, y F) Point[F] {
	return Point[F]{X: x, Y: y}
}

// Lerp interpolates between p and q at the rational parameter num/den.
// num = 0 yields p exactly and num = den yields q exactly.
func (p Point[F]) Lerp(q Point[F], num, den int) Point[F] {
	return Point[F]{
		X: numeric.Lerp(p.X, q.X, num, den),
		Y: numeric.Lerp(p.Y, q.Y, num, den),
	}
}

// ManhattanDistance returns |dx| + |dy| between p and q. The taxicab metric
// avoids square roots so the same code serves integer backends.
func (p Point[F]) ManhattanDistance(q Point[F]) F {
	return numeric.Abs(p.X-q.X) + numeric.Abs(p.Y-q.Y)
}
