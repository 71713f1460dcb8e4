// Package vecops provides vector operations over the library's numeric
// backends. Float backends delegate to SIMD-accelerated kernels from
// github.com/tphakala/simd; integer backends fall back to plain loops.
//
// The function-pointer indirection keeps a single generic codebase for all
// backends. With Profile-Guided Optimization (Go 1.22+) the indirect calls
// in hot paths can be devirtualized and inlined.
package vecops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"

	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// Ops provides vector operations for backend F.
type Ops[F numeric.Real] struct {
	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	Scale func(dst, a []F, s F)
}

// Pre-instantiated operations for the SIMD-backed float types.
var (
	ops32 = Ops[float32]{
		Sum:   f32.Sum,
		Scale: f32.Scale,
	}
	ops64 = Ops[float64]{
		Sum:   f64.Sum,
		Scale: f64.Scale,
	}
)

// For returns the Ops instance for backend F. The type switch happens at
// instantiation time, not in hot paths. Named float types and integer
// backends receive the generic loop implementations.
func For[F numeric.Real]() Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		if ops, ok := any(ops32).(Ops[F]); ok {
			return ops
		}
	case float64:
		if ops, ok := any(ops64).(Ops[F]); ok {
			return ops
		}
	}
	return Ops[F]{
		Sum:   sumGeneric[F],
		Scale: scaleGeneric[F],
	}
}

func sumGeneric[F numeric.Real](a []F) F {
	var sum F
	for _, v := range a {
		sum += v
	}
	return sum
}

func scaleGeneric[F numeric.Real](dst, a []F, s F) {
	for i, v := range a {
		dst[i] = v * s
	}
}
