package curve

import (
	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// linearInterp connects consecutive samples with straight segments. Each
// segment contributes subdivisions points starting at its first endpoint;
// open curves append the final sample so both endpoints land exactly.
func linearInterp[F numeric.Real](in []data.Point[F], subdivisions int, closed bool, dst []data.Point[F]) int {
	n := len(in)
	segments := n - 1
	if closed {
		segments = n
	}
	w := 0
	for i := 0; i < segments; i++ {
		p0 := in[i]
		p1 := in[(i+1)%n]
		for j := 0; j < subdivisions; j++ {
			dst[w] = p0.Lerp(p1, j, subdivisions)
			w++
		}
	}
	if !closed {
		dst[w] = in[n-1]
		w++
	}
	return w
}
