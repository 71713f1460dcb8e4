package aggregate

import (
	"fmt"

	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// DownsampleUniform selects maxPoints evenly spaced samples from input,
// always keeping both endpoints, and writes them to dst. Inputs no longer
// than maxPoints pass through unchanged.
func DownsampleUniform[F numeric.Real](input []data.Point[F], maxPoints int, dst []data.Point[F]) (int, error) {
	if maxPoints < 2 {
		return 0, fmt.Errorf("%w: max points %d, need at least 2", data.ErrInvalidConfig, maxPoints)
	}
	n := len(input)
	need := min(n, maxPoints)
	if len(dst) < need {
		return 0, fmt.Errorf("%w: need %d points, have %d", data.ErrDestinationTooSmall, need, len(dst))
	}
	if n <= maxPoints {
		copy(dst, input)
		return n, nil
	}
	for i := 0; i < maxPoints; i++ {
		dst[i] = input[i*(n-1)/(maxPoints-1)]
	}
	return maxPoints, nil
}

// DownsampleLTTB reduces input to maxPoints samples with the
// largest-triangle-three-buckets method: each interior bucket keeps the
// sample forming the largest triangle with the previously kept sample and
// the next bucket's centroid. Both endpoints are always preserved. Inputs
// no longer than maxPoints pass through unchanged.
func DownsampleLTTB[F numeric.Real](input []data.Point[F], maxPoints int, dst []data.Point[F]) (int, error) {
	if maxPoints < 3 {
		return 0, fmt.Errorf("%w: max points %d, need at least 3", data.ErrInvalidConfig, maxPoints)
	}
	n := len(input)
	need := min(n, maxPoints)
	if len(dst) < need {
		return 0, fmt.Errorf("%w: need %d points, have %d", data.ErrDestinationTooSmall, need, len(dst))
	}
	if n <= maxPoints {
		copy(dst, input)
		return n, nil
	}

	// Interior buckets cover input[1:n-1]; triangle areas are computed in
	// float64 so narrow integer backends neither overflow nor flatten.
	buckets := maxPoints - 2
	interior := n - 2
	dst[0] = input[0]
	w := 1
	prev := input[0]
	for b := 0; b < buckets; b++ {
		start := 1 + b*interior/buckets
		end := 1 + (b+1)*interior/buckets

		// Centroid of the following bucket, or the last sample for the
		// final bucket.
		nextStart, nextEnd := end, n-1
		if b == buckets-1 {
			nextEnd = n
		}
		var cx, cy float64
		for i := nextStart; i < nextEnd; i++ {
			cx += float64(input[i].X)
			cy += float64(input[i].Y)
		}
		span := float64(nextEnd - nextStart)
		cx /= span
		cy /= span

		px, py := float64(prev.X), float64(prev.Y)
		best := start
		bestArea := -1.0
		for i := start; i < end; i++ {
			area := (px-cx)*(float64(input[i].Y)-py) - (px-float64(input[i].X))*(cy-py)
			if area < 0 {
				area = -area
			}
			if area > bestArea {
				bestArea = area
				best = i
			}
		}
		dst[w] = input[best]
		w++
		prev = input[best]
	}
	dst[w] = input[n-1]
	w++
	return w, nil
}
