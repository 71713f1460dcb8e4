// Package aggregate reduces dense sample runs into coarser series for
// display at lower horizontal resolution.
//
// Like the curve engine, every operation writes into a caller-provided
// destination and allocates nothing on the steady-state path.
package aggregate

import (
	"fmt"

	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
	"github.com/signal-slot/embedded-charts/internal/vecops"
)

// Strategy selects how each bucket of samples collapses into output.
type Strategy int

const (
	// Mean emits the centroid of each bucket.
	Mean Strategy = iota
	// Min emits the sample with the smallest y in each bucket.
	Min
	// Max emits the sample with the largest y in each bucket.
	Max
	// First emits the first sample of each bucket.
	First
	// Last emits the last sample of each bucket.
	Last
	// MinMax emits both y extremes of each bucket in x order, preserving
	// spikes that a single representative would flatten.
	MinMax
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Mean:
		return "mean"
	case Min:
		return "min"
	case Max:
		return "max"
	case First:
		return "first"
	case Last:
		return "last"
	case MinMax:
		return "min-max"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// meanChunk bounds the gather scratch used by the mean path. Buckets
// larger than this are summed in chunks.
const meanChunk = 256

// Config controls a single aggregation pass.
type Config struct {
	// Strategy selects the bucket reduction.
	Strategy Strategy

	// TargetPoints is the number of buckets the input is split into.
	// MinMax emits two points per bucket, the others one.
	TargetPoints int

	// PreserveEndpoints forces the first and last output points to be the
	// first and last input samples.
	PreserveEndpoints bool
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Strategy < Mean || c.Strategy > MinMax {
		return fmt.Errorf("%w: unknown strategy %d", data.ErrInvalidConfig, int(c.Strategy))
	}
	if c.TargetPoints < 1 {
		return fmt.Errorf("%w: target points %d, need at least 1", data.ErrInvalidConfig, c.TargetPoints)
	}
	return nil
}

// OutputLen returns the number of points Aggregate produces for an input
// of inputLen samples under cfg. Inputs no longer than the target pass
// through unchanged.
func OutputLen(inputLen int, cfg Config) int {
	if inputLen <= cfg.TargetPoints {
		return inputLen
	}
	if cfg.Strategy == MinMax {
		return 2 * cfg.TargetPoints
	}
	return cfg.TargetPoints
}

// Aggregate buckets input into cfg.TargetPoints groups, applies the
// strategy to each, and writes the result to dst, returning the number of
// points written. The configuration and destination length are checked
// before dst is touched, so a failed call leaves dst unchanged.
func Aggregate[F numeric.Real](input []data.Point[F], cfg Config, dst []data.Point[F]) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	n := len(input)
	need := OutputLen(n, cfg)
	if len(dst) < need {
		return 0, fmt.Errorf("%w: need %d points, have %d", data.ErrDestinationTooSmall, need, len(dst))
	}
	if n <= cfg.TargetPoints {
		copy(dst, input)
		return n, nil
	}

	w := 0
	for i := 0; i < cfg.TargetPoints; i++ {
		bucket := input[i*n/cfg.TargetPoints : (i+1)*n/cfg.TargetPoints]
		switch cfg.Strategy {
		case Mean:
			dst[w] = bucketMean(bucket)
			w++
		case Min:
			lo, _ := bucketExtremes(bucket)
			dst[w] = bucket[lo]
			w++
		case Max:
			_, hi := bucketExtremes(bucket)
			dst[w] = bucket[hi]
			w++
		case First:
			dst[w] = bucket[0]
			w++
		case Last:
			dst[w] = bucket[len(bucket)-1]
			w++
		case MinMax:
			lo, hi := bucketExtremes(bucket)
			if lo > hi {
				lo, hi = hi, lo
			}
			dst[w] = bucket[lo]
			dst[w+1] = bucket[hi]
			w += 2
		}
	}
	if cfg.PreserveEndpoints {
		dst[0] = input[0]
		dst[w-1] = input[n-1]
	}
	return w, nil
}

// bucketMean returns the centroid of pts, gathering coordinates into a
// fixed chunk so the vector sum runs over contiguous memory.
func bucketMean[F numeric.Real](pts []data.Point[F]) data.Point[F] {
	ops := vecops.For[F]()
	var buf [meanChunk]F
	var sumX, sumY F
	for off := 0; off < len(pts); off += meanChunk {
		chunk := pts[off:min(off+meanChunk, len(pts))]
		for i, p := range chunk {
			buf[i] = p.X
		}
		sumX += ops.Sum(buf[:len(chunk)])
		for i, p := range chunk {
			buf[i] = p.Y
		}
		sumY += ops.Sum(buf[:len(chunk)])
	}
	count := F(len(pts))
	return data.Point[F]{X: sumX / count, Y: sumY / count}
}

// bucketExtremes returns the indices of the minimum and maximum y in pts.
// Ties keep the earliest sample.
func bucketExtremes[F numeric.Real](pts []data.Point[F]) (lo, hi int) {
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[lo].Y {
			lo = i
		}
		if pts[i].Y > pts[hi].Y {
			hi = i
		}
	}
	return lo, hi
}
