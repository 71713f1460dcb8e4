// Package curve generates smooth curves from sparse sample points.
//
// All algorithms write into a caller-provided destination slice and perform
// no heap allocation. The required destination length for a given input is
// reported by OutputLen, so callers can size buffers once at startup.
package curve

import (
	"errors"
	"fmt"

	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// ErrInputTooLong reports an input longer than the engine's static working
// capacity.
var ErrInputTooLong = errors.New("curve: input exceeds engine capacity")

// OutputLen returns the number of points Interpolate produces for an input
// of inputLen samples under cfg. Inputs shorter than two points pass
// through unchanged.
func OutputLen(inputLen int, cfg Config) int {
	if inputLen < 2 {
		return inputLen
	}
	if cfg.Closed {
		return inputLen * cfg.Subdivisions
	}
	return (inputLen-1)*cfg.Subdivisions + 1
}

// Interpolate generates a curve through input and writes it to dst,
// returning the number of points written. The configuration and both
// slice lengths are checked before any element of dst is touched, so a
// failed call leaves dst unchanged.
//
// Inputs of zero or one point are copied through verbatim. Two points
// carry no curvature information, so curved algorithms degrade to a
// straight segment.
func Interpolate[F numeric.Real](input []data.Point[F], cfg Config, dst []data.Point[F]) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	n := len(input)
	if n > MaxInputPoints {
		return 0, fmt.Errorf("%w: %d points, capacity %d", ErrInputTooLong, n, MaxInputPoints)
	}
	need := OutputLen(n, cfg)
	if len(dst) < need {
		return 0, fmt.Errorf("%w: need %d points, have %d", data.ErrDestinationTooSmall, need, len(dst))
	}

	switch n {
	case 0:
		return 0, nil
	case 1:
		dst[0] = input[0]
		return 1, nil
	}

	alg := cfg.Algorithm
	if n == 2 {
		alg = Linear
	}

	switch alg {
	case Linear:
		return linearInterp(input, cfg.Subdivisions, cfg.Closed, dst), nil
	case CubicSpline:
		return splineInterp(input, cfg.Subdivisions, cfg.Closed, dst), nil
	case CatmullRom:
		return catmullRomInterp(input, cfg, dst), nil
	default:
		return bezierInterp(input, cfg.Subdivisions, cfg.Closed, dst), nil
	}
}
