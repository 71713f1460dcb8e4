package curve

import (
	"fmt"
	"math"

	"github.com/signal-slot/embedded-charts/internal/data"
)

// Algorithm selects the interpolation method.
type Algorithm int

const (
	// Linear connects consecutive samples with straight segments.
	Linear Algorithm = iota
	// CubicSpline fits a natural cubic spline through all samples.
	CubicSpline
	// CatmullRom fits a cardinal spline with configurable tension.
	CatmullRom
	// Bezier fits composite cubic Bezier segments with C1 joins.
	Bezier
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Linear:
		return "linear"
	case CubicSpline:
		return "cubic-spline"
	case CatmullRom:
		return "catmull-rom"
	case Bezier:
		return "bezier"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// usesTension reports whether the algorithm's validation covers Tension.
func (a Algorithm) usesTension() bool {
	return a == CubicSpline || a == CatmullRom
}

// Config controls a single interpolation pass.
type Config struct {
	// Algorithm selects the curve construction method.
	Algorithm Algorithm

	// Subdivisions is the number of output points generated per input
	// segment. Must be in [1, MaxSubdivisions].
	Subdivisions int

	// Tension shapes CatmullRom tangents, 0 (loose) to 1 (tight).
	// Validated for CubicSpline and CatmullRom, ignored by the others.
	Tension float64

	// Closed joins the last sample back to the first, producing a loop.
	Closed bool
}

// DefaultConfig returns the rendering defaults: an open cubic spline with
// 8 subdivisions per segment.
func DefaultConfig() Config {
	return Config{
		Algorithm:    CubicSpline,
		Subdivisions: defaultSubdivisions,
		Tension:      defaultTension,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Algorithm < Linear || c.Algorithm > Bezier {
		return fmt.Errorf("%w: unknown algorithm %d", data.ErrInvalidConfig, int(c.Algorithm))
	}
	if c.Subdivisions < minSubdivisions || c.Subdivisions > MaxSubdivisions {
		return fmt.Errorf("%w: subdivisions %d outside [%d, %d]",
			data.ErrInvalidConfig, c.Subdivisions, minSubdivisions, MaxSubdivisions)
	}
	if c.Algorithm.usesTension() {
		if math.IsNaN(c.Tension) || c.Tension < tensionMin || c.Tension > tensionMax {
			return fmt.Errorf("%w: tension %v outside [%v, %v]",
				data.ErrInvalidConfig, c.Tension, tensionMin, tensionMax)
		}
	}
	return nil
}
