package charts

import (
	"github.com/signal-slot/embedded-charts/internal/curve"
)

// Algorithm selects the interpolation method.
type Algorithm = curve.Algorithm

const (
	// Linear connects consecutive samples with straight segments.
	Linear = curve.Linear
	// CubicSpline fits a natural cubic spline through all samples.
	CubicSpline = curve.CubicSpline
	// CatmullRom fits a cardinal spline with configurable tension.
	CatmullRom = curve.CatmullRom
	// Bezier fits composite cubic Bezier segments with C1 joins.
	Bezier = curve.Bezier
)

// Engine capacity limits, fixed at build time so worst-case buffer sizes
// are known up front.
const (
	// MaxInputPoints is the longest input the interpolation engine accepts.
	MaxInputPoints = curve.MaxInputPoints

	// MaxSubdivisions is the most output points generated per segment.
	MaxSubdivisions = curve.MaxSubdivisions
)

// InterpolationConfig controls a single interpolation pass: the
// algorithm, the per-segment subdivision count, the Catmull-Rom tension,
// and whether the curve closes back on itself.
type InterpolationConfig = curve.Config

// DefaultInterpolationConfig returns the rendering defaults: an open
// cubic spline with 8 subdivisions per segment.
func DefaultInterpolationConfig() InterpolationConfig {
	return curve.DefaultConfig()
}

// PresetFast trades smoothness for throughput: straight segments with
// minimal subdivision. Suited to high-rate live feeds.
func PresetFast() InterpolationConfig {
	return InterpolationConfig{
		Algorithm:    Linear,
		Subdivisions: 2,
	}
}

// PresetSmooth is the general-purpose preset: a Catmull-Rom curve at
// medium tension passing through every sample.
func PresetSmooth() InterpolationConfig {
	return InterpolationConfig{
		Algorithm:    CatmullRom,
		Subdivisions: 8,
		Tension:      0.5,
	}
}

// PresetHighQuality maximizes curve fidelity: a natural cubic spline with
// dense subdivision. Suited to static or slowly updating plots.
func PresetHighQuality() InterpolationConfig {
	return InterpolationConfig{
		Algorithm:    CubicSpline,
		Subdivisions: 16,
		Tension:      0.5,
	}
}
