package curve

// Engine limits. Input and subdivision ceilings bound the engine's static
// working memory so a worst-case interpolation is sized at configuration
// time, not discovered at runtime.
const (
	// MaxInputPoints is the engine's static working capacity: spline moment
	// scratch is stack-allocated at this size.
	MaxInputPoints = 256

	// MaxSubdivisions is the hard ceiling on points generated per segment.
	MaxSubdivisions = 256

	// minSubdivisions is the lowest meaningful subdivision count.
	minSubdivisions = 1
)

// Tension parameter range and encoding.
const (
	tensionMin = 0.0
	tensionMax = 1.0

	// tensionScale converts the tension scalar into an integer ratio so
	// tangent scaling stays inside backend arithmetic.
	tensionScale = 256
)

// Default configuration values, matching the library's render defaults.
const (
	defaultSubdivisions = 8
	defaultTension      = 0.5
)
