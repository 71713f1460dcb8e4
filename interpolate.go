package charts

import (
	"github.com/signal-slot/embedded-charts/internal/curve"
)

// Interpolate generates a curve through input and writes it to dst,
// returning the number of points written. The configuration and both
// slice lengths are validated before dst is touched, so a failed call
// leaves dst exactly as it was.
//
// Inputs of zero or one point pass through unchanged; two points degrade
// every algorithm to a straight segment.
func Interpolate[F Real](input []Point[F], cfg InterpolationConfig, dst []Point[F]) (int, error) {
	return curve.Interpolate(input, cfg, dst)
}

// OutputLen returns the number of points Interpolate produces for an
// input of inputLen samples under cfg. Use it to size destination
// buffers once at startup.
func OutputLen(inputLen int, cfg InterpolationConfig) int {
	return curve.OutputLen(inputLen, cfg)
}
