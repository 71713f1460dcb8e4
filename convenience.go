package charts

// Smooth interpolates input with the default configuration, allocating a
// right-sized result. For allocation-free operation use Interpolate with
// a caller-owned destination.
func Smooth[F Real](input []Point[F]) ([]Point[F], error) {
	return SmoothWith(input, DefaultInterpolationConfig())
}

// SmoothWith interpolates input under cfg, allocating a right-sized
// result.
func SmoothWith[F Real](input []Point[F], cfg InterpolationConfig) ([]Point[F], error) {
	dst := make([]Point[F], OutputLen(len(input), cfg))
	n, err := Interpolate(input, cfg, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// SmoothValues interpolates a plain y-value slice sampled at x = 0, 1,
// 2, ... and returns the curve's y values. Handy for quick smoothing of
// sensor readings that carry no explicit x coordinate.
func SmoothValues[F Real](values []F, cfg InterpolationConfig) ([]F, error) {
	pts := make([]Point[F], len(values))
	for i, v := range values {
		pts[i] = Pt(F(i), v)
	}
	out, err := SmoothWith(pts, cfg)
	if err != nil {
		return nil, err
	}
	ys := make([]F, len(out))
	for i, p := range out {
		ys[i] = p.Y
	}
	return ys, nil
}

// NewStreamingPlot creates a CurveStream with the settings a live plot
// usually wants: overwrite-on-full and the smooth preset.
func NewStreamingPlot[F Real](capacity int) (*CurveStream[F], error) {
	return NewCurveStream[F](capacity, RingBufferConfig{Policy: Overwrite}, PresetSmooth())
}
