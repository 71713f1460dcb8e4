package charts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	charts "github.com/signal-slot/embedded-charts"
)

func collect[F charts.Real](seq func(func(charts.Point[F]) bool)) []charts.Point[F] {
	var out []charts.Point[F]
	for p := range seq {
		out = append(out, p)
	}
	return out
}

func TestRingBufferOverwriteScenario(t *testing.T) {
	// Capacity 4, five pushes: the oldest sample is evicted and the bounds
	// shrink to the surviving window.
	buf, err := charts.NewRingBuffer[float64](4, charts.RingBufferConfig{Policy: charts.Overwrite})
	require.NoError(t, err)

	for _, p := range []charts.Point[float64]{
		charts.Pt(0.0, 1.0), charts.Pt(1.0, 5.0), charts.Pt(2.0, 2.0), charts.Pt(3.0, 9.0),
	} {
		outcome, err := buf.Push(p)
		require.NoError(t, err)
		assert.Equal(t, charts.PushStored, outcome)
	}

	b, ok := buf.Bounds()
	require.True(t, ok)
	assert.Equal(t, charts.Bounds[float64]{MinX: 0, MaxX: 3, MinY: 1, MaxY: 9}, b)

	outcome, err := buf.Push(charts.Pt(4.0, 0.0))
	require.NoError(t, err)
	assert.Equal(t, charts.PushEvicted, outcome)

	got := collect[float64](buf.Chronological())
	want := []charts.Point[float64]{
		charts.Pt(1.0, 5.0), charts.Pt(2.0, 2.0), charts.Pt(3.0, 9.0), charts.Pt(4.0, 0.0),
	}
	assert.Equal(t, want, got)

	b, ok = buf.Bounds()
	require.True(t, ok)
	assert.Equal(t, charts.Bounds[float64]{MinX: 1, MaxX: 4, MinY: 0, MaxY: 9}, b)
}

func TestRingBufferRejectPolicy(t *testing.T) {
	buf, err := charts.NewRingBuffer[float64](2, charts.RingBufferConfig{Policy: charts.RejectWhenFull})
	require.NoError(t, err)

	_, err = buf.Push(charts.Pt(0.0, 0.0))
	require.NoError(t, err)
	_, err = buf.Push(charts.Pt(1.0, 1.0))
	require.NoError(t, err)

	outcome, err := buf.Push(charts.Pt(2.0, 2.0))
	assert.ErrorIs(t, err, charts.ErrBufferFull)
	assert.Equal(t, charts.PushRejected, outcome)
	assert.Equal(t, 2, buf.Len())
}

func TestInterpolateLinearExample(t *testing.T) {
	in := []charts.Point[float64]{charts.Pt(0.0, 0.0), charts.Pt(1.0, 2.0)}
	cfg := charts.InterpolationConfig{Algorithm: charts.Linear, Subdivisions: 2}

	dst := make([]charts.Point[float64], charts.OutputLen(len(in), cfg))
	n, err := charts.Interpolate(in, cfg, dst)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	assert.Equal(t, charts.Pt(0.0, 0.0), dst[0])
	assert.Equal(t, charts.Pt(0.5, 1.0), dst[1])
	assert.Equal(t, charts.Pt(1.0, 2.0), dst[2])
}

func TestStaticSeriesPublicSurface(t *testing.T) {
	s, err := charts.NewStaticSeries[float64](3)
	require.NoError(t, err)
	s.SetLabel("temperature")

	require.NoError(t, s.Push(charts.Pt(0.0, 21.5)))
	require.NoError(t, s.Push(charts.Pt(1.0, 22.0)))
	require.NoError(t, s.Push(charts.Pt(2.0, 21.0)))
	assert.ErrorIs(t, s.Push(charts.Pt(3.0, 20.0)), charts.ErrCapacityExceeded)

	assert.Equal(t, "temperature", s.Label())
	b, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, charts.Bounds[float64]{MinX: 0, MaxX: 2, MinY: 21, MaxY: 22}, b)
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range map[string]charts.InterpolationConfig{
		"default":      charts.DefaultInterpolationConfig(),
		"fast":         charts.PresetFast(),
		"smooth":       charts.PresetSmooth(),
		"high quality": charts.PresetHighQuality(),
	} {
		assert.NoError(t, cfg.Validate(), name)
	}
}

func TestSmooth(t *testing.T) {
	in := []charts.Point[float64]{
		charts.Pt(0.0, 0.0), charts.Pt(1.0, 4.0), charts.Pt(2.0, 1.0), charts.Pt(3.0, 5.0),
	}
	out, err := charts.Smooth(in)
	require.NoError(t, err)
	require.Equal(t, charts.OutputLen(len(in), charts.DefaultInterpolationConfig()), len(out))
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[len(in)-1], out[len(out)-1])
}

func TestSmoothWithInvalidConfig(t *testing.T) {
	in := []charts.Point[float64]{charts.Pt(0.0, 0.0), charts.Pt(1.0, 1.0)}
	cfg := charts.InterpolationConfig{Algorithm: charts.Linear, Subdivisions: 0}
	_, err := charts.SmoothWith(in, cfg)
	assert.ErrorIs(t, err, charts.ErrInvalidConfig)
}

func TestAggregatePublicSurface(t *testing.T) {
	in := []charts.Point[float64]{
		charts.Pt(0.0, 1.0), charts.Pt(1.0, 3.0), charts.Pt(2.0, 5.0), charts.Pt(3.0, 7.0),
	}
	cfg := charts.AggregationConfig{Strategy: charts.AggregateMean, TargetPoints: 2}
	dst := make([]charts.Point[float64], charts.AggregateLen(len(in), cfg))

	n, err := charts.Aggregate(in, cfg, dst)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, charts.Pt(0.5, 2.0), dst[0])
	assert.Equal(t, charts.Pt(2.5, 6.0), dst[1])

	down := make([]charts.Point[float64], 3)
	n, err = charts.DownsampleLTTB(in, 3, down)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	assert.Equal(t, in[0], down[0])
	assert.Equal(t, in[3], down[2])
}

func TestSmoothValues(t *testing.T) {
	ys, err := charts.SmoothValues([]float64{0, 2, 0}, charts.PresetFast())
	require.NoError(t, err)
	require.Len(t, ys, 5)
	assert.Equal(t, []float64{0, 1, 2, 1, 0}, ys)
}
