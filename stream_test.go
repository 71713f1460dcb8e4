package charts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	charts "github.com/signal-slot/embedded-charts"
)

func TestNewCurveStreamErrors(t *testing.T) {
	ringCfg := charts.RingBufferConfig{Policy: charts.Overwrite}

	_, err := charts.NewCurveStream[float64](0, ringCfg, charts.PresetSmooth())
	assert.ErrorIs(t, err, charts.ErrInvalidConfig)

	_, err = charts.NewCurveStream[float64](charts.MaxInputPoints+1, ringCfg, charts.PresetSmooth())
	assert.ErrorIs(t, err, charts.ErrInvalidConfig)

	bad := charts.PresetSmooth()
	bad.Tension = 2
	_, err = charts.NewCurveStream[float64](16, ringCfg, bad)
	assert.ErrorIs(t, err, charts.ErrInvalidConfig)
}

func TestCurveStreamLiveWindow(t *testing.T) {
	stream, err := charts.NewCurveStream[float64](8,
		charts.RingBufferConfig{Policy: charts.Overwrite}, charts.PresetSmooth())
	require.NoError(t, err)

	dst := make([]charts.Point[float64], stream.MaxCurveLen())

	// Fill past capacity so the window wraps.
	for i := 0; i < 20; i++ {
		x := float64(i)
		_, err := stream.Push(charts.Pt(x, x*x))
		require.NoError(t, err)
	}
	require.Equal(t, 8, stream.Len())

	n, err := stream.Curve(dst)
	require.NoError(t, err)
	require.Equal(t, stream.RequiredCurveLen(), n)

	// The curve spans exactly the surviving window, oldest to newest.
	assert.Equal(t, charts.Pt(12.0, 144.0), dst[0])
	assert.Equal(t, charts.Pt(19.0, 361.0), dst[n-1])

	avg, err := stream.MovingAverage(2)
	require.NoError(t, err)
	assert.InDelta(t, (18.0*18+19*19)/2, avg, 1e-9)

	stats := stream.Stats()
	assert.Equal(t, uint64(20), stats.TotalWrites)
	assert.Equal(t, uint64(12), stats.Overflows)
}

func TestCurveStreamPartialWindow(t *testing.T) {
	stream, err := charts.NewCurveStream[float64](16,
		charts.RingBufferConfig{Policy: charts.Overwrite}, charts.PresetFast())
	require.NoError(t, err)

	dst := make([]charts.Point[float64], stream.MaxCurveLen())

	// Empty stream produces an empty curve.
	n, err := stream.Curve(dst)
	require.NoError(t, err)
	assert.Zero(t, n)

	// One sample passes through.
	_, err = stream.Push(charts.Pt(5.0, 7.0))
	require.NoError(t, err)
	n, err = stream.Curve(dst)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, charts.Pt(5.0, 7.0), dst[0])
}

func TestCurveStreamSetConfig(t *testing.T) {
	stream, err := charts.NewCurveStream[float64](8,
		charts.RingBufferConfig{Policy: charts.Overwrite}, charts.PresetFast())
	require.NoError(t, err)

	bad := charts.PresetFast()
	bad.Subdivisions = charts.MaxSubdivisions + 1
	assert.ErrorIs(t, stream.SetConfig(bad), charts.ErrInvalidConfig)
	assert.Equal(t, charts.PresetFast(), stream.Config())

	require.NoError(t, stream.SetConfig(charts.PresetHighQuality()))
	assert.Equal(t, charts.PresetHighQuality(), stream.Config())
}

func TestCurveStreamDestinationTooSmall(t *testing.T) {
	stream, err := charts.NewCurveStream[float64](8,
		charts.RingBufferConfig{Policy: charts.Overwrite}, charts.PresetSmooth())
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		_, err := stream.Push(charts.Pt(float64(i), float64(i)))
		require.NoError(t, err)
	}

	dst := make([]charts.Point[float64], stream.RequiredCurveLen()-1)
	_, err = stream.Curve(dst)
	assert.ErrorIs(t, err, charts.ErrDestinationTooSmall)
}

func TestCurveStreamClear(t *testing.T) {
	stream, err := charts.NewStreamingPlot[float64](8)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		_, err := stream.Push(charts.Pt(float64(i), 1.0))
		require.NoError(t, err)
	}
	stream.Clear()
	assert.Zero(t, stream.Len())
	assert.Equal(t, 8, stream.Cap())
	_, ok := stream.Bounds()
	assert.False(t, ok)
}

func BenchmarkCurveStream(b *testing.B) {
	stream, err := charts.NewStreamingPlot[float64](128)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]charts.Point[float64], stream.MaxCurveLen())
	for i := 0; i < 128; i++ {
		if _, err := stream.Push(charts.Pt(float64(i), float64(i%17))); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stream.Push(charts.Pt(float64(i), float64(i%13))); err != nil {
			b.Fatal(err)
		}
		if _, err := stream.Curve(dst); err != nil {
			b.Fatal(err)
		}
	}
}
