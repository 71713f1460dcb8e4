package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/testutil"
)

func TestBoundsOf(t *testing.T) {
	_, ok := data.BoundsOf[float64](nil)
	assert.False(t, ok)

	b, ok := data.BoundsOf(testutil.Points(3, -1, -2, 7, 5, 0))
	require.True(t, ok)
	assert.Equal(t, data.Bounds[float64]{MinX: -2, MaxX: 5, MinY: -1, MaxY: 7}, b)
}

func TestBoundsUnionAndMerge(t *testing.T) {
	b := data.BoundsOfPoint(data.Pt(1.0, 1.0))
	b = b.Union(data.Pt(4.0, -2.0))
	assert.Equal(t, data.Bounds[float64]{MinX: 1, MaxX: 4, MinY: -2, MaxY: 1}, b)

	o := data.BoundsOfPoint(data.Pt(-3.0, 9.0))
	assert.Equal(t, data.Bounds[float64]{MinX: -3, MaxX: 4, MinY: -2, MaxY: 9}, b.Merge(o))
}

func TestBoundsGeometry(t *testing.T) {
	b := data.Bounds[float64]{MinX: -2, MaxX: 5, MinY: -1, MaxY: 7}
	assert.Equal(t, 7.0, b.Width())
	assert.Equal(t, 8.0, b.Height())
	assert.True(t, b.Contains(data.Pt(0.0, 0.0)))
	assert.True(t, b.Contains(data.Pt(-2.0, 7.0)), "edges are inside")
	assert.False(t, b.Contains(data.Pt(6.0, 0.0)))
}

func TestPointHelpers(t *testing.T) {
	p := data.Pt(1.0, 2.0)
	q := data.Pt(5.0, 10.0)
	assert.Equal(t, data.Pt(3.0, 6.0), p.Lerp(q, 1, 2))
	assert.Equal(t, p, p.Lerp(q, 0, 4))
	assert.Equal(t, q, p.Lerp(q, 4, 4))
	assert.Equal(t, 12.0, p.ManhattanDistance(q))

	pi := data.Pt(int16(0), int16(0))
	qi := data.Pt(int16(100), int16(50))
	assert.Equal(t, data.Pt(int16(50), int16(25)), pi.Lerp(qi, 1, 2))
}
