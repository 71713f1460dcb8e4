package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/testutil"
)

func TestStaticSeries_PushUntilFull(t *testing.T) {
	s, err := data.NewStaticSeries[float64](3)
	require.NoError(t, err)

	require.NoError(t, s.Push(data.Pt(0.0, 1.0)))
	require.NoError(t, s.Push(data.Pt(1.0, 2.0)))
	require.NoError(t, s.Push(data.Pt(2.0, 3.0)))
	assert.True(t, s.IsFull())
	assert.Equal(t, 0, s.Remaining())

	err = s.Push(data.Pt(3.0, 4.0))
	require.ErrorIs(t, err, data.ErrCapacityExceeded)

	// The failed push changes nothing.
	assert.Equal(t, 3, s.Len())
	testutil.AssertPointsInDelta(t, testutil.Points(0, 1, 1, 2, 2, 3), s.AsSlice(), 0)
	bounds, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, data.Bounds[float64]{MinX: 0, MaxX: 2, MinY: 1, MaxY: 3}, bounds)
}

func TestStaticSeries_InvalidCapacity(t *testing.T) {
	_, err := data.NewStaticSeries[float64](0)
	require.ErrorIs(t, err, data.ErrInvalidConfig)
}

func TestStaticSeries_Extend(t *testing.T) {
	s, err := data.NewStaticSeries[float64](4)
	require.NoError(t, err)

	n, err := s.Extend(testutil.Points(0, 0, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.Extend(testutil.Points(2, 2, 3, 3, 4, 4))
	require.ErrorIs(t, err, data.ErrCapacityExceeded)
	assert.Equal(t, 2, n)
	assert.Equal(t, 4, s.Len())
}

func TestStaticSeries_IterationOrder(t *testing.T) {
	s, err := data.NewStaticSeries[float64](8)
	require.NoError(t, err)
	_, err = s.Extend(testutil.Points(5, 1, 3, 2, 9, 3))
	require.NoError(t, err)

	var got []data.Point[float64]
	for p := range s.All() {
		got = append(got, p)
	}
	testutil.AssertPointsInDelta(t, testutil.Points(5, 1, 3, 2, 9, 3), got, 0)

	// Restartable: a second traversal sees the same points.
	count := 0
	for range s.All() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestStaticSeries_BoundsGrowByUnion(t *testing.T) {
	s, err := data.NewStaticSeries[float64](16)
	require.NoError(t, err)

	_, ok := s.Bounds()
	assert.False(t, ok)

	for i, p := range testutil.SinePoints(10, 5, 1) {
		require.NoError(t, s.Push(p))
		bounds, ok := s.Bounds()
		require.True(t, ok)
		assert.Equal(t, testutil.BruteBounds(s.AsSlice()), bounds, "push %d", i)
	}
}

func TestStaticSeries_CopyTo(t *testing.T) {
	s, err := data.NewStaticSeries[float64](4)
	require.NoError(t, err)
	_, err = s.Extend(testutil.Points(1, 1, 2, 2, 3, 3))
	require.NoError(t, err)

	small := make([]data.Point[float64], 2)
	testutil.FillSentinel(small, -1)
	_, err = s.CopyTo(small)
	require.ErrorIs(t, err, data.ErrDestinationTooSmall)
	testutil.AssertAllSentinel(t, small, -1)

	dst := make([]data.Point[float64], 8)
	n, err := s.CopyTo(dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStaticSeries_Label(t *testing.T) {
	s, err := data.NewStaticSeries[float64](2)
	require.NoError(t, err)
	assert.Empty(t, s.Label())
	s.SetLabel("temperature")
	assert.Equal(t, "temperature", s.Label())

	s.Clear()
	assert.Equal(t, "temperature", s.Label(), "clear keeps the label")
	assert.True(t, s.IsEmpty())
}

func TestMultiSeries_CombinedBounds(t *testing.T) {
	m, err := data.NewMultiSeries[float64](3)
	require.NoError(t, err)

	_, ok := m.CombinedBounds()
	assert.False(t, ok)

	a, err := data.NewStaticSeries[float64](4)
	require.NoError(t, err)
	_, err = a.Extend(testutil.Points(0, 0, 1, 10))
	require.NoError(t, err)

	b, err := data.NewStaticSeries[float64](4)
	require.NoError(t, err)
	_, err = b.Extend(testutil.Points(-5, 3, 2, 4))
	require.NoError(t, err)

	empty, err := data.NewStaticSeries[float64](4)
	require.NoError(t, err)

	idx, err := m.Add(a)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	_, err = m.Add(b)
	require.NoError(t, err)
	_, err = m.Add(empty)
	require.NoError(t, err)

	_, err = m.Add(a)
	require.ErrorIs(t, err, data.ErrCapacityExceeded)

	bounds, ok := m.CombinedBounds()
	require.True(t, ok)
	assert.Equal(t, data.Bounds[float64]{MinX: -5, MaxX: 2, MinY: 0, MaxY: 10}, bounds)

	got, ok := m.Series(1)
	require.True(t, ok)
	assert.Same(t, b, got)
	_, ok = m.Series(7)
	assert.False(t, ok)
}
