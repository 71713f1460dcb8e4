package data

import (
	"fmt"
	"iter"

	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// StaticSeries is an append-only fixed-capacity point store for producers
// that never need circular overwrite. Push fails once the series is full.
// Because nothing is ever evicted, the cached bounds only ever grow by
// union and never require a re-scan.
type StaticSeries[F numeric.Real] struct {
	data  []Point[F]
	count int

	bounds    Bounds[F]
	hasBounds bool

	label string
}

// NewStaticSeries creates an empty series holding up to capacity points.
func NewStaticSeries[F numeric.Real](capacity int) (*StaticSeries[F], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: series capacity must be at least 1, got %d", ErrInvalidConfig, capacity)
	}
	return &StaticSeries[F]{data: make([]Point[F], capacity)}, nil
}

// SetLabel attaches a display label to the series.
func (s *StaticSeries[F]) SetLabel(label string) { s.label = label }

// Label returns the display label, empty if none was set.
func (s *StaticSeries[F]) Label() string { return s.label }

// Push appends p. Once the series is at capacity it returns
// ErrCapacityExceeded and changes nothing.
func (s *StaticSeries[F]) Push(p Point[F]) error {
	if s.count == len(s.data) {
		return fmt.Errorf("%w: series capacity %d", ErrCapacityExceeded, len(s.data))
	}
	s.data[s.count] = p
	s.count++
	if s.hasBounds {
		s.bounds = s.bounds.Union(p)
	} else {
		s.bounds = BoundsOfPoint(p)
		s.hasBounds = true
	}
	return nil
}

// Extend appends points until the input is exhausted or the series fills,
// returning the number appended. A full series surfaces the push error
// alongside the partial count.
func (s *StaticSeries[F]) Extend(points []Point[F]) (int, error) {
	for i, p := range points {
		if err := s.Push(p); err != nil {
			return i, err
		}
	}
	return len(points), nil
}

// All returns a restartable iterator over the points in insertion order.
func (s *StaticSeries[F]) All() iter.Seq[Point[F]] {
	return func(yield func(Point[F]) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// AsSlice returns a read-only view of the stored points. The slice aliases
// internal storage and is invalidated by Push and Clear.
func (s *StaticSeries[F]) AsSlice() []Point[F] {
	return s.data[:s.count]
}

// CopyTo writes the stored points into dst in insertion order. If dst
// cannot hold them all it returns ErrDestinationTooSmall and writes nothing.
func (s *StaticSeries[F]) CopyTo(dst []Point[F]) (int, error) {
	if len(dst) < s.count {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrDestinationTooSmall, s.count, len(dst))
	}
	copy(dst, s.data[:s.count])
	return s.count, nil
}

// Bounds returns the exact envelope over the stored points. ok is false
// when the series is empty.
func (s *StaticSeries[F]) Bounds() (Bounds[F], bool) {
	return s.bounds, s.hasBounds
}

// Len returns the number of stored points.
func (s *StaticSeries[F]) Len() int { return s.count }

// Cap returns the fixed capacity.
func (s *StaticSeries[F]) Cap() int { return len(s.data) }

// Remaining returns the number of free slots.
func (s *StaticSeries[F]) Remaining() int { return len(s.data) - s.count }

// IsEmpty reports whether no points are stored.
func (s *StaticSeries[F]) IsEmpty() bool { return s.count == 0 }

// IsFull reports whether the series is at capacity.
func (s *StaticSeries[F]) IsFull() bool { return s.count == len(s.data) }

// Clear discards all stored points, keeping the storage and label.
func (s *StaticSeries[F]) Clear() {
	s.count = 0
	s.hasBounds = false
	s.bounds = Bounds[F]{}
}

// MultiSeries is a fixed-capacity collection of static series sharing one
// coordinate space, e.g. the lines of a multi-line chart.
type MultiSeries[F numeric.Real] struct {
	series []*StaticSeries[F]
	count  int
}

// NewMultiSeries creates an empty collection holding up to maxSeries series.
func NewMultiSeries[F numeric.Real](maxSeries int) (*MultiSeries[F], error) {
	if maxSeries < 1 {
		return nil, fmt.Errorf("%w: multi-series capacity must be at least 1, got %d", ErrInvalidConfig, maxSeries)
	}
	return &MultiSeries[F]{series: make([]*StaticSeries[F], maxSeries)}, nil
}

// Add appends a series and returns its index. A full collection returns
// ErrCapacityExceeded.
func (m *MultiSeries[F]) Add(s *StaticSeries[F]) (int, error) {
	if m.count == len(m.series) {
		return 0, fmt.Errorf("%w: multi-series capacity %d", ErrCapacityExceeded, len(m.series))
	}
	m.series[m.count] = s
	m.count++
	return m.count - 1, nil
}

// Series returns the series at index i.
func (m *MultiSeries[F]) Series(i int) (*StaticSeries[F], bool) {
	if i < 0 || i >= m.count {
		return nil, false
	}
	return m.series[i], true
}

// Count returns the number of series held.
func (m *MultiSeries[F]) Count() int { return m.count }

// CombinedBounds returns the envelope covering every non-empty series.
// ok is false when no series holds any points.
func (m *MultiSeries[F]) CombinedBounds() (Bounds[F], bool) {
	var combined Bounds[F]
	have := false
	for i := 0; i < m.count; i++ {
		b, ok := m.series[i].Bounds()
		if !ok {
			continue
		}
		if have {
			combined = combined.Merge(b)
		} else {
			combined = b
			have = true
		}
	}
	return combined, have
}

// Clear drops every held series reference.
func (m *MultiSeries[F]) Clear() {
	for i := 0; i < m.count; i++ {
		m.series[i] = nil
	}
	m.count = 0
}
