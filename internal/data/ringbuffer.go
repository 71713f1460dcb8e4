package data

import (
	"fmt"
	"iter"

	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// OverflowPolicy selects the behavior of a full ring buffer.
type OverflowPolicy int

const (
	// Overwrite evicts the oldest point to make room (default).
	Overwrite OverflowPolicy = iota

	// RejectWhenFull fails the push and leaves the buffer untouched.
	RejectWhenFull
)

// String returns the policy name.
func (p OverflowPolicy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case RejectWhenFull:
		return "reject-when-full"
	default:
		return "unknown"
	}
}

// Event identifies a state transition reported through the event sink.
type Event int

const (
	// EventBufferFull fires on the push that first fills the buffer.
	EventBufferFull Event = iota

	// EventWrapped fires on every overwriting push once the buffer is full.
	EventWrapped

	// EventBoundsChanged fires whenever a push changes the cached bounds.
	EventBoundsChanged
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventBufferFull:
		return "buffer-full"
	case EventWrapped:
		return "wrapped"
	case EventBoundsChanged:
		return "bounds-changed"
	default:
		return "unknown"
	}
}

// PushOutcome reports what a successful push did.
type PushOutcome int

const (
	// PushRejected is the zero outcome accompanying a push error.
	PushRejected PushOutcome = iota

	// PushStored means the point occupied a previously free slot.
	PushStored

	// PushEvicted means the oldest point was overwritten to make room.
	PushEvicted
)

// RingBufferConfig configures a ring buffer. The zero value is valid:
// Overwrite policy and no event sink.
type RingBufferConfig struct {
	// Policy is the overflow behavior once the buffer is full.
	Policy OverflowPolicy

	// OnEvent, when non-nil, is invoked synchronously from Push on buffer
	// state transitions. The callback must be non-blocking and must not
	// call back into the buffer.
	OnEvent func(Event)
}

// RingBufferStats counts buffer activity since construction. Clear does
// not reset the counters.
type RingBufferStats struct {
	// TotalWrites is the number of accepted pushes.
	TotalWrites uint64

	// Overflows is the number of pushes that evicted a point.
	Overflows uint64

	// PeakCount is the highest fill level observed.
	PeakCount int
}

// RingBuffer is a fixed-capacity circular store of points with incremental
// bounds tracking. Storage is allocated once at construction; Push,
// iteration, and every query afterwards are allocation-free.
//
// The buffer assumes a single logical writer and no reader concurrent with
// a push; the caller serializes producer and consumer access.
type RingBuffer[F numeric.Real] struct {
	data  []Point[F]
	write int // next slot to write
	count int

	bounds    Bounds[F]
	hasBounds bool

	cfg   RingBufferConfig
	stats RingBufferStats
}

// NewRingBuffer creates an empty ring buffer holding up to capacity points.
func NewRingBuffer[F numeric.Real](capacity int, cfg RingBufferConfig) (*RingBuffer[F], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: ring buffer capacity must be at least 1, got %d", ErrInvalidConfig, capacity)
	}
	return &RingBuffer[F]{
		data: make([]Point[F], capacity),
		cfg:  cfg,
	}, nil
}

// Push stores p, evicting the oldest point when full under the Overwrite
// policy. Under RejectWhenFull a push against a full buffer returns
// ErrBufferFull and changes nothing. A push either fully applies — slot,
// cursor, count, bounds, and stats updated together — or is fully rejected.
func (b *RingBuffer[F]) Push(p Point[F]) (PushOutcome, error) {
	wasFull := b.count == len(b.data)
	if wasFull && b.cfg.Policy == RejectWhenFull {
		return PushRejected, fmt.Errorf("%w: capacity %d", ErrBufferFull, len(b.data))
	}

	b.data[b.write] = p
	b.write = (b.write + 1) % len(b.data)

	outcome := PushStored
	if wasFull {
		outcome = PushEvicted
		b.stats.Overflows++
	} else {
		b.count++
	}
	b.stats.TotalWrites++
	if b.count > b.stats.PeakCount {
		b.stats.PeakCount = b.count
	}

	prev, prevValid := b.bounds, b.hasBounds
	if wasFull {
		// The evicted point may have defined an extremum, so a union with
		// the new point is not enough: recompute over every retained slot.
		b.bounds, b.hasBounds = BoundsOf(b.data)
	} else if b.hasBounds {
		b.bounds = b.bounds.Union(p)
	} else {
		b.bounds = BoundsOfPoint(p)
		b.hasBounds = true
	}

	if b.cfg.OnEvent != nil {
		if !wasFull && b.count == len(b.data) {
			b.cfg.OnEvent(EventBufferFull)
		}
		if wasFull {
			b.cfg.OnEvent(EventWrapped)
		}
		if b.hasBounds != prevValid || b.bounds != prev {
			b.cfg.OnEvent(EventBoundsChanged)
		}
	}

	return outcome, nil
}

// oldest returns the physical index of the chronologically first point.
// Only meaningful when count > 0.
func (b *RingBuffer[F]) oldest() int {
	return (b.write - b.count + len(b.data)) % len(b.data)
}

// Chronological returns a restartable iterator yielding the retained points
// oldest-to-newest, independent of physical slot order. Each range over the
// returned sequence is a fresh traversal.
func (b *RingBuffer[F]) Chronological() iter.Seq[Point[F]] {
	return func(yield func(Point[F]) bool) {
		start := b.oldest()
		for i := 0; i < b.count; i++ {
			if !yield(b.data[(start+i)%len(b.data)]) {
				return
			}
		}
	}
}

// Recent returns a restartable iterator over the n most recently pushed
// points, oldest of that window first. n larger than the fill count yields
// every retained point.
func (b *RingBuffer[F]) Recent(n int) iter.Seq[Point[F]] {
	return func(yield func(Point[F]) bool) {
		n := min(n, b.count)
		start := (b.write - n + len(b.data)) % len(b.data)
		for i := 0; i < n; i++ {
			if !yield(b.data[(start+i)%len(b.data)]) {
				return
			}
		}
	}
}

// CopyChronological writes the retained points oldest-first into dst and
// returns the number written. If dst cannot hold every retained point it
// returns ErrDestinationTooSmall and writes nothing.
func (b *RingBuffer[F]) CopyChronological(dst []Point[F]) (int, error) {
	if len(dst) < b.count {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrDestinationTooSmall, b.count, len(dst))
	}
	start := b.oldest()
	for i := 0; i < b.count; i++ {
		dst[i] = b.data[(start+i)%len(b.data)]
	}
	return b.count, nil
}

// MovingAverage returns the mean y value of the window most recently pushed
// points, or of every retained point when fewer are held. A window below 1
// is a caller error reported as ErrInvalidConfig; an empty buffer reports
// ErrEmptyBuffer.
func (b *RingBuffer[F]) MovingAverage(window int) (F, error) {
	var zero F
	if window < 1 {
		return zero, fmt.Errorf("%w: moving average window must be at least 1, got %d", ErrInvalidConfig, window)
	}
	if b.count == 0 {
		return zero, ErrEmptyBuffer
	}

	n := min(window, b.count)
	start := (b.write - n + len(b.data)) % len(b.data)
	var sum F
	for i := 0; i < n; i++ {
		sum += b.data[(start+i)%len(b.data)].Y
	}
	return sum / F(n), nil
}

// RateOfChange returns dy/dx between the oldest and newest retained points.
// ok is false when fewer than two points are held or the x span is zero.
func (b *RingBuffer[F]) RateOfChange() (F, bool) {
	var zero F
	if b.count < 2 {
		return zero, false
	}
	oldest := b.data[b.oldest()]
	newest := b.data[(b.write-1+len(b.data))%len(b.data)]
	dx := newest.X - oldest.X
	if dx == 0 {
		return zero, false
	}
	return (newest.Y - oldest.Y) / dx, true
}

// Peek returns the oldest retained point without removing it.
func (b *RingBuffer[F]) Peek() (Point[F], bool) {
	if b.count == 0 {
		return Point[F]{}, false
	}
	return b.data[b.oldest()], true
}

// PeekNewest returns the most recently pushed point.
func (b *RingBuffer[F]) PeekNewest() (Point[F], bool) {
	if b.count == 0 {
		return Point[F]{}, false
	}
	return b.data[(b.write-1+len(b.data))%len(b.data)], true
}

// Bounds returns the exact envelope over the currently retained points.
// ok is false when the buffer is empty.
func (b *RingBuffer[F]) Bounds() (Bounds[F], bool) {
	return b.bounds, b.hasBounds
}

// Len returns the number of retained points.
func (b *RingBuffer[F]) Len() int { return b.count }

// Cap returns the fixed capacity.
func (b *RingBuffer[F]) Cap() int { return len(b.data) }

// IsEmpty reports whether no points are retained.
func (b *RingBuffer[F]) IsEmpty() bool { return b.count == 0 }

// IsFull reports whether the buffer is at capacity.
func (b *RingBuffer[F]) IsFull() bool { return b.count == len(b.data) }

// Stats returns activity counters since construction.
func (b *RingBuffer[F]) Stats() RingBufferStats { return b.stats }

// Clear discards all retained points and the cached bounds. Stats survive;
// the storage is kept so Clear never allocates.
func (b *RingBuffer[F]) Clear() {
	b.write = 0
	b.count = 0
	b.hasBounds = false
	b.bounds = Bounds[F]{}
}
