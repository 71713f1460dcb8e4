package charts

import (
	"github.com/signal-slot/embedded-charts/internal/data"
	"github.com/signal-slot/embedded-charts/internal/numeric"
)

// Real is the coordinate constraint shared by every container and
// algorithm: either float backend, or an integer backend treated as
// fixed-point by convention.
type Real = numeric.Real

// Point is a single 2D sample.
type Point[F Real] = data.Point[F]

// Bounds is the axis-aligned envelope of a point set.
type Bounds[F Real] = data.Bounds[F]

// RingBuffer is a fixed-capacity circular sample buffer. See
// NewRingBuffer.
type RingBuffer[F Real] = data.RingBuffer[F]

// StaticSeries is a fixed-capacity append-only sample collection. See
// NewStaticSeries.
type StaticSeries[F Real] = data.StaticSeries[F]

// MultiSeries is a fixed-capacity collection of StaticSeries.
type MultiSeries[F Real] = data.MultiSeries[F]

// RingBufferConfig configures a RingBuffer's overflow policy and event
// callback.
type RingBufferConfig = data.RingBufferConfig

// RingBufferStats carries a RingBuffer's lifetime write counters.
type RingBufferStats = data.RingBufferStats

// OverflowPolicy selects what a full RingBuffer does with a new sample.
type OverflowPolicy = data.OverflowPolicy

// Event identifies a RingBuffer state transition reported through the
// OnEvent callback.
type Event = data.Event

// PushOutcome reports what a RingBuffer push did with the sample.
type PushOutcome = data.PushOutcome

const (
	// Overwrite evicts the oldest sample when the buffer is full.
	Overwrite = data.Overwrite
	// RejectWhenFull refuses new samples when the buffer is full.
	RejectWhenFull = data.RejectWhenFull
)

const (
	// EventBufferFull fires on the push that first fills the buffer.
	EventBufferFull = data.EventBufferFull
	// EventWrapped fires on every push that overwrites an old sample.
	EventWrapped = data.EventWrapped
	// EventBoundsChanged fires when a push changes the tracked bounds.
	EventBoundsChanged = data.EventBoundsChanged
)

const (
	// PushRejected means the sample was refused and nothing changed.
	PushRejected = data.PushRejected
	// PushStored means the sample was stored without evicting anything.
	PushStored = data.PushStored
	// PushEvicted means the sample replaced the oldest one.
	PushEvicted = data.PushEvicted
)

// Pt builds a Point from its coordinates.
func Pt[F Real](x, y F) Point[F] {
	return data.Pt(x, y)
}

// NewRingBuffer creates a ring buffer holding up to capacity samples. All
// memory is allocated here; pushes never allocate.
func NewRingBuffer[F Real](capacity int, cfg RingBufferConfig) (*RingBuffer[F], error) {
	return data.NewRingBuffer[F](capacity, cfg)
}

// NewStaticSeries creates an append-only series holding up to capacity
// samples.
func NewStaticSeries[F Real](capacity int) (*StaticSeries[F], error) {
	return data.NewStaticSeries[F](capacity)
}

// NewMultiSeries creates a collection holding up to maxSeries series.
func NewMultiSeries[F Real](maxSeries int) (*MultiSeries[F], error) {
	return data.NewMultiSeries[F](maxSeries)
}
