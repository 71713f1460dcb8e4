package charts

import (
	"fmt"

	"github.com/signal-slot/embedded-charts/internal/curve"
	"github.com/signal-slot/embedded-charts/internal/data"
)

// CurveStream couples a RingBuffer with the interpolation engine: samples
// stream in one at a time, and a smooth curve over the current window can
// be generated at any moment into a caller-provided buffer.
//
// The snapshot scratch is allocated once at construction, so Push and
// Curve are both allocation-free. Like the underlying containers, a
// CurveStream is not synchronized.
type CurveStream[F Real] struct {
	ring *data.RingBuffer[F]
	cfg  curve.Config
	snap []data.Point[F]
}

// NewCurveStream creates a stream over a ring buffer of the given
// capacity. The capacity must not exceed MaxInputPoints, since every
// buffered sample feeds the interpolation engine.
func NewCurveStream[F Real](capacity int, ringCfg RingBufferConfig, interpCfg InterpolationConfig) (*CurveStream[F], error) {
	if err := interpCfg.Validate(); err != nil {
		return nil, err
	}
	if capacity > curve.MaxInputPoints {
		return nil, fmt.Errorf("%w: capacity %d exceeds engine input limit %d",
			ErrInvalidConfig, capacity, curve.MaxInputPoints)
	}
	ring, err := data.NewRingBuffer[F](capacity, ringCfg)
	if err != nil {
		return nil, err
	}
	return &CurveStream[F]{
		ring: ring,
		cfg:  interpCfg,
		snap: make([]data.Point[F], capacity),
	}, nil
}

// Push appends a sample to the stream's window.
func (s *CurveStream[F]) Push(p Point[F]) (PushOutcome, error) {
	return s.ring.Push(p)
}

// Curve snapshots the current window in chronological order and
// interpolates it into dst, returning the number of points written.
func (s *CurveStream[F]) Curve(dst []Point[F]) (int, error) {
	n, err := s.ring.CopyChronological(s.snap)
	if err != nil {
		return 0, err
	}
	return curve.Interpolate(s.snap[:n], s.cfg, dst)
}

// RequiredCurveLen returns the destination length Curve needs right now.
func (s *CurveStream[F]) RequiredCurveLen() int {
	return curve.OutputLen(s.ring.Len(), s.cfg)
}

// MaxCurveLen returns the destination length that suffices for any state
// of the stream, for sizing dst once at startup.
func (s *CurveStream[F]) MaxCurveLen() int {
	return curve.OutputLen(s.ring.Cap(), s.cfg)
}

// Config returns the current interpolation configuration.
func (s *CurveStream[F]) Config() InterpolationConfig { return s.cfg }

// SetConfig replaces the interpolation configuration. The stream is
// unchanged if the new configuration fails validation.
func (s *CurveStream[F]) SetConfig(cfg InterpolationConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Bounds returns the envelope of the buffered samples.
func (s *CurveStream[F]) Bounds() (Bounds[F], bool) { return s.ring.Bounds() }

// MovingAverage returns the mean y of the most recent window samples.
func (s *CurveStream[F]) MovingAverage(window int) (F, error) {
	return s.ring.MovingAverage(window)
}

// Len returns the number of buffered samples.
func (s *CurveStream[F]) Len() int { return s.ring.Len() }

// Cap returns the stream's fixed window capacity.
func (s *CurveStream[F]) Cap() int { return s.ring.Cap() }

// Stats returns the underlying ring buffer's lifetime counters.
func (s *CurveStream[F]) Stats() RingBufferStats { return s.ring.Stats() }

// Clear empties the window. Configuration and capacity are unchanged.
func (s *CurveStream[F]) Clear() { s.ring.Clear() }
