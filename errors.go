package charts

import (
	"github.com/signal-slot/embedded-charts/internal/curve"
	"github.com/signal-slot/embedded-charts/internal/data"
)

// Sentinel errors returned by the containers and the interpolation
// engine. Wrap checks go through errors.Is.
var (
	// ErrInvalidConfig reports a configuration rejected by validation.
	ErrInvalidConfig = data.ErrInvalidConfig

	// ErrBufferFull reports a push refused under RejectWhenFull.
	ErrBufferFull = data.ErrBufferFull

	// ErrCapacityExceeded reports a push to a full StaticSeries.
	ErrCapacityExceeded = data.ErrCapacityExceeded

	// ErrDestinationTooSmall reports a destination slice shorter than the
	// operation's output. The destination is left untouched.
	ErrDestinationTooSmall = data.ErrDestinationTooSmall

	// ErrEmptyBuffer reports a query that needs at least one sample.
	ErrEmptyBuffer = data.ErrEmptyBuffer

	// ErrInputTooLong reports an interpolation input longer than the
	// engine's static capacity, MaxInputPoints.
	ErrInputTooLong = curve.ErrInputTooLong
)
