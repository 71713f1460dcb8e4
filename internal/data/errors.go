package data

import "errors"

// Sentinel errors shared by the data containers and the packages built on
// top of them. Callers match with errors.Is; wrapped messages carry the
// offending values.
var (
	// ErrInvalidConfig indicates invalid configuration or call parameters.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBufferFull indicates a push was rejected by a ring buffer running
	// under the RejectWhenFull policy.
	ErrBufferFull = errors.New("ring buffer full")

	// ErrCapacityExceeded indicates an append-only container is at capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrDestinationTooSmall indicates a caller-provided destination cannot
	// hold the full result. Nothing is written when it is returned.
	ErrDestinationTooSmall = errors.New("destination buffer too small")

	// ErrEmptyBuffer indicates an aggregate query on a container that holds
	// no points. It marks absence of data, not a fault.
	ErrEmptyBuffer = errors.New("buffer is empty")
)
