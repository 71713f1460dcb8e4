package charts

import (
	"github.com/signal-slot/embedded-charts/internal/aggregate"
)

// AggregationStrategy selects how each bucket of samples collapses into
// output points.
type AggregationStrategy = aggregate.Strategy

const (
	// AggregateMean emits the centroid of each bucket.
	AggregateMean = aggregate.Mean
	// AggregateMin emits each bucket's smallest-y sample.
	AggregateMin = aggregate.Min
	// AggregateMax emits each bucket's largest-y sample.
	AggregateMax = aggregate.Max
	// AggregateFirst emits each bucket's first sample.
	AggregateFirst = aggregate.First
	// AggregateLast emits each bucket's last sample.
	AggregateLast = aggregate.Last
	// AggregateMinMax emits both y extremes of each bucket in x order.
	AggregateMinMax = aggregate.MinMax
)

// AggregationConfig controls a single Aggregate pass.
type AggregationConfig = aggregate.Config

// Aggregate buckets input into cfg.TargetPoints groups, applies the
// strategy to each, and writes the result to dst. Inputs no longer than
// the target pass through unchanged. A failed call leaves dst untouched.
func Aggregate[F Real](input []Point[F], cfg AggregationConfig, dst []Point[F]) (int, error) {
	return aggregate.Aggregate(input, cfg, dst)
}

// AggregateLen returns the number of points Aggregate produces for an
// input of inputLen samples under cfg.
func AggregateLen(inputLen int, cfg AggregationConfig) int {
	return aggregate.OutputLen(inputLen, cfg)
}

// DownsampleUniform selects maxPoints evenly spaced samples from input,
// always keeping both endpoints.
func DownsampleUniform[F Real](input []Point[F], maxPoints int, dst []Point[F]) (int, error) {
	return aggregate.DownsampleUniform(input, maxPoints, dst)
}

// DownsampleLTTB reduces input to maxPoints samples with the
// largest-triangle-three-buckets method, preserving visual shape better
// than uniform selection. Both endpoints are always kept.
func DownsampleLTTB[F Real](input []Point[F], maxPoints int, dst []Point[F]) (int, error) {
	return aggregate.DownsampleLTTB(input, maxPoints, dst)
}
