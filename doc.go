// Package charts provides memory-bounded data containers and curve
// interpolation for real-time 2D charting on constrained targets.
//
// All containers allocate their full capacity once at construction and
// never grow; steady-state operations (push, iterate, interpolate,
// aggregate) allocate nothing. Coordinates are generic over the Real
// constraint, so the same pipeline runs on float64 hosts and on integer
// fixed-point backends.
//
// # Features
//
//   - Fixed-capacity RingBuffer with overwrite and reject overflow policies
//   - Incremental bounds tracking with exact re-scan on eviction
//   - Append-only StaticSeries and labeled MultiSeries collections
//   - Four interpolation algorithms: linear, natural cubic spline,
//     Catmull-Rom (tension-controlled), and composite cubic Bezier
//   - Open and closed curve generation into caller-provided buffers
//   - Bucket aggregation and LTTB downsampling for display-rate reduction
//   - Optional SIMD acceleration (AVX2/SSE) via github.com/tphakala/simd
//
// # Quick Start
//
// For one-shot smoothing of a sample slice:
//
//	curve, err := charts.Smooth(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For a live feed, CurveStream couples a ring buffer with the
// interpolation engine:
//
//	stream, err := charts.NewCurveStream[float64](128,
//	    charts.RingBufferConfig{Policy: charts.Overwrite},
//	    charts.PresetSmooth())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dst := make([]charts.Point[float64], stream.MaxCurveLen())
//	for sample := range feed {
//	    stream.Push(sample)
//	    n, err := stream.Curve(dst)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    render(dst[:n])
//	}
//
// # Concurrency
//
// Containers are not synchronized. A single writer and a single reader
// must coordinate externally; the iteration helpers snapshot into
// caller-owned memory so a render pass never races a push.
package charts
