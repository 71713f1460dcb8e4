// Package numeric defines the arithmetic capability shared by every math
// backend the library compiles against.
//
// Charts are rendered on anything from an FPU-equipped application processor
// down to integer-only microcontrollers, so algorithm code is written against
// the Real constraint rather than a concrete float type. Everything in this
// module restricts itself to the four basic operations and ordering; integer
// backends trade fractional precision for portability, which is an accepted
// property of the library, not a defect.
package numeric

// Real is the type constraint for coordinate backends. Floating-point
// backends behave as expected; integer backends are interpreted as
// pre-scaled fixed-point values and truncate on division.
type Real interface {
	~float32 | ~float64 | ~int16 | ~int32 | ~int64
}

// Abs returns the absolute value of v.
func Abs[F Real](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of a and b.
func Min[F Real](a, b F) F {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[F Real](a, b F) F {
	if b > a {
		return b
	}
	return a
}

// Clamp limits v to the range [lo, hi].
func Clamp[F Real](v, lo, hi F) F {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// integerBackend reports whether F truncates division. The check is a
// constant per instantiation.
func integerBackend[F Real]() bool {
	return F(3)/F(2) == F(1)
}

// Lerp computes a + (b-a)*num/den without leaving the backend's value
// range. Integer backends widen to int64 so a span wider than the backend
// type cannot wrap, and the truncated step is constant across num, which
// keeps the sequence for num = 0..den non-decreasing whenever a <= b.
// num = 0 yields a exactly and num = den yields b exactly. int64 backends
// assume the endpoint span itself fits in int64.
func Lerp[F Real](a, b F, num, den int) F {
	switch num {
	case 0:
		return a
	case den:
		return b
	}
	if integerBackend[F]() {
		span := int64(b) - int64(a)
		return F(int64(a) + span/int64(den)*int64(num))
	}
	return a + (b-a)/F(den)*F(num)
}

// ScaleRatio computes v*num/den. Integer backends multiply first in int64
// so small values scaled by a fine ratio are not truncated to zero.
func ScaleRatio[F Real](v F, num, den int) F {
	if integerBackend[F]() {
		return F(int64(v) * int64(num) / int64(den))
	}
	return v / F(den) * F(num)
}
