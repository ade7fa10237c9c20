// Package fpround implements directed-rounding float64 primitives.
//
// Go offers no control over the hardware rounding mode, so each primitive
// computes the round-to-nearest result together with an exact error term
// (TwoSum for addition, math.FMA residuals for multiplication, division and
// square root) and perturbs the result by one ulp outward only when the
// nearest result lies on the wrong side of the true value. Every primitive
// is a pure function of its inputs; nothing here mutates shared state, so
// all of them are safe to call concurrently.
package fpround

import "math"

// Below this magnitude the FMA residual of a product, quotient or square
// can itself round to zero while the true residual is nonzero, so exactness
// can no longer be certified and the result is widened unconditionally.
const tiny = 0x1p-969

// NextDown returns the largest float64 strictly smaller than x.
// NextDown(-Inf) is -Inf.
func NextDown(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

// NextUp returns the smallest float64 strictly larger than x.
// NextUp(+Inf) is +Inf.
func NextUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

// twoSumErr returns the exact rounding error of s = a + b, valid for finite s.
func twoSumErr(a, b, s float64) float64 {
	bv := s - a
	return (a - (s - bv)) + (b - bv)
}

// AddDown returns a + b rounded toward -Inf.
func AddDown(a, b float64) float64 {
	s := a + b
	if math.IsNaN(s) {
		return s
	}
	if math.IsInf(s, 1) && !math.IsInf(a, 1) && !math.IsInf(b, 1) {
		// Overflow: the true sum is finite but above MaxFloat64.
		return math.MaxFloat64
	}
	if math.IsInf(s, 0) {
		return s
	}
	if twoSumErr(a, b, s) < 0 {
		return NextDown(s)
	}
	return s
}

// AddUp returns a + b rounded toward +Inf.
func AddUp(a, b float64) float64 {
	s := a + b
	if math.IsNaN(s) {
		return s
	}
	if math.IsInf(s, -1) && !math.IsInf(a, -1) && !math.IsInf(b, -1) {
		return -math.MaxFloat64
	}
	if math.IsInf(s, 0) {
		return s
	}
	if twoSumErr(a, b, s) > 0 {
		return NextUp(s)
	}
	return s
}

// SubDown returns a - b rounded toward -Inf.
func SubDown(a, b float64) float64 {
	return AddDown(a, -b)
}

// SubUp returns a - b rounded toward +Inf.
func SubUp(a, b float64) float64 {
	return AddUp(a, -b)
}

// MulDown returns a * b rounded toward -Inf.
// The caller is responsible for the 0*Inf convention; here 0*Inf is NaN.
func MulDown(a, b float64) float64 {
	p := a * b
	if math.IsNaN(p) {
		return p
	}
	if math.IsInf(p, 1) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return math.MaxFloat64
	}
	if math.IsInf(p, 0) {
		return p
	}
	if p == 0 {
		if a != 0 && b != 0 && math.Signbit(a) != math.Signbit(b) {
			// Underflow of a negative product.
			return -math.SmallestNonzeroFloat64
		}
		return p
	}
	e := math.FMA(a, b, -p)
	if e < 0 {
		return NextDown(p)
	}
	// In the subnormal range the FMA residual may itself be inexact, so a
	// zero residual no longer certifies an exact product.
	if e == 0 && math.Abs(p) < tiny {
		return NextDown(p)
	}
	return p
}

// MulUp returns a * b rounded toward +Inf.
func MulUp(a, b float64) float64 {
	p := a * b
	if math.IsNaN(p) {
		return p
	}
	if math.IsInf(p, -1) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
		return -math.MaxFloat64
	}
	if math.IsInf(p, 0) {
		return p
	}
	if p == 0 {
		if a != 0 && b != 0 && math.Signbit(a) == math.Signbit(b) {
			return math.SmallestNonzeroFloat64
		}
		return p
	}
	e := math.FMA(a, b, -p)
	if e > 0 {
		return NextUp(p)
	}
	if e == 0 && math.Abs(p) < tiny {
		return NextUp(p)
	}
	return p
}

// DivDown returns a / b rounded toward -Inf.
// 0/0 and Inf/Inf are NaN; the interval layer never produces them.
func DivDown(a, b float64) float64 {
	q := a / b
	if math.IsNaN(q) {
		return q
	}
	if math.IsInf(q, 1) && !math.IsInf(a, 0) && b != 0 {
		return math.MaxFloat64
	}
	if math.IsInf(q, 0) || math.IsInf(b, 0) {
		// Either an exact infinity, or a finite/Inf quotient which is exact.
		return q
	}
	if q == 0 {
		if a != 0 && math.Signbit(a) != math.Signbit(b) {
			return -math.SmallestNonzeroFloat64
		}
		return q
	}
	// a = q*b + r, hence a/b = q - r/b up to one rounding of r.
	r := math.FMA(q, b, -a)
	if r != 0 && (r < 0) == (b < 0) {
		return NextDown(q)
	}
	if r == 0 && a != 0 && math.Abs(a) < tiny {
		return NextDown(q)
	}
	return q
}

// DivUp returns a / b rounded toward +Inf.
func DivUp(a, b float64) float64 {
	q := a / b
	if math.IsNaN(q) {
		return q
	}
	if math.IsInf(q, -1) && !math.IsInf(a, 0) && b != 0 {
		return -math.MaxFloat64
	}
	if math.IsInf(q, 0) || math.IsInf(b, 0) {
		return q
	}
	if q == 0 {
		if a != 0 && math.Signbit(a) == math.Signbit(b) {
			return math.SmallestNonzeroFloat64
		}
		return q
	}
	r := math.FMA(q, b, -a)
	if r != 0 && (r < 0) != (b < 0) {
		return NextUp(q)
	}
	if r == 0 && a != 0 && math.Abs(a) < tiny {
		return NextUp(q)
	}
	return q
}

// SqrtDown returns sqrt(x) rounded toward -Inf.
func SqrtDown(x float64) float64 {
	r := math.Sqrt(x)
	if math.IsNaN(r) || math.IsInf(r, 1) || r == 0 {
		return r
	}
	e := math.FMA(r, r, -x)
	if e > 0 {
		return NextDown(r)
	}
	if e == 0 && x < tiny {
		return NextDown(r)
	}
	return r
}

// SqrtUp returns sqrt(x) rounded toward +Inf.
func SqrtUp(x float64) float64 {
	r := math.Sqrt(x)
	if math.IsNaN(r) || math.IsInf(r, 1) || r == 0 {
		return r
	}
	e := math.FMA(r, r, -x)
	if e < 0 {
		return NextUp(r)
	}
	if e == 0 && x < tiny {
		return NextUp(r)
	}
	return r
}
