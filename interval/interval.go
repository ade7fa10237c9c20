// Package interval implements validated interval arithmetic over float64
// endpoints: every operation returns an interval guaranteed to contain the
// true mathematical result, using outward (directed) rounding on each
// endpoint computation.
//
// An Interval is an immutable value. The empty set is encoded by the
// canonical sentinel [+Inf, -Inf]. All operations are pure functions of
// their inputs and safe to evaluate concurrently.
package interval

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInterval is returned by the validated constructors when the
// endpoint pair does not describe an interval: a NaN endpoint, lo > hi
// (except for the empty sentinel), or +Inf/-Inf as a lower/upper bound of a
// non-empty interval.
var ErrInvalidInterval = errors.New("invalid interval")

// ErrDomain is returned by checked operations whose input lies entirely
// outside the domain of the function being applied.
var ErrDomain = errors.New("input outside function domain")

// Interval is a closed interval [lo, hi] of real numbers.
// The zero value is the point interval [0, 0].
type Interval struct {
	lo, hi float64
}

// Lo returns the lower bound. It is +Inf iff the interval is empty.
func (x Interval) Lo() float64 { return x.lo }

// Hi returns the upper bound. It is -Inf iff the interval is empty.
func (x Interval) Hi() float64 { return x.hi }

// Empty returns the empty interval, encoded as [+Inf, -Inf].
func Empty() Interval {
	return Interval{lo: math.Inf(1), hi: math.Inf(-1)}
}

// Entire returns the interval [-Inf, +Inf] enclosing the whole real line.
func Entire() Interval {
	return Interval{lo: math.Inf(-1), hi: math.Inf(1)}
}

// IsValid reports whether (lo, hi) describes a valid interval: no NaN
// endpoint, lo <= hi unless the pair is the empty sentinel [+Inf, -Inf],
// and a non-empty interval has neither +Inf as its lower bound nor -Inf as
// its upper bound.
func IsValid(lo, hi float64) bool {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return false
	}
	if math.IsInf(lo, 1) && math.IsInf(hi, -1) {
		return true
	}
	if lo > hi {
		return false
	}
	return !math.IsInf(lo, 1) && !math.IsInf(hi, -1)
}

// New returns the validated interval [lo, hi]. The pair [+Inf, -Inf] is
// accepted and yields the empty interval. When the process configuration
// disables strict checking (see Config), validation is skipped and the
// caller is trusted.
func New(lo, hi float64) (Interval, error) {
	if GetConfig().Strict && !IsValid(lo, hi) {
		return Empty(), fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, lo, hi)
	}
	return unchecked(lo, hi), nil
}

// MustNew is like New but panics on an invalid pair, independently of the
// strictness configuration.
func MustNew(lo, hi float64) Interval {
	if !IsValid(lo, hi) {
		panic(fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, lo, hi))
	}
	return unchecked(lo, hi)
}

// Point returns the singleton interval [a, a].
// A NaN argument is a programmer error and panics.
func Point(a float64) Interval {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		panic(fmt.Errorf("%w: point at %v", ErrInvalidInterval, a))
	}
	return Interval{lo: a, hi: a}
}

// Span returns the valid interval spanning a and b regardless of their
// order. It never fails on ordered or swapped bounds; NaN still panics.
func Span(a, b float64) Interval {
	if math.IsNaN(a) || math.IsNaN(b) {
		panic(fmt.Errorf("%w: span with NaN bound", ErrInvalidInterval))
	}
	if a > b {
		a, b = b, a
	}
	if math.IsInf(a, 1) {
		a = math.MaxFloat64
	}
	if math.IsInf(b, -1) {
		b = -math.MaxFloat64
	}
	return unchecked(a, b)
}

// unchecked builds an interval from bounds the caller has already proven
// ordered and NaN-free. Negative zeros are canonicalized so that equal
// intervals compare equal component-wise.
func unchecked(lo, hi float64) Interval {
	if lo == 0 {
		lo = 0
	}
	if hi == 0 {
		hi = 0
	}
	return Interval{lo: lo, hi: hi}
}

// IsEmpty reports whether x is the empty interval.
func (x Interval) IsEmpty() bool {
	return math.IsInf(x.lo, 1) && math.IsInf(x.hi, -1)
}

// IsEntire reports whether x is [-Inf, +Inf].
func (x Interval) IsEntire() bool {
	return math.IsInf(x.lo, -1) && math.IsInf(x.hi, 1)
}

// IsPoint reports whether x holds exactly one real number.
func (x Interval) IsPoint() bool {
	return x.lo == x.hi && !math.IsInf(x.lo, 0)
}

// IsFinite reports whether both bounds are finite. The empty interval is
// not finite.
func (x Interval) IsFinite() bool {
	return !math.IsInf(x.lo, 0) && !math.IsInf(x.hi, 0)
}
