package interval

import (
	"math"

	"github.com/encival/encival/utils"
	"github.com/encival/encival/utils/fpround"
)

// Contains reports whether the real number v lies in x.
// It is false for NaN and for the empty interval.
func (x Interval) Contains(v float64) bool {
	return x.lo <= v && v <= x.hi
}

// SubsetOf reports whether x is a subset of y. The empty interval is a
// subset of everything.
func (x Interval) SubsetOf(y Interval) bool {
	if x.IsEmpty() {
		return true
	}
	return y.lo <= x.lo && x.hi <= y.hi
}

// Disjoint reports whether x and y share no point.
func (x Interval) Disjoint(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return true
	}
	return x.hi < y.lo || y.hi < x.lo
}

// Equal reports component-wise equality. Two empty intervals are equal.
func (x Interval) Equal(y Interval) bool {
	return x.lo == y.lo && x.hi == y.hi
}

// Intersect returns the intersection of x and y, which is again an
// interval. An empty intersection yields the empty interval, not an error.
func (x Interval) Intersect(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	lo := utils.Max(x.lo, y.lo)
	hi := utils.Min(x.hi, y.hi)
	if lo > hi {
		return Empty()
	}
	return unchecked(lo, hi)
}

// Hull returns the smallest interval enclosing the union of x and y.
func (x Interval) Hull(y Interval) Interval {
	if x.IsEmpty() {
		return y
	}
	if y.IsEmpty() {
		return x
	}
	return unchecked(utils.Min(x.lo, y.lo), utils.Max(x.hi, y.hi))
}

// Width returns hi - lo rounded upward, +Inf for unbounded intervals and
// NaN for the empty interval.
func (x Interval) Width() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	return fpround.SubUp(x.hi, x.lo)
}

// Mid returns a finite representative point of x.
// For the empty interval it returns NaN; for [-Inf, +Inf] it returns 0;
// for a half-infinite interval it returns the finite bound.
func (x Interval) Mid() float64 {
	switch {
	case x.IsEmpty():
		return math.NaN()
	case x.IsEntire():
		return 0
	case math.IsInf(x.lo, -1):
		return x.hi
	case math.IsInf(x.hi, 1):
		return x.lo
	}
	m := x.lo/2 + x.hi/2
	return utils.Clamp(m, x.lo, x.hi)
}

// Rad returns half the width of x, rounded upward, such that
// [Mid(x)-Rad(x), Mid(x)+Rad(x)] encloses x for bounded x.
func (x Interval) Rad() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	m := x.Mid()
	return utils.Max(fpround.SubUp(m, x.lo), fpround.SubUp(x.hi, m))
}

// Mag returns the magnitude sup{|v| : v in x}, NaN for the empty interval.
func (x Interval) Mag() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	return utils.Max(math.Abs(x.lo), math.Abs(x.hi))
}

// Mig returns the mignitude inf{|v| : v in x}, 0 when x contains zero and
// NaN for the empty interval.
func (x Interval) Mig() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	if x.Contains(0) {
		return 0
	}
	return utils.Min(math.Abs(x.lo), math.Abs(x.hi))
}

// Abs returns the enclosure of {|v| : v in x}.
func (x Interval) Abs() Interval {
	if x.IsEmpty() {
		return x
	}
	return unchecked(x.Mig(), x.Mag())
}
