package interval

// Real is the real-number-like flavor of an interval. It shares the exact
// data layout and invariants of Interval and adds the ordering surface
// that only makes sense when an interval stands in for an uncertain real
// number: the comparisons below are "certain" orderings, true only when
// they hold for every pair of representatives. The set flavor deliberately
// exposes none of them, since overlapping intervals have no meaningful
// order as sets.
type Real struct {
	Interval
}

// AsReal returns x under the real-number flavor.
func (x Interval) AsReal() Real {
	return Real{x}
}

// NewReal is New under the real-number flavor.
func NewReal(lo, hi float64) (Real, error) {
	x, err := New(lo, hi)
	return Real{x}, err
}

// Cmp returns -1 if x is certainly below y, +1 if certainly above, and 0
// when the intervals overlap (or either is empty) and no certain order
// exists.
func (x Real) Cmp(y Real) int {
	if x.IsEmpty() || y.IsEmpty() {
		return 0
	}
	switch {
	case x.hi < y.lo:
		return -1
	case x.lo > y.hi:
		return 1
	default:
		return 0
	}
}

// Less reports whether every a in x is below every b in y.
func (x Real) Less(y Real) bool {
	return x.Cmp(y) < 0
}

// Greater reports whether every a in x is above every b in y.
func (x Real) Greater(y Real) bool {
	return x.Cmp(y) > 0
}

// LessEq reports whether a <= b certainly holds for all representatives.
func (x Real) LessEq(y Real) bool {
	return !x.IsEmpty() && !y.IsEmpty() && x.hi <= y.lo
}

// GreaterEq reports whether a >= b certainly holds for all representatives.
func (x Real) GreaterEq(y Real) bool {
	return y.LessEq(x)
}

// Arithmetic under the real flavor delegates to the shared core and keeps
// the flavor on the result.

// Add returns x + y under the real flavor.
func (x Real) Add(y Real) Real { return Real{x.Interval.Add(y.Interval)} }

// Sub returns x - y under the real flavor.
func (x Real) Sub(y Real) Real { return Real{x.Interval.Sub(y.Interval)} }

// Mul returns x * y under the real flavor.
func (x Real) Mul(y Real) Real { return Real{x.Interval.Mul(y.Interval)} }

// Div returns x / y under the real flavor.
func (x Real) Div(y Real) Real { return Real{x.Interval.Div(y.Interval)} }

// Neg returns -x under the real flavor.
func (x Real) Neg() Real { return Real{x.Interval.Neg()} }
