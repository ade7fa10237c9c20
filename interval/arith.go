package interval

import (
	"fmt"
	"math"

	"github.com/encival/encival/utils"
	"github.com/encival/encival/utils/fpround"
)

// Neg returns [-hi, -lo]. Negation is exact, no rounding is involved.
func (x Interval) Neg() Interval {
	if x.IsEmpty() {
		return x
	}
	return unchecked(-x.hi, -x.lo)
}

// Add returns the enclosure of {a + b : a in x, b in y}.
func (x Interval) Add(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return unchecked(fpround.AddDown(x.lo, y.lo), fpround.AddUp(x.hi, y.hi))
}

// Sub returns the enclosure of {a - b : a in x, b in y}.
func (x Interval) Sub(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return unchecked(fpround.SubDown(x.lo, y.hi), fpround.SubUp(x.hi, y.lo))
}

// mulDown is the corner product rounded toward -Inf, with the interval
// convention that a zero factor absorbs an infinite one: 0 * Inf = 0.
func mulDown(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return fpround.MulDown(a, b)
}

func mulUp(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return fpround.MulUp(a, b)
}

// Mul returns the enclosure of {a * b : a in x, b in y}, by sign analysis
// over the corner products.
func (x Interval) Mul(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	a, b, c, d := x.lo, x.hi, y.lo, y.hi

	switch {
	case a >= 0: // x >= 0
		switch {
		case c >= 0:
			return unchecked(mulDown(a, c), mulUp(b, d))
		case d <= 0:
			return unchecked(mulDown(b, c), mulUp(a, d))
		default:
			return unchecked(mulDown(b, c), mulUp(b, d))
		}
	case b <= 0: // x <= 0
		switch {
		case c >= 0:
			return unchecked(mulDown(a, d), mulUp(b, c))
		case d <= 0:
			return unchecked(mulDown(b, d), mulUp(a, c))
		default:
			return unchecked(mulDown(a, d), mulUp(a, c))
		}
	default: // x straddles zero
		switch {
		case c >= 0:
			return unchecked(mulDown(a, d), mulUp(b, d))
		case d <= 0:
			return unchecked(mulDown(b, c), mulUp(a, c))
		default:
			lo := utils.Min(mulDown(a, d), mulDown(b, c))
			hi := utils.Max(mulUp(a, c), mulUp(b, d))
			return unchecked(lo, hi)
		}
	}
}

// Div returns the enclosure of {a / b : a in x, b in y, b != 0}.
//
// When zero lies strictly inside y the true quotient set is unbounded (or
// splits in two); this implementation returns the single enclosing
// interval [-Inf, +Inf] rather than a two-piece result. Division by the
// degenerate divisor [0, 0] has no quotient at all and returns the empty
// interval. Neither case is an error: the algebra stays total.
func (x Interval) Div(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	a, b, c, d := x.lo, x.hi, y.lo, y.hi

	if c == 0 && d == 0 {
		return Empty()
	}
	if a == 0 && b == 0 {
		return x // 0 / y = [0, 0] for any y with a nonzero point
	}
	if c < 0 && d > 0 {
		return Entire()
	}

	switch {
	case c > 0:
		switch {
		case a >= 0:
			return unchecked(fpround.DivDown(a, d), fpround.DivUp(b, c))
		case b <= 0:
			return unchecked(fpround.DivDown(a, c), fpround.DivUp(b, d))
		default:
			return unchecked(fpround.DivDown(a, c), fpround.DivUp(b, c))
		}
	case d < 0:
		switch {
		case a >= 0:
			return unchecked(fpround.DivDown(b, d), fpround.DivUp(a, c))
		case b <= 0:
			return unchecked(fpround.DivDown(b, c), fpround.DivUp(a, d))
		default:
			return unchecked(fpround.DivDown(b, d), fpround.DivUp(a, d))
		}
	case c == 0: // y = [0, d], d > 0
		switch {
		case a >= 0:
			return unchecked(fpround.DivDown(a, d), math.Inf(1))
		case b <= 0:
			return unchecked(math.Inf(-1), fpround.DivUp(b, d))
		default:
			return Entire()
		}
	default: // y = [c, 0], c < 0
		switch {
		case a >= 0:
			return unchecked(math.Inf(-1), fpround.DivUp(a, c))
		case b <= 0:
			return unchecked(fpround.DivDown(b, c), math.Inf(1))
		default:
			return Entire()
		}
	}
}

// Recip returns the enclosure of {1 / b : b in x, b != 0}.
func (x Interval) Recip() Interval {
	return Point(1).Div(x)
}

// pow01 computes directed bounds of t^n for t >= 0 by binary
// exponentiation, rounding every factor outward. The bounds stay exact
// whenever each intermediate product is exact.
func pow01(t float64, n uint64) (lo, hi float64) {
	lo, hi = 1, 1
	base, baseUp := t, t
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			lo = mulDown(lo, base)
			hi = mulUp(hi, baseUp)
		}
		if n > 1 {
			base = mulDown(base, base)
			baseUp = mulUp(baseUp, baseUp)
		}
	}
	return lo, hi
}

// powPoint returns directed bounds of t^n for any sign of t.
func powPoint(t float64, n uint64) (lo, hi float64) {
	if t >= 0 {
		return pow01(t, n)
	}
	lo, hi = pow01(-t, n)
	if n&1 == 1 {
		return -hi, -lo
	}
	return lo, hi
}

// Pown returns the enclosure of {a^n : a in x} for an integer exponent.
// Even powers of an interval straddling zero have lower bound 0, odd
// powers are monotonic and apply endpoint-wise. x^0 = [1, 1] by the 0^0=1
// convention, and negative exponents divide through Recip.
func (x Interval) Pown(n int) Interval {
	if x.IsEmpty() {
		return x
	}
	if n == 0 {
		return Point(1)
	}
	if n < 0 {
		return x.Pown(-n).Recip()
	}

	k := uint64(n)
	if k&1 == 1 {
		lo, _ := powPoint(x.lo, k)
		_, hi := powPoint(x.hi, k)
		return unchecked(lo, hi)
	}

	switch {
	case x.lo >= 0:
		lo, _ := powPoint(x.lo, k)
		_, hi := powPoint(x.hi, k)
		return unchecked(lo, hi)
	case x.hi <= 0:
		lo, _ := powPoint(x.hi, k)
		_, hi := powPoint(x.lo, k)
		return unchecked(lo, hi)
	default:
		_, hi := powPoint(utils.Max(-x.lo, x.hi), k)
		return unchecked(0, hi)
	}
}

// Sqr returns the enclosure of {a*a : a in x}, with the same parity rule
// as Pown(2).
func (x Interval) Sqr() Interval {
	return x.Pown(2)
}

// Pow returns the enclosure of {a^b : a in x, b in y} for a real exponent
// interval, computed as exp(y * log(x)) on the non-negative part of x.
// The base is first intersected with [0, +Inf); if nothing remains, the
// result is the empty interval. Use PowChecked to distinguish that case.
func (x Interval) Pow(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	xr := x.Intersect(unchecked(0, math.Inf(1)))
	if xr.IsEmpty() {
		return Empty()
	}

	if xr.lo == 0 && xr.hi == 0 {
		// 0^t is 0 for t > 0, 1 for t = 0, and outside the domain for t < 0.
		switch {
		case y.hi < 0:
			return Empty()
		case y.lo == 0 && y.hi == 0:
			return Point(1)
		case y.lo >= 0 && y.Contains(0):
			return unchecked(0, 1)
		case y.lo > 0:
			return unchecked(0, 0)
		default:
			return unchecked(0, 1)
		}
	}

	return y.Mul(xr.Log()).Exp()
}

// PowChecked is Pow returning ErrDomain when the base lies entirely below
// zero, or when a negative-only exponent meets the degenerate base [0, 0].
func (x Interval) PowChecked(y Interval) (Interval, error) {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty(), nil
	}
	if x.hi < 0 {
		return Empty(), fmt.Errorf("%w: base %v of real power is negative", ErrDomain, x)
	}
	if x.lo == 0 && x.hi == 0 && y.hi < 0 {
		return Empty(), fmt.Errorf("%w: zero base with negative exponent %v", ErrDomain, y)
	}
	return x.Pow(y), nil
}
