package interval

import (
	"math"
	"math/big"

	"github.com/encival/encival/utils"
	"github.com/encival/encival/utils/bignum"
	"github.com/encival/encival/utils/fpround"
)

// evalPrec is the precision, in bits, at which endpoint functions are
// evaluated by the big.Float backend before directed conversion. 160 bits
// leave more than enough margin over the worst-case cancellation of a
// float64 argument against a multiple of Pi/2 (about 61 bits).
const evalPrec = 160

// smallArg is the threshold below which odd functions with f(t) = t + O(t^3)
// are bounded directly by their argument: for |t| <= 2^-27 the cubic term
// is smaller than one ulp of t.
const smallArg = 0x1p-27

func bigAt(t float64) *big.Float { return bignum.NewFloat(t, evalPrec) }

// evalDown returns a float64 lower bound of f(t): the backend value is
// converted rounding down and perturbed one more ulp to absorb the
// backend's own error, which is far below one ulp of any float64 result.
func evalDown(f func(*big.Float) *big.Float, t float64) float64 {
	d := bignum.Float64Down(f(bigAt(t)))
	if math.IsInf(d, 0) {
		return d
	}
	return fpround.NextDown(d)
}

func evalUp(f func(*big.Float) *big.Float, t float64) float64 {
	u := bignum.Float64Up(f(bigAt(t)))
	if math.IsInf(u, 0) {
		return u
	}
	return fpround.NextUp(u)
}

// nonNegative is the domain [0, +Inf).
func nonNegative() Interval { return unchecked(0, math.Inf(1)) }

// Sqrt returns the enclosure of {sqrt(a) : a in x, a >= 0}.
// The input is intersected with [0, +Inf) first; an input entirely below
// zero yields the empty interval.
func (x Interval) Sqrt() Interval {
	xr := x.Intersect(nonNegative())
	if xr.IsEmpty() {
		return xr
	}
	return unchecked(fpround.SqrtDown(xr.lo), fpround.SqrtUp(xr.hi))
}

func expDown(t float64) float64 {
	switch {
	case math.IsInf(t, 0):
		if t > 0 {
			return math.Inf(1)
		}
		return 0
	case t == 0:
		return 1
	case t < -746:
		return 0
	case t > 710:
		return math.MaxFloat64
	}
	d := evalDown(bignum.Exp, t)
	if d < 0 {
		return 0
	}
	return d
}

func expUp(t float64) float64 {
	switch {
	case math.IsInf(t, 0):
		if t > 0 {
			return math.Inf(1)
		}
		return 0
	case t == 0:
		return 1
	case t < -746:
		return math.SmallestNonzeroFloat64
	case t > 710:
		return math.Inf(1)
	}
	return evalUp(bignum.Exp, t)
}

// Exp returns the enclosure of {exp(a) : a in x}.
func (x Interval) Exp() Interval {
	if x.IsEmpty() {
		return x
	}
	return unchecked(expDown(x.lo), expUp(x.hi))
}

// Log returns the enclosure of {log(a) : a in x, a > 0}.
// The input is intersected with the domain first; if no positive point
// remains, the result is the empty interval.
func (x Interval) Log() Interval {
	xr := x.Intersect(nonNegative())
	if xr.IsEmpty() || xr.hi == 0 {
		return Empty()
	}
	var lo float64
	switch {
	case xr.lo == 0:
		lo = math.Inf(-1)
	case xr.lo == 1:
		lo = 0
	default:
		lo = evalDown(bignum.Log, xr.lo)
	}
	var hi float64
	switch {
	case math.IsInf(xr.hi, 1):
		hi = math.Inf(1)
	case xr.hi == 1:
		hi = 0
	default:
		hi = evalUp(bignum.Log, xr.hi)
	}
	return unchecked(lo, hi)
}

func sinDown(t float64) float64 {
	if math.Abs(t) <= smallArg {
		if t > 0 {
			return fpround.NextDown(t)
		}
		return t
	}
	return utils.Max(-1, evalDown(bignum.Sin, t))
}

func sinUp(t float64) float64 {
	if math.Abs(t) <= smallArg {
		if t < 0 {
			return fpround.NextUp(t)
		}
		return t
	}
	return utils.Min(1, evalUp(bignum.Sin, t))
}

func cosDown(t float64) float64 {
	if t == 0 {
		return 1
	}
	return utils.Max(-1, evalDown(bignum.Cos, t))
}

func cosUp(t float64) float64 {
	if t == 0 {
		return 1
	}
	return utils.Min(1, evalUp(bignum.Cos, t))
}

// criticalRange locates the multiples of Pi/2 inside [lo, hi] and returns
// floor(lo/(Pi/2)) mod 4 together with their count, capped at 4. A count
// of 4 or more means a full period is covered.
func criticalRange(lo, hi float64) (kmod, count int64) {
	kLo := bignum.HalfPiFloor(lo)
	kHi := bignum.HalfPiFloor(hi)

	diff := new(big.Int).Sub(kHi, kLo)
	if diff.Cmp(big.NewInt(4)) >= 0 {
		return 0, 4
	}

	kmod = new(big.Int).Mod(kLo, big.NewInt(4)).Int64()
	return kmod, diff.Int64()
}

// Sin returns the enclosure of {sin(a) : a in x}. Critical points inside x
// pin the bound to -1 or +1 exactly; an interval covering a full period,
// or with an infinite endpoint, collapses to [-1, 1].
func (x Interval) Sin() Interval {
	if x.IsEmpty() {
		return x
	}
	if !x.IsFinite() {
		return unchecked(-1, 1)
	}

	kmod, count := criticalRange(x.lo, x.hi)
	if count >= 4 {
		return unchecked(-1, 1)
	}

	lo := utils.Min(sinDown(x.lo), sinDown(x.hi))
	hi := utils.Max(sinUp(x.lo), sinUp(x.hi))
	for i := int64(1); i <= count; i++ {
		switch (kmod + i) % 4 {
		case 1: // sin((4m+1)Pi/2) = 1
			hi = 1
		case 3:
			lo = -1
		}
	}
	return unchecked(lo, hi)
}

// Cos returns the enclosure of {cos(a) : a in x}.
func (x Interval) Cos() Interval {
	if x.IsEmpty() {
		return x
	}
	if !x.IsFinite() {
		return unchecked(-1, 1)
	}

	kmod, count := criticalRange(x.lo, x.hi)
	if count >= 4 {
		return unchecked(-1, 1)
	}

	lo := utils.Min(cosDown(x.lo), cosDown(x.hi))
	hi := utils.Max(cosUp(x.lo), cosUp(x.hi))
	for i := int64(1); i <= count; i++ {
		switch (kmod + i) % 4 {
		case 0: // cos(2mPi) = 1
			hi = 1
		case 2:
			lo = -1
		}
	}
	return unchecked(lo, hi)
}

func tanDown(t float64) float64 {
	if math.Abs(t) <= smallArg {
		if t < 0 {
			return fpround.NextDown(t)
		}
		return t
	}
	return evalDown(bignum.Tan, t)
}

func tanUp(t float64) float64 {
	if math.Abs(t) <= smallArg {
		if t > 0 {
			return fpround.NextUp(t)
		}
		return t
	}
	return evalUp(bignum.Tan, t)
}

// Tan returns the enclosure of {tan(a) : a in x}. An interval containing a
// pole (an odd multiple of Pi/2) yields [-Inf, +Inf], the same
// single-interval policy as division by a zero-straddling interval.
func (x Interval) Tan() Interval {
	if x.IsEmpty() {
		return x
	}
	if !x.IsFinite() {
		return Entire()
	}

	kmod, count := criticalRange(x.lo, x.hi)
	if count >= 2 {
		return Entire()
	}
	for i := int64(1); i <= count; i++ {
		if (kmod+i)%2 != 0 {
			return Entire()
		}
	}
	return unchecked(tanDown(x.lo), tanUp(x.hi))
}

func asinDown(t float64) float64 {
	if math.Abs(t) <= smallArg {
		if t < 0 {
			return fpround.NextDown(t)
		}
		return t
	}
	return evalDown(bignum.Asin, t)
}

func asinUp(t float64) float64 {
	if math.Abs(t) <= smallArg {
		if t > 0 {
			return fpround.NextUp(t)
		}
		return t
	}
	return evalUp(bignum.Asin, t)
}

// Asin returns the enclosure of {asin(a) : a in x, |a| <= 1}.
func (x Interval) Asin() Interval {
	xr := x.Intersect(unchecked(-1, 1))
	if xr.IsEmpty() {
		return xr
	}
	return unchecked(asinDown(xr.lo), asinUp(xr.hi))
}

// Acos returns the enclosure of {acos(a) : a in x, |a| <= 1}.
// acos is decreasing, so the bounds swap.
func (x Interval) Acos() Interval {
	xr := x.Intersect(unchecked(-1, 1))
	if xr.IsEmpty() {
		return xr
	}
	var lo float64
	if xr.hi == 1 {
		lo = 0
	} else {
		lo = utils.Max(0, evalDown(bignum.Acos, xr.hi))
	}
	return unchecked(lo, evalUp(bignum.Acos, xr.lo))
}

func atanDown(t float64) float64 {
	if math.Abs(t) <= smallArg {
		if t > 0 {
			return fpround.NextDown(t)
		}
		return t
	}
	return evalDown(bignum.Atan, t)
}

func atanUp(t float64) float64 {
	if math.Abs(t) <= smallArg {
		if t < 0 {
			return fpround.NextUp(t)
		}
		return t
	}
	return evalUp(bignum.Atan, t)
}

// Atan returns the enclosure of {atan(a) : a in x}.
func (x Interval) Atan() Interval {
	if x.IsEmpty() {
		return x
	}
	return unchecked(atanDown(x.lo), atanUp(x.hi))
}

func sinhDown(t float64) float64 {
	switch {
	case math.IsInf(t, 0):
		return t
	case t >= 712: // exp(712)/2 exceeds MaxFloat64
		return math.MaxFloat64
	case t <= -712:
		return math.Inf(-1)
	case math.Abs(t) <= smallArg:
		if t < 0 {
			return fpround.NextDown(t)
		}
		return t
	}
	return evalDown(bignum.SinH, t)
}

func sinhUp(t float64) float64 {
	switch {
	case math.IsInf(t, 0):
		return t
	case t >= 712:
		return math.Inf(1)
	case t <= -712:
		return -math.MaxFloat64
	case math.Abs(t) <= smallArg:
		if t > 0 {
			return fpround.NextUp(t)
		}
		return t
	}
	return evalUp(bignum.SinH, t)
}

// Sinh returns the enclosure of {sinh(a) : a in x}.
func (x Interval) Sinh() Interval {
	if x.IsEmpty() {
		return x
	}
	return unchecked(sinhDown(x.lo), sinhUp(x.hi))
}

func coshDown(t float64) float64 {
	if t == 0 {
		return 1
	}
	if math.IsInf(t, 0) || math.Abs(t) >= 712 {
		if math.IsInf(t, 0) {
			return math.Inf(1)
		}
		return math.MaxFloat64
	}
	return utils.Max(1, evalDown(bignum.CosH, t))
}

func coshUp(t float64) float64 {
	if math.IsInf(t, 0) || math.Abs(t) >= 712 {
		return math.Inf(1)
	}
	return evalUp(bignum.CosH, t)
}

// Cosh returns the enclosure of {cosh(a) : a in x}, with minimum 1 at 0.
func (x Interval) Cosh() Interval {
	if x.IsEmpty() {
		return x
	}
	if x.Contains(0) {
		return unchecked(1, utils.Max(coshUp(x.lo), coshUp(x.hi)))
	}
	m := x.Mig()
	return unchecked(coshDown(m), utils.Max(coshUp(x.lo), coshUp(x.hi)))
}

func tanhDown(t float64) float64 {
	switch {
	case math.IsInf(t, 0):
		if t > 0 {
			return fpround.NextDown(1)
		}
		return -1
	case math.Abs(t) <= smallArg:
		// |tanh(t)| <= |t|, so t bounds from below only for t <= 0
		if t > 0 {
			return fpround.NextDown(t)
		}
		return t
	case t >= 40:
		// tanh(40) is within one ulp of 1
		return fpround.NextDown(1)
	case t <= -40:
		return -1
	}
	return utils.Max(-1, evalDown(bignum.TanH, t))
}

func tanhUp(t float64) float64 {
	switch {
	case math.IsInf(t, 0):
		if t > 0 {
			return 1
		}
		return fpround.NextUp(-1)
	case math.Abs(t) <= smallArg:
		if t < 0 {
			return fpround.NextUp(t)
		}
		return t
	case t >= 40:
		return 1
	case t <= -40:
		return fpround.NextUp(-1)
	}
	return utils.Min(1, evalUp(bignum.TanH, t))
}

// Tanh returns the enclosure of {tanh(a) : a in x}.
func (x Interval) Tanh() Interval {
	if x.IsEmpty() {
		return x
	}
	return unchecked(tanhDown(x.lo), tanhUp(x.hi))
}

func asinhDown(t float64) float64 {
	switch {
	case math.IsInf(t, 0):
		return t
	case math.Abs(t) <= smallArg:
		if t > 0 {
			return fpround.NextDown(t)
		}
		return t
	}
	return evalDown(bignum.AsinH, t)
}

func asinhUp(t float64) float64 {
	switch {
	case math.IsInf(t, 0):
		return t
	case math.Abs(t) <= smallArg:
		if t < 0 {
			return fpround.NextUp(t)
		}
		return t
	}
	return evalUp(bignum.AsinH, t)
}

// Asinh returns the enclosure of {asinh(a) : a in x}.
func (x Interval) Asinh() Interval {
	if x.IsEmpty() {
		return x
	}
	return unchecked(asinhDown(x.lo), asinhUp(x.hi))
}

// Acosh returns the enclosure of {acosh(a) : a in x, a >= 1}.
func (x Interval) Acosh() Interval {
	xr := x.Intersect(unchecked(1, math.Inf(1)))
	if xr.IsEmpty() {
		return xr
	}
	var lo float64
	if xr.lo == 1 {
		lo = 0
	} else {
		lo = utils.Max(0, evalDown(bignum.AcosH, xr.lo))
	}
	var hi float64
	if math.IsInf(xr.hi, 1) {
		hi = math.Inf(1)
	} else {
		hi = evalUp(bignum.AcosH, xr.hi)
	}
	return unchecked(lo, hi)
}

// Atanh returns the enclosure of {atanh(a) : a in x, -1 < a < 1}, with the
// closure convention atanh(+-1) = +-Inf. An input touching the domain only
// at a single excluded endpoint yields the empty interval.
func (x Interval) Atanh() Interval {
	xr := x.Intersect(unchecked(-1, 1))
	if xr.IsEmpty() || xr.lo == 1 || xr.hi == -1 {
		return Empty()
	}
	var lo float64
	switch {
	case xr.lo == -1:
		lo = math.Inf(-1)
	case math.Abs(xr.lo) <= smallArg:
		if xr.lo < 0 {
			lo = fpround.NextDown(xr.lo)
		} else {
			lo = xr.lo
		}
	default:
		lo = evalDown(bignum.AtanH, xr.lo)
	}
	var hi float64
	switch {
	case xr.hi == 1:
		hi = math.Inf(1)
	case math.Abs(xr.hi) <= smallArg:
		if xr.hi > 0 {
			hi = fpround.NextUp(xr.hi)
		} else {
			hi = xr.hi
		}
	default:
		hi = evalUp(bignum.AtanH, xr.hi)
	}
	return unchecked(lo, hi)
}
