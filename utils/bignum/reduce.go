package bignum

import (
	"math/big"
)

// guardBits is the number of extra bits carried through trigonometric
// argument reduction. The worst-case float64 argument requires about 60
// extra bits to survive the cancellation against a multiple of Pi.
const guardBits = 128

// reducePrec returns a working precision large enough to reduce x modulo a
// multiple of Pi without losing prec significant bits.
func reducePrec(x *big.Float, prec uint) uint {
	wp := prec + guardBits
	if exp := x.MantExp(nil); exp > 0 {
		wp += uint(exp)
	}
	return wp
}

// reduceTwoPi returns x - 2*Pi*round(x/(2*Pi)), the representative of x in
// [-Pi, Pi], carried at a precision preserving x.Prec() significant bits.
func reduceTwoPi(x *big.Float) *big.Float {
	prec := x.Prec()
	wp := reducePrec(x, prec)

	twoPi := Pi(wp)
	twoPi.Add(twoPi, twoPi)

	k := Round(new(big.Float).SetPrec(wp).Quo(x, twoPi))
	if k.Sign() == 0 {
		return new(big.Float).SetPrec(prec).Set(x)
	}

	r := new(big.Float).SetPrec(wp).Mul(k, twoPi)
	r.Sub(new(big.Float).SetPrec(wp).Set(x), r)
	return r.SetPrec(prec)
}

// HalfPiFloor returns floor(t / (Pi/2)) as an exact integer. It is used to
// count the critical points of sin, cos and tan below t. The quotient is
// computed with enough guard bits that the floor is exact for any finite
// float64 t, since no float64 is a multiple of Pi/2.
func HalfPiFloor(t float64) *big.Int {
	x := new(big.Float).SetFloat64(t)
	wp := reducePrec(x, 64)

	halfPi := Pi(wp)
	halfPi.Quo(halfPi, new(big.Float).SetPrec(wp).SetInt64(2))

	q := new(big.Float).SetPrec(wp).Quo(x, halfPi)

	k := new(big.Int)
	q.Int(k)
	// big.Float.Int truncates toward zero; floor rounds toward -Inf.
	if q.Sign() < 0 && !q.IsInt() {
		k.Sub(k, big.NewInt(1))
	}
	return k
}
