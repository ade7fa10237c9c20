package bignum

import (
	"fmt"
	"math"
	"math/big"
)

// Sqrt returns sqrt(x). The argument must be non-negative.
func Sqrt(x *big.Float) (sqrt *big.Float) {
	return new(big.Float).SetPrec(x.Prec()).Sqrt(x)
}

// Atan returns arctan(x). The float64 arctangent provides ~53 correct bits
// as a starting point, refined by Newton iterations on tan(y) = x, each of
// which doubles the number of correct bits.
func Atan(x *big.Float) (atan *big.Float) {
	prec := x.Prec()

	if x.IsInf() {
		atan = Pi(prec)
		atan.Quo(atan, NewFloat(2, prec))
		if x.Signbit() {
			atan.Neg(atan)
		}
		return
	}

	wp := prec + 64
	x64, _ := x.Float64()
	y := NewFloat(math.Atan(x64), wp)

	tmp := new(big.Float).SetPrec(wp)
	for bits := uint(50); bits < wp; bits <<= 1 {
		// y -= (tan(y) - x) * cos(y)^2
		c := Cos(y)
		tmp.Sub(Tan(y), x)
		tmp.Mul(tmp, c)
		tmp.Mul(tmp, c)
		y.Sub(y, tmp)
	}

	return y.SetPrec(prec)
}

// Asin returns arcsin(x) for |x| <= 1, via arctan(x/sqrt(1-x^2)).
func Asin(x *big.Float) (asin *big.Float) {
	prec := x.Prec()
	one := NewFloat(1, prec+64)

	switch new(big.Float).Abs(x).Cmp(one) {
	case 1:
		panic(fmt.Errorf("bignum.Asin: |x| > 1"))
	case 0:
		asin = Pi(prec)
		asin.Quo(asin, NewFloat(2, prec))
		if x.Signbit() {
			asin.Neg(asin)
		}
		return
	}

	den := new(big.Float).SetPrec(prec + 64).Mul(x, x)
	den.Sub(one, den)
	den.Sqrt(den)
	return Atan(new(big.Float).SetPrec(prec + 64).Quo(x, den)).SetPrec(prec)
}

// Acos returns arccos(x) = Pi/2 - arcsin(x) for |x| <= 1.
func Acos(x *big.Float) (acos *big.Float) {
	prec := x.Prec()
	wide := new(big.Float).SetPrec(prec + 64).Set(x)
	acos = Pi(prec + 64)
	acos.Quo(acos, NewFloat(2, prec+64))
	acos.Sub(acos, Asin(wide))
	return acos.SetPrec(prec)
}

// AsinH returns the inverse hyperbolic sin, log(x + sqrt(x^2+1)).
// Odd symmetry is used for negative arguments to avoid cancellation.
func AsinH(x *big.Float) (asinh *big.Float) {
	prec := x.Prec()
	if x.Signbit() {
		asinh = AsinH(new(big.Float).Neg(x))
		return asinh.Neg(asinh)
	}
	if x.Sign() == 0 {
		return NewFloat(0, prec)
	}
	t := new(big.Float).SetPrec(prec + 64).Mul(x, x)
	t.Add(t, NewFloat(1, prec+64))
	t.Sqrt(t)
	t.Add(t, x)
	return Log(t).SetPrec(prec)
}

// AcosH returns the inverse hyperbolic cos, log(x + sqrt(x^2-1)), for x >= 1.
func AcosH(x *big.Float) (acosh *big.Float) {
	prec := x.Prec()
	one := NewFloat(1, prec+64)
	if x.Cmp(one) < 0 {
		panic(fmt.Errorf("bignum.AcosH: x < 1"))
	}
	t := new(big.Float).SetPrec(prec + 64).Mul(x, x)
	t.Sub(t, one)
	t.Sqrt(t)
	t.Add(t, x)
	return Log(t).SetPrec(prec)
}

// AtanH returns the inverse hyperbolic tan, log((1+x)/(1-x))/2, for |x| < 1.
func AtanH(x *big.Float) (atanh *big.Float) {
	prec := x.Prec()
	one := NewFloat(1, prec+64)
	if new(big.Float).Abs(x).Cmp(one) >= 0 {
		panic(fmt.Errorf("bignum.AtanH: |x| >= 1"))
	}
	num := new(big.Float).SetPrec(prec + 64).Add(one, x)
	den := new(big.Float).SetPrec(prec + 64).Sub(one, x)
	atanh = Log(num.Quo(num, den))
	atanh.Quo(atanh, NewFloat(2, prec+64))
	return atanh.SetPrec(prec)
}
