package bignum

import (
	"math"
	"math/big"
)

// Float64Down converts x to the largest float64 not exceeding x.
// Values below -MaxFloat64 convert to -Inf, values above +MaxFloat64 to
// MaxFloat64, matching round-toward-negative-infinity semantics.
func Float64Down(x *big.Float) float64 {
	f, _ := x.Float64()
	if math.IsInf(f, 1) && !x.IsInf() {
		return math.MaxFloat64
	}
	if math.IsInf(f, 0) {
		return f
	}
	if new(big.Float).SetFloat64(f).Cmp(x) > 0 {
		f = math.Nextafter(f, math.Inf(-1))
	}
	return f
}

// Float64Up converts x to the smallest float64 not below x.
func Float64Up(x *big.Float) float64 {
	f, _ := x.Float64()
	if math.IsInf(f, -1) && !x.IsInf() {
		return -math.MaxFloat64
	}
	if math.IsInf(f, 0) {
		return f
	}
	if new(big.Float).SetFloat64(f).Cmp(x) < 0 {
		f = math.Nextafter(f, math.Inf(1))
	}
	return f
}
