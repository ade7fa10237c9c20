package interval

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/encival/encival/utils/sampling"
)

const soundnessSamples = 2000

// requireEncloses checks that the exact value, carried as a big.Float,
// lies inside the computed enclosure.
func requireEncloses(t *testing.T, enc Interval, exact *big.Float) {
	t.Helper()
	require.False(t, enc.IsEmpty(), "empty enclosure for %v", exact)
	lo := new(big.Float).SetFloat64(enc.Lo())
	hi := new(big.Float).SetFloat64(enc.Hi())
	if math.IsInf(enc.Lo(), -1) {
		lo.SetInf(true)
	}
	if math.IsInf(enc.Hi(), 1) {
		hi.SetInf(false)
	}
	require.True(t, lo.Cmp(exact) <= 0 && exact.Cmp(hi) <= 0,
		"%v not enclosed by %v", exact, enc)
}

func randBounded(prng sampling.PRNG, min, max float64) Interval {
	return Span(sampling.Float64From(prng, min, max), sampling.Float64From(prng, min, max))
}

// sampleIn returns a point of x, hitting the endpoints now and then.
func sampleIn(prng sampling.PRNG, x Interval) float64 {
	switch sampling.Uint64From(prng) % 8 {
	case 0:
		return x.Lo()
	case 1:
		return x.Hi()
	default:
		return sampling.Float64From(prng, x.Lo(), x.Hi())
	}
}

func TestMulSignCases(t *testing.T) {
	inf := math.Inf(1)
	for _, tc := range []struct {
		x, y, want Interval
	}{
		{MustNew(2, 3), MustNew(4, 5), MustNew(8, 15)},
		{MustNew(-3, -2), MustNew(4, 5), MustNew(-15, -8)},
		{MustNew(-1, 2), MustNew(-3, 4), MustNew(-6, 8)},
		{MustNew(2, 3), MustNew(-5, -4), MustNew(-15, -8)},
		{MustNew(-3, -2), MustNew(-5, -4), MustNew(8, 15)},
		{MustNew(-1, 2), MustNew(4, 5), MustNew(-5, 10)},
		{MustNew(0, 0), MustNew(-inf, inf), MustNew(0, 0)},
		{MustNew(0, 0), MustNew(0, inf), MustNew(0, 0)},
		{MustNew(-inf, inf), MustNew(-inf, inf), Entire()},
		{MustNew(2, inf), MustNew(3, 4), MustNew(6, inf)},
	} {
		require.True(t, tc.x.Mul(tc.y).Equal(tc.want),
			"%v * %v = %v, want %v", tc.x, tc.y, tc.x.Mul(tc.y), tc.want)
	}
}

func TestDivCases(t *testing.T) {
	inf := math.Inf(1)

	t.Run("ZeroStraddlingDivisor", func(t *testing.T) {
		require.True(t, MustNew(1, 2).Div(MustNew(-1, 1)).IsEntire())
	})

	t.Run("Basic", func(t *testing.T) {
		require.True(t, MustNew(8, 15).Div(MustNew(4, 5)).Contains(2))
		require.True(t, MustNew(1, 2).Div(MustNew(4, 5)).Equal(MustNew(0.25, 0.5)))
		require.True(t, MustNew(1, 2).Div(MustNew(-4, -1)).Equal(MustNew(-2, -0.25)))
	})

	t.Run("ZeroEndpointDivisor", func(t *testing.T) {
		require.True(t, MustNew(1, 2).Div(MustNew(0, 4)).Equal(MustNew(0.25, inf)))
		require.True(t, MustNew(-2, -1).Div(MustNew(0, 4)).Equal(MustNew(-inf, -0.25)))
		require.True(t, MustNew(1, 2).Div(MustNew(-4, 0)).Equal(MustNew(-inf, -0.25)))
		require.True(t, MustNew(-1, 2).Div(MustNew(0, 4)).IsEntire())
	})

	t.Run("DegenerateZeroDivisor", func(t *testing.T) {
		require.True(t, MustNew(1, 2).Div(Point(0)).IsEmpty())
	})

	t.Run("ZeroNumerator", func(t *testing.T) {
		require.True(t, Point(0).Div(MustNew(3, 4)).Equal(Point(0)))
		require.True(t, Point(0).Div(MustNew(0, 4)).Equal(Point(0)))
	})
}

func TestPowParity(t *testing.T) {
	require.True(t, MustNew(-2, 3).Pown(2).Equal(MustNew(0, 9)))
	require.True(t, MustNew(-2, 3).Pown(3).Equal(MustNew(-8, 27)))
	require.True(t, MustNew(-3, -2).Pown(2).Equal(MustNew(4, 9)))
	require.True(t, MustNew(2, 3).Pown(0).Equal(Point(1)))
	require.True(t, Empty().Pown(2).IsEmpty())
	require.True(t, MustNew(-2, 3).Sqr().Equal(MustNew(0, 9)))

	t.Run("Negative", func(t *testing.T) {
		x := MustNew(2, 4).Pown(-2)
		require.True(t, x.Contains(1.0/16) && x.Contains(0.25))
		require.True(t, x.SubsetOf(MustNew(0.06, 0.26)))
		// negative power of a zero-straddling interval stays total
		require.True(t, MustNew(-1, 1).Pown(-3).IsEntire())
	})
}

func TestPowReal(t *testing.T) {
	t.Run("PositiveBase", func(t *testing.T) {
		x := MustNew(2, 3).Pow(Point(2))
		require.True(t, x.Contains(4) && x.Contains(9))
		require.True(t, x.SubsetOf(MustNew(3.9, 9.1)))
	})

	t.Run("DomainRestriction", func(t *testing.T) {
		require.True(t, MustNew(-3, -2).Pow(Point(0.5)).IsEmpty())
		// base straddling zero restricts to the non-negative part
		x := MustNew(-1, 4).Pow(Point(0.5))
		require.True(t, x.Contains(0) && x.Contains(2))
	})

	t.Run("ZeroBase", func(t *testing.T) {
		require.True(t, Point(0).Pow(Point(2)).Equal(Point(0)))
		require.True(t, Point(0).Pow(Point(0)).Equal(Point(1)))
		require.True(t, Point(0).Pow(MustNew(-1, -0.5)).IsEmpty())
	})

	t.Run("Checked", func(t *testing.T) {
		_, err := MustNew(-3, -2).PowChecked(Point(0.5))
		require.ErrorIs(t, err, ErrDomain)
		_, err = Point(0).PowChecked(MustNew(-2, -1))
		require.ErrorIs(t, err, ErrDomain)
		x, err := MustNew(2, 3).PowChecked(Point(2))
		require.NoError(t, err)
		require.True(t, x.Contains(9))
	})
}

func TestEmptyAbsorption(t *testing.T) {
	x := MustNew(-2, 5)
	for name, got := range map[string]Interval{
		"Add":       Empty().Add(x),
		"AddRight":  x.Add(Empty()),
		"Sub":       Empty().Sub(x),
		"Mul":       Empty().Mul(x),
		"MulRight":  x.Mul(Empty()),
		"Div":       Empty().Div(x),
		"Neg":       Empty().Neg(),
		"Intersect": Empty().Intersect(x),
		"Pow":       Empty().Pow(x),
		"Sqrt":      Empty().Sqrt(),
	} {
		require.True(t, got.IsEmpty(), "%s did not absorb empty", name)
	}
}

func TestArithmeticSoundness(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG(sampling.TestKey(t.Name()))
	require.NoError(t, err)

	bigOf := func(v float64) *big.Float {
		return new(big.Float).SetPrec(200).SetFloat64(v)
	}

	for i := 0; i < soundnessSamples; i++ {
		x := randBounded(prng, -50, 50)
		y := randBounded(prng, -50, 50)
		a := sampleIn(prng, x)
		b := sampleIn(prng, y)

		requireEncloses(t, x.Add(y), new(big.Float).Add(bigOf(a), bigOf(b)))
		requireEncloses(t, x.Sub(y), new(big.Float).Sub(bigOf(a), bigOf(b)))
		requireEncloses(t, x.Mul(y), new(big.Float).Mul(bigOf(a), bigOf(b)))
		if b != 0 && !y.Contains(0) {
			requireEncloses(t, x.Div(y), new(big.Float).Quo(bigOf(a), bigOf(b)))
		}
	}
}

func TestContainmentMonotonicity(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG(sampling.TestKey(t.Name()))
	require.NoError(t, err)

	shrink := func(x Interval) Interval {
		a := sampleIn(prng, x)
		b := sampleIn(prng, x)
		return Span(a, b)
	}

	for i := 0; i < soundnessSamples; i++ {
		x := randBounded(prng, -20, 20)
		y := randBounded(prng, -20, 20)
		xs := shrink(x)
		ys := shrink(y)

		require.True(t, xs.Add(ys).SubsetOf(x.Add(y)))
		require.True(t, xs.Sub(ys).SubsetOf(x.Sub(y)))
		require.True(t, xs.Mul(ys).SubsetOf(x.Mul(y)))
	}
}

func BenchmarkMul(b *testing.B) {
	x := MustNew(-1.5, 2.5)
	y := MustNew(3.25, 4.75)
	var r Interval
	for i := 0; i < b.N; i++ {
		r = x.Mul(y)
	}
	_ = r
}

func BenchmarkAdd(b *testing.B) {
	x := MustNew(-1.5, 2.5)
	y := MustNew(3.25, 4.75)
	var r Interval
	for i := 0; i < b.N; i++ {
		r = x.Add(y)
	}
	_ = r
}
