package interval

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestValidity(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()

	t.Run("Ordered", func(t *testing.T) {
		require.True(t, IsValid(1, 2))
		require.True(t, IsValid(-inf, 2))
		require.True(t, IsValid(1, inf))
		require.True(t, IsValid(-inf, inf))
		require.False(t, IsValid(2, 1))
	})

	t.Run("EmptySentinel", func(t *testing.T) {
		require.True(t, IsValid(inf, -inf))
		x, err := New(inf, -inf)
		require.NoError(t, err)
		require.True(t, x.IsEmpty())
	})

	t.Run("NaN", func(t *testing.T) {
		require.False(t, IsValid(nan, 1))
		require.False(t, IsValid(1, nan))
		require.False(t, IsValid(nan, nan))
	})

	t.Run("InfiniteBoundOnWrongSide", func(t *testing.T) {
		require.False(t, IsValid(inf, inf))
		require.False(t, IsValid(-inf, -inf))
	})

	t.Run("NewRejects", func(t *testing.T) {
		_, err := New(5, 3)
		require.ErrorIs(t, err, ErrInvalidInterval)
		_, err = New(nan, 0)
		require.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("PointAndSpan", func(t *testing.T) {
		require.True(t, Point(3).Equal(MustNew(3, 3)))
		require.True(t, Span(5, 3).Equal(MustNew(3, 5)))
		require.True(t, Span(3, 5).Equal(MustNew(3, 5)))
		require.Panics(t, func() { Point(nan) })
		require.Panics(t, func() { Span(nan, 1) })
	})
}

func TestSetOperations(t *testing.T) {
	a := MustNew(0, 4)
	b := MustNew(2, 6)
	c := MustNew(5, 7)

	t.Run("Contains", func(t *testing.T) {
		require.True(t, a.Contains(0))
		require.True(t, a.Contains(4))
		require.False(t, a.Contains(4.5))
		require.False(t, Empty().Contains(0))
		require.False(t, a.Contains(math.NaN()))
	})

	t.Run("Intersect", func(t *testing.T) {
		require.True(t, a.Intersect(b).Equal(MustNew(2, 4)))
		require.True(t, a.Intersect(c).IsEmpty())
		require.True(t, a.Intersect(Empty()).IsEmpty())
		require.True(t, Empty().Intersect(a).IsEmpty())
	})

	t.Run("Hull", func(t *testing.T) {
		require.True(t, a.Hull(c).Equal(MustNew(0, 7)))
		require.True(t, a.Hull(Empty()).Equal(a))
		require.True(t, Empty().Hull(a).Equal(a))
	})

	t.Run("HullIntersectRoundTrip", func(t *testing.T) {
		// intersect(x, hull(x,y)) contains x
		require.True(t, a.SubsetOf(a.Intersect(a.Hull(c))))
		// hull(x, intersect(x,y)) is within hull(x,y)
		require.True(t, a.Hull(a.Intersect(b)).SubsetOf(a.Hull(b)))
	})

	t.Run("SubsetDisjoint", func(t *testing.T) {
		require.True(t, MustNew(1, 2).SubsetOf(a))
		require.False(t, b.SubsetOf(a))
		require.True(t, Empty().SubsetOf(a))
		require.True(t, a.Disjoint(c))
		require.False(t, a.Disjoint(b))
		require.True(t, a.Disjoint(Empty()))
	})

	t.Run("WidthMidRad", func(t *testing.T) {
		require.Equal(t, 4.0, a.Width())
		require.Equal(t, 2.0, a.Mid())
		require.Equal(t, 2.0, a.Rad())
		require.True(t, math.IsNaN(Empty().Width()))
		require.True(t, math.IsNaN(Empty().Mid()))
		require.True(t, math.IsInf(MustNew(0, math.Inf(1)).Width(), 1))
	})

	t.Run("MidHalfInfinite", func(t *testing.T) {
		require.Equal(t, 5.0, MustNew(math.Inf(-1), 5).Mid())
		require.Equal(t, -3.0, MustNew(-3, math.Inf(1)).Mid())
		require.Equal(t, 0.0, Entire().Mid())
	})

	t.Run("MagMigAbs", func(t *testing.T) {
		x := MustNew(-3, 2)
		require.Equal(t, 3.0, x.Mag())
		require.Equal(t, 0.0, x.Mig())
		require.True(t, x.Abs().Equal(MustNew(0, 3)))
		require.True(t, MustNew(-5, -2).Abs().Equal(MustNew(2, 5)))
	})
}

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Interval
	}{
		{"[1, 2]", MustNew(1, 2)},
		{"[ -3.5 , 4e2 ]", MustNew(-3.5, 400)},
		{"[7]", Point(7)},
		{"∅", Empty()},
		{"[empty]", Empty()},
		{"[-inf, 2]", MustNew(math.Inf(-1), 2)},
		{"[-∞, ∞]", Entire()},
		{"[inf, -inf]", Empty()},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			require.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}

	t.Run("Rejects", func(t *testing.T) {
		for _, in := range []string{"", "1,2", "[1; 2]", "[1, 2, 3]", "[2, 1]", "[nan, 1]"} {
			_, err := Parse(in)
			require.Error(t, err, "input %q", in)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, x := range []Interval{
			MustNew(-1.25, 7), Point(3), Empty(), Entire(), MustNew(0, math.Inf(1)),
		} {
			got, err := Parse(x.String())
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(x, got, cmp.Comparer(Interval.Equal)))
		}
	})

	t.Run("Glyphs", func(t *testing.T) {
		require.Equal(t, "∅", Empty().String())
		require.Equal(t, "[-∞, ∞]", Entire().String())
		require.Equal(t, "[1, 2]", MustNew(1, 2).String())
	})
}

func TestConfig(t *testing.T) {
	// The configuration resolves once per process; with no ENCIVAL_*
	// variables set, the defaults apply.
	c := GetConfig()
	require.True(t, c.Strict)
	require.Equal(t, FlavorSet, c.DefaultFlavor)

	require.NoError(t, Configure(c))
	err := Configure(Config{Strict: false, DefaultFlavor: FlavorReal})
	require.Error(t, err)

	f, err := ParseFlavor("real")
	require.NoError(t, err)
	require.Equal(t, FlavorReal, f)
	require.Equal(t, "real", f.String())
	_, err = ParseFlavor("complex")
	require.Error(t, err)
}

func TestReal(t *testing.T) {
	x := MustNew(1, 2).AsReal()
	y := MustNew(3, 4).AsReal()
	z := MustNew(1.5, 3.5).AsReal()

	require.True(t, x.Less(y))
	require.True(t, y.Greater(x))
	require.Equal(t, 0, x.Cmp(z))
	require.Equal(t, 0, z.Cmp(y))
	require.True(t, x.LessEq(MustNew(2, 5).AsReal()))
	require.False(t, x.Less(z))
	require.Equal(t, 0, Empty().AsReal().Cmp(x))

	sum := x.Add(y)
	require.True(t, sum.Interval.Equal(MustNew(4, 6)))
}
