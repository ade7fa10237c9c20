package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParse is returned by Parse for malformed interval literals.
var ErrParse = errors.New("malformed interval literal")

// Parse reads the bracketed textual form of an interval:
//
//	"[lo, hi]"   two endpoints
//	"[a]"        a point interval
//	"∅", "[empty]"  the empty interval
//
// Endpoints accept anything strconv.ParseFloat does, plus "inf", "+inf",
// "-inf" and the glyphs "∞", "+∞", "-∞". Parsed pairs are always
// validated, independently of the strictness configuration: text is
// external input and is never trusted.
func Parse(s string) (Interval, error) {
	t := strings.TrimSpace(s)

	switch t {
	case "∅", "[empty]", "[]":
		return Empty(), nil
	}

	if len(t) < 2 || t[0] != '[' || t[len(t)-1] != ']' {
		return Empty(), fmt.Errorf("%w: %q", ErrParse, s)
	}
	body := t[1 : len(t)-1]

	parts := strings.Split(body, ",")
	if len(parts) > 2 {
		return Empty(), fmt.Errorf("%w: %q has more than two endpoints", ErrParse, s)
	}

	lo, err := parseEndpoint(parts[0])
	if err != nil {
		return Empty(), fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	hi := lo
	if len(parts) == 2 {
		if hi, err = parseEndpoint(parts[1]); err != nil {
			return Empty(), fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
	}

	if !IsValid(lo, hi) {
		return Empty(), fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, lo, hi)
	}
	return unchecked(lo, hi), nil
}

func parseEndpoint(s string) (float64, error) {
	t := strings.TrimSpace(s)
	switch t {
	case "inf", "+inf", "∞", "+∞":
		return math.Inf(1), nil
	case "-inf", "-∞":
		return math.Inf(-1), nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("NaN endpoint")
	}
	return v, nil
}

func formatEndpoint(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders "∅" for the empty interval and "[lo, hi]" otherwise,
// substituting the infinity glyph for infinite bounds. The output parses
// back through Parse.
func (x Interval) String() string {
	if x.IsEmpty() {
		return "∅"
	}
	return "[" + formatEndpoint(x.lo) + ", " + formatEndpoint(x.hi) + "]"
}
