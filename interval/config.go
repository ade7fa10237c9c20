package interval

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/google/go-cmp/cmp"
)

// Flavor selects which operator surface an interval exposes. Both flavors
// share the same data layout and invariants; they differ only in whether
// the interval participates in a real-number-like ordering (see Real) or
// is treated as a pure set.
type Flavor int

const (
	// FlavorSet is the set-theoretic flavor: intervals support set and
	// arithmetic operations but no total-order comparisons.
	FlavorSet Flavor = iota
	// FlavorReal is the real-number-like flavor: intervals additionally
	// expose the certainly-ordered comparisons of the Real type.
	FlavorReal
)

func (f Flavor) String() string {
	switch f {
	case FlavorSet:
		return "set"
	case FlavorReal:
		return "real"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// ParseFlavor parses "set" or "real".
func ParseFlavor(s string) (Flavor, error) {
	switch s {
	case "set":
		return FlavorSet, nil
	case "real":
		return FlavorReal, nil
	default:
		return FlavorSet, fmt.Errorf("unknown interval flavor %q", s)
	}
}

// Config holds the two process-wide switches of the library. It is
// resolved exactly once, before the first interval operation that consults
// it, and is read-only afterwards.
type Config struct {
	// Strict enables endpoint validation in New. When false, New trusts
	// its caller and skips the check.
	Strict bool
	// DefaultFlavor is the flavor assumed by surfaces that do not take
	// an explicit flavor, such as the CLI.
	DefaultFlavor Flavor
}

// Equal reports whether both configurations are identical.
func (c Config) Equal(other Config) bool {
	// Compare through a method-less alias: cmp.Equal dispatches to an
	// Equal method when one exists, which here would recurse forever.
	type plain Config
	return cmp.Equal(plain(c), plain(other))
}

// Environment variables consulted by the default configuration.
const (
	EnvStrict = "ENCIVAL_STRICT"
	EnvFlavor = "ENCIVAL_FLAVOR"
)

var (
	configOnce sync.Once
	config     = Config{Strict: true, DefaultFlavor: FlavorSet}
)

// configFromEnv resolves the configuration from the environment, falling
// back to strict validation and the set flavor.
func configFromEnv() Config {
	c := Config{Strict: true, DefaultFlavor: FlavorSet}
	if v, ok := os.LookupEnv(EnvStrict); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
	if v, ok := os.LookupEnv(EnvFlavor); ok {
		if f, err := ParseFlavor(v); err == nil {
			c.DefaultFlavor = f
		}
	}
	return c
}

// Configure installs c as the process-wide configuration. It must be
// called before any interval operation; once the configuration has been
// resolved, by Configure or by a first read, it cannot change.
func Configure(c Config) error {
	installed := false
	configOnce.Do(func() {
		config = c
		installed = true
	})
	if !installed && !config.Equal(c) {
		return fmt.Errorf("interval configuration already resolved to %+v", config)
	}
	return nil
}

// GetConfig returns the process-wide configuration, resolving it from the
// environment on first use.
func GetConfig() Config {
	configOnce.Do(func() {
		config = configFromEnv()
	})
	return config
}
