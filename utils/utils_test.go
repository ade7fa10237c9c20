package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMaxClamp(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, 2, Max(1, 2))
	require.Equal(t, -3.5, Min(-3.5, -1.0))
	require.Equal(t, 5.0, Clamp(7.0, 0.0, 5.0))
	require.Equal(t, 0.0, Clamp(-1.0, 0.0, 5.0))
	require.Equal(t, 3.0, Clamp(3.0, 0.0, 5.0))
	require.Equal(t, "a", Min("a", "b"))
}
