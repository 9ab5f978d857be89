package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	require.Equal(t, ID("hello"), ID("hello"))
	require.NotEqual(t, ID("hello"), ID("world"))
}

func TestID_MatchesSum64(t *testing.T) {
	require.Equal(t, ID("hello"), Sum64([]byte("hello")))
}

func TestSum64_Empty(t *testing.T) {
	// The xxHash64 seed of empty input is a fixed known value; what matters
	// here is stability across calls.
	require.Equal(t, Sum64(nil), Sum64([]byte{}))
}
