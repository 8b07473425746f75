package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandString(t *testing.T) {
	s := RandString()
	require.Len(t, s, 10)
}

func TestRandKeyspace(t *testing.T) {
	ks := RandKeyspace()
	require.True(t, len(ks) > len("test_"))

	// a keyspace name must be a lowercase identifier
	for _, r := range ks {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
		require.True(t, valid, "unexpected rune %q in keyspace name %q", r, ks)
	}
}
