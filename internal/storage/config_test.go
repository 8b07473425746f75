package storage

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"
)

func TestConsistencyOne(t *testing.T) {
	cfg := Config{Consistency: "one"}
	c, err := cfg.consistency()
	require.NoError(t, err)
	require.Equal(t, gocql.One, c)
}

func TestConsistencyQuorum(t *testing.T) {
	cfg := Config{Consistency: "quorum"}
	c, err := cfg.consistency()
	require.NoError(t, err)
	require.Equal(t, gocql.Quorum, c)
}

func TestConsistencyUnsupported(t *testing.T) {
	// only the two deployment-time levels are recognized
	for _, name := range []string{"", "all", "two", "ONE", "local_quorum"} {
		cfg := Config{Consistency: name}
		_, err := cfg.consistency()
		require.Error(t, err, "consistency %q must be rejected", name)
	}
}
