package storage

import (
	"context"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// bootstrap returns a Store pointed at an unreachable cluster. Validation
// paths fail before any connection attempt, so these tests never dial.
func bootstrap(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(zap.NewNop().Sugar(), Config{
		Hosts:             []string{"127.0.0.1"},
		Keyspace:          "unused",
		Consistency:       "one",
		ReplicationFactor: 1,
		ConnectTimeout:    time.Second,
	})
	require.NoError(t, err)

	return s
}

func TestNewStoreUnsupportedConsistency(t *testing.T) {
	t.Parallel()

	_, err := NewStore(zap.NewNop().Sugar(), Config{
		Hosts:       []string{"127.0.0.1"},
		Consistency: "all",
	})
	require.Error(t, err)
}

func TestAppendMessageInvalidAuthorID(t *testing.T) {
	t.Parallel()

	s := bootstrap(t)

	err := s.AppendMessage(context.Background(), 1, "not-a-uuid", "Hi There!")
	require.ErrorIs(t, err, ErrInvalidAuthorID)
}

func TestAppendMessageBlankText(t *testing.T) {
	t.Parallel()

	s := bootstrap(t)

	err := s.AppendMessage(context.Background(), 1, gocql.TimeUUID().String(), "")
	require.ErrorIs(t, err, ErrBlankMessage)
}

func TestRegisterUserBlankFields(t *testing.T) {
	t.Parallel()

	s := bootstrap(t)

	cases := []struct {
		username, email, password string
	}{
		{"", "a@mail.de", "secret"},
		{"alice", "", "secret"},
		{"alice", "a@mail.de", ""},
		{"", "", ""},
	}

	for _, c := range cases {
		err := s.RegisterUser(context.Background(), c.username, c.email, c.password)
		require.ErrorIs(t, err, ErrBlankField)
	}
}
