package storage

import (
	"encoding/json"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"
)

func TestUserJSONOmitsPassword(t *testing.T) {
	u := User{
		UserID:   gocql.TimeUUID(),
		Username: "Alex",
		Email:    "a.scholli@mail.de",
		Password: "topsecret",
	}

	payload, err := json.Marshal(u)
	require.NoError(t, err)

	require.NotContains(t, string(payload), "topsecret")
	require.NotContains(t, string(payload), "password")
}
