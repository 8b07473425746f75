package testing

import (
	"math/rand"
	"strings"
)

// RandString generates random string with 10 symbols length from lower- and uppercase alphabet
func RandString() string {
	var out strings.Builder
	charSet := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	length := 10
	for i := 0; i < length; i++ {
		random := rand.Intn(len(charSet))
		randomChar := charSet[random]
		out.WriteString(string(randomChar))
	}
	return out.String()
}

// RandKeyspace generates a throwaway Cassandra keyspace name. Keyspace names
// are case-insensitive, so the random part is lowercased; the prefix keeps it
// apart from any deployment keyspace.
func RandKeyspace() string {
	return "test_" + strings.ToLower(RandString())
}
