package storage

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"
)

// Config defines fields used for connecting to a Cassandra cluster
type Config struct {
	Hosts             []string      `env:"CASSANDRA_HOSTS" envSeparator:"," envDefault:"cassandradb1"`
	Keyspace          string        `env:"CASSANDRA_KEYSPACE" envDefault:"socialmessagekeyspace"`
	Consistency       string        `env:"CASSANDRA_CONSISTENCY" envDefault:"one"`
	ReplicationFactor int           `env:"CASSANDRA_REPLICATION_FACTOR" envDefault:"2"`
	ConnectTimeout    time.Duration `env:"CASSANDRA_CONNECT_TIMEOUT" envDefault:"10s"`
}

// consistency maps the configured consistency name to a gocql.Consistency.
// Only single-replica-ack ("one") and quorum-ack ("quorum") are recognized;
// quorum only makes sense with a multi-node deployment.
func (c Config) consistency() (gocql.Consistency, error) {
	switch c.Consistency {
	case "one":
		return gocql.One, nil
	case "quorum":
		return gocql.Quorum, nil
	default:
		return 0, fmt.Errorf("unsupported consistency level %q", c.Consistency)
	}
}

// Option alters the default gocql.ClusterConfig used during session creation
type Option interface {
	apply(*gocql.ClusterConfig)
}

type optionFunc func(c *gocql.ClusterConfig)

func (f optionFunc) apply(c *gocql.ClusterConfig) { f(c) }

// ConnectionTimeout sets timeout for connection to be established
func ConnectionTimeout(d time.Duration) Option {
	return optionFunc(func(c *gocql.ClusterConfig) {
		c.ConnectTimeout = d
	})
}

// Port overrides the default CQL native protocol port
func Port(p int) Option {
	return optionFunc(func(c *gocql.ClusterConfig) {
		c.Port = p
	})
}
