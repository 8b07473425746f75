package storage

import (
	"errors"
	"fmt"
	"sync"

	"channel-message-service/internal/storage/zapadapter"

	"github.com/gocql/gocql"
	"go.uber.org/zap"
)

var (
	ErrInvalidAuthorID = errors.New("author id is not a valid uuid")
	ErrBlankMessage    = errors.New("message text is blank")
	ErrBlankField      = errors.New("username, email and password must not be blank")
	ErrUnauthorized    = errors.New("unknown username or wrong password")
)

// Store defines fields used in db interaction processes
type Store struct {
	logger      *zap.SugaredLogger
	cfg         Config
	consistency gocql.Consistency
	opts        []Option

	mu      sync.Mutex
	session *gocql.Session
}

// NewStore validates provided Config and returns an instance of Store struct.
// No connection is established here: the keyspace-bound session is created
// lazily because the keyspace may not exist until CreateKeyspace has run.
func NewStore(logger *zap.SugaredLogger, cfg Config, opts ...Option) (*Store, error) {
	consistency, err := cfg.consistency()
	if err != nil {
		return nil, err
	}

	return &Store{
		logger:      logger,
		cfg:         cfg,
		consistency: consistency,
		opts:        opts,
	}, nil
}

// cluster builds a gocql.ClusterConfig bound to provided keyspace.
// A blank keyspace produces an unbound config used for keyspace DDL.
func (s *Store) cluster(keyspace string) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(s.cfg.Hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = s.consistency
	cluster.ConnectTimeout = s.cfg.ConnectTimeout
	cluster.Logger = zapadapter.NewLogger(s.logger.Desugar())
	for _, opt := range s.opts {
		opt.apply(cluster)
	}
	return cluster
}

// data returns the shared keyspace-bound session, creating it on first use.
// Session creation fails when no seed node is reachable or when the keyspace
// does not exist yet.
func (s *Store) data() (*gocql.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		return s.session, nil
	}

	session, err := s.cluster(s.cfg.Keyspace).CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connect to cluster (keyspace %q): %w", s.cfg.Keyspace, err)
	}
	s.session = session

	return session, nil
}

// control returns a fresh session without keyspace binding for keyspace-level
// DDL. The caller must close it.
func (s *Store) control() (*gocql.Session, error) {
	session, err := s.cluster("").CreateSession()
	if err != nil {
		return nil, fmt.Errorf("connect to cluster: %w", err)
	}
	return session, nil
}

// invalidate closes the cached session so the next data call reconnects
func (s *Store) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.session.Close()
		s.session = nil
	}
}

// Close closes the underlying session if one has been established
func (s *Store) Close() {
	s.invalidate()
}
