package storage

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"
)

const (
	createMessagesTableCQL = `
		CREATE TABLE IF NOT EXISTS messages (
			channel_id bigint,
			message_id timeuuid,
			author_id uuid,
			message text,
			PRIMARY KEY (channel_id, message_id)
		) WITH CLUSTERING ORDER BY (message_id DESC)`

	createUsersTableCQL = `
		CREATE TABLE IF NOT EXISTS users (
			user_id uuid,
			username text,
			email text,
			password text,
			PRIMARY KEY (username)
		)`
)

var (
	seedAuthorOne = mustUUID("a8098c1a-f86e-11da-bd1a-00112444be1e")
	seedAuthorTwo = mustUUID("ab398c12-f86e-23da-bd1a-aabb2233be1e")

	// seedMessages is the demo conversation inserted right after table
	// creation: 11 rows in channel 1, one in channel 2, one in channel 3.
	// The store assigns message ids at insert time.
	seedMessages = []Message{
		{ChannelID: 1, AuthorID: seedAuthorOne, Message: "Hi there"},
		{ChannelID: 1, AuthorID: seedAuthorOne, Message: "Someone in here"},
		{ChannelID: 1, AuthorID: seedAuthorTwo, Message: "Hey, yeah sure"},
		{ChannelID: 1, AuthorID: seedAuthorOne, Message: "Cool :) What is up man?"},
		{ChannelID: 1, AuthorID: seedAuthorTwo, Message: "I am writing a little API..."},
		{ChannelID: 1, AuthorID: seedAuthorOne, Message: "What is the API about?"},
		{ChannelID: 1, AuthorID: seedAuthorTwo, Message: "Connecting to a Cassandra Database"},
		{ChannelID: 1, AuthorID: seedAuthorOne, Message: "Oh wow sound interesting!"},
		{ChannelID: 1, AuthorID: seedAuthorTwo, Message: "Yeah, it is a bit different but I am slowly getting it"},
		{ChannelID: 1, AuthorID: seedAuthorOne, Message: "Is it very different?"},
		{ChannelID: 1, AuthorID: seedAuthorTwo, Message: "From the outside no, but if you get deeper it is very different."},
		{ChannelID: 2, AuthorID: seedAuthorOne, Message: "Hey, someone in this channel?"},
		{ChannelID: 3, AuthorID: seedAuthorTwo, Message: "Hey, what is this channel about?"},
	}

	seedUsers = []User{
		{Username: "Alex", Email: "a.scholli@mail.de", Password: "alex"},
		{Username: "Bianca", Email: "b.name@mail.de", Password: "bianca"},
	}
)

func mustUUID(s string) gocql.UUID {
	id, err := gocql.ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// CreateKeyspace creates the configured keyspace if absent. SimpleStrategy is
// topology-unaware; the replication factor comes from config. Idempotent.
func (s *Store) CreateKeyspace(ctx context.Context) error {
	s.logger.Debugf("Creating keyspace %q", s.cfg.Keyspace)

	session, err := s.control()
	if err != nil {
		return err
	}
	defer session.Close()

	stmt := fmt.Sprintf(`
		CREATE KEYSPACE IF NOT EXISTS %s
		WITH replication = { 'class': 'SimpleStrategy', 'replication_factor': '%d' }`,
		s.cfg.Keyspace, s.cfg.ReplicationFactor)

	if err := session.Query(stmt).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("create keyspace %q: %w", s.cfg.Keyspace, err)
	}

	return nil
}

// DropKeyspace deletes the keyspace and all contained data. Irreversible,
// no-op when the keyspace is absent.
func (s *Store) DropKeyspace(ctx context.Context) error {
	s.logger.Debugf("Dropping keyspace %q", s.cfg.Keyspace)

	session, err := s.control()
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Query("DROP KEYSPACE IF EXISTS "+s.cfg.Keyspace).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("drop keyspace %q: %w", s.cfg.Keyspace, err)
	}

	// cached session points at a keyspace that is gone
	s.invalidate()

	return nil
}

// CreateMessagesTable creates the messages table if absent and inserts the
// demo conversation in a single logged batch, so the seed either fully
// applies or the whole call fails.
func (s *Store) CreateMessagesTable(ctx context.Context) error {
	session, err := s.data()
	if err != nil {
		return err
	}

	if err := session.Query(createMessagesTableCQL).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("create messages table: %w", err)
	}

	batch := session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	for _, m := range seedMessages {
		batch.Query(insertMessageCQL, m.ChannelID, m.AuthorID, m.Message)
	}
	if err := session.ExecuteBatch(batch); err != nil {
		return fmt.Errorf("seed messages: %w", err)
	}

	s.logger.Debugf("Created messages table and seeded %d messages", len(seedMessages))

	return nil
}

// CreateUsersTable creates the users table if absent and seeds the demo users
// in a single logged batch.
func (s *Store) CreateUsersTable(ctx context.Context) error {
	session, err := s.data()
	if err != nil {
		return err
	}

	if err := session.Query(createUsersTableCQL).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	batch := session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	for _, u := range seedUsers {
		batch.Query(insertUserCQL, u.Username, u.Email, u.Password)
	}
	if err := session.ExecuteBatch(batch); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	s.logger.Debugf("Created users table and seeded %d users", len(seedUsers))

	return nil
}
