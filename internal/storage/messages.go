package storage

import (
	"context"

	"github.com/gocql/gocql"
)

const (
	insertMessageCQL         = `INSERT INTO messages (channel_id, message_id, author_id, message) VALUES (?, now(), ?, ?)`
	selectChannelMessagesCQL = `SELECT channel_id, message_id, author_id, message FROM messages WHERE channel_id = ?`
	selectAllMessagesCQL     = `SELECT channel_id, message_id, author_id, message FROM messages`
)

// AppendMessage stores a new message in the channel partition. message_id is
// assigned by the store from its clock at execution time, so concurrent
// appends to one channel never collide and rows sort by recency. There is no
// client-supplied dedup key: a replayed request creates a duplicate message.
func (s *Store) AppendMessage(ctx context.Context, channelID int64, authorID, text string) error {
	author, err := gocql.ParseUUID(authorID)
	if err != nil {
		return ErrInvalidAuthorID
	}
	if len(text) == 0 {
		return ErrBlankMessage
	}

	s.logger.Debugf("Appending message from author (%s) to channel %d", author, channelID)

	session, err := s.data()
	if err != nil {
		return err
	}

	batch := session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Cons = s.consistency
	batch.Query(insertMessageCQL, channelID, author, text)

	return session.ExecuteBatch(batch)
}

// MessagesByChannel returns every message of one channel in clustering order,
// newest first. The result set is unbounded.
func (s *Store) MessagesByChannel(ctx context.Context, channelID int64) ([]Message, error) {
	s.logger.Debugf("Retrieving messages for channel %d", channelID)

	session, err := s.data()
	if err != nil {
		return nil, err
	}

	messages, err := scanMessages(session.Query(selectChannelMessagesCQL, channelID).WithContext(ctx).Iter())
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("Retrieved %d messages", len(messages))

	return messages, nil
}

// AllMessages returns every message across all channel partitions. The scan
// is unbounded and cross-partition ordering is unspecified.
func (s *Store) AllMessages(ctx context.Context) ([]Message, error) {
	s.logger.Debug("Retrieving all messages")

	session, err := s.data()
	if err != nil {
		return nil, err
	}

	messages, err := scanMessages(session.Query(selectAllMessagesCQL).WithContext(ctx).Iter())
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("Retrieved %d messages", len(messages))

	return messages, nil
}

func scanMessages(iter *gocql.Iter) ([]Message, error) {
	messages := make([]Message, 0)

	var m Message
	for iter.Scan(&m.ChannelID, &m.MessageID, &m.AuthorID, &m.Message) {
		messages = append(messages, m)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	return messages, nil
}
