package storage

import "github.com/gocql/gocql"

// Message is a single row of the messages table. Rows sharing ChannelID live
// in one partition and cluster by MessageID descending, so reads come back
// newest first without an application-side sort.
type Message struct {
	ChannelID int64      `json:"channel_id"`
	MessageID gocql.UUID `json:"message_id"`
	AuthorID  gocql.UUID `json:"author_id"`
	Message   string     `json:"message"`
}

// User is a directory entry keyed by username. Password is stored in clear
// text and must never be serialized back to a client.
type User struct {
	UserID   gocql.UUID `json:"user_id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Password string     `json:"-"`
}
