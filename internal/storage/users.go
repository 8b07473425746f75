package storage

import (
	"context"
	"errors"

	"github.com/gocql/gocql"
)

const (
	insertUserCQL     = `INSERT INTO users (user_id, username, email, password) VALUES (now(), ?, ?, ?)`
	selectUserCQL     = `SELECT user_id, username, email, password FROM users WHERE username = ?`
	selectAllUsersCQL = `SELECT user_id, username, email FROM users`
)

// RegisterUser inserts a directory entry for username. The users table is
// keyed by username alone and no existence check is performed, so registering
// an existing name silently replaces the previous row (last writer wins).
func (s *Store) RegisterUser(ctx context.Context, username, email, password string) error {
	if len(username) == 0 || len(email) == 0 || len(password) == 0 {
		return ErrBlankField
	}

	s.logger.Debugf("Registering user (%s)", username)

	session, err := s.data()
	if err != nil {
		return err
	}

	batch := session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Cons = s.consistency
	batch.Query(insertUserCQL, username, email, password)

	return session.ExecuteBatch(batch)
}

// Login compares the stored plaintext password for username with the provided
// one. An unknown username and a wrong password both return ErrUnauthorized,
// so callers cannot probe which usernames exist.
func (s *Store) Login(ctx context.Context, username, password string) (User, error) {
	s.logger.Debugf("Login attempt for user (%s)", username)

	session, err := s.data()
	if err != nil {
		return User{}, err
	}

	var u User
	err = session.Query(selectUserCQL, username).WithContext(ctx).
		Scan(&u.UserID, &u.Username, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return User{}, ErrUnauthorized
		}
		return User{}, err
	}

	if u.Password != password {
		return User{}, ErrUnauthorized
	}

	u.Password = ""

	return u, nil
}

// AllUsers returns every directory entry without passwords. Unbounded scan.
func (s *Store) AllUsers(ctx context.Context) ([]User, error) {
	s.logger.Debug("Retrieving all users")

	session, err := s.data()
	if err != nil {
		return nil, err
	}

	iter := session.Query(selectAllUsersCQL).WithContext(ctx).Iter()

	users := make([]User, 0)
	var u User
	for iter.Scan(&u.UserID, &u.Username, &u.Email) {
		users = append(users, u)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	s.logger.Debugf("Retrieved %d users", len(users))

	return users, nil
}
