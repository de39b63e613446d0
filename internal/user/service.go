package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/db"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUsernameTaken   = errors.New("username already taken")
)

type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

// Register stores a new account with a bcrypt hash of the password.
// The username must be unused; the unique index on users.username is
// the final arbiter under concurrent registrations.
func (s *Service) Register(
	ctx context.Context,
	name string,
	email string,
	username string,
	password string,
) (string, error) {

	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE username = ?
		)
	`, username).Scan(&exists)

	if err != nil {
		return "", err
	}

	if exists {
		return "", ErrUsernameTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, username, password_hash)
		VALUES (?, ?, ?, ?, ?)
	`, id, name, email, username, hash)

	if err != nil {
		return "", err
	}

	return id, nil
}

// Authenticate verifies a username/password pair. It distinguishes an
// unknown username from a wrong password because the login page shows
// a different notice for each.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) error {

	var passwordHash string

	err := s.db.QueryRowContext(ctx, `
		SELECT password_hash FROM users
		WHERE username = ?
	`, username).Scan(&passwordHash)

	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := VerifyPassword(passwordHash, password); err != nil {
		return ErrInvalidPassword
	}

	return nil
}

// FindByUsername returns the stored account without its password hash.
func (s *Service) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, username, created_at
		FROM users
		WHERE username = ?
	`, username).Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
