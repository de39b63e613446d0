package session

import (
	"context"
	"time"
)

// Session is the server-side identity state for one logged-in client.
// Existence of a session implies "logged in"; the username is the only
// identity the rest of the application reads.
type Session struct {
	SessionID string    // unique session identifier
	Username  string    // references users.username
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Get returns (nil, nil) when the session does not exist.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
