package user

import "time"

// User is a registered account. Users are created at registration and
// never modified or deleted by this application.
type User struct {
	ID           string
	Name         string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
