package post

import "time"

// Post is one blog entry. Author references users.username by value
// and is fixed at creation; no operation in this package updates it.
type Post struct {
	ID        int64
	Title     string
	Author    string
	Content   string
	CreatedAt time.Time
}
