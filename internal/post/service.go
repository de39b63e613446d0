package post

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/db"
)

var ErrNotFound = errors.New("post not found")

type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

// Create inserts a post and returns its generated id. The author is
// the session identity of the caller, never a form field.
func (s *Service) Create(
	ctx context.Context,
	title string,
	author string,
	content string,
) (int64, error) {

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (title, author, content)
		VALUES (?, ?, ?)
	`, title, author, content)

	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// FindByID returns a post regardless of its author. Any post is
// publicly viewable by id.
func (s *Service) FindByID(ctx context.Context, id int64) (*Post, error) {
	var p Post

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, author, content, created_at
		FROM posts
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Title, &p.Author, &p.Content, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// FindOwned returns a post only when it exists and belongs to author.
// The existence and ownership checks are one combined query.
func (s *Service) FindOwned(ctx context.Context, id int64, author string) (*Post, error) {
	var p Post

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, author, content, created_at
		FROM posts
		WHERE id = ? AND author = ?
	`, id, author).Scan(&p.ID, &p.Title, &p.Author, &p.Content, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// FindAll returns every post for the public listing.
func (s *Service) FindAll(ctx context.Context) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, content, created_at
		FROM posts
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}

	return collect(rows)
}

// FindByAuthor returns the posts written by one user (the dashboard).
func (s *Service) FindByAuthor(ctx context.Context, author string) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, content, created_at
		FROM posts
		WHERE author = ?
		ORDER BY id DESC
	`, author)
	if err != nil {
		return nil, err
	}

	return collect(rows)
}

// SearchByTitle returns posts whose title contains keyword as a
// substring. The pattern is bound as a parameter; keyword text never
// reaches the SQL string.
func (s *Service) SearchByTitle(ctx context.Context, keyword string) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, content, created_at
		FROM posts
		WHERE title LIKE ?
		ORDER BY id DESC
	`, "%"+keyword+"%")
	if err != nil {
		return nil, err
	}

	return collect(rows)
}

// UpdateOwned rewrites title and content of a post iff it belongs to
// author. The author column itself is never part of the SET clause.
// Returns false when no post matched id+author.
func (s *Service) UpdateOwned(
	ctx context.Context,
	id int64,
	author string,
	title string,
	content string,
) (bool, error) {

	res, err := s.db.ExecContext(ctx, `
		UPDATE posts
		SET title = ?, content = ?
		WHERE id = ? AND author = ?
	`, title, content, id, author)

	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteOwned removes a post iff it belongs to author. Returns false
// when no post matched id+author, which covers both "no such post"
// and "not yours".
func (s *Service) DeleteOwned(ctx context.Context, id int64, author string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM posts
		WHERE id = ? AND author = ?
	`, id, author)

	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// collect drains rows into a slice, closing the iterator on every
// path.
func collect(rows *sql.Rows) ([]Post, error) {
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Author, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}
