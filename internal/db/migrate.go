package db

import (
	"context"
	"database/sql"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(36)     NOT NULL,
		name          VARCHAR(30)  NOT NULL,
		email         VARCHAR(255) NOT NULL,
		username      VARCHAR(35)  NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY users_username_unique (username)
	)`,

	// posts.author references users.username by value, not by foreign
	// key: a post keeps its author string even though users are never
	// deleted by this application.
	`CREATE TABLE IF NOT EXISTS posts (
		id         BIGINT       NOT NULL AUTO_INCREMENT,
		title      VARCHAR(100) NOT NULL,
		author     VARCHAR(35)  NOT NULL,
		content    TEXT         NOT NULL,
		created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY posts_author_idx (author)
	)`,
}

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so startup can run this unconditionally.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
