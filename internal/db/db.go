package db

import "database/sql"

// DB wraps the shared *sql.DB pool so services depend on one type.
type DB struct {
	*sql.DB
}
