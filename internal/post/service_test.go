package post

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Muhammed-Kahraman/Blog-Website/internal/db"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory SQLite database with a schema matching
// the MySQL one closely enough for the queries under test.
func newTestDB(t *testing.T) *db.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`
		CREATE TABLE posts (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			title      TEXT NOT NULL,
			author     TEXT NOT NULL,
			content    TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	require.NoError(t, err)

	return &db.DB{DB: conn}
}

func TestCreateAndFindByID(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	id, err := svc.Create(ctx, "Hello World!", "alice", "some content")
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got.Title)
	assert.Equal(t, "alice", got.Author)
	assert.Equal(t, "some content", got.Content)
}

func TestFindByIDMissing(t *testing.T) {
	svc := NewService(newTestDB(t))

	_, err := svc.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindOwned(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	id, err := svc.Create(ctx, "Alice's Post", "alice", "content")
	require.NoError(t, err)

	got, err := svc.FindOwned(ctx, id, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	// A different user must not pass the combined check.
	_, err = svc.FindOwned(ctx, id, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindAllAndByAuthor(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, "First Post", "alice", "content")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Second Post", "bob", "content")
	require.NoError(t, err)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.FindByAuthor(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "First Post", mine[0].Title)
}

func TestSearchByTitle(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, "Hello World!", "alice", "content")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Another Day", "alice", "content")
	require.NoError(t, err)

	hits, err := svc.SearchByTitle(ctx, "World")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Hello World!", hits[0].Title)

	none, err := svc.SearchByTitle(ctx, "zzz-no-match")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchKeywordIsNotSQL(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, "Hello World!", "alice", "content")
	require.NoError(t, err)

	// A hostile keyword must be treated as literal text, not syntax.
	hits, err := svc.SearchByTitle(ctx, "' OR '1'='1")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestUpdateOwned(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	id, err := svc.Create(ctx, "Hello World!", "alice", "content")
	require.NoError(t, err)

	ok, err := svc.UpdateOwned(ctx, id, "alice", "New Title Here", "new content")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New Title Here", got.Title)
	assert.Equal(t, "new content", got.Content)
	assert.Equal(t, "alice", got.Author, "author must never change on update")
}

func TestUpdateOwnedDeniedForOtherUser(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	id, err := svc.Create(ctx, "Hello World!", "alice", "content")
	require.NoError(t, err)

	ok, err := svc.UpdateOwned(ctx, id, "bob", "Hijacked", "hijacked")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got.Title, "store must be unchanged after denial")
}

func TestDeleteOwned(t *testing.T) {
	svc := NewService(newTestDB(t))
	ctx := context.Background()

	id, err := svc.Create(ctx, "Hello World!", "alice", "content")
	require.NoError(t, err)

	// Wrong user first: the post must survive.
	ok, err := svc.DeleteOwned(ctx, id, "bob")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.FindByID(ctx, id)
	require.NoError(t, err)

	// Owner deletes.
	ok, err = svc.DeleteOwned(ctx, id, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	// Second delete is a denial no-op.
	ok, err = svc.DeleteOwned(ctx, id, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	mine, err := svc.FindByAuthor(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, mine)
}
