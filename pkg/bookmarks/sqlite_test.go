package bookmarks

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "bookmarks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreSeedsToolbar(t *testing.T) {
	s := openTestStore(t)

	b, err := s.Fetch(context.Background(), ToolbarID)
	require.NoError(t, err)
	assert.True(t, b.Folder)
	assert.Equal(t, "Bookmarks Toolbar", b.Title)
}

func TestSQLiteStoreInsertDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Insert(ctx, Bookmark{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, ToolbarID, created.ParentID)

	got, err := s.Fetch(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Title)
	assert.Equal(t, "https://go.dev", got.URL)
	assert.False(t, got.Folder)
}

func TestSQLiteStoreSearch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, Bookmark{Title: "Go blog", URL: "https://go.dev/blog"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, Bookmark{Title: "Rust book", URL: "https://doc.rust-lang.org"})
	require.NoError(t, err)

	results, err := s.Search(ctx, "go.dev")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Go blog", results[0].Title)

	results, err = s.Search(ctx, "book")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Rust book", results[0].Title)
}

func TestSQLiteStoreUpdateKeepsUnsetFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Insert(ctx, Bookmark{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, Bookmark{ID: created.ID, Title: "Go homepage"})
	require.NoError(t, err)
	assert.Equal(t, "Go homepage", updated.Title)
	assert.Equal(t, "https://go.dev", updated.URL)
	assert.Equal(t, ToolbarID, updated.ParentID)
}

func TestSQLiteStoreUpdateMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Update(context.Background(), Bookmark{ID: "nope", Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStoreRemove(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Insert(ctx, Bookmark{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, created.ID))
	_, err = s.Fetch(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Remove(ctx, created.ID), ErrNotFound)
}

func TestSQLiteStoreFolders(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	folder, err := s.Insert(ctx, Bookmark{Title: "Reading", Folder: true})
	require.NoError(t, err)
	assert.True(t, folder.Folder)

	child, err := s.Insert(ctx, Bookmark{Title: "Go", URL: "https://go.dev", ParentID: folder.ID})
	require.NoError(t, err)
	assert.Equal(t, folder.ID, child.ParentID)
}

func TestMemoryStoreMatchesInterface(t *testing.T) {
	var _ Store = NewMemoryStore()
	var _ Store = &SQLiteStore{}

	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Insert(ctx, Bookmark{Title: "Go", URL: "https://go.dev"})
	require.NoError(t, err)
	assert.Equal(t, ToolbarID, created.ParentID)

	results, err := s.Search(ctx, "GO")
	require.NoError(t, err)
	require.Len(t, results, 1)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, s.Remove(ctx, created.ID))
	assert.ErrorIs(t, s.Remove(ctx, created.ID), ErrNotFound)
}
