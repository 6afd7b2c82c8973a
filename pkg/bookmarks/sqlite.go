package bookmarks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
	guid        TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	url         TEXT NOT NULL DEFAULT '',
	parent_guid TEXT NOT NULL DEFAULT '',
	is_folder   INTEGER NOT NULL DEFAULT 0,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookmarks_parent ON bookmarks(parent_guid);
`

// SQLiteStore is a Store on a local SQLite database. The pure-Go driver
// keeps the binary cgo-free.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) a bookmark database at path.
// Use ":memory:" for an ephemeral store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmark database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("bookmark database ping failed: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize bookmark schema: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.ensureToolbar(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// ensureToolbar seeds the root toolbar folder all defaults hang off.
func (s *SQLiteStore) ensureToolbar() error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO bookmarks (guid, title, url, parent_guid, is_folder, created_at)
		 VALUES (?, 'Bookmarks Toolbar', '', '', 1, ?)`,
		ToolbarID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to seed toolbar folder: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanBookmarks(rows *sql.Rows) ([]Bookmark, error) {
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		var b Bookmark
		var folder int
		if err := rows.Scan(&b.ID, &b.Title, &b.URL, &b.ParentID, &folder); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		b.Folder = folder != 0
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

// Search returns bookmarks whose title or URL contains query.
func (s *SQLiteStore) Search(ctx context.Context, query string) ([]Bookmark, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT guid, title, url, parent_guid, is_folder FROM bookmarks
		 WHERE title LIKE ? OR url LIKE ? ORDER BY created_at`,
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("bookmark search failed: %w", err)
	}
	return scanBookmarks(rows)
}

// All returns every stored record.
func (s *SQLiteStore) All(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT guid, title, url, parent_guid, is_folder FROM bookmarks ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("bookmark listing failed: %w", err)
	}
	return scanBookmarks(rows)
}

// Fetch returns the record with the given id.
func (s *SQLiteStore) Fetch(ctx context.Context, id string) (*Bookmark, error) {
	var b Bookmark
	var folder int
	err := s.db.QueryRowContext(ctx,
		`SELECT guid, title, url, parent_guid, is_folder FROM bookmarks WHERE guid = ?`, id,
	).Scan(&b.ID, &b.Title, &b.URL, &b.ParentID, &folder)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("bookmark fetch failed: %w", err)
	}
	b.Folder = folder != 0
	return &b, nil
}

// Insert stores a new record, generating an id and defaulting the parent to
// the toolbar folder when unset.
func (s *SQLiteStore) Insert(ctx context.Context, b Bookmark) (*Bookmark, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.ParentID == "" {
		b.ParentID = ToolbarID
	}
	folder := 0
	if b.Folder {
		folder = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bookmarks (guid, title, url, parent_guid, is_folder, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.URL, b.ParentID, folder, time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("bookmark insert failed: %w", err)
	}
	return &b, nil
}

// Update rewrites an existing record; empty fields keep their old values.
func (s *SQLiteStore) Update(ctx context.Context, b Bookmark) (*Bookmark, error) {
	old, err := s.Fetch(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if b.Title == "" {
		b.Title = old.Title
	}
	if b.URL == "" {
		b.URL = old.URL
	}
	if b.ParentID == "" {
		b.ParentID = old.ParentID
	}
	b.Folder = old.Folder

	_, err = s.db.ExecContext(ctx,
		`UPDATE bookmarks SET title = ?, url = ?, parent_guid = ? WHERE guid = ?`,
		b.Title, b.URL, b.ParentID, b.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("bookmark update failed: %w", err)
	}
	return &b, nil
}

// Remove deletes the record with the given id.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE guid = ?`, id)
	if err != nil {
		return fmt.Errorf("bookmark delete failed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bookmark delete failed: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
