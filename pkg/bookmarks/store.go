// Package bookmarks provides the bookmark store the bookmark tools operate
// against. Records are kept deliberately slim — id, title, url, parent — to
// conserve prompt tokens when they are surfaced to the model.
package bookmarks

import (
	"context"
	"errors"
)

// ToolbarID is the well-known id of the root toolbar folder, the default
// parent for new bookmarks and folders.
const ToolbarID = "toolbar_____"

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("bookmark not found")

// Bookmark is one stored record. Folders have no URL.
type Bookmark struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	ParentID string `json:"parentID,omitempty"`
	Folder   bool   `json:"-"`
}

// Store is the bookmark persistence boundary. All records are keyed by a
// globally unique id.
type Store interface {
	// Search returns bookmarks whose title or URL contains query.
	Search(ctx context.Context, query string) ([]Bookmark, error)

	// All returns every stored bookmark and folder.
	All(ctx context.Context) ([]Bookmark, error)

	// Fetch returns the record with the given id, or ErrNotFound.
	Fetch(ctx context.Context, id string) (*Bookmark, error)

	// Insert stores a new bookmark. An empty ID gets a generated one; an
	// empty ParentID defaults to the toolbar folder. Returns the stored
	// record.
	Insert(ctx context.Context, b Bookmark) (*Bookmark, error)

	// Update rewrites an existing record. Empty fields keep their previous
	// values. Returns the updated record or ErrNotFound.
	Update(ctx context.Context, b Bookmark) (*Bookmark, error)

	// Remove deletes the record with the given id, or returns ErrNotFound.
	Remove(ctx context.Context, id string) error
}
