package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/bookmarks"
)

// BookmarkUpdateTool edits an existing bookmark.
type BookmarkUpdateTool struct {
	store bookmarks.Store
}

func NewBookmarkUpdateTool(store bookmarks.Store) *BookmarkUpdateTool {
	return &BookmarkUpdateTool{store: store}
}

func (t *BookmarkUpdateTool) Name() string {
	return "updateBookmark"
}

func (t *BookmarkUpdateTool) Description() string {
	return "Update a bookmark's title, URL, or folder. Omitted fields keep their current values. Find the id with searchBookmarks or getAllBookmarks first."
}

func (t *BookmarkUpdateTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"id": map[string]any{
				"type":        "STRING",
				"description": "Id of the bookmark to update",
			},
			"title": map[string]any{
				"type":        "STRING",
				"description": "New title",
			},
			"url": map[string]any{
				"type":        "STRING",
				"description": "New URL",
			},
			"parentID": map[string]any{
				"type":        "STRING",
				"description": "Id of the folder to move the bookmark to",
			},
		},
		[]string{"id"},
	)
}

func (t *BookmarkUpdateTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	id, err := stringArg(args, "id")
	if err != nil {
		return nil, err
	}
	updated, err := t.store.Update(ctx, bookmarks.Bookmark{
		ID:       id,
		Title:    optionalString(args, "title", ""),
		URL:      optionalString(args, "url", ""),
		ParentID: optionalString(args, "parentID", ""),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"result": "Bookmark updated.",
		"id":     updated.ID,
	}, nil
}
