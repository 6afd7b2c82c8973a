package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/bookmarks"
)

// BookmarkDeleteTool removes a bookmark or folder.
type BookmarkDeleteTool struct {
	store bookmarks.Store
}

func NewBookmarkDeleteTool(store bookmarks.Store) *BookmarkDeleteTool {
	return &BookmarkDeleteTool{store: store}
}

func (t *BookmarkDeleteTool) Name() string {
	return "deleteBookmark"
}

func (t *BookmarkDeleteTool) Description() string {
	return "Delete a bookmark or folder by id. Find the id with searchBookmarks or getAllBookmarks first."
}

func (t *BookmarkDeleteTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"id": map[string]any{
				"type":        "STRING",
				"description": "Id of the bookmark or folder to delete",
			},
		},
		[]string{"id"},
	)
}

func (t *BookmarkDeleteTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	id, err := stringArg(args, "id")
	if err != nil {
		return nil, err
	}
	if err := t.store.Remove(ctx, id); err != nil {
		return nil, err
	}
	return map[string]any{"result": "Bookmark deleted."}, nil
}
