package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/bookmarks"
)

// BookmarkListTool lists every bookmark and folder.
type BookmarkListTool struct {
	store bookmarks.Store
}

func NewBookmarkListTool(store bookmarks.Store) *BookmarkListTool {
	return &BookmarkListTool{store: store}
}

func (t *BookmarkListTool) Name() string {
	return "getAllBookmarks"
}

func (t *BookmarkListTool) Description() string {
	return "Get all of the user's bookmarks and bookmark folders."
}

func (t *BookmarkListTool) Schema() map[string]any {
	return ObjectSchema(map[string]any{}, nil)
}

func (t *BookmarkListTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	items, err := t.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"bookmarks": bookmarkPayload(items)}, nil
}
