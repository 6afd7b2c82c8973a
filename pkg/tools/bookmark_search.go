package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/bookmarks"
)

func bookmarkPayload(items []bookmarks.Bookmark) []any {
	out := make([]any, 0, len(items))
	for _, b := range items {
		entry := map[string]any{
			"id":       b.ID,
			"title":    b.Title,
			"parentID": b.ParentID,
		}
		if b.Folder {
			entry["type"] = "folder"
		} else {
			entry["type"] = "bookmark"
			entry["url"] = b.URL
		}
		out = append(out, entry)
	}
	return out
}

// BookmarkSearchTool finds bookmarks by title or URL.
type BookmarkSearchTool struct {
	store bookmarks.Store
}

func NewBookmarkSearchTool(store bookmarks.Store) *BookmarkSearchTool {
	return &BookmarkSearchTool{store: store}
}

func (t *BookmarkSearchTool) Name() string {
	return "searchBookmarks"
}

func (t *BookmarkSearchTool) Description() string {
	return "Search the user's bookmarks by title or URL."
}

func (t *BookmarkSearchTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"query": map[string]any{
				"type":        "STRING",
				"description": "Text to match against bookmark titles and URLs",
			},
		},
		[]string{"query"},
	)
}

func (t *BookmarkSearchTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	query, err := stringArg(args, "query")
	if err != nil {
		return nil, err
	}
	items, err := t.store.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return map[string]any{"bookmarks": bookmarkPayload(items)}, nil
}
