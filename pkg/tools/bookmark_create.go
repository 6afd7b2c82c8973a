package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/bookmarks"
)

// BookmarkCreateTool saves a new bookmark.
type BookmarkCreateTool struct {
	store bookmarks.Store
}

func NewBookmarkCreateTool(store bookmarks.Store) *BookmarkCreateTool {
	return &BookmarkCreateTool{store: store}
}

func (t *BookmarkCreateTool) Name() string {
	return "createBookmark"
}

func (t *BookmarkCreateTool) Description() string {
	return "Create a new bookmark. Without a parentID it lands on the bookmarks toolbar."
}

func (t *BookmarkCreateTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"title": map[string]any{
				"type":        "STRING",
				"description": "The bookmark title; omit to use the URL",
			},
			"url": map[string]any{
				"type":        "STRING",
				"description": "The URL to bookmark",
			},
			"parentID": map[string]any{
				"type":        "STRING",
				"description": "Id of the folder to place the bookmark in; omit for the toolbar",
			},
		},
		[]string{"url"},
	)
}

func (t *BookmarkCreateTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	url, err := stringArg(args, "url")
	if err != nil {
		return nil, err
	}
	created, err := t.store.Insert(ctx, bookmarks.Bookmark{
		Title:    optionalString(args, "title", url),
		URL:      url,
		ParentID: optionalString(args, "parentID", ""),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"result": "Bookmark created.",
		"id":     created.ID,
	}, nil
}
