package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/bookmarks"
)

// BookmarkFolderTool creates a bookmark folder.
type BookmarkFolderTool struct {
	store bookmarks.Store
}

func NewBookmarkFolderTool(store bookmarks.Store) *BookmarkFolderTool {
	return &BookmarkFolderTool{store: store}
}

func (t *BookmarkFolderTool) Name() string {
	return "addBookmarkFolder"
}

func (t *BookmarkFolderTool) Description() string {
	return "Create a new bookmark folder. Without a parentID it lands on the bookmarks toolbar."
}

func (t *BookmarkFolderTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"title": map[string]any{
				"type":        "STRING",
				"description": "The folder name",
			},
			"parentID": map[string]any{
				"type":        "STRING",
				"description": "Id of the folder to nest under; omit for the toolbar",
			},
		},
		[]string{"title"},
	)
}

func (t *BookmarkFolderTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	title, err := stringArg(args, "title")
	if err != nil {
		return nil, err
	}
	created, err := t.store.Insert(ctx, bookmarks.Bookmark{
		Title:    title,
		ParentID: optionalString(args, "parentID", ""),
		Folder:   true,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"result": "Folder created.",
		"id":     created.ID,
	}, nil
}
