package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zenbrowse/browsebot/pkg/bookmarks"
)

var (
	bookmarkTitleStyle = lipgloss.NewStyle().Bold(true)
	bookmarkURLStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	bookmarkIDStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	folderStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
)

func openBookmarkStore() (*bookmarks.SQLiteStore, error) {
	path, err := bookmarkDBPath()
	if err != nil {
		return nil, err
	}
	return bookmarks.OpenSQLite(path)
}

func printBookmarks(items []bookmarks.Bookmark) {
	for _, b := range items {
		if b.Folder {
			fmt.Printf("%s %s\n", folderStyle.Render("▸ "+b.Title), bookmarkIDStyle.Render(b.ID))
			continue
		}
		fmt.Printf("%s %s\n  %s\n", bookmarkTitleStyle.Render(b.Title), bookmarkIDStyle.Render(b.ID), bookmarkURLStyle.Render(b.URL))
	}
}

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage the assistant's bookmark store",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bookmarks and folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openBookmarkStore()
		if err != nil {
			return err
		}
		defer store.Close()

		items, err := store.All(cmd.Context())
		if err != nil {
			return err
		}
		printBookmarks(items)
		return nil
	},
}

var bookmarksSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search bookmarks by title or URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openBookmarkStore()
		if err != nil {
			return err
		}
		defer store.Close()

		items, err := store.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printBookmarks(items)
		return nil
	},
}

var bookmarkFolderID string

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <title> <url>",
	Short: "Add a bookmark",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openBookmarkStore()
		if err != nil {
			return err
		}
		defer store.Close()

		created, err := store.Insert(cmd.Context(), bookmarks.Bookmark{
			Title:    args[0],
			URL:      args[1],
			ParentID: bookmarkFolderID,
		})
		if err != nil {
			return err
		}
		fmt.Printf("added %s\n", bookmarkIDStyle.Render(created.ID))
		return nil
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a bookmark or folder by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openBookmarkStore()
		if err != nil {
			return err
		}
		defer store.Close()

		return store.Remove(cmd.Context(), args[0])
	},
}

func init() {
	bookmarksAddCmd.Flags().StringVar(&bookmarkFolderID, "folder", "", "Parent folder id (defaults to the toolbar)")
	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksSearchCmd, bookmarksAddCmd, bookmarksRemoveCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
