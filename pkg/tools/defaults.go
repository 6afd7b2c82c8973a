package tools

import (
	"github.com/zenbrowse/browsebot/pkg/bookmarks"
	"github.com/zenbrowse/browsebot/pkg/browser"
)

// DefaultRegistry builds a registry with the full browsing and bookmark tool
// set wired to the given collaborators.
func DefaultRegistry(bridge browser.PageBridge, nav browser.Navigator, engines browser.SearchEngines, store bookmarks.Store) *Registry {
	r := NewRegistry()

	// Navigation tools
	r.Register(NewSearchTool(nav, engines))
	r.Register(NewOpenLinkTool(nav))
	r.Register(NewNewSplitTool(nav))

	// Page reading tools
	r.Register(NewPageTextTool(bridge))
	r.Register(NewPageHTMLTool(bridge))
	r.Register(NewTranscriptTool(bridge))

	// Page interaction tools
	r.Register(NewClickTool(bridge))
	r.Register(NewFillTool(bridge))

	// Bookmark tools
	r.Register(NewBookmarkSearchTool(store))
	r.Register(NewBookmarkListTool(store))
	r.Register(NewBookmarkCreateTool(store))
	r.Register(NewBookmarkFolderTool(store))
	r.Register(NewBookmarkUpdateTool(store))
	r.Register(NewBookmarkDeleteTool(store))

	return r
}
