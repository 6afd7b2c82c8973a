// Package browser defines the interfaces the conversation core uses to talk
// to its host browser: reading page content, interacting with the DOM, and
// navigating tabs. The core only knows these boundaries; hosts plug in their
// own implementations. An HTTP-backed PageBridge is provided for headless use.
package browser

import "context"

// PageContent is the readable text of a page plus its identity.
type PageContent struct {
	TextContent string `json:"textContent"`
	URL         string `json:"url"`
	Title       string `json:"title"`
}

// HTMLContent is the cleaned HTML source of a page plus its identity.
type HTMLContent struct {
	Content string `json:"content"`
	URL     string `json:"url"`
	Title   string `json:"title"`
}

// Selection is the user's current text selection, if any.
type Selection struct {
	SelectedText string `json:"selectedText"`
	HasSelection bool   `json:"hasSelection"`
	URL          string `json:"url"`
	Title        string `json:"title"`
}

// PageBridge reads from and interacts with the active page. Implementations
// should prefer returning degraded payloads (empty text, url/title fallbacks)
// over errors; errors cross the tool boundary as {error} responses.
type PageBridge interface {
	// GetPageTextContent extracts the page's readable text. With trim set,
	// all whitespace runs collapse to single spaces; otherwise line
	// structure is preserved.
	GetPageTextContent(ctx context.Context, trim bool) (*PageContent, error)

	// GetHTMLContent returns the page's HTML with scripts, styles, and
	// other noise stripped.
	GetHTMLContent(ctx context.Context) (*HTMLContent, error)

	// GetSelectedText returns the current selection.
	GetSelectedText(ctx context.Context) (*Selection, error)

	// GetYoutubeTranscript returns the transcript of the current video.
	GetYoutubeTranscript(ctx context.Context) (string, error)

	// ClickElement clicks the element matching the CSS selector.
	ClickElement(ctx context.Context, selector string) (string, error)

	// FillForm fills the input matching the CSS selector with value.
	FillForm(ctx context.Context, selector, value string) (string, error)
}

// Navigator opens links and split views in the host browser. The where
// targets mirror the host's tab vocabulary: "current tab", "new tab",
// "new window", "incognito"/"private", "glance", "vsplit", "hsplit".
type Navigator interface {
	// OpenLink opens link at the given target and returns a human-readable
	// outcome message.
	OpenLink(ctx context.Context, link, where string) (string, error)

	// OpenSplit opens two fresh tabs arranged in a split. Orientation is
	// "vertical" or "horizontal".
	OpenSplit(ctx context.Context, link1, link2, orientation string) (string, error)
}

// SearchEngines resolves search-engine submissions.
type SearchEngines interface {
	// Names lists the available engine names.
	Names() []string

	// Default returns the default engine name.
	Default() string

	// SubmissionURL builds the results URL for a term on the named engine.
	SubmissionURL(engineName, term string) (string, error)
}
