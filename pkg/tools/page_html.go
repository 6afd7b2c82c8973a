package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/browser"
)

// PageHTMLTool reads the active page's cleaned HTML. Useful when element
// structure matters, such as before clicking or filling a form.
type PageHTMLTool struct {
	bridge browser.PageBridge
}

func NewPageHTMLTool(bridge browser.PageBridge) *PageHTMLTool {
	return &PageHTMLTool{bridge: bridge}
}

func (t *PageHTMLTool) Name() string {
	return "getHTMLContent"
}

func (t *PageHTMLTool) Description() string {
	return "Get the cleaned HTML of the current page, with scripts and styles removed but element ids, classes, and form attributes preserved. Use this to find selectors before clicking or filling elements."
}

func (t *PageHTMLTool) Schema() map[string]any {
	return ObjectSchema(map[string]any{}, nil)
}

func (t *PageHTMLTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	content, err := t.bridge.GetHTMLContent(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"content": content.Content,
		"url":     content.URL,
		"title":   content.Title,
	}, nil
}
