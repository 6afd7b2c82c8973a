package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/browser"
)

// PageTextTool reads the active page's readable text.
type PageTextTool struct {
	bridge browser.PageBridge
}

func NewPageTextTool(bridge browser.PageBridge) *PageTextTool {
	return &PageTextTool{bridge: bridge}
}

func (t *PageTextTool) Name() string {
	return "getPageTextContent"
}

func (t *PageTextTool) Description() string {
	return "Get the readable text content of the current page. Use this to answer questions about what the page says."
}

func (t *PageTextTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"trim": map[string]any{
				"type":        "BOOLEAN",
				"description": "Collapse all whitespace runs to single spaces. Defaults to true.",
			},
		},
		nil,
	)
}

func (t *PageTextTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	trim := optionalBool(args, "trim", true)

	content, err := t.bridge.GetPageTextContent(ctx, trim)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"textContent": content.TextContent,
		"url":         content.URL,
		"title":       content.Title,
	}, nil
}
