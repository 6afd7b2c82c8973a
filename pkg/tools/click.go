package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/browser"
)

// ClickTool clicks an element on the active page by CSS selector.
type ClickTool struct {
	bridge browser.PageBridge
}

func NewClickTool(bridge browser.PageBridge) *ClickTool {
	return &ClickTool{bridge: bridge}
}

func (t *ClickTool) Name() string {
	return "clickElement"
}

func (t *ClickTool) Description() string {
	return "Click an element on the current page using a CSS selector. Use getHTMLContent first to find the right selector."
}

func (t *ClickTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"selector": map[string]any{
				"type":        "STRING",
				"description": "CSS selector for the element to click (e.g. 'button.submit', '#login-btn')",
			},
		},
		[]string{"selector"},
	)
}

func (t *ClickTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	selector, err := stringArg(args, "selector")
	if err != nil {
		return nil, err
	}
	msg, err := t.bridge.ClickElement(ctx, selector)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": msg}, nil
}
