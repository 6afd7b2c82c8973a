package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/browser"
)

// FillTool fills a form field on the active page by CSS selector.
type FillTool struct {
	bridge browser.PageBridge
}

func NewFillTool(bridge browser.PageBridge) *FillTool {
	return &FillTool{bridge: bridge}
}

func (t *FillTool) Name() string {
	return "fillForm"
}

func (t *FillTool) Description() string {
	return "Fill a form input on the current page with a value, using a CSS selector. Use getHTMLContent first to find the right selector."
}

func (t *FillTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"selector": map[string]any{
				"type":        "STRING",
				"description": "CSS selector for the input to fill (e.g. 'input[name=\"q\"]', '#email')",
			},
			"value": map[string]any{
				"type":        "STRING",
				"description": "The value to enter into the input",
			},
		},
		[]string{"selector", "value"},
	)
}

func (t *FillTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	selector, err := stringArg(args, "selector")
	if err != nil {
		return nil, err
	}
	value, err := stringArg(args, "value")
	if err != nil {
		return nil, err
	}
	msg, err := t.bridge.FillForm(ctx, selector, value)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": msg}, nil
}
