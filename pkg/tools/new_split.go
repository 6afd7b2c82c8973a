package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/browser"
)

// NewSplitTool opens two links side by side in a split view.
type NewSplitTool struct {
	nav browser.Navigator
}

func NewNewSplitTool(nav browser.Navigator) *NewSplitTool {
	return &NewSplitTool{nav: nav}
}

func (t *NewSplitTool) Name() string {
	return "newSplit"
}

func (t *NewSplitTool) Description() string {
	return "Open two links in new tabs arranged in a split view."
}

func (t *NewSplitTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"link1": map[string]any{
				"type":        "STRING",
				"description": "The URL for the first pane",
			},
			"link2": map[string]any{
				"type":        "STRING",
				"description": "The URL for the second pane",
			},
			"orientation": map[string]any{
				"type":        "STRING",
				"description": "Split orientation, 'vertical' or 'horizontal'. Defaults to 'vertical'.",
			},
		},
		[]string{"link1", "link2"},
	)
}

func (t *NewSplitTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	link1, err := stringArg(args, "link1")
	if err != nil {
		return nil, err
	}
	link2, err := stringArg(args, "link2")
	if err != nil {
		return nil, err
	}
	orientation := optionalString(args, "orientation", "vertical")

	msg, err := t.nav.OpenSplit(ctx, link1, link2, orientation)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": msg}, nil
}
