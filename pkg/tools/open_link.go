package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/browser"
)

// OpenLinkTool opens a URL in one of the host browser's tab targets.
type OpenLinkTool struct {
	nav browser.Navigator
}

func NewOpenLinkTool(nav browser.Navigator) *OpenLinkTool {
	return &OpenLinkTool{nav: nav}
}

func (t *OpenLinkTool) Name() string {
	return "openLink"
}

func (t *OpenLinkTool) Description() string {
	return "Open a link in the browser. The target can be the current tab, a new tab, a new window, a private window, a glance, or a vertical/horizontal split."
}

func (t *OpenLinkTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"link": map[string]any{
				"type":        "STRING",
				"description": "The URL to open",
			},
			"where": map[string]any{
				"type":        "STRING",
				"description": "Where to open the link: 'current tab', 'new tab', 'new window', 'incognito', 'glance', 'vsplit', or 'hsplit'. Defaults to 'new tab'.",
			},
		},
		[]string{"link"},
	)
}

func (t *OpenLinkTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	link, err := stringArg(args, "link")
	if err != nil {
		return nil, err
	}
	where := optionalString(args, "where", "new tab")

	msg, err := t.nav.OpenLink(ctx, link, where)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": msg}, nil
}
