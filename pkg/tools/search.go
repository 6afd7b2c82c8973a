package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/zenbrowse/browsebot/pkg/browser"
)

// SearchTool submits a query to one of the configured search engines and
// opens the results page.
type SearchTool struct {
	nav     browser.Navigator
	engines browser.SearchEngines
}

func NewSearchTool(nav browser.Navigator, engines browser.SearchEngines) *SearchTool {
	return &SearchTool{nav: nav, engines: engines}
}

func (t *SearchTool) Name() string {
	return "search"
}

func (t *SearchTool) Description() string {
	return fmt.Sprintf(
		"Search the web for a query and open the results page. Available engines: %s. The default engine is %s.",
		strings.Join(t.engines.Names(), ", "), t.engines.Default(),
	)
}

func (t *SearchTool) Schema() map[string]any {
	return ObjectSchema(
		map[string]any{
			"searchTerm": map[string]any{
				"type":        "STRING",
				"description": "The search query",
			},
			"engineName": map[string]any{
				"type":        "STRING",
				"description": "The search engine to use; omit for the default engine",
			},
			"where": map[string]any{
				"type":        "STRING",
				"description": "Where to open the results: current tab, new tab, new window, vsplit, hsplit",
			},
		},
		[]string{"searchTerm"},
	)
}

func (t *SearchTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	term, err := stringArg(args, "searchTerm")
	if err != nil {
		return nil, err
	}
	engine := optionalString(args, "engineName", t.engines.Default())
	where := optionalString(args, "where", "new tab")

	target, err := t.engines.SubmissionURL(engine, term)
	if err != nil {
		return nil, err
	}
	msg, err := t.nav.OpenLink(ctx, target, where)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"result": msg,
		"url":    target,
	}, nil
}
