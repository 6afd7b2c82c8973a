package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zenbrowse/browsebot/pkg/agent"
	"github.com/zenbrowse/browsebot/pkg/bookmarks"
	"github.com/zenbrowse/browsebot/pkg/browser"
	"github.com/zenbrowse/browsebot/pkg/config"
	"github.com/zenbrowse/browsebot/pkg/llm/gemini"
	"github.com/zenbrowse/browsebot/pkg/llm/mistral"
	"github.com/zenbrowse/browsebot/pkg/llm/perplexity"
	"github.com/zenbrowse/browsebot/pkg/logging"
	"github.com/zenbrowse/browsebot/pkg/tools"
)

// app bundles everything a command needs: settings, the engine, and the
// stores behind it.
type app struct {
	settings *config.Settings
	engine   *agent.Engine
	bridge   *browser.HTTPBridge
	store    *bookmarks.SQLiteStore
	logger   *logging.Logger
}

// loadSettings opens the config store and seeds defaults.
func loadSettings() (*config.Settings, error) {
	store, err := config.NewFileStore(configPath)
	if err != nil {
		return nil, err
	}
	settings := config.NewSettings(store)
	if err := settings.SeedDefaults(); err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}
	return settings, nil
}

// bookmarkDBPath returns the bookmark database location next to the config.
func bookmarkDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(homeDir, ".browsebot")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return filepath.Join(dir, "bookmarks.db"), nil
}

// newApp wires the engine with live collaborators.
func newApp(gate agent.ConfirmationGate) (*app, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	logger, _ := logging.NewLogger("cli")

	dbPath, err := bookmarkDBPath()
	if err != nil {
		return nil, err
	}
	store, err := bookmarks.OpenSQLite(dbPath)
	if err != nil {
		return nil, err
	}

	bridge := browser.NewHTTPBridge(nil)
	nav := &cliNavigator{bridge: bridge}
	engines := browser.DefaultEngines()
	registry := tools.DefaultRegistry(bridge, nav, engines, store)

	engine := agent.NewEngine(settings, registry, bridge,
		agent.WithProvider("gemini", gemini.New(settings.APIKey("gemini"),
			gemini.WithModel(settings.Model("gemini")))),
		agent.WithProvider("mistral", mistral.New(settings.APIKey("mistral"),
			mistral.WithModel(settings.Model("mistral")))),
		agent.WithProvider("perplexity", perplexity.New(settings.APIKey("perplexity"),
			perplexity.WithModel(settings.Model("perplexity")))),
		agent.WithGate(gate),
		agent.WithLogger(logger),
	)

	return &app{
		settings: settings,
		engine:   engine,
		bridge:   bridge,
		store:    store,
		logger:   logger,
	}, nil
}

// Close releases the app's resources.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logger != nil {
		a.logger.Close()
	}
}

// cliNavigator maps tab-navigation requests onto the HTTP bridge: opening a
// link makes it the bridge's current page, so subsequent page tools read it.
// Split views have no terminal equivalent beyond pointing at the first link.
type cliNavigator struct {
	bridge *browser.HTTPBridge
}

func (n *cliNavigator) OpenLink(ctx context.Context, link, where string) (string, error) {
	n.bridge.SetCurrentURL(link)
	return fmt.Sprintf("Successfully opened %s in %s.", link, where), nil
}

func (n *cliNavigator) OpenSplit(ctx context.Context, link1, link2, orientation string) (string, error) {
	n.bridge.SetCurrentURL(link1)
	return fmt.Sprintf("Opened %s and %s in a %s split.", link1, link2, orientation), nil
}
