package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zenbrowse/browsebot/pkg/config"
)

// settingEntry binds a CLI key to its typed accessor pair.
type settingEntry struct {
	get func(*config.Settings) string
	set func(*config.Settings, string) error
}

func boolEntry(get func(*config.Settings) bool, set func(*config.Settings, bool) error) settingEntry {
	return settingEntry{
		get: func(s *config.Settings) string { return strconv.FormatBool(get(s)) },
		set: func(s *config.Settings, raw string) error {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", raw)
			}
			return set(s, v)
		},
	}
}

func stringEntry(get func(*config.Settings) string, set func(*config.Settings, string) error) settingEntry {
	return settingEntry{get: get, set: set}
}

var settingEntries = map[string]settingEntry{
	"enabled":            boolEntry((*config.Settings).Enabled, (*config.Settings).SetEnabled),
	"minimal":            boolEntry((*config.Settings).Minimal, (*config.Settings).SetMinimal),
	"god-mode":           boolEntry((*config.Settings).GodMode, (*config.Settings).SetGodMode),
	"debug-mode":         boolEntry((*config.Settings).DebugMode, (*config.Settings).SetDebugMode),
	"persist-chat":       boolEntry((*config.Settings).PersistChat, (*config.Settings).SetPersistChat),
	"citations":          boolEntry((*config.Settings).CitationsEnabled, (*config.Settings).SetCitationsEnabled),
	"confirm-tool-calls": boolEntry((*config.Settings).ConfirmToolCalls, (*config.Settings).SetConfirmToolCalls),
	"dnd":                boolEntry((*config.Settings).DNDEnabled, (*config.Settings).SetDNDEnabled),
	"context-menu":       boolEntry((*config.Settings).ContextMenuEnabled, (*config.Settings).SetContextMenuEnabled),
	"context-autosend":   boolEntry((*config.Settings).ContextMenuAutosend, (*config.Settings).SetContextMenuAutosend),
	"provider":           stringEntry((*config.Settings).Provider, (*config.Settings).SetProvider),
	"position":           stringEntry((*config.Settings).Position, (*config.Settings).SetPosition),
	"max-tool-calls": {
		get: func(s *config.Settings) string { return strconv.Itoa(s.MaxToolCalls()) },
		set: func(s *config.Settings, raw string) error {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 1 {
				return fmt.Errorf("expected a positive integer, got %q", raw)
			}
			return s.SetMaxToolCalls(v)
		},
	},
}

func init() {
	// Per-provider key and model entries
	for _, name := range []string{"gemini", "mistral", "perplexity"} {
		provider := name
		settingEntries[provider+"-api-key"] = settingEntry{
			get: func(s *config.Settings) string {
				if s.APIKey(provider) == "" {
					return ""
				}
				return "(set)"
			},
			set: func(s *config.Settings, raw string) error { return s.SetAPIKey(provider, raw) },
		}
		settingEntries[provider+"-model"] = settingEntry{
			get: func(s *config.Settings) string { return s.Model(provider) },
			set: func(s *config.Settings, raw string) error { return s.SetModel(provider, raw) },
		}
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write assistant settings",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(settingEntries))
		for key := range settingEntries {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%-22s %s\n", key, settingEntries[key].get(settings))
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		entry, ok := settingEntries[args[0]]
		if !ok {
			return fmt.Errorf("unknown setting %q (see 'browsebot config list')", args[0])
		}
		fmt.Println(entry.get(settings))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		entry, ok := settingEntries[key]
		if !ok {
			return fmt.Errorf("unknown setting %q (see 'browsebot config list')", key)
		}
		if key == "provider" && !isKnownProvider(value) {
			return fmt.Errorf("unknown provider %q (expected gemini, mistral, or perplexity)", value)
		}
		if err := entry.set(settings, value); err != nil {
			return err
		}
		if err := settings.Save(); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, entry.get(settings))
		return nil
	},
}

func isKnownProvider(name string) bool {
	switch strings.ToLower(name) {
	case "gemini", "mistral", "perplexity":
		return true
	}
	return false
}

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
