package config

import "fmt"

// Section identifiers within the store.
const (
	SectionAssistant = "assistant"
	SectionProviders = "providers"
)

// Assistant section keys.
const (
	KeyEnabled             = "enabled"
	KeyMinimal             = "minimal"
	KeyGodMode             = "god_mode"
	KeyDebugMode           = "debug_mode"
	KeyPersistChat         = "persist_chat"
	KeyCitationsEnabled    = "citations_enabled"
	KeyContextMenuEnabled  = "context_menu_enabled"
	KeyContextMenuAutosend = "context_menu_autosend"
	KeyProvider            = "provider"
	KeyDNDEnabled          = "dnd_enabled"
	KeyPosition            = "position"
	KeyMaxToolCalls        = "max_tool_calls"
	KeyConfirmToolCalls    = "confirm_tool_calls"
)

// assistantDefaults are seeded once at startup for keys not already set.
var assistantDefaults = map[string]any{
	KeyEnabled:             true,
	KeyMinimal:             true,
	KeyGodMode:             false,
	KeyDebugMode:           false,
	KeyPersistChat:         false,
	KeyCitationsEnabled:    false,
	KeyContextMenuEnabled:  true,
	KeyContextMenuAutosend: true,
	KeyProvider:            "gemini",
	KeyDNDEnabled:          true,
	KeyPosition:            "top-right",
	KeyMaxToolCalls:        5,
	KeyConfirmToolCalls:    true,
}

// providerDefaults seed per-provider model choices; API keys default empty.
var providerDefaults = map[string]any{
	"gemini_api_key":     "",
	"gemini_model":       "gemini-2.0-flash",
	"mistral_api_key":    "",
	"mistral_model":      "mistral-medium-latest",
	"perplexity_api_key": "",
	"perplexity_model":   "pplx-7b-chat",
}

// Settings is the typed view over the sectioned store that the rest of the
// application reads.
type Settings struct {
	store Store
}

// NewSettings wraps a store.
func NewSettings(store Store) *Settings {
	return &Settings{store: store}
}

// SeedDefaults fills in any unset keys with their default values and saves.
// Existing values are never overwritten.
func (s *Settings) SeedDefaults() error {
	if err := s.seedSection(SectionAssistant, assistantDefaults); err != nil {
		return err
	}
	if err := s.seedSection(SectionProviders, providerDefaults); err != nil {
		return err
	}
	return s.store.Save()
}

func (s *Settings) seedSection(section string, defaults map[string]any) error {
	data, err := s.store.GetSection(section)
	if err != nil {
		return fmt.Errorf("failed to read %s settings: %w", section, err)
	}
	for k, v := range defaults {
		if _, exists := data[k]; !exists {
			data[k] = v
		}
	}
	return s.store.SetSection(section, data)
}

// Save persists the settings to disk.
func (s *Settings) Save() error {
	return s.store.Save()
}

func (s *Settings) getBool(section, key string, fallback bool) bool {
	data, err := s.store.GetSection(section)
	if err != nil {
		return fallback
	}
	if v, ok := data[key].(bool); ok {
		return v
	}
	return fallback
}

func (s *Settings) getString(section, key, fallback string) string {
	data, err := s.store.GetSection(section)
	if err != nil {
		return fallback
	}
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func (s *Settings) getInt(section, key string, fallback int) int {
	data, err := s.store.GetSection(section)
	if err != nil {
		return fallback
	}
	// JSON round-trips numbers as float64
	switch v := data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

func (s *Settings) set(section, key string, value any) error {
	data, err := s.store.GetSection(section)
	if err != nil {
		return fmt.Errorf("failed to read %s settings: %w", section, err)
	}
	data[key] = value
	return s.store.SetSection(section, data)
}

// Enabled reports whether the assistant is enabled at all.
func (s *Settings) Enabled() bool {
	return s.getBool(SectionAssistant, KeyEnabled, true)
}

func (s *Settings) SetEnabled(v bool) error {
	return s.set(SectionAssistant, KeyEnabled, v)
}

// Minimal reports whether the assistant starts in its minimal surface.
func (s *Settings) Minimal() bool {
	return s.getBool(SectionAssistant, KeyMinimal, true)
}

func (s *Settings) SetMinimal(v bool) error {
	return s.set(SectionAssistant, KeyMinimal, v)
}

// GodMode reports whether the model may request tool calls.
func (s *Settings) GodMode() bool {
	return s.getBool(SectionAssistant, KeyGodMode, false)
}

func (s *Settings) SetGodMode(v bool) error {
	return s.set(SectionAssistant, KeyGodMode, v)
}

// DebugMode enables verbose logging.
func (s *Settings) DebugMode() bool {
	return s.getBool(SectionAssistant, KeyDebugMode, false)
}

func (s *Settings) SetDebugMode(v bool) error {
	return s.set(SectionAssistant, KeyDebugMode, v)
}

// PersistChat reports whether the host UI should mirror chat history.
func (s *Settings) PersistChat() bool {
	return s.getBool(SectionAssistant, KeyPersistChat, false)
}

func (s *Settings) SetPersistChat(v bool) error {
	return s.set(SectionAssistant, KeyPersistChat, v)
}

// CitationsEnabled reports whether answers carry the citation envelope.
func (s *Settings) CitationsEnabled() bool {
	return s.getBool(SectionAssistant, KeyCitationsEnabled, false)
}

func (s *Settings) SetCitationsEnabled(v bool) error {
	return s.set(SectionAssistant, KeyCitationsEnabled, v)
}

// ContextMenuEnabled reports whether the host's context-menu entry is shown.
func (s *Settings) ContextMenuEnabled() bool {
	return s.getBool(SectionAssistant, KeyContextMenuEnabled, true)
}

func (s *Settings) SetContextMenuEnabled(v bool) error {
	return s.set(SectionAssistant, KeyContextMenuEnabled, v)
}

// ContextMenuAutosend reports whether context-menu prompts send immediately.
func (s *Settings) ContextMenuAutosend() bool {
	return s.getBool(SectionAssistant, KeyContextMenuAutosend, true)
}

func (s *Settings) SetContextMenuAutosend(v bool) error {
	return s.set(SectionAssistant, KeyContextMenuAutosend, v)
}

// Provider returns the active provider name.
func (s *Settings) Provider() string {
	return s.getString(SectionAssistant, KeyProvider, "gemini")
}

func (s *Settings) SetProvider(name string) error {
	return s.set(SectionAssistant, KeyProvider, name)
}

// DNDEnabled reports whether the widget can be dragged and resized.
func (s *Settings) DNDEnabled() bool {
	return s.getBool(SectionAssistant, KeyDNDEnabled, true)
}

func (s *Settings) SetDNDEnabled(v bool) error {
	return s.set(SectionAssistant, KeyDNDEnabled, v)
}

// Position returns the widget's corner anchor.
func (s *Settings) Position() string {
	return s.getString(SectionAssistant, KeyPosition, "top-right")
}

func (s *Settings) SetPosition(v string) error {
	return s.set(SectionAssistant, KeyPosition, v)
}

// MaxToolCalls bounds the tool-execution depth per user message.
func (s *Settings) MaxToolCalls() int {
	if v := s.getInt(SectionAssistant, KeyMaxToolCalls, 5); v > 0 {
		return v
	}
	return 5
}

func (s *Settings) SetMaxToolCalls(v int) error {
	return s.set(SectionAssistant, KeyMaxToolCalls, v)
}

// ConfirmToolCalls reports whether tool execution requires user confirmation.
func (s *Settings) ConfirmToolCalls() bool {
	return s.getBool(SectionAssistant, KeyConfirmToolCalls, true)
}

func (s *Settings) SetConfirmToolCalls(v bool) error {
	return s.set(SectionAssistant, KeyConfirmToolCalls, v)
}

// APIKey returns the stored API key for a provider.
func (s *Settings) APIKey(provider string) string {
	return s.getString(SectionProviders, provider+"_api_key", "")
}

func (s *Settings) SetAPIKey(provider, key string) error {
	return s.set(SectionProviders, provider+"_api_key", key)
}

// Model returns the stored model choice for a provider.
func (s *Settings) Model(provider string) string {
	return s.getString(SectionProviders, provider+"_model", "")
}

func (s *Settings) SetModel(provider, model string) error {
	return s.set(SectionProviders, provider+"_model", model)
}
