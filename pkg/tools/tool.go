// Package tools defines the assistant's tool surface: the Tool interface,
// the registry the conversation engine executes against, and the concrete
// browsing and bookmark tools.
package tools

import (
	"context"
	"fmt"
)

// Tool is a single capability the model can invoke by name. Schemas use
// Gemini-style uppercase type tokens; provider adapters that need lowercase
// JSON-schema types normalize on their side.
type Tool interface {
	// Name returns the tool name as declared to the model.
	Name() string

	// Description returns the tool description shown to the model.
	Description() string

	// Schema returns the JSON schema for the tool's arguments.
	Schema() map[string]any

	// Execute runs the tool with the model-supplied arguments.
	Execute(ctx context.Context, args map[string]any) (map[string]any, error)
}

// ObjectSchema builds a standard object schema from a property map and the
// list of required property names.
func ObjectSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "OBJECT",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// stringArg reads a required string argument.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s must be a non-empty string", key)
	}
	return s, nil
}

// optionalString reads an optional string argument, returning fallback when
// absent or empty.
func optionalString(args map[string]any, key, fallback string) string {
	if s, ok := args[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// optionalBool reads an optional boolean argument.
func optionalBool(args map[string]any, key string, fallback bool) bool {
	if b, ok := args[key].(bool); ok {
		return b
	}
	return fallback
}
