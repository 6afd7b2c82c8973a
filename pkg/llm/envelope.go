package llm

import "github.com/zenbrowse/browsebot/pkg/types"

// FunctionDeclaration is one machine-readable tool declaration in the shared
// schema dialect: a JSON-schema-like parameter tree whose "type" tokens are
// upper-case ("OBJECT", "STRING"). Adapters that need lower-case tokens
// normalize at their boundary.
type FunctionDeclaration struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// RequestEnvelope is the provider-agnostic request assembled by the engine
// for one model round-trip. It is built per call, handed to exactly one
// adapter, and discarded; adapters must not retain or mutate it.
type RequestEnvelope struct {
	// Contents is the full conversation history, oldest first.
	Contents []types.Turn

	// SystemInstruction is the optional system prompt, rebuilt fresh each
	// send. Nil when no instruction applies.
	SystemInstruction *types.Part

	// Tools carries the tool declarations when tool use is enabled.
	Tools []FunctionDeclaration

	// JSONResponse asks the model for a pure-JSON reply (the citation
	// envelope). Adapters map it to their vendor's response-format hint.
	JSONResponse bool
}
