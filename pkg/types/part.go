// Package types defines the provider-agnostic conversation model shared by
// the engine, the tool registry, and every provider adapter.
//
// The central type is Part, a tagged union with exactly one of three arms:
// plain text, a tool call requested by the model, or the response produced by
// executing a tool. Vendor wire formats are translated to and from this model
// at the adapter boundary only — nothing outside pkg/llm may depend on a
// vendor shape.
package types

// Role identifies the author of a conversation turn.
type Role string

const (
	// RoleUser marks a turn authored by the user.
	RoleUser Role = "user"

	// RoleModel marks a turn authored by the model.
	RoleModel Role = "model"

	// RoleTool marks a turn carrying tool execution responses.
	RoleTool Role = "tool"
)

// FunctionCall is a tool invocation requested by the model.
type FunctionCall struct {
	// Name is the registered tool name being requested.
	Name string `json:"name"`

	// Args holds the model-supplied arguments, already decoded from the
	// vendor wire format.
	Args map[string]any `json:"args"`
}

// FunctionResponse is the outcome of executing one requested tool call.
// Response is either a domain payload or an {"error": "..."} object; the tool
// boundary guarantees it is never absent.
type FunctionResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// Part is one fragment of a turn's content. Exactly one field is set.
// The JSON field names intentionally match the Gemini wire format so the
// Gemini adapter can marshal history without translation.
type Part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

// TextPart builds a text-only part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// CallPart builds a function-call part.
func CallPart(name string, args map[string]any) Part {
	return Part{FunctionCall: &FunctionCall{Name: name, Args: args}}
}

// ResponsePart builds a function-response part.
func ResponsePart(name string, response map[string]any) Part {
	return Part{FunctionResponse: &FunctionResponse{Name: name, Response: response}}
}

// IsText reports whether the part carries text content.
func (p Part) IsText() bool {
	return p.FunctionCall == nil && p.FunctionResponse == nil
}
