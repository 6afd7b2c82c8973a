package types

// Turn is one entry in conversation history: a role plus an ordered sequence
// of parts. The same shape carries normalized model responses back from
// provider adapters, so a model turn can be appended to history verbatim.
type Turn struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// NewUserTurn builds a user turn with a single text part.
func NewUserTurn(text string) Turn {
	return Turn{Role: RoleUser, Parts: []Part{TextPart(text)}}
}

// NewModelTurn builds a model turn from the given parts.
func NewModelTurn(parts ...Part) Turn {
	return Turn{Role: RoleModel, Parts: parts}
}

// NewToolTurn builds a tool turn carrying one response part per executed call.
func NewToolTurn(responses ...FunctionResponse) Turn {
	parts := make([]Part, 0, len(responses))
	for _, r := range responses {
		parts = append(parts, Part{FunctionResponse: &r})
	}
	return Turn{Role: RoleTool, Parts: parts}
}

// FirstText returns the text of the first text part, or "" if the turn has no
// text content.
func (t Turn) FirstText() string {
	for _, p := range t.Parts {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// FunctionCalls returns every function-call part in order.
func (t Turn) FunctionCalls() []FunctionCall {
	var calls []FunctionCall
	for _, p := range t.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, *p.FunctionCall)
		}
	}
	return calls
}

// FunctionResponses returns every function-response part in order.
func (t Turn) FunctionResponses() []FunctionResponse {
	var responses []FunctionResponse
	for _, p := range t.Parts {
		if p.FunctionResponse != nil {
			responses = append(responses, *p.FunctionResponse)
		}
	}
	return responses
}

// Empty reports whether the turn carries no parts at all. An empty model turn
// is treated as "no valid response" by the engine.
func (t Turn) Empty() bool {
	return len(t.Parts) == 0
}
