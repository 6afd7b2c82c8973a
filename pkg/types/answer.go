package types

import "encoding/json"

// Citation ties an inline [id] marker in the answer text to the verbatim page
// quote that supports it. IDs are unique within one answer.
type Citation struct {
	ID          int    `json:"id"`
	SourceQuote string `json:"source_quote"`
}

// Answer is the engine's final result for one user message. When citation
// mode is on, Text has been unwrapped from the model's JSON citation
// envelope; otherwise it is the raw model text or a tool result.
type Answer struct {
	Text      string     `json:"answer"`
	Citations []Citation `json:"citations,omitempty"`
}

// PageContext is the caller-supplied snapshot of the active page that gets
// serialized into every user turn.
type PageContext struct {
	URL       string `json:"url,omitempty"`
	Title     string `json:"title,omitempty"`
	Selection string `json:"selection,omitempty"`
}

// Tag renders the context as the inline prefix embedded in user prompts:
// [Current Page Context: {json}]. A nil context serializes as {}.
func (c *PageContext) Tag() string {
	if c == nil {
		return "[Current Page Context: {}]"
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "[Current Page Context: {}]"
	}
	return "[Current Page Context: " + string(data) + "]"
}
