package agent

import (
	"encoding/json"

	"github.com/zenbrowse/browsebot/pkg/types"
)

// parseAnswerText normalizes a model's final text. With citations enabled the
// text should be the JSON citation envelope; malformed JSON or a missing
// answer field falls back to the raw text with no citations. Never fails.
func parseAnswerText(text string, citationsEnabled bool) *types.Answer {
	answer := &types.Answer{Text: text}
	if !citationsEnabled {
		return answer
	}

	var envelope struct {
		Answer    any              `json:"answer"`
		Citations []types.Citation `json:"citations"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return answer
	}
	parsed, ok := envelope.Answer.(string)
	if !ok {
		// Valid JSON but the answer field is missing or not a string;
		// keep the raw text.
		return answer
	}

	answer.Text = parsed
	answer.Citations = envelope.Citations
	return answer
}
