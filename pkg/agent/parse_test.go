package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswerTextCitationsDisabled(t *testing.T) {
	answer := parseAnswerText(`{"answer": "ignored envelope"}`, false)
	assert.Equal(t, `{"answer": "ignored envelope"}`, answer.Text)
	assert.Empty(t, answer.Citations)
}

func TestParseAnswerTextValidEnvelope(t *testing.T) {
	text := `{"answer": "Fact [1].", "citations": [{"id": 1, "source_quote": "the exact words"}]}`
	answer := parseAnswerText(text, true)
	assert.Equal(t, "Fact [1].", answer.Text)
	if assert.Len(t, answer.Citations, 1) {
		assert.Equal(t, 1, answer.Citations[0].ID)
		assert.Equal(t, "the exact words", answer.Citations[0].SourceQuote)
	}
}

func TestParseAnswerTextMalformedJSON(t *testing.T) {
	answer := parseAnswerText("not json at all {", true)
	assert.Equal(t, "not json at all {", answer.Text)
	assert.Empty(t, answer.Citations)
}

func TestParseAnswerTextMissingAnswerField(t *testing.T) {
	answer := parseAnswerText(`{"citations": []}`, true)
	assert.Equal(t, `{"citations": []}`, answer.Text)
}

func TestParseAnswerTextNonStringAnswer(t *testing.T) {
	answer := parseAnswerText(`{"answer": 42}`, true)
	assert.Equal(t, `{"answer": 42}`, answer.Text)
}

func TestParseAnswerTextEnvelopeWithoutCitations(t *testing.T) {
	answer := parseAnswerText(`{"answer": "plain"}`, true)
	assert.Equal(t, "plain", answer.Text)
	assert.Empty(t, answer.Citations)
}
