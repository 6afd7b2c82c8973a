package tools

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/browser"
)

// TranscriptTool fetches the transcript of the YouTube video on the active
// page.
type TranscriptTool struct {
	bridge browser.PageBridge
}

func NewTranscriptTool(bridge browser.PageBridge) *TranscriptTool {
	return &TranscriptTool{bridge: bridge}
}

func (t *TranscriptTool) Name() string {
	return "getYoutubeTranscript"
}

func (t *TranscriptTool) Description() string {
	return "Get the transcript of the YouTube video currently open. Use this to answer questions about the video's content."
}

func (t *TranscriptTool) Schema() map[string]any {
	return ObjectSchema(map[string]any{}, nil)
}

func (t *TranscriptTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	transcript, err := t.bridge.GetYoutubeTranscript(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"transcript": transcript}, nil
}
