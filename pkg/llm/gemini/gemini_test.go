package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenbrowse/browsebot/pkg/llm"
	"github.com/zenbrowse/browsebot/pkg/types"
)

func envelope() *llm.RequestEnvelope {
	instruction := types.TextPart("You are a helpful assistant.")
	return &llm.RequestEnvelope{
		Contents:          []types.Turn{types.NewUserTurn("hello")},
		SystemInstruction: &instruction,
		Tools: []llm.FunctionDeclaration{
			{
				Name:        "openLink",
				Description: "Opens a URL.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"link": map[string]any{"type": "STRING"},
					},
					"required": []any{"link"},
				},
			},
		},
		JSONResponse: true,
	}
}

func TestSendMessageRequestShape(t *testing.T) {
	var got map[string]any
	var header http.Header
	var path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hi"}]}}]}`))
	}))
	defer server.Close()

	p := New("test-key", WithBaseURL(server.URL), WithModel("gemini-2.0-flash"))
	turn, err := p.SendMessage(context.Background(), envelope())
	require.NoError(t, err)
	require.NotNil(t, turn)

	assert.Equal(t, "/gemini-2.0-flash:generateContent", path)
	assert.Equal(t, "test-key", header.Get("x-goog-api-key"))

	assert.Contains(t, got, "contents")
	assert.Contains(t, got, "systemInstruction")
	assert.Contains(t, got, "tools")
	genCfg, ok := got["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "application/json", genCfg["responseMimeType"])

	tools := got["tools"].([]any)
	require.Len(t, tools, 1)
	decls := tools[0].(map[string]any)["functionDeclarations"].([]any)
	require.Len(t, decls, 1)
	assert.Equal(t, "openLink", decls[0].(map[string]any)["name"])

	assert.Equal(t, types.RoleModel, turn.Role)
	assert.Equal(t, "hi", turn.FirstText())
}

func TestSendMessageParsesFunctionCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[
			{"functionCall":{"name":"openLink","args":{"link":"https://github.com"}}}
		]}}]}`))
	}))
	defer server.Close()

	p := New("k", WithBaseURL(server.URL))
	turn, err := p.SendMessage(context.Background(), envelope())
	require.NoError(t, err)
	require.NotNil(t, turn)

	calls := turn.FunctionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "openLink", calls[0].Name)
	assert.Equal(t, "https://github.com", calls[0].Args["link"])
}

func TestSendMessageNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	p := New("k", WithBaseURL(server.URL))
	turn, err := p.SendMessage(context.Background(), envelope())
	require.NoError(t, err)
	assert.Nil(t, turn)
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	p := New("k", WithBaseURL(server.URL))
	_, err := p.SendMessage(context.Background(), envelope())

	var apiErr *llm.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "quota exceeded", apiErr.Message)
}

func TestSendMessageAPIErrorRawBodyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("service unavailable"))
	}))
	defer server.Close()

	p := New("k", WithBaseURL(server.URL))
	_, err := p.SendMessage(context.Background(), envelope())

	var apiErr *llm.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "service unavailable", apiErr.Message)
}

func TestSendMessageNetworkError(t *testing.T) {
	p := New("k", WithBaseURL("http://127.0.0.1:1"))
	_, err := p.SendMessage(context.Background(), envelope())

	var netErr *llm.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestSetModelRejectsUnknown(t *testing.T) {
	p := New("k")
	assert.Error(t, p.SetModel("gpt-4o"))
	assert.NoError(t, p.SetModel("gemini-1.5-pro"))
	assert.Equal(t, "gemini-1.5-pro", p.Model())
}
