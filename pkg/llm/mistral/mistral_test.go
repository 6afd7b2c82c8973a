package mistral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenbrowse/browsebot/pkg/llm"
	"github.com/zenbrowse/browsebot/pkg/types"
)

func TestNormalizeSchemaTypes(t *testing.T) {
	schema := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"x": map[string]any{"type": "STRING"},
			"nested": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type":        "OBJECT",
					"description": "TYPE should not be touched here",
				},
			},
		},
		"required": []any{"x"},
	}

	got := normalizeSchemaTypes(schema).(map[string]any)

	assert.Equal(t, "object", got["type"])
	props := got["properties"].(map[string]any)
	assert.Equal(t, "string", props["x"].(map[string]any)["type"])
	nested := props["nested"].(map[string]any)
	assert.Equal(t, "array", nested["type"])
	items := nested["items"].(map[string]any)
	assert.Equal(t, "object", items["type"])
	assert.Equal(t, "TYPE should not be touched here", items["description"])
	assert.Equal(t, []any{"x"}, got["required"])
}

func TestNewToolCallID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := newToolCallID()
		require.Len(t, id, 9)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(idAlphabet, c), "unexpected character %q", c)
		}
		seen[id] = true
	}
	// Best-effort uniqueness: 50 draws from 62^9 should not all collide.
	assert.Greater(t, len(seen), 1)
}

func testProvider(url string) *Provider {
	return New("test-key",
		WithBaseURL(url),
		WithModel("mistral-large-latest"),
		WithQueueInterval(time.Millisecond),
	)
}

func TestSendMessageRemapsHistory(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"done"}}]}`))
	}))
	defer server.Close()

	instruction := types.TextPart("Be terse.")
	req := &llm.RequestEnvelope{
		SystemInstruction: &instruction,
		Contents: []types.Turn{
			types.NewUserTurn("open github"),
			types.NewModelTurn(
				types.TextPart("Opening."),
				types.CallPart("openLink", map[string]any{"link": "https://github.com"}),
			),
			types.NewToolTurn(types.FunctionResponse{
				Name:     "openLink",
				Response: map[string]any{"result": "opened"},
			}),
		},
	}

	turn, err := testProvider(server.URL).SendMessage(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.Equal(t, "done", turn.FirstText())

	messages := got["messages"].([]any)
	require.Len(t, messages, 4)

	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])

	user := messages[1].(map[string]any)
	assert.Equal(t, "user", user["role"])

	assistant := messages[2].(map[string]any)
	assert.Equal(t, "assistant", assistant["role"])
	toolCalls := assistant["tool_calls"].([]any)
	require.Len(t, toolCalls, 1)
	call := toolCalls[0].(map[string]any)
	assert.Len(t, call["id"].(string), 9)
	fn := call["function"].(map[string]any)
	assert.Equal(t, "openLink", fn["name"])
	assert.JSONEq(t, `{"link":"https://github.com"}`, fn["arguments"].(string))

	tool := messages[3].(map[string]any)
	assert.Equal(t, "tool", tool["role"])
	assert.Equal(t, "openLink", tool["name"])
	assert.JSONEq(t, `{"result":"opened"}`, tool["content"].(string))
	assert.Len(t, tool["tool_call_id"].(string), 9)

	assert.Equal(t, "mistral-large-latest", got["model"])
}

func TestSendMessageToolDeclarations(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	req := &llm.RequestEnvelope{
		Contents: []types.Turn{types.NewUserTurn("hi")},
		Tools: []llm.FunctionDeclaration{
			{
				Name:        "search",
				Description: "Performs a web search.",
				Parameters: map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"searchTerm": map[string]any{"type": "STRING"},
					},
				},
			},
		},
		JSONResponse: true,
	}

	_, err := testProvider(server.URL).SendMessage(context.Background(), req)
	require.NoError(t, err)

	tools := got["tools"].([]any)
	require.Len(t, tools, 1)
	fn := tools[0].(map[string]any)["function"].(map[string]any)
	params := fn["parameters"].(map[string]any)
	assert.Equal(t, "object", params["type"])
	term := params["properties"].(map[string]any)["searchTerm"].(map[string]any)
	assert.Equal(t, "string", term["type"])

	// Tools win over the JSON response-format hint.
	assert.NotContains(t, got, "response_format")
}

func TestSendMessageJSONResponseFormat(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	}))
	defer server.Close()

	req := &llm.RequestEnvelope{
		Contents:     []types.Turn{types.NewUserTurn("hi")},
		JSONResponse: true,
	}
	_, err := testProvider(server.URL).SendMessage(context.Background(), req)
	require.NoError(t, err)

	format := got["response_format"].(map[string]any)
	assert.Equal(t, "json_object", format["type"])
}

func TestSendMessageParsesToolCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{
			"content":"Opening github.",
			"tool_calls":[{"id":"abc123xyz","function":{"name":"openLink","arguments":"{\"link\":\"https://github.com\"}"}}]
		}}]}`))
	}))
	defer server.Close()

	turn, err := testProvider(server.URL).SendMessage(context.Background(), &llm.RequestEnvelope{
		Contents: []types.Turn{types.NewUserTurn("open github")},
	})
	require.NoError(t, err)
	require.NotNil(t, turn)

	assert.Equal(t, "Opening github.", turn.FirstText())
	calls := turn.FunctionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "openLink", calls[0].Name)
	assert.Equal(t, "https://github.com", calls[0].Args["link"])
}

func TestSendMessageNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	turn, err := testProvider(server.URL).SendMessage(context.Background(), &llm.RequestEnvelope{
		Contents: []types.Turn{types.NewUserTurn("hi")},
	})
	require.NoError(t, err)
	assert.Nil(t, turn)
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	}))
	defer server.Close()

	_, err := testProvider(server.URL).SendMessage(context.Background(), &llm.RequestEnvelope{
		Contents: []types.Turn{types.NewUserTurn("hi")},
	})

	var apiErr *llm.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid key", apiErr.Message)
}
