package perplexity

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

func TestSendMessageFlattensHistory(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"pong"}}]}`))
	}))
	defer server.Close()

	instruction := types.TextPart("persona")
	p := New("k", WithBaseURL(server.URL))
	turn, err := p.SendMessage(context.Background(), &llm.RequestEnvelope{
		SystemInstruction: &instruction,
		Contents: []types.Turn{
			types.NewUserTurn("ping"),
			types.NewModelTurn(types.TextPart("pong")),
			types.NewUserTurn("ping again"),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.Equal(t, "pong", turn.FirstText())
	assert.Equal(t, types.RoleModel, turn.Role)

	messages := got["messages"].([]any)
	require.Len(t, messages, 4)
	roles := make([]string, 0, 4)
	for _, m := range messages {
		roles = append(roles, m.(map[string]any)["role"].(string))
	}
	assert.Equal(t, []string{"system", "user", "assistant", "user"}, roles)
}

func TestSendMessageNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	p := New("k", WithBaseURL(server.URL))
	turn, err := p.SendMessage(context.Background(), &llm.RequestEnvelope{
		Contents: []types.Turn{types.NewUserTurn("hi")},
	})
	require.NoError(t, err)
	assert.Nil(t, turn)
}

func TestProviderDoesNotSupportTools(t *testing.T) {
	assert.False(t, New("k").SupportsTools())
}
