// Package mistral implements the Mistral provider adapter on the
// OpenAI-compatible chat-completions API.
//
// Unlike Gemini, nothing about the shared Part model survives the wire
// boundary here: history is remapped to {role, content} messages, tool
// declarations are rewrapped into OpenAI function-calling shape with
// lower-cased schema type tokens, and tool responses travel as role:"tool"
// messages correlated by generated call ids. All requests pass through a
// FIFO queue enforcing the vendor's 1 request/second quota.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/openai/openai-go"

	"github.com/zenbrowse/browsebot/pkg/llm"
	"github.com/zenbrowse/browsebot/pkg/llm/ratelimit"
	"github.com/zenbrowse/browsebot/pkg/types"
)

// DefaultBaseURL is the Mistral chat-completions endpoint.
const DefaultBaseURL = "https://api.mistral.ai/v1/chat/completions"

// minRequestInterval is the spacing the vendor quota requires.
const minRequestInterval = time.Second

var info = llm.Info{
	Name:      "mistral",
	Label:     "Mistral AI",
	APIKeyURL: "https://console.mistral.ai/api-keys/",
	Models: []string{
		"mistral-small",
		"mistral-medium-latest",
		"mistral-large-latest",
		"pixtral-large-latest",
	},
}

// Provider implements llm.Provider for the Mistral API.
type Provider struct {
	httpClient *http.Client
	queue      *ratelimit.Queue
	apiKey     string
	baseURL    string
	model      string
}

// Option configures a Provider.
type Option func(*Provider)

// WithModel selects the model used for completions.
func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithQueueInterval overrides the rate-limit spacing, mainly for tests.
func WithQueueInterval(interval time.Duration) Option {
	return func(p *Provider) {
		p.queue = ratelimit.New(interval)
	}
}

// New creates a Mistral provider with the given API key.
func New(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		httpClient: &http.Client{},
		queue:      ratelimit.New(minRequestInterval),
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		model:      "mistral-small",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Info returns the provider metadata.
func (p *Provider) Info() llm.Info { return info }

// Model returns the selected model.
func (p *Provider) Model() string { return p.model }

// SetModel selects a model from the known list.
func (p *Provider) SetModel(model string) error {
	if !info.HasModel(model) {
		return fmt.Errorf("mistral: unknown model %q", model)
	}
	p.model = model
	return nil
}

// APIKey returns the configured key.
func (p *Provider) APIKey() string { return p.apiKey }

// SetAPIKey replaces the configured key.
func (p *Provider) SetAPIKey(key string) { p.apiKey = key }

// SupportsTools reports native tool-calling support.
func (p *Provider) SupportsTools() bool { return true }

// SendMessage performs one chat-completions round-trip through the rate
// limit queue.
func (p *Provider) SendMessage(ctx context.Context, req *llm.RequestEnvelope) (*types.Turn, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("mistral: no API key configured")
	}

	body := map[string]any{
		"model":    p.model,
		"messages": buildMessages(req),
	}
	if len(req.Tools) > 0 {
		body["tools"] = buildTools(req.Tools)
	} else if req.JSONResponse {
		body["response_format"] = map[string]any{"type": "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("mistral: failed to marshal request: %w", err)
	}

	result, err := p.queue.Enqueue(ctx, func(ctx context.Context) (any, error) {
		return p.post(ctx, payload)
	})
	if err != nil {
		return nil, err
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, llm.ReadAPIError(info.Name, resp)
	}

	return parseResponse(resp)
}

func (p *Provider) post(ctx context.Context, payload []byte) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("mistral: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &llm.NetworkError{Provider: info.Name, Err: err}
	}
	return resp, nil
}

// buildMessages remaps the envelope's history into chat-completions messages.
// Simple turns go through the openai-go param helpers; assistant turns that
// carry tool calls and tool-response turns need shapes the helpers don't
// cover and are built as raw objects.
func buildMessages(req *llm.RequestEnvelope) []any {
	messages := make([]any, 0, len(req.Contents)+1)

	if req.SystemInstruction != nil && req.SystemInstruction.Text != "" {
		messages = append(messages, openai.SystemMessage(req.SystemInstruction.Text))
	}

	for _, turn := range req.Contents {
		switch turn.Role {
		case types.RoleUser:
			messages = append(messages, openai.UserMessage(turn.FirstText()))

		case types.RoleModel:
			calls := turn.FunctionCalls()
			if len(calls) == 0 {
				messages = append(messages, openai.AssistantMessage(turn.FirstText()))
				continue
			}
			toolCalls := make([]map[string]any, 0, len(calls))
			for _, call := range calls {
				args, err := json.Marshal(call.Args)
				if err != nil {
					args = []byte("{}")
				}
				toolCalls = append(toolCalls, map[string]any{
					"id":   newToolCallID(),
					"type": "function",
					"function": map[string]any{
						"name":      call.Name,
						"arguments": string(args),
					},
				})
			}
			messages = append(messages, map[string]any{
				"role":       "assistant",
				"content":    turn.FirstText(),
				"tool_calls": toolCalls,
			})

		case types.RoleTool:
			for _, fr := range turn.FunctionResponses() {
				content, err := json.Marshal(fr.Response)
				if err != nil {
					content = []byte("{}")
				}
				messages = append(messages, map[string]any{
					"role":         "tool",
					"name":         fr.Name,
					"content":      string(content),
					"tool_call_id": newToolCallID(),
				})
			}
		}
	}

	return messages
}

// buildTools converts shared declarations to OpenAI function-calling shape.
func buildTools(decls []llm.FunctionDeclaration) []map[string]any {
	tools := make([]map[string]any, 0, len(decls))
	for _, decl := range decls {
		tools = append(tools, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        decl.Name,
				"description": decl.Description,
				"parameters":  normalizeSchemaTypes(decl.Parameters),
			},
		})
	}
	return tools
}

// normalizeSchemaTypes recursively lower-cases every "type" field's string
// value. The shared declarations use upper-case type tokens; the
// OpenAI-compatible schema dialect requires lower-case.
func normalizeSchemaTypes(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			if key == "type" {
				if s, ok := value.(string); ok {
					out[key] = lower(s)
					continue
				}
			}
			out[key] = normalizeSchemaTypes(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeSchemaTypes(item)
		}
		return out
	default:
		return node
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newToolCallID produces a 9-character id from [a-zA-Z0-9]. Uniqueness is
// best-effort: ids only correlate a call with its immediate response within
// one exchange.
func newToolCallID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}

// parseResponse maps choices[0].message back into a normalized model turn.
func parseResponse(resp *http.Response) (*types.Turn, error) {
	var data struct {
		Choices []struct {
			Message struct {
				Content   string `json:"content"`
				ToolCalls []struct {
					Function struct {
						Name      string `json:"name"`
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("mistral: failed to decode response: %w", err)
	}
	if len(data.Choices) == 0 {
		return nil, nil
	}

	msg := data.Choices[0].Message
	turn := &types.Turn{Role: types.RoleModel}
	if msg.Content != "" {
		turn.Parts = append(turn.Parts, types.TextPart(msg.Content))
	}
	for _, call := range msg.ToolCalls {
		args := map[string]any{}
		if call.Function.Arguments != "" {
			// Malformed argument JSON degrades to empty args rather than
			// failing the whole exchange.
			_ = json.Unmarshal([]byte(call.Function.Arguments), &args)
		}
		turn.Parts = append(turn.Parts, types.CallPart(call.Function.Name, args))
	}

	if turn.Empty() {
		return nil, nil
	}
	return turn, nil
}
