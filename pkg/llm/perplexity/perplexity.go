// Package perplexity implements the Perplexity provider adapter: a plain
// chat-completions variant without tool-calling translation. History is
// flattened to {role, content} messages and the first choice's content comes
// back as a single text part.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zenbrowse/browsebot/pkg/llm"
	"github.com/zenbrowse/browsebot/pkg/types"
)

// DefaultBaseURL is the Perplexity chat-completions endpoint.
const DefaultBaseURL = "https://api.perplexity.ai/v1/chat/completions"

var info = llm.Info{
	Name:      "perplexity",
	Label:     "Perplexity AI",
	APIKeyURL: "https://www.perplexity.ai/settings/api",
	Models: []string{
		"pplx-7b-chat",
		"pplx-70b-chat",
		"pplx-llama-3-8b-instruct",
		"pplx-llama-3-70b-instruct",
	},
}

// Provider implements llm.Provider for the Perplexity API.
type Provider struct {
	httpClient *http.Client
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

// New creates a Perplexity provider with the given API key.
func New(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		model:      "pplx-70b-chat",
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
		return fmt.Errorf("perplexity: unknown model %q", model)
	}
	p.model = model
	return nil
}

// APIKey returns the configured key.
func (p *Provider) APIKey() string { return p.apiKey }

// SetAPIKey replaces the configured key.
func (p *Provider) SetAPIKey(key string) { p.apiKey = key }

// SupportsTools reports that this adapter cannot carry tool declarations.
func (p *Provider) SupportsTools() bool { return false }

// SendMessage performs one chat-completions round-trip.
func (p *Provider) SendMessage(ctx context.Context, req *llm.RequestEnvelope) (*types.Turn, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("perplexity: no API key configured")
	}

	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	messages := make([]message, 0, len(req.Contents)+1)
	if req.SystemInstruction != nil && req.SystemInstruction.Text != "" {
		messages = append(messages, message{Role: "system", Content: req.SystemInstruction.Text})
	}
	for _, turn := range req.Contents {
		switch turn.Role {
		case types.RoleUser:
			messages = append(messages, message{Role: "user", Content: turn.FirstText()})
		case types.RoleModel:
			messages = append(messages, message{Role: "assistant", Content: turn.FirstText()})
		}
		// Tool turns cannot be represented and are dropped; this adapter
		// never advertises tool support so none should appear.
	}

	payload, err := json.Marshal(map[string]any{
		"model":    p.model,
		"messages": messages,
	})
	if err != nil {
		return nil, fmt.Errorf("perplexity: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("perplexity: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &llm.NetworkError{Provider: info.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, llm.ReadAPIError(info.Name, resp)
	}

	var data struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("perplexity: failed to decode response: %w", err)
	}
	if len(data.Choices) == 0 || data.Choices[0].Message.Content == "" {
		return nil, nil
	}

	turn := types.NewModelTurn(types.TextPart(data.Choices[0].Message.Content))
	return &turn, nil
}
