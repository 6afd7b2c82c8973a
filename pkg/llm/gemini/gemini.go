// Package gemini implements the Google Gemini provider adapter.
//
// Gemini's generateContent wire format is the closest vendor shape to the
// shared Part model, so history and tool declarations marshal through with
// almost no translation: the adapter only wraps the system instruction,
// nests declarations under functionDeclarations, and unwraps
// candidates[0].content on the way back.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zenbrowse/browsebot/pkg/llm"
	"github.com/zenbrowse/browsebot/pkg/types"
)

// DefaultBaseURL is the Gemini generateContent endpoint root.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

var info = llm.Info{
	Name:      "gemini",
	Label:     "Google Gemini",
	APIKeyURL: "https://aistudio.google.com/app/apikey",
	Models: []string{
		"gemini-2.5-pro",
		"gemini-2.5-flash",
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
		"gemini-1.5-pro",
		"gemini-1.5-flash",
		"gemini-1.5-flash-8b",
	},
}

// Provider implements llm.Provider for the Gemini API.
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

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// New creates a Gemini provider with the given API key.
func New(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		model:      "gemini-2.5-flash",
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
		return fmt.Errorf("gemini: unknown model %q", model)
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

// SendMessage performs one generateContent round-trip.
func (p *Provider) SendMessage(ctx context.Context, req *llm.RequestEnvelope) (*types.Turn, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("gemini: no API key configured")
	}

	body := map[string]any{
		"contents": req.Contents,
	}
	if req.SystemInstruction != nil {
		body["systemInstruction"] = map[string]any{
			"parts": []types.Part{*req.SystemInstruction},
		}
	}
	if len(req.Tools) > 0 {
		body["tools"] = []map[string]any{
			{"functionDeclarations": req.Tools},
		}
	}
	if req.JSONResponse {
		body["generationConfig"] = map[string]any{
			"responseMimeType": "application/json",
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", p.baseURL, p.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &llm.NetworkError{Provider: info.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, llm.ReadAPIError(info.Name, resp)
	}

	var data struct {
		Candidates []struct {
			Content types.Turn `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	if len(data.Candidates) == 0 || data.Candidates[0].Content.Empty() {
		return nil, nil
	}

	content := data.Candidates[0].Content
	content.Role = types.RoleModel
	return &content, nil
}
