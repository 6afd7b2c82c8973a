// Package llm provides the provider abstraction the conversation engine
// speaks through. Each vendor adapter lives in its own subpackage (gemini,
// mistral, perplexity) and translates between the shared types.Part model and
// its vendor's wire format — that translation is the only place
// vendor-specific knowledge may live.
package llm

import (
	"context"

	"github.com/zenbrowse/browsebot/pkg/types"
)

// Provider is the uniform capability every vendor adapter implements.
//
// SendMessage takes a fully assembled RequestEnvelope and returns the model's
// normalized response. A (nil, nil) return means the provider produced no
// usable content; the engine treats that as a non-fatal "no valid response"
// and rolls the turn back. Transport failures surface as *NetworkError and
// non-2xx responses as *APIError — those are the only errors adapters return.
type Provider interface {
	// Info returns the static metadata for this provider.
	Info() Info

	// Model returns the model currently selected for completions.
	Model() string

	// SetModel selects a model. Names outside Info().Models are rejected.
	SetModel(model string) error

	// APIKey returns the configured API key.
	APIKey() string

	// SetAPIKey replaces the configured API key.
	SetAPIKey(key string)

	// SupportsTools reports whether the adapter can carry tool declarations
	// and translate tool-call responses.
	SupportsTools() bool

	// SendMessage performs one model round-trip.
	SendMessage(ctx context.Context, req *RequestEnvelope) (*types.Turn, error)
}

// Info is static per-provider metadata: configuration, not conversation
// state.
type Info struct {
	// Name is the stable identifier used for provider selection.
	Name string

	// Label is the human-readable provider name.
	Label string

	// APIKeyURL points at the vendor console where a key can be created.
	APIKeyURL string

	// Models lists the model names this adapter accepts.
	Models []string
}

// HasModel reports whether name is one of the provider's known models.
func (i Info) HasModel(name string) bool {
	for _, m := range i.Models {
		if m == name {
			return true
		}
	}
	return false
}
