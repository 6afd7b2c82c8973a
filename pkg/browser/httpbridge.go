package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// maxFetchBytes caps how much of a page body is read; anything beyond this
// would blow the model's context anyway.
const maxFetchBytes = 2 << 20

// HTTPBridge is a PageBridge over plain HTTP for hosts without a live DOM
// (the CLI). It tracks a current URL, fetches it on demand, and extracts
// text or cleaned HTML from the response. DOM interaction and transcripts
// are not available and report errors, which the tool boundary converts to
// {error} payloads.
type HTTPBridge struct {
	client *http.Client

	mu         sync.Mutex
	currentURL string
}

// NewHTTPBridge creates a bridge with no current page.
func NewHTTPBridge(client *http.Client) *HTTPBridge {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPBridge{client: client}
}

// SetCurrentURL points the bridge at a page; subsequent content reads fetch
// this URL.
func (b *HTTPBridge) SetCurrentURL(url string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.currentURL = url
}

// CurrentURL returns the page the bridge is pointed at.
func (b *HTTPBridge) CurrentURL() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentURL
}

func (b *HTTPBridge) fetch(ctx context.Context) (string, string, error) {
	url := b.CurrentURL()
	if url == "" {
		return "", "", fmt.Errorf("no current page")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", url, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return "", url, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", url, fmt.Errorf("fetching %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", url, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return string(body), url, nil
}

// GetPageTextContent fetches the current page and extracts its readable text.
func (b *HTTPBridge) GetPageTextContent(ctx context.Context, trim bool) (*PageContent, error) {
	raw, url, err := b.fetch(ctx)
	if err != nil {
		return nil, err
	}
	text, err := ExtractText(raw, trim)
	if err != nil {
		return nil, err
	}
	return &PageContent{TextContent: text, URL: url, Title: ExtractTitle(raw)}, nil
}

// GetHTMLContent fetches the current page and returns its cleaned HTML.
func (b *HTTPBridge) GetHTMLContent(ctx context.Context) (*HTMLContent, error) {
	raw, url, err := b.fetch(ctx)
	if err != nil {
		return nil, err
	}
	cleaned, err := CleanHTML(raw)
	if err != nil {
		return nil, err
	}
	return &HTMLContent{Content: cleaned, URL: url, Title: ExtractTitle(raw)}, nil
}

// GetSelectedText reports no selection; there is no user cursor over HTTP.
func (b *HTTPBridge) GetSelectedText(ctx context.Context) (*Selection, error) {
	return &Selection{HasSelection: false, URL: b.CurrentURL()}, nil
}

// GetYoutubeTranscript is unavailable without a live DOM.
func (b *HTTPBridge) GetYoutubeTranscript(ctx context.Context) (string, error) {
	return "", fmt.Errorf("transcripts require a live browser page")
}

// ClickElement is unavailable without a live DOM.
func (b *HTTPBridge) ClickElement(ctx context.Context, selector string) (string, error) {
	return "", fmt.Errorf("clicking elements requires a live browser page")
}

// FillForm is unavailable without a live DOM.
func (b *HTTPBridge) FillForm(ctx context.Context, selector, value string) (string, error) {
	return "", fmt.Errorf("filling forms requires a live browser page")
}
