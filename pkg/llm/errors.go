package llm

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// NetworkError wraps a transport-level failure: the request never produced an
// HTTP response. It is one of the two error kinds allowed to reach the
// engine's caller.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx HTTP response from a provider, carrying the status
// code and the best error message that could be extracted from the body.
type APIError struct {
	Provider string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error: %d - %s", e.Provider, e.Status, e.Message)
}

// ReadAPIError drains a non-2xx response body and builds an *APIError.
// Vendors agree on a {"error": {"message": ...}} body often enough that the
// structured form is tried first, falling back to the raw text.
func ReadAPIError(provider string, resp *http.Response) *APIError {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Provider: provider, Status: resp.StatusCode, Message: "failed to read error body"}
	}

	var structured struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Error.Message != "" {
		return &APIError{Provider: provider, Status: resp.StatusCode, Message: structured.Error.Message}
	}

	return &APIError{Provider: provider, Status: resp.StatusCode, Message: string(body)}
}
