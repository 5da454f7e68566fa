package models

import (
	"encoding/json"
	"fmt"
)

// UpstreamError records a non-2xx answer from a provider. The relay passes
// the status code and body through to the caller untouched.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Details returns the upstream body decoded as JSON when possible, otherwise
// the raw text.
func (e *UpstreamError) Details() any {
	var decoded any
	if err := json.Unmarshal(e.Body, &decoded); err == nil {
		return decoded
	}
	return string(e.Body)
}
