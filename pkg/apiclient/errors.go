package apiclient

import "fmt"

// APIError is the typed error every failed backend call is normalized into.
// Status 0 is reserved for transport-level failures where no HTTP response
// was obtained; it is never a real HTTP code.
type APIError struct {
	Message string
	Status  int
	Payload map[string]any
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return e.Message
}

// IsAuthError reports an authentication or authorization failure (401/403).
func (e *APIError) IsAuthError() bool {
	return e.Status == 401 || e.Status == 403
}

// IsServerError reports a backend-side failure (5xx).
func (e *APIError) IsServerError() bool {
	return e.Status >= 500
}

// IsNetworkError reports that no response was obtained at all.
func (e *APIError) IsNetworkError() bool {
	return e.Status == 0
}
