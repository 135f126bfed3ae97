package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no provider is wired.
var ErrProviderUnavailable = errors.New("provider unavailable")

// StatusError captures a non-success HTTP response from an upstream provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	name := e.Provider
	if name == "" {
		name = "provider"
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", name, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", name, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
