package jumbo

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates a store-scoped call was made before a store was
// synced, or credentials are missing.
var ErrNotConfigured = errors.New("not configured")

var errMissingToken = errors.New("login response did not contain a token")

// An AuthError indicates the login request was rejected.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// An APIError is returned when the mobile API responds with a non-2xx status.
// Body holds the (possibly truncated) response body for troubleshooting.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s", e.Status)
}
