package connection

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrTimeout is returned when a request exceeds the per-request deadline.
var ErrTimeout = errors.New("request timed out")

// APIError is a non-2xx response from the server. Body carries the
// response body verbatim so validation messages reach the user.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Body)
}

// AuthError is an authentication failure: a rejected login, or a
// 401/403 on any authenticated call.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("authentication failed (status %d)", e.Status)
	}
	return fmt.Sprintf("authentication failed (status %d): %s", e.Status, e.Body)
}

// statusError maps a non-2xx status to the matching error kind.
func statusError(status int, body string) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &AuthError{Status: status, Body: body}
	}
	return &APIError{Status: status, Body: body}
}

// classify distinguishes timeouts from other transport failures.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
