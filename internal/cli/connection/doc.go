// Package connection provides the HTTP transport for planka-cli.
//
// It wraps a shared net/http client with the conventions the Planka
// API expects:
//
//   - Bearer token authentication via the Authorization header
//   - JSON request bodies with Content-Type: application/json
//   - Multipart bodies for file uploads (no JSON content type)
//   - A fixed 30 second per-request timeout, no retries
//
// Failures are classified into distinct kinds: *APIError for non-2xx
// responses, *AuthError for 401/403, ErrTimeout for deadline expiry.
// Transport-level errors are passed through unchanged.
package connection
