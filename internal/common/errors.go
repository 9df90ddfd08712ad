// Package common defines shared constants and sentinel errors used across
// the gateway's layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrorUnauthorized is the single failure value for every credential or
	// session problem the client is allowed to see. Unknown username, wrong
	// password, bad signature, expired token and a revoked user all collapse
	// to it so that callers cannot tell the causes apart.
	ErrorUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors (internal detail, never surfaced to clients).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrUnknownUser marks a well-signed, unexpired token whose subject no
	// longer exists in the store. Removing a user is the only way to revoke
	// their outstanding tokens.
	ErrUnknownUser = errors.New("unknown user")
)
