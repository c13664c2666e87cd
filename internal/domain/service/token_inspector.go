package service

import "time"

// TokenInspector reads claims from a token without verifying its signature.
// The client never holds signing keys; the server stays the authority.
type TokenInspector interface {
	// ExpiresAt returns the expiry of token. ok is false for opaque or malformed tokens.
	ExpiresAt(token string) (expiresAt time.Time, ok bool)
}
