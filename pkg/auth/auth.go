package auth

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned by mutation entry points when no identity is present
var ErrUnauthorized = errors.New("unauthorized")

// Identity is the authenticated actor passed explicitly into every mutation.
// A zero Identity means no active session.
type Identity struct {
	AccountID string
}

// Valid reports whether the identity refers to an authenticated account
func (i Identity) Valid() bool {
	return i.AccountID != ""
}

// Require returns the identity or ErrUnauthorized when it is empty.
// Mutations call this first so no partial write can precede the check.
func Require(i Identity) (Identity, error) {
	if !i.Valid() {
		return Identity{}, ErrUnauthorized
	}
	return i, nil
}

// SessionSource resolves the current session to an identity.
// Implementations live outside the core (CLI config, web session layer).
type SessionSource interface {
	Current(ctx context.Context) (Identity, error)
}
