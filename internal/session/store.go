// Package session holds the authenticated user's cached credentials between
// requests. The backend issues an opaque bearer token at login; everything
// else here is profile data kept so the UI can display who is signed in.
package session

import (
	"errors"
)

// Storage keys. These names are part of the on-disk format - a session
// written by an older build must stay readable.
const (
	KeyToken     = "token"
	KeyUserName  = "userName"
	KeyUserEmail = "userEmail"
	KeyUserRoles = "userRoles"
)

// ErrAuthenticationRequired is returned when an operation needs a cached
// token and none is present.
var ErrAuthenticationRequired = errors.New("authentication required")

// Session is the set of fields persisted after a successful login.
type Session struct {
	Token     string   `json:"token"`
	UserName  string   `json:"userName"`
	UserEmail string   `json:"userEmail"`
	Roles     []string `json:"userRoles"`
}

// Store is the injectable session cache used by the API client.
//
// Token reads are deliberately infallible: an empty string means "no
// session" and the request is still issued without credentials - the
// backend is the sole enforcer of authorization.
type Store interface {
	// Token returns the cached bearer token, or "" when no session exists.
	Token() string

	// Current returns the full cached session.
	// Returns ErrAuthenticationRequired when no session exists.
	Current() (Session, error)

	// Save replaces the cached session.
	Save(sess Session) error

	// Clear removes the cached session. Clearing an empty store is not an
	// error.
	Clear() error
}

// RequireToken checks that a token is cached. It is a presence check only -
// no freshness or signature validation is performed.
func RequireToken(store Store) error {
	if store.Token() == "" {
		return ErrAuthenticationRequired
	}
	return nil
}
