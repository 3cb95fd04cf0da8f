package domain

import "context"

// IdentityKey is the session key under which the identity token is persisted.
const IdentityKey = "mssv"

// SessionStore is session-scoped key/value storage. Get returns ErrNotFound
// when the key was never written for the session.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Put(ctx context.Context, sessionID, key, value string) error
}

// IdentityStore holds the single identity token of the session.
// An empty token means no identity.
type IdentityStore interface {
	Get() string
	// Set stores the token and notifies every subscriber before returning.
	// Concurrent calls are applied one at a time; subscribers must not call Set.
	Set(token string)
	// Subscribe registers fn for every Set and returns a function that removes it.
	Subscribe(fn func(identity string)) (unsubscribe func())
}
