package domain

import (
	"context"
	"time"
)

// CatalogSnapshot is a read-only copy of the catalog state.
type CatalogSnapshot struct {
	Identity string
	Events   []*Event
	Page     int
	HasMore  bool
	Loading  bool
	// Err is the error of the last failed load, cleared by the next applied load.
	Err error
}

// EventCatalog owns the paginated list of events for the current identity.
type EventCatalog interface {
	EventUpdater
	// Load fetches one page and replaces or extends the list.
	Load(ctx context.Context, identity string, page int, appendPage bool) error
	// OnIdentityChange reloads page 0 for identity, replacing the list.
	OnIdentityChange(ctx context.Context, identity string) error
	// LoadMore appends the page after the cursor for the catalog's identity.
	LoadMore(ctx context.Context) error
	// Reload replaces the list with page 0 for the catalog's identity.
	Reload(ctx context.Context) error
	Snapshot() CatalogSnapshot
	// Bind reloads the catalog on every identity change of store.
	Bind(ctx context.Context, store IdentityStore) (unbind func())
}

// FilterCriteria narrows a list of events. Empty fields match everything.
type FilterCriteria struct {
	Search   string
	Category string
	Status   Status
}

// RegistrationCoordinator drives registration for single events.
type RegistrationCoordinator interface {
	Register(ctx context.Context, eventID string) (RegistrationState, error)
	SubmitIdentity(ctx context.Context, eventID, identity string) (RegistrationState, error)
	Cancel(eventID string) RegistrationState
	State(eventID string) RegistrationState
}

// Clock returns the current time. Pure logic takes now as a parameter instead.
type Clock func() time.Time
