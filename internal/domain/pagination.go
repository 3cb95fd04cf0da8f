package domain

import (
	"context"
	"io"
)

// CatalogPage is one page of the remote event listing. Pages are 0-based.
type CatalogPage struct {
	Events  []*Event
	Page    int
	Size    int
	HasMore bool
}

// NewCatalogPage builds a page and derives HasMore: a full page means more may follow.
func NewCatalogPage(events []*Event, page, size int) *CatalogPage {
	if events == nil {
		events = []*Event{}
	}
	return &CatalogPage{
		Events:  events,
		Page:    page,
		Size:    size,
		HasMore: size > 0 && len(events) == size,
	}
}

// EventDirectory is the contract over the remote event API.
// Implementations must be safe for concurrent use.
type EventDirectory interface {
	// ListEvents returns one page. An empty identity yields events with a nil RegistrationStatus.
	ListEvents(ctx context.Context, identity string, page, size int) (*CatalogPage, error)
	// GetEvent returns ErrNotFound for an unknown id.
	GetEvent(ctx context.Context, id, identity string) (*Event, error)
	// Register returns ErrAlreadyRegistered, ErrConflict, ErrNotFound or ErrNetwork on failure.
	Register(ctx context.Context, identity, eventID string) error
	CreateEvent(ctx context.Context, draft *EventDraft) (*Event, error)
	UploadImage(ctx context.Context, filename string, body io.Reader) (string, error)
}
