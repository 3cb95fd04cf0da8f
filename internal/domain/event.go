package domain

import (
	"time"
)

// Event is a time-boxed activity owned by the remote event directory.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	Type        string    `json:"type"`
	// NumberOfRegistrants is nil when the directory did not report a count.
	NumberOfRegistrants *int `json:"numberOfRegistrants"`
	// Capacity of 0 means unlimited.
	Capacity int `json:"capacity"`
	// RegistrationStatus is nil when the event was fetched without an identity.
	RegistrationStatus *bool `json:"registrationStatus,omitempty"`
}

// Registrants returns the registrant count, treating an unknown count as zero.
func (e *Event) Registrants() int {
	if e.NumberOfRegistrants == nil {
		return 0
	}
	return *e.NumberOfRegistrants
}

// Remaining returns the number of free places, or -1 when capacity is unlimited.
func (e *Event) Remaining() int {
	if e.Capacity <= 0 {
		return -1
	}
	if n := e.Capacity - e.Registrants(); n > 0 {
		return n
	}
	return 0
}

// IsFull reports whether a limited-capacity event has no places left.
func (e *Event) IsFull() bool {
	return e.Capacity > 0 && e.Registrants() >= e.Capacity
}

// IsRegistered reports whether the identity the event was fetched for is registered.
func (e *Event) IsRegistered() bool {
	return e.RegistrationStatus != nil && *e.RegistrationStatus
}

// Status classifies the event against now.
func (e *Event) Status(now time.Time) Status {
	return ClassifyStatus(now, e.StartDate, e.EndDate)
}

// Clone returns a deep copy so callers can read it without holding the owner's lock.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	if e.NumberOfRegistrants != nil {
		n := *e.NumberOfRegistrants
		c.NumberOfRegistrants = &n
	}
	if e.RegistrationStatus != nil {
		b := *e.RegistrationStatus
		c.RegistrationStatus = &b
	}
	return &c
}

// EventDraft is the payload forwarded to the directory when an event is created.
// Field validation belongs to the creation form, not to this package.
type EventDraft struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
}

// EventUpdater applies an in-place mutation to a shared event record.
// It returns false when no record with that id is held.
type EventUpdater interface {
	UpdateEvent(id string, fn func(*Event)) bool
}
