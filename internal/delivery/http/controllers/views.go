package controllers

import (
	"time"

	"eventboard/internal/domain"
	"eventboard/internal/services"
)

// EventView is an event with the values derived for display.
type EventView struct {
	*domain.Event
	Status domain.Status `json:"status"`
	// Remaining is -1 when capacity is unlimited.
	Remaining int  `json:"remaining"`
	Full      bool `json:"full"`
}

func newEventView(ev *domain.Event, now time.Time) EventView {
	return EventView{
		Event:     ev,
		Status:    ev.Status(now),
		Remaining: ev.Remaining(),
		Full:      ev.IsFull(),
	}
}

// EventListResponse is the filtered catalog view.
type EventListResponse struct {
	Identity string      `json:"mssvId"`
	Events   []EventView `json:"events"`
	// Counts holds the number of events per status after search and category
	// filtering, with the total under "all".
	Counts    map[domain.Status]int `json:"counts"`
	Page      int                   `json:"page"`
	HasMore   bool                  `json:"hasMore"`
	Loading   bool                  `json:"loading"`
	LoadError string                `json:"loadError,omitempty"`
}

func newEventListResponse(snap domain.CatalogSnapshot, criteria domain.FilterCriteria, now time.Time) EventListResponse {
	base := services.FilterEvents(snap.Events, domain.FilterCriteria{
		Search:   criteria.Search,
		Category: criteria.Category,
	}, now)

	counts := map[domain.Status]int{domain.StatusAll: len(base)}
	for st, group := range services.GroupByStatus(base, now) {
		counts[st] = len(group)
	}

	visible := services.FilterEvents(base, domain.FilterCriteria{Status: criteria.Status}, now)
	views := make([]EventView, 0, len(visible))
	for _, ev := range visible {
		views = append(views, newEventView(ev, now))
	}

	resp := EventListResponse{
		Identity: snap.Identity,
		Events:   views,
		Counts:   counts,
		Page:     snap.Page,
		HasMore:  snap.HasMore,
		Loading:  snap.Loading,
	}
	if snap.Err != nil {
		resp.LoadError = domain.DisplayMessage(snap.Err)
	}
	return resp
}

// IdentityRequest carries a student identity.
type IdentityRequest struct {
	Identity string `json:"mssvId"`
}

// IdentityResponse is the current identity and any draft waiting to be committed.
type IdentityResponse struct {
	Identity string `json:"mssvId"`
	Draft    string `json:"draft,omitempty"`
	Pending  bool   `json:"pending"`
}
