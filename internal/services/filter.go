package services

import (
	"strings"
	"time"

	"eventboard/internal/domain"
)

// FilterEvents returns the events matching every criterion, in input order.
// The input slice and its records are not modified.
func FilterEvents(events []*domain.Event, criteria domain.FilterCriteria, now time.Time) []*domain.Event {
	search := strings.ToLower(criteria.Search)
	category := criteria.Category
	if strings.EqualFold(category, string(domain.StatusAll)) {
		category = ""
	}
	status := criteria.Status
	if status == "" {
		status = domain.StatusAll
	}

	out := make([]*domain.Event, 0, len(events))
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if !matchesSearch(ev, search) {
			continue
		}
		if category != "" && !strings.EqualFold(ev.Type, category) {
			continue
		}
		if status != domain.StatusAll && ev.Status(now) != status {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// GroupByStatus buckets events by their status at now in a single pass.
// Every status has an entry, possibly empty.
func GroupByStatus(events []*domain.Event, now time.Time) map[domain.Status][]*domain.Event {
	groups := map[domain.Status][]*domain.Event{
		domain.StatusUpcoming: {},
		domain.StatusOngoing:  {},
		domain.StatusPast:     {},
	}
	for _, ev := range events {
		if ev == nil {
			continue
		}
		st := ev.Status(now)
		groups[st] = append(groups[st], ev)
	}
	return groups
}

func matchesSearch(ev *domain.Event, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{ev.Name, ev.Description, ev.Location} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
