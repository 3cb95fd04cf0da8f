package domain

import (
	"strings"
	"time"
)

// Status is the temporal status of an event relative to a point in time.
type Status string

const (
	StatusPast     Status = "past"
	StatusOngoing  Status = "ongoing"
	StatusUpcoming Status = "upcoming"
	// StatusAll is only meaningful as a filter value.
	StatusAll Status = "all"
)

// ClassifyStatus maps an event window to its status at now.
// The rules are checked in order, so an end equal to now or a start equal to now is Ongoing.
func ClassifyStatus(now, start, end time.Time) Status {
	if end.Before(now) {
		return StatusPast
	}
	if start.After(now) {
		return StatusUpcoming
	}
	return StatusOngoing
}

// ParseStatus parses a filter value. Empty input is StatusAll.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StatusAll, true
	case StatusAll, StatusPast, StatusOngoing, StatusUpcoming:
		return st, true
	default:
		return "", false
	}
}
