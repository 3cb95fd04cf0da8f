package calendar

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"eventboard/internal/domain"
)

const productID = "-//eventboard//registered events//EN"

// RegisteredEvents renders the registered events as an iCalendar feed.
// Events without a start date are skipped. now is used as DTSTAMP.
func RegisteredEvents(events []*domain.Event, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName("Registered events")

	for _, ev := range events {
		if ev == nil || !ev.IsRegistered() || ev.StartDate.IsZero() {
			continue
		}
		vev := cal.AddEvent(ev.ID + "@eventboard")
		vev.SetDtStampTime(now.UTC())
		vev.SetStartAt(ev.StartDate.UTC())
		end := ev.EndDate
		if end.Before(ev.StartDate) {
			end = ev.StartDate
		}
		vev.SetEndAt(end.UTC())
		vev.SetSummary(ev.Name)
		if ev.Description != "" {
			vev.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			vev.SetLocation(ev.Location)
		}
		if ev.Type != "" {
			vev.AddProperty(ical.ComponentPropertyCategories, ev.Type)
		}
	}
	return cal.Serialize()
}
