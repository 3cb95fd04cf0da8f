package directory

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"eventboard/internal/domain"
)

// flexibleID accepts the event id as a JSON string or number.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = flexibleID(n.String())
	return nil
}

// zonelessLayouts are tried in order for instants without an offset.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// flexibleTime accepts RFC 3339, zone-less date-times, bare dates and epoch
// milliseconds. Anything else decodes as the zero time. Zone-less values keep
// their wall clock and are placed in a location by in.
type flexibleTime struct {
	t        time.Time
	zoneless bool
}

func (t *flexibleTime) UnmarshalJSON(b []byte) error {
	*t = flexibleTime{}
	if bytes.Equal(b, []byte("null")) || len(b) == 0 {
		return nil
	}
	if b[0] != '"' {
		if ms, err := strconv.ParseInt(string(b), 10, 64); err == nil {
			t.t = time.UnixMilli(ms).UTC()
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	t.t, t.zoneless = parseInstant(s)
	return nil
}

// in returns the instant, reading a zone-less wall clock in loc.
func (t flexibleTime) in(loc *time.Location) time.Time {
	if !t.zoneless || t.t.IsZero() {
		return t.t
	}
	y, mo, d := t.t.Date()
	h, mi, sec := t.t.Clock()
	return time.Date(y, mo, d, h, mi, sec, t.t.Nanosecond(), loc)
}

func parseInstant(s string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, false
	}
	for _, layout := range zonelessLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// eventDTO is the wire shape of an event. numberOfMssv and applicationStatus
// are older names of the registrant count and registration flag.
type eventDTO struct {
	ID                  flexibleID   `json:"id"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	StartDate           flexibleTime `json:"startDate"`
	EndDate             flexibleTime `json:"endDate"`
	Location            string       `json:"location"`
	Image               string       `json:"image"`
	Type                string       `json:"type"`
	NumberOfRegistrants *int         `json:"numberOfRegistrants"`
	NumberOfMssv        *int         `json:"numberOfMssv"`
	Capacity            *int         `json:"capacity"`
	RegistrationStatus  *bool        `json:"registrationStatus"`
	ApplicationStatus   *bool        `json:"applicationStatus"`
}

// toDomain maps the record, reading zone-less instants in loc.
func (d *eventDTO) toDomain(loc *time.Location) *domain.Event {
	ev := &domain.Event{
		ID:                  string(d.ID),
		Name:                d.Name,
		Description:         d.Description,
		StartDate:           d.StartDate.in(loc),
		EndDate:             d.EndDate.in(loc),
		Location:            d.Location,
		Image:               d.Image,
		Type:                d.Type,
		NumberOfRegistrants: d.NumberOfRegistrants,
		RegistrationStatus:  d.RegistrationStatus,
	}
	if ev.NumberOfRegistrants == nil {
		ev.NumberOfRegistrants = d.NumberOfMssv
	}
	if ev.RegistrationStatus == nil {
		ev.RegistrationStatus = d.ApplicationStatus
	}
	if d.Capacity != nil {
		ev.Capacity = *d.Capacity
	}
	return ev
}

type listResponse struct {
	Content []eventDTO `json:"content"`
}

type applicationRequest struct {
	MssvID  string `json:"mssvId"`
	EventID string `json:"eventId"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// unwrapData returns the value under "data" when body is an envelope that does
// not itself carry marker, otherwise body unchanged.
func unwrapData(body []byte, marker string) []byte {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return body
	}
	if _, ok := obj[marker]; ok {
		return body
	}
	if inner, ok := obj["data"]; ok && len(inner) > 0 && !bytes.Equal(inner, []byte("null")) {
		return inner
	}
	return body
}
