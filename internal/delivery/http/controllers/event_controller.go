package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventboard/internal/adapters/calendar"
	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// maxUploadBytes caps multipart image uploads.
const maxUploadBytes = 10 << 20

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.StartDate.IsZero() {
		errs = append(errs, "startDate is required")
	}
	if c.EndDate.IsZero() {
		errs = append(errs, "endDate is required")
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		errs = append(errs, "endDate must not be before startDate")
	}
	if c.Capacity < 0 {
		errs = append(errs, "capacity must be zero (unlimited) or positive")
	}
	return errs
}

func (c CreateEventRequest) draft() *domain.EventDraft {
	return &domain.EventDraft{
		Name:        strings.TrimSpace(c.Name),
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Location:    c.Location,
		Image:       c.Image,
		Type:        c.Type,
		Capacity:    c.Capacity,
	}
}

// UploadImageResponse carries the URI of an uploaded image.
type UploadImageResponse struct {
	URI string `json:"uri"`
}

type EventController struct {
	Logger    *slog.Logger
	Catalog   domain.EventCatalog
	Directory domain.EventDirectory
	Identity  domain.IdentityStore
	Now       domain.Clock
}

func NewEventController(
	logger *slog.Logger,
	catalog domain.EventCatalog,
	dir domain.EventDirectory,
	identity domain.IdentityStore,
	now domain.Clock,
) *EventController {
	if now == nil {
		now = time.Now
	}
	return &EventController{
		Logger:    logger,
		Catalog:   catalog,
		Directory: dir,
		Identity:  identity,
		Now:       now,
	}
}

// ListEvents godoc
// @Summary List loaded events
// @Description Returns the loaded catalog filtered by search text, category and status, with per-status counts.
// @Tags events
// @Produce json
// @Param q query string false "Case-insensitive search over name, description and location"
// @Param category query string false "Event type, or all"
// @Param status query string false "upcoming, ongoing, past or all"
// @Success 200 {object} helpers.APIResponse "data is an EventListResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	criteria, err := helpers.ParseFilter(r)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newEventListResponse(c.Catalog.Snapshot(), criteria, c.Now()))
}

// ReloadEvents godoc
// @Summary Reload the catalog
// @Description Replaces the list with the first page for the current identity. Accepts the same filters as GET /events.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an EventListResponse"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /events/reload [post]
func (c *EventController) ReloadEvents(w http.ResponseWriter, r *http.Request) {
	c.load(w, r, c.Catalog.Reload)
}

// LoadMoreEvents godoc
// @Summary Load the next page
// @Description Appends the page after the current one. Does nothing when no further page exists.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an EventListResponse"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /events/more [post]
func (c *EventController) LoadMoreEvents(w http.ResponseWriter, r *http.Request) {
	c.load(w, r, c.Catalog.LoadMore)
}

func (c *EventController) load(w http.ResponseWriter, r *http.Request, fn func(context.Context) error) {
	criteria, err := helpers.ParseFilter(r)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	if err := fn(r.Context()); err != nil {
		// A newer load took over; its state is what the client should see.
		if !errors.Is(err, domain.ErrSuperseded) {
			c.Logger.WarnContext(r.Context(), "catalog load failed", "path", r.URL.Path, "err", err)
			helpers.WriteDomainError(w, err)
			return
		}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newEventListResponse(c.Catalog.Snapshot(), criteria, c.Now()))
}

// GetEvent godoc
// @Summary Get one event
// @Description Fetches the event from the directory for the current identity.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is an EventView"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	ev, err := c.Directory.GetEvent(r.Context(), eventID, c.Identity.Get())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newEventView(ev, c.Now()))
}

// CreateEvent godoc
// @Summary Create an event
// @Description Forwards a new event to the directory, then reloads the catalog.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data is the created EventView"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ev, err := c.Directory.CreateEvent(r.Context(), req.draft())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	if err := c.Catalog.Reload(r.Context()); err != nil && !errors.Is(err, domain.ErrSuperseded) {
		c.Logger.WarnContext(r.Context(), "catalog reload after create failed", "err", err)
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, newEventView(ev, c.Now()))
}

// UploadImage godoc
// @Summary Upload an event image
// @Description Forwards a multipart image to the directory and returns its URI.
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} helpers.APIResponse "data is an UploadImageResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /uploads/image [post]
func (c *EventController) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file is required")
		return
	}
	defer file.Close()

	uri, err := c.Directory.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, UploadImageResponse{URI: uri})
}

// ExportCalendar godoc
// @Summary Export registered events
// @Description Returns the loaded events the current identity is registered for as an iCalendar feed.
// @Tags events
// @Produce text/calendar
// @Success 200 {string} string "iCalendar document"
// @Router /events/calendar.ics [get]
func (c *EventController) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	body := calendar.RegisteredEvents(c.Catalog.Snapshot().Events, c.Now())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
