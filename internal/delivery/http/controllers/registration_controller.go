package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// SubmitIdentityRequest is the request body for POST /events/{eventID}/registrations/identity.
type SubmitIdentityRequest struct {
	Identity string `json:"mssvId"`
}

// Validate implements Validator.
func (s SubmitIdentityRequest) Validate() []string {
	if strings.TrimSpace(s.Identity) == "" {
		return []string{"mssvId is required"}
	}
	return nil
}

// registrationTimeout bounds a register call and its confirmation read once
// they no longer follow the request.
const registrationTimeout = 30 * time.Second

type RegistrationController struct {
	Logger      *slog.Logger
	Coordinator domain.RegistrationCoordinator
}

func NewRegistrationController(logger *slog.Logger, coordinator domain.RegistrationCoordinator) *RegistrationController {
	return &RegistrationController{
		Logger:      logger,
		Coordinator: coordinator,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Registers the current identity. Without an identity the registration waits for one (202, phase awaiting_identity). Repeating the call while a registration is in flight or done makes no further request. An event the identity is already registered for ends as registered.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is a RegistrationState in phase registered"
// @Success 202 {object} helpers.APIResponse "data is a RegistrationState in phase awaiting_identity or registering"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	ctx, cancel := registrationContext(r)
	defer cancel()
	st, err := c.Coordinator.Register(ctx, eventID)
	c.writeState(w, r, st, err)
}

// SubmitIdentity godoc
// @Summary Supply the identity for a waiting registration
// @Description Stores the identity as the session identity and continues the registration that was waiting for it.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body SubmitIdentityRequest true "Identity"
// @Success 200 {object} helpers.APIResponse "data is a RegistrationState"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (no registration waiting)"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /events/{eventID}/registrations/identity [post]
func (c *RegistrationController) SubmitIdentity(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req SubmitIdentityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ctx, cancel := registrationContext(r)
	defer cancel()
	st, err := c.Coordinator.SubmitIdentity(ctx, eventID, strings.TrimSpace(req.Identity))
	c.writeState(w, r, st, err)
}

// CancelPending godoc
// @Summary Abandon a waiting registration
// @Description Drops a registration waiting for an identity. Nothing is sent to the directory.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is a RegistrationState"
// @Router /events/{eventID}/registrations/pending [delete]
func (c *RegistrationController) CancelPending(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Coordinator.Cancel(r.PathValue("eventID")))
}

// GetState godoc
// @Summary Get the registration state
// @Description Returns the registration state of the event for the current identity.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is a RegistrationState"
// @Router /events/{eventID}/registrations [get]
func (c *RegistrationController) GetState(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Coordinator.State(r.PathValue("eventID")))
}

// registrationContext keeps the request's values but not its cancellation, so a
// client that disconnects does not abort a registration the directory may
// already have accepted.
func registrationContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), registrationTimeout)
}

func (c *RegistrationController) writeState(w http.ResponseWriter, r *http.Request, st domain.RegistrationState, err error) {
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, domain.ErrInvalidTransition) {
			c.Logger.WarnContext(r.Context(), "registration failed", "event_id", st.EventID, "err", err)
		}
		helpers.WriteDomainError(w, err)
		return
	}
	status := http.StatusOK
	if st.Phase == domain.PhaseAwaitingIdentity || st.Phase == domain.PhaseRegistering {
		status = http.StatusAccepted
	}
	helpers.WriteJSONSuccess(w, status, st)
}
