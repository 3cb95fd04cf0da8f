package controllers

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// IdentityDrafter buffers identity edits before they reach the store.
type IdentityDrafter interface {
	Edit(token string)
	Pending() (string, bool)
	Stop()
}

type IdentityController struct {
	Logger  *slog.Logger
	Store   domain.IdentityStore
	Drafter IdentityDrafter
}

func NewIdentityController(logger *slog.Logger, store domain.IdentityStore, drafter IdentityDrafter) *IdentityController {
	return &IdentityController{
		Logger:  logger,
		Store:   store,
		Drafter: drafter,
	}
}

// GetIdentity godoc
// @Summary Get the current identity
// @Description Returns the committed student identity and the draft still inside the debounce window, if any.
// @Tags identity
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an IdentityResponse"
// @Router /identity [get]
func (c *IdentityController) GetIdentity(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.current())
}

// SetIdentity godoc
// @Summary Set the identity
// @Description Commits the identity immediately, discarding any pending draft. An empty mssvId clears it. The catalog reloads for the new identity.
// @Tags identity
// @Accept json
// @Produce json
// @Param body body IdentityRequest true "Identity"
// @Success 200 {object} helpers.APIResponse "data is an IdentityResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /identity [put]
func (c *IdentityController) SetIdentity(w http.ResponseWriter, r *http.Request) {
	var req IdentityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	c.Drafter.Stop()
	if req.Identity != c.Store.Get() {
		c.Store.Set(req.Identity)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.current())
}

// DraftIdentity godoc
// @Summary Edit the identity draft
// @Description Records a keystroke-level edit. Only the last draft is committed, once input has been quiet for the debounce delay.
// @Tags identity
// @Accept json
// @Produce json
// @Param body body IdentityRequest true "Draft identity"
// @Success 202 {object} helpers.APIResponse "data is an IdentityResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /identity/draft [post]
func (c *IdentityController) DraftIdentity(w http.ResponseWriter, r *http.Request) {
	var req IdentityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	c.Drafter.Edit(req.Identity)
	helpers.WriteJSONSuccess(w, http.StatusAccepted, c.current())
}

func (c *IdentityController) current() IdentityResponse {
	draft, pending := c.Drafter.Pending()
	resp := IdentityResponse{Identity: c.Store.Get(), Pending: pending}
	if pending {
		resp.Draft = draft
	}
	return resp
}
