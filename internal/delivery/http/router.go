package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventboard/docs"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	identityController *controllers.IdentityController,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Identity
	mux.HandleFunc("GET /identity", identityController.GetIdentity)
	mux.HandleFunc("PUT /identity", identityController.SetIdentity)
	mux.HandleFunc("POST /identity/draft", identityController.DraftIdentity)

	// Catalog
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("POST /events/reload", eventController.ReloadEvents)
	mux.HandleFunc("POST /events/more", eventController.LoadMoreEvents)
	mux.HandleFunc("GET /events/calendar.ics", eventController.ExportCalendar)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("POST /uploads/image", eventController.UploadImage)

	// Registrations
	mux.HandleFunc("GET /events/{eventID}/registrations", registrationController.GetState)
	mux.HandleFunc("POST /events/{eventID}/registrations", registrationController.Register)
	mux.HandleFunc("POST /events/{eventID}/registrations/identity", registrationController.SubmitIdentity)
	mux.HandleFunc("DELETE /events/{eventID}/registrations/pending", registrationController.CancelPending)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
