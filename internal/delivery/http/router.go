package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventup/internal/delivery/http/controllers"
	"eventup/internal/delivery/http/middleware"
	"eventup/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Reads require a valid token; mutations are additionally throttled per user.
func NewRouter(
	eventController *controllers.EventController,
	attendeeController *controllers.AttendeeController,
	authController *controllers.AuthController,
	authService domain.AuthService,
	limiter *middleware.RateLimiter,
) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(authService)
	throttled := func(h http.HandlerFunc) http.HandlerFunc {
		return authed(limiter.Throttle(h))
	}

	// Events. Reads are public; mutations require auth.
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", throttled(eventController.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PATCH /events/{eventID}", throttled(eventController.UpdateEvent))
	mux.HandleFunc("PUT /events/{eventID}", throttled(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", throttled(eventController.DeleteEvent))

	// Attendees
	mux.HandleFunc("GET /events/{eventID}/attendees", attendeeController.ListAttendees)
	mux.HandleFunc("POST /events/{eventID}/attendees", throttled(attendeeController.Register))
	mux.HandleFunc("GET /events/{eventID}/attendees/{attendeeID}", attendeeController.GetAttendee)
	mux.HandleFunc("DELETE /events/{eventID}/attendees/{attendeeID}", throttled(attendeeController.Remove))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("POST /auth/logout", authed(authController.Logout))

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
