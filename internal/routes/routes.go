package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TRIPPLANNER_BACK-END/internal/config"
	"TRIPPLANNER_BACK-END/internal/handlers"
	"TRIPPLANNER_BACK-END/internal/middleware"
	"TRIPPLANNER_BACK-END/internal/utils"
)

// Handlers groups every HTTP handler mounted by SetupRoutes
type Handlers struct {
	Auth      *handlers.AuthHandler
	Health    *handlers.HealthHandler
	Trips     *handlers.TripsHandler
	Events    *handlers.EventsHandler
	Itinerary *handlers.ItineraryHandler
	Assistant *handlers.AssistantHandler
	Lookup    *handlers.LookupHandler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, h Handlers, jwtCfg *config.JWTConfig) {
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, jwtCfg)
	}

	// Health check routes
	mux.HandleFunc("/healthz", h.Health.HealthCheck)
	mux.HandleFunc("/livez", h.Health.LivenessCheck)
	mux.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Authentication routes
	mux.HandleFunc("/api/auth/register", h.Auth.Register)
	mux.HandleFunc("/api/auth/login", h.Auth.Login)
	mux.HandleFunc("/api/auth/profile", auth(h.Auth.GetProfile))

	// Trip routes
	mux.HandleFunc("/api/trips", auth(h.Trips.Trips))
	mux.HandleFunc("/api/trips/", auth(tripResource(h)))

	// Lookup routes
	mux.HandleFunc("/api/lookup/geocode", auth(h.Lookup.Geocode))
	mux.HandleFunc("/api/lookup/airport-code", auth(h.Lookup.AirportCode))
	mux.HandleFunc("/api/lookup/photos", auth(h.Lookup.Photos))
	mux.HandleFunc("/api/lookup/autocomplete", auth(h.Lookup.Autocomplete))
	mux.HandleFunc("/api/lookup/hotels", auth(h.Lookup.HotelsByCity))

	// Root route
	mux.HandleFunc("/", rootHandler)
}

// tripResource routes /api/trips/{trip_id}/... to the handler owning the
// second path segment
func tripResource(h Handlers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tp, err := handlers.ParseTripPath(r.URL.Path)
		if err != nil {
			utils.WriteAppError(w, err)
			return
		}
		if tp.Kind != "" {
			h.Events.Events(w, r)
			return
		}
		switch tp.Resource {
		case "":
			h.Trips.Trip(w, r)
		case "itinerary":
			h.Itinerary.Itinerary(w, r)
		case "calendar.ics":
			h.Itinerary.Calendar(w, r)
		case "assistant":
			h.Assistant.Assistant(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "unknown trip resource")
		}
	}
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Write([]byte("Trip planner backend is running."))
}
