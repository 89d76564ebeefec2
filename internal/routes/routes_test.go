package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/config"
	"TRIPPLANNER_BACK-END/internal/handlers"
	"TRIPPLANNER_BACK-END/internal/middleware"
)

func TestRoutes(t *testing.T) {
	jwtCfg := &config.JWTConfig{Secret: "routes-secret", AccessTokenTTL: time.Hour}
	mux := http.NewServeMux()
	SetupRoutes(mux, Handlers{
		Auth:      handlers.NewAuthHandler(nil, jwtCfg),
		Health:    handlers.NewHealthHandler(nil),
		Trips:     handlers.NewTripsHandler(nil, nil),
		Events:    handlers.NewEventsHandler(nil, nil),
		Itinerary: handlers.NewItineraryHandler(nil),
		Assistant: handlers.NewAssistantHandler(nil, nil, nil),
		Lookup:    handlers.NewLookupHandler(handlers.LookupDeps{}),
	}, jwtCfg)

	token, err := middleware.GenerateToken(uuid.New(), "a@example.com", jwtCfg)
	if err != nil {
		t.Fatal(err)
	}
	trip := "/api/trips/" + uuid.New().String()

	tests := []struct {
		name   string
		method string
		path   string
		auth   bool
		want   int
	}{
		{"health is public", http.MethodGet, "/healthz", false, http.StatusOK},
		{"trips need a token", http.MethodGet, "/api/trips", false, http.StatusUnauthorized},
		{"trip resources need a token", http.MethodGet, trip + "/itinerary", false, http.StatusUnauthorized},
		{"lookup needs a token", http.MethodGet, "/api/lookup/geocode?address=x", false, http.StatusUnauthorized},
		{"city hotels need a token", http.MethodGet, "/api/lookup/hotels?city_code=LIS", false, http.StatusUnauthorized},
		{"unknown trip resource", http.MethodGet, trip + "/souvenirs", true, http.StatusNotFound},
		{"malformed trip id", http.MethodGet, "/api/trips/123", true, http.StatusBadRequest},
		{"entry id on a non-entry resource", http.MethodGet, trip + "/itinerary/2", true, http.StatusNotFound},
		{"wrong method on entries", http.MethodGet, trip + "/hotels", true, http.StatusMethodNotAllowed},
		{"unknown root path", http.MethodGet, "/nope", false, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
