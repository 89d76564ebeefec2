package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/dto"
	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/models"
	"TRIPPLANNER_BACK-END/internal/providers/googlemaps"
)

type fakePlaces struct {
	query string
}

func (f *fakePlaces) Geocode(ctx context.Context, address string) (models.Coordinates, error) {
	if address == "nowhere" {
		return models.Coordinates{}, apperror.New(apperror.KindGeocodeNotFound, "no results")
	}
	return models.Coordinates{Latitude: 38.71, Longitude: -9.14}, nil
}

func (f *fakePlaces) SearchPlace(ctx context.Context, query string) (models.Place, error) {
	f.query = query
	return models.Place{Name: "Humberto Delgado Airport", Coordinates: models.Coordinates{Latitude: 38.77, Longitude: -9.13}}, nil
}

func (f *fakePlaces) Autocomplete(ctx context.Context, input string) ([]googlemaps.Prediction, error) {
	return []googlemaps.Prediction{{Description: "Lisbon, Portugal", PlaceID: "ChIJO_PkYRozGQ0R0DaQ5L3rAAQ"}}, nil
}

type fakeCityHotels struct{}

func (fakeCityHotels) HotelsByCity(ctx context.Context, cityCode string) ([]matcher.Candidate, error) {
	if cityCode != "lis" {
		return nil, apperror.New(apperror.KindNoCandidates, "no hotels listed")
	}
	return []matcher.Candidate{{ID: "YXLISABC", Name: "PESTANA PALACE"}}, nil
}

type fakeAirports struct {
	at models.Coordinates
}

func (f *fakeAirports) AirportCode(ctx context.Context, at models.Coordinates) (string, error) {
	f.at = at
	return "LIS", nil
}

func newLookup() (*LookupHandler, *fakePlaces, *fakeAirports) {
	places, airports := &fakePlaces{}, &fakeAirports{}
	return NewLookupHandler(LookupDeps{
		Geocoder:     places,
		Places:       places,
		Airports:     airports,
		Photos:       &fakePhotos{},
		Autocomplete: places,
		CityHotels:   fakeCityHotels{},
	}), places, airports
}

func TestLookupAirportCode(t *testing.T) {
	h, places, airports := newLookup()
	rec := httptest.NewRecorder()
	h.AirportCode(rec, request(http.MethodGet, "/api/lookup/airport-code?city=Lisbon", "", uuid.New()))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	got := decode[dto.AirportCodeResponse](t, rec)
	if got.Code != "LIS" || got.City != "Lisbon" {
		t.Errorf("response = %+v", got)
	}
	if places.query != "airport in Lisbon" || airports.at.Latitude != 38.77 {
		t.Errorf("query %q at %+v", places.query, airports.at)
	}
}

func TestLookupValidation(t *testing.T) {
	h, _, _ := newLookup()
	user := uuid.New()
	tests := []struct {
		name    string
		handler http.HandlerFunc
		url     string
		want    int
	}{
		{"geocode ok", h.Geocode, "/api/lookup/geocode?address=Rua+Augusta", http.StatusOK},
		{"geocode missing", h.Geocode, "/api/lookup/geocode", http.StatusBadRequest},
		{"geocode not found", h.Geocode, "/api/lookup/geocode?address=nowhere", http.StatusUnprocessableEntity},
		{"photos default", h.Photos, "/api/lookup/photos?place=Lisbon", http.StatusOK},
		{"photos too many", h.Photos, "/api/lookup/photos?place=Lisbon&max=11", http.StatusBadRequest},
		{"photos not a number", h.Photos, "/api/lookup/photos?place=Lisbon&max=x", http.StatusBadRequest},
		{"autocomplete ok", h.Autocomplete, "/api/lookup/autocomplete?input=Lis", http.StatusOK},
		{"autocomplete blank", h.Autocomplete, "/api/lookup/autocomplete?input=+", http.StatusBadRequest},
		{"city hotels ok", h.HotelsByCity, "/api/lookup/hotels?city_code=lis", http.StatusOK},
		{"city hotels missing", h.HotelsByCity, "/api/lookup/hotels", http.StatusBadRequest},
		{"city hotels none", h.HotelsByCity, "/api/lookup/hotels?city_code=opo", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, request(http.MethodGet, tt.url, "", user))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}

	rec := httptest.NewRecorder()
	h.Photos(rec, request(http.MethodGet, "/api/lookup/photos?place=Lisbon&max=3", "", user))
	if got := decode[dto.PhotosResponse](t, rec); len(got.Photos) != 3 {
		t.Errorf("photos = %d, want 3", len(got.Photos))
	}
	rec = httptest.NewRecorder()
	h.HotelsByCity(rec, request(http.MethodGet, "/api/lookup/hotels?city_code=lis", "", user))
	if got := decode[dto.CityHotelsResponse](t, rec); got.CityCode != "LIS" || len(got.Hotels) != 1 || got.Hotels[0].ID != "YXLISABC" {
		t.Errorf("city hotels = %+v", got)
	}
	rec = httptest.NewRecorder()
	h.Geocode(rec, request(http.MethodPost, "/api/lookup/geocode?address=x", "", user))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}
