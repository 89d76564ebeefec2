package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/dto"
	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/providers/googlemaps"
	"TRIPPLANNER_BACK-END/internal/resolver"
	"TRIPPLANNER_BACK-END/internal/utils"
)

const maxPhotos = 10

// Autocompleter suggests places for partial input
type Autocompleter interface {
	Autocomplete(ctx context.Context, input string) ([]googlemaps.Prediction, error)
}

// CityHotelLister lists the hotels of a city by IATA code
type CityHotelLister interface {
	HotelsByCity(ctx context.Context, cityCode string) ([]matcher.Candidate, error)
}

// LookupDeps bundles the place collaborators behind /api/lookup
type LookupDeps struct {
	Geocoder     resolver.Geocoder
	Places       resolver.PlaceSearcher
	Airports     resolver.AirportResolver
	Photos       resolver.PhotoFinder
	Autocomplete Autocompleter
	CityHotels   CityHotelLister
}

// LookupHandler exposes the place helpers used while editing a trip
type LookupHandler struct {
	deps LookupDeps
}

// NewLookupHandler creates a new LookupHandler
func NewLookupHandler(deps LookupDeps) *LookupHandler {
	return &LookupHandler{deps: deps}
}

func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing query parameter", name+" is required")
		return "", false
	}
	return v, true
}

// Geocode handles GET /api/lookup/geocode
// @Summary Address to coordinates
// @Tags lookup
// @Produce json
// @Security BearerAuth
// @Param address query string true "Free-text address"
// @Success 200 {object} dto.GeocodeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/lookup/geocode [get]
func (h *LookupHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	address, ok := requiredQuery(w, r, "address")
	if !ok {
		return
	}
	at, err := h.deps.Geocoder.Geocode(r.Context(), address)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GeocodeResponse{Address: address, Latitude: at.Latitude, Longitude: at.Longitude})
}

// AirportCode handles GET /api/lookup/airport-code
// @Summary City name to nearest airport code
// @Tags lookup
// @Produce json
// @Security BearerAuth
// @Param city query string true "City name"
// @Success 200 {object} dto.AirportCodeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/lookup/airport-code [get]
func (h *LookupHandler) AirportCode(w http.ResponseWriter, r *http.Request) {
	city, ok := requiredQuery(w, r, "city")
	if !ok {
		return
	}
	place, err := h.deps.Places.SearchPlace(r.Context(), "airport in "+city)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	code, err := h.deps.Airports.AirportCode(r.Context(), place.Coordinates)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.AirportCodeResponse{
		City:      city,
		Code:      code,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
	})
}

// Photos handles GET /api/lookup/photos
// @Summary Photos of a place
// @Tags lookup
// @Produce json
// @Security BearerAuth
// @Param place query string true "Place name"
// @Param max query int false "Number of photos (1-10, default 1)"
// @Success 200 {object} dto.PhotosResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/lookup/photos [get]
func (h *LookupHandler) Photos(w http.ResponseWriter, r *http.Request) {
	place, ok := requiredQuery(w, r, "place")
	if !ok {
		return
	}
	limit := 1
	if raw := r.URL.Query().Get("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPhotos {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid query parameter", "max must be between 1 and 10")
			return
		}
		limit = n
	}
	if h.deps.Photos == nil {
		utils.WriteAppError(w, apperror.New(apperror.KindUpstreamUnavailable, "photo lookup is not configured"))
		return
	}
	photos, err := h.deps.Photos.Photos(r.Context(), place, limit)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.PhotosResponse{Place: place, Photos: photos})
}

// Autocomplete handles GET /api/lookup/autocomplete
// @Summary Place suggestions for partial input
// @Tags lookup
// @Produce json
// @Security BearerAuth
// @Param input query string true "Partial place name"
// @Success 200 {object} dto.AutocompleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/lookup/autocomplete [get]
func (h *LookupHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	input, ok := requiredQuery(w, r, "input")
	if !ok {
		return
	}
	predictions, err := h.deps.Autocomplete.Autocomplete(r.Context(), input)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	resp := dto.AutocompleteResponse{Predictions: make([]dto.PredictionResponse, 0, len(predictions))}
	for _, p := range predictions {
		resp.Predictions = append(resp.Predictions, dto.PredictionResponse{Description: p.Description, PlaceID: p.PlaceID})
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// HotelsByCity handles GET /api/lookup/hotels
// @Summary Hotels listed for a city
// @Tags lookup
// @Produce json
// @Security BearerAuth
// @Param city_code query string true "IATA city code"
// @Success 200 {object} dto.CityHotelsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/lookup/hotels [get]
func (h *LookupHandler) HotelsByCity(w http.ResponseWriter, r *http.Request) {
	code, ok := requiredQuery(w, r, "city_code")
	if !ok {
		return
	}
	if h.deps.CityHotels == nil {
		utils.WriteAppError(w, apperror.New(apperror.KindUpstreamUnavailable, "hotel inventory is not configured"))
		return
	}
	hotels, err := h.deps.CityHotels.HotelsByCity(r.Context(), code)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.CityHotelsResponse{CityCode: strings.ToUpper(code), Hotels: hotels})
}
