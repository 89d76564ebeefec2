package dto

import (
	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/models"
)

// GeocodeResponse is the result of an address lookup
type GeocodeResponse struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AirportCodeResponse is the airport nearest to a city
type AirportCodeResponse struct {
	City      string  `json:"city"`
	Code      string  `json:"code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PhotosResponse lists photos of a place
type PhotosResponse struct {
	Place  string         `json:"place"`
	Photos []models.Photo `json:"photos"`
}

// PredictionResponse is one autocomplete suggestion
type PredictionResponse struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// AutocompleteResponse lists place suggestions for partial input
type AutocompleteResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

// CityHotelsResponse lists the hotels of a city
type CityHotelsResponse struct {
	CityCode string              `json:"city_code"`
	Hotels   []matcher.Candidate `json:"hotels"`
}
