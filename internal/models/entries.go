package models

import "github.com/google/uuid"

// Coordinates is a WGS84 point
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Photo is a place photo reference
type Photo struct {
	URL         string `json:"photo_url"`
	Attribution string `json:"html_attributions,omitempty"`
}

// Place is a place search hit
type Place struct {
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	PlaceID string  `json:"place_id,omitempty"`
	Photos  []Photo `json:"photos,omitempty"`
	Coordinates
}

// SearchDescriptor defers hotel selection until inventory is searched
type SearchDescriptor struct {
	SearchLatitude    *float64   `json:"search_latitude,omitempty" db:"search_latitude"`
	SearchLongitude   *float64   `json:"search_longitude,omitempty" db:"search_longitude"`
	SearchRadius      *float64   `json:"search_radius,omitempty" db:"search_radius"`
	SearchRadiusUnit  RadiusUnit `json:"search_radius_unit,omitempty" db:"search_radius_unit"`
	AllowedChainCodes []string   `json:"allowed_chain_codes,omitempty" db:"allowed_chain_codes"`
	AllowedRatings    []int      `json:"allowed_ratings,omitempty" db:"allowed_ratings"`
	RequiredAmenities []Amenity  `json:"required_amenities,omitempty" db:"required_amenities"`
	Priority          Priority   `json:"priority,omitempty" db:"priority"`
}

// Complete reports whether the descriptor has coordinates and a radius
func (d SearchDescriptor) Complete() bool {
	return d.SearchLatitude != nil && d.SearchLongitude != nil &&
		d.SearchRadius != nil && *d.SearchRadius > 0
}

// HotelEntry is a stay attached to a trip by relative days
type HotelEntry struct {
	ID                  int64     `json:"hotel_entry_id" db:"id"`
	TripID              uuid.UUID `json:"trip_id" db:"trip_id"`
	CreatorID           uuid.UUID `json:"creator_id" db:"creator_id"`
	RelativeCheckInDay  int       `json:"relative_check_in_day" db:"relative_check_in_day"`
	RelativeCheckOutDay int       `json:"relative_check_out_day" db:"relative_check_out_day"`
	AmadeusHotelID      *string   `json:"amadeus_hotel_id,omitempty" db:"amadeus_hotel_id"`
	IdealHotelName      *string   `json:"ideal_hotel_name,omitempty" db:"ideal_hotel_name"`
	HotelName           *string   `json:"hotel_name,omitempty" db:"hotel_name"`
	Address             *string   `json:"address,omitempty" db:"address"`
	PhotoURL            *string   `json:"photo_url,omitempty" db:"photo_url"`
	HotelLatitude       *float64  `json:"hotel_latitude,omitempty" db:"hotel_latitude"`
	HotelLongitude      *float64  `json:"hotel_longitude,omitempty" db:"hotel_longitude"`
	PriceTotal          *float64  `json:"price_total,omitempty" db:"price_total"`
	Currency            *string   `json:"currency,omitempty" db:"currency"`
	SearchDescriptor
}

// Resolved reports whether a concrete hotel has been selected
func (h HotelEntry) Resolved() bool {
	return h.AmadeusHotelID != nil && *h.AmadeusHotelID != ""
}

// FlightEntry is a flight search attached to a trip
type FlightEntry struct {
	ID                   int64       `json:"flight_entry_id" db:"id"`
	TripID               uuid.UUID   `json:"trip_id" db:"trip_id"`
	CreatorID            uuid.UUID   `json:"creator_id" db:"creator_id"`
	DepartureCityCode    string      `json:"departure_city_code" db:"departure_city_code"`
	DestinationCityCode  string      `json:"destination_city_code" db:"destination_city_code"`
	RelativeDepartureDay int         `json:"relative_departure_day" db:"relative_departure_day"`
	RelativeReturnDay    *int        `json:"relative_return_day,omitempty" db:"relative_return_day"`
	TravelClass          TravelClass `json:"travel_class" db:"travel_class"`
	NonStop              bool        `json:"non_stop" db:"non_stop"`
	Currency             string      `json:"currency" db:"currency"`
	MaxPrice             *int        `json:"max_price,omitempty" db:"max_price"`
	IncludedAirlineCodes []string    `json:"included_airline_codes,omitempty" db:"included_airline_codes"`
	ExcludedAirlineCodes []string    `json:"excluded_airline_codes,omitempty" db:"excluded_airline_codes"`
	OfferPrice           *float64    `json:"offer_price,omitempty" db:"offer_price"`
	CarrierCode          *string     `json:"carrier_code,omitempty" db:"carrier_code"`
}

// ActivityEntry is a free-form plan item on one trip day
type ActivityEntry struct {
	ID          int64     `json:"activity_entry_id" db:"id"`
	TripID      uuid.UUID `json:"trip_id" db:"trip_id"`
	CreatorID   uuid.UUID `json:"creator_id" db:"creator_id"`
	Name        string    `json:"name" db:"name"`
	RelativeDay int       `json:"relative_day" db:"relative_day"`
	PriceUSD    float64   `json:"price_usd" db:"price_usd"`
	Address     *string   `json:"address,omitempty" db:"address"`
	Description *string   `json:"description,omitempty" db:"description"`
	Latitude    *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64  `json:"longitude,omitempty" db:"longitude"`
}

// DayHotelSearch is one item of an assistant itinerary proposal
type DayHotelSearch struct {
	RelativeDays []int `json:"relative_days"`
	Adults       int   `json:"adults"`
	SearchDescriptor
}
