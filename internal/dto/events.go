package dto

import "TRIPPLANNER_BACK-END/internal/models"

// HotelRequest adds or replaces a hotel stay. One of amadeus_hotel_id,
// address, city_name or search coordinates with a radius is required.
type HotelRequest struct {
	RelativeCheckInDay  int    `json:"relative_check_in_day" validate:"min=0"`
	RelativeCheckOutDay int    `json:"relative_check_out_day" validate:"min=0"`
	AmadeusHotelID      string `json:"amadeus_hotel_id,omitempty" validate:"omitempty,max=16"`
	Address             string `json:"address,omitempty" validate:"omitempty,max=500"`
	CityName            string `json:"city_name,omitempty" validate:"omitempty,max=200"`
	IdealHotelName      string `json:"ideal_hotel_name,omitempty" validate:"omitempty,max=200"`
	Adults              int    `json:"adults,omitempty" validate:"omitempty,min=1,max=9"`
	Defer               bool   `json:"defer,omitempty"`

	SearchLatitude    *float64 `json:"search_latitude,omitempty" validate:"omitempty,latitude"`
	SearchLongitude   *float64 `json:"search_longitude,omitempty" validate:"omitempty,longitude"`
	SearchRadius      *float64 `json:"search_radius,omitempty" validate:"omitempty,gt=0,lte=300"`
	SearchRadiusUnit  string   `json:"search_radius_unit,omitempty" validate:"omitempty,radius_unit"`
	AllowedChainCodes []string `json:"allowed_chain_codes,omitempty" validate:"omitempty,max=99,dive,len=2"`
	AllowedRatings    []int    `json:"allowed_ratings,omitempty" validate:"omitempty,max=4,dive,min=1,max=5"`
	RequiredAmenities []string `json:"required_amenities,omitempty" validate:"omitempty,dive,amenity"`
	Priority          string   `json:"priority,omitempty" validate:"omitempty,priority"`
}

// FlightRequest adds or replaces a flight. Each side needs a city code or a city name.
type FlightRequest struct {
	DepartureCityCode    string   `json:"departure_city_code,omitempty" validate:"omitempty,iata"`
	DestinationCityCode  string   `json:"destination_city_code,omitempty" validate:"omitempty,iata"`
	DepartureCity        string   `json:"departure_city,omitempty" validate:"omitempty,max=200"`
	DestinationCity      string   `json:"destination_city,omitempty" validate:"omitempty,max=200"`
	RelativeDepartureDay int      `json:"relative_departure_day" validate:"min=0"`
	RelativeReturnDay    *int     `json:"relative_return_day,omitempty" validate:"omitempty,min=0"`
	TravelClass          string   `json:"travel_class,omitempty" validate:"omitempty,travel_class"`
	NonStop              bool     `json:"non_stop,omitempty"`
	Currency             string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	MaxPrice             *int     `json:"max_price,omitempty" validate:"omitempty,gt=0"`
	IncludedAirlineCodes []string `json:"included_airline_codes,omitempty" validate:"omitempty,dive,len=2"`
	ExcludedAirlineCodes []string `json:"excluded_airline_codes,omitempty" validate:"omitempty,dive,len=2"`
	SearchOffers         bool     `json:"search_offers,omitempty"`
}

// ActivityRequest adds or replaces an activity
type ActivityRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	RelativeDay int      `json:"relative_day" validate:"min=0"`
	PriceUSD    float64  `json:"price_usd" validate:"min=0"`
	Address     string   `json:"address,omitempty" validate:"omitempty,max=500"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// TransitionResponse is one step of an operation's state history
type TransitionResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	At   string `json:"at"`
}

// OperationResponse describes how an add or edit progressed
type OperationResponse struct {
	Kind      string               `json:"kind"`
	State     string               `json:"state"`
	History   []TransitionResponse `json:"history"`
	ErrorKind string               `json:"error_kind,omitempty"`
}

// EventResponse is the committed entry together with its operation record
type EventResponse struct {
	Event     models.Event      `json:"event"`
	Date      string            `json:"date"`
	Operation OperationResponse `json:"operation"`
}

