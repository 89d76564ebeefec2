package models

import "time"

// FlightQuery describes a flight offer search
type FlightQuery struct {
	Origin               string
	Destination          string
	DepartureDate        time.Time
	ReturnDate           *time.Time
	Adults               int
	TravelClass          TravelClass
	NonStop              bool
	Currency             string
	MaxPrice             *int
	IncludedAirlineCodes []string
	ExcludedAirlineCodes []string
}

// HotelOfferQuery describes a hotel offer search for known hotel ids
type HotelOfferQuery struct {
	HotelIDs []string
	Adults   int
	CheckIn  time.Time
	CheckOut time.Time
}
