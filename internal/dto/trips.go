package dto

import "TRIPPLANNER_BACK-END/internal/models"

// CreateTripRequest represents the payload to create a trip
type CreateTripRequest struct {
	Name         string  `json:"trip_name" validate:"required,max=200"`
	StartDate    string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	LengthInDays int     `json:"length_in_days" validate:"required,min=1,max=365"`
	Adults       int     `json:"adults" validate:"omitempty,min=1,max=20"`
	IsPublished  bool    `json:"is_published"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	PhotoURL     *string `json:"photo_url,omitempty" validate:"omitempty,url"`
	// Destination is only used to look up a cover photo when photo_url is empty
	Destination *string `json:"destination,omitempty"`
}

// UpdateTripRequest represents fields allowed to update a trip.
// All fields are optional; only provided ones will be updated.
type UpdateTripRequest struct {
	Name         *string `json:"trip_name,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate    *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LengthInDays *int    `json:"length_in_days,omitempty" validate:"omitempty,min=1,max=365"`
	Adults       *int    `json:"adults,omitempty" validate:"omitempty,min=1,max=20"`
	IsPublished  *bool   `json:"is_published,omitempty"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	PhotoURL     *string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// TripResponse represents a trip object in responses
type TripResponse struct {
	ID           string  `json:"trip_id"`
	Name         string  `json:"trip_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	LengthInDays int     `json:"length_in_days"`
	Adults       int     `json:"adults"`
	IsPublished  bool    `json:"is_published"`
	PhotoURL     *string `json:"photo_url,omitempty"`
	Description  *string `json:"description,omitempty"`
	CreatorID    string  `json:"creator_id"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// TripDetailResponse is a trip with all of its entries
type TripDetailResponse struct {
	Trip       TripResponse           `json:"trip"`
	Hotels     []models.HotelEntry    `json:"hotels"`
	Flights    []models.FlightEntry   `json:"flights"`
	Activities []models.ActivityEntry `json:"activities"`
}

// TripListResponse envelope
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int            `json:"total"`
}
