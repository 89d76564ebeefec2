package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a day-indexed travel plan created by a user
type Trip struct {
	ID           uuid.UUID `json:"trip_id" db:"id"`
	CreatorID    uuid.UUID `json:"creator_id" db:"creator_id"`
	Name         string    `json:"trip_name" db:"trip_name"`
	LengthInDays int       `json:"length_in_days" db:"length_in_days"`
	StartDate    time.Time `json:"start_date" db:"start_date"`
	Adults       int       `json:"adults" db:"adults"`
	IsPublished  bool      `json:"is_published" db:"is_published"`
	PhotoURL     *string   `json:"photo_url,omitempty" db:"photo_url"`
	Description  *string   `json:"description,omitempty" db:"description"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	Hotels     []HotelEntry    `json:"hotels"`
	Flights    []FlightEntry   `json:"flights"`
	Activities []ActivityEntry `json:"activities"`
}

// InRange reports whether day lies within [0, LengthInDays)
func (t Trip) InRange(day int) bool {
	return day >= 0 && day < t.LengthInDays
}
