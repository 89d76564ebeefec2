package dto

import "TRIPPLANNER_BACK-END/internal/models"

// DayResponse lists the events starting on one trip day
type DayResponse struct {
	RelativeDay int            `json:"relative_day"`
	Date        string         `json:"date"`
	Events      []models.Event `json:"events"`
}

// ItineraryResponse is the day-grouped view of a trip
type ItineraryResponse struct {
	TripID       string        `json:"trip_id"`
	TripName     string        `json:"trip_name"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	LengthInDays int           `json:"length_in_days"`
	Days         []DayResponse `json:"days"`
}
