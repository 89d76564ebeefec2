package dto

import "TRIPPLANNER_BACK-END/internal/models"

// AssistantRequest is a free-text itinerary request. With apply the
// proposal is resolved and committed.
type AssistantRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
	Apply   bool   `json:"apply"`
}

// AssistantFailure reports a proposal item that could not be committed
type AssistantFailure struct {
	RelativeDays []int         `json:"relative_days"`
	Error        ErrorResponse `json:"error"`
}

// AssistantResponse carries the proposal and, when applied, its outcome
type AssistantResponse struct {
	Searches []models.DayHotelSearch `json:"searches"`
	Applied  []models.Event          `json:"applied,omitempty"`
	Failures []AssistantFailure      `json:"failures,omitempty"`
}
