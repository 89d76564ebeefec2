package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"TRIPPLANNER_BACK-END/internal/calendar"
	"TRIPPLANNER_BACK-END/internal/dto"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/utils"
)

// ItineraryHandler serves read-only views of a trip
type ItineraryHandler struct {
	trips TripRepository
	now   func() time.Time
}

// NewItineraryHandler creates a new ItineraryHandler
func NewItineraryHandler(trips TripRepository) *ItineraryHandler {
	return &ItineraryHandler{trips: trips, now: time.Now}
}

// Itinerary handles GET /api/trips/{trip_id}/itinerary
// @Summary Day-by-day itinerary
// @Description Every trip day is listed with its absolute date, including days without events.
// @Tags itinerary
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/itinerary [get]
func (h *ItineraryHandler) Itinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tp, err := ParseTripPath(r.URL.Path)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	trip, ok := loadTrip(w, r, h.trips, tp.TripID, false)
	if !ok {
		return
	}

	days := itinerary.Days(trip)
	resp := dto.ItineraryResponse{
		TripID:       trip.ID.String(),
		TripName:     trip.Name,
		StartDate:    utils.FormatDate(trip.StartDate),
		EndDate:      endDate(trip),
		LengthInDays: trip.LengthInDays,
		Days:         make([]dto.DayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, dto.DayResponse{
			RelativeDay: d.Day,
			Date:        utils.FormatDate(d.Date),
			Events:      d.Events,
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Calendar handles GET /api/trips/{trip_id}/calendar.ics
// @Summary Export the trip as an iCalendar file
// @Tags itinerary
// @Produce text/calendar
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Success 200 {string} string "iCalendar document"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/calendar.ics [get]
func (h *ItineraryHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tp, err := ParseTripPath(r.URL.Path)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	trip, ok := loadTrip(w, r, h.trips, tp.TripID, false)
	if !ok {
		return
	}

	body := calendar.Export(trip, h.now())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, fileName(trip.Name)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func fileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, strings.TrimSpace(name))
	if name == "" {
		return "trip"
	}
	return name
}
