package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/dto"
	"TRIPPLANNER_BACK-END/internal/models"
	"TRIPPLANNER_BACK-END/internal/resolver"
	"TRIPPLANNER_BACK-END/internal/utils"
)

// Planner proposes per-day hotel searches from a free-text message
type Planner interface {
	Plan(ctx context.Context, trip models.Trip, message string) ([]models.DayHotelSearch, error)
}

// AssistantHandler serves the conversational itinerary assistant
type AssistantHandler struct {
	trips   TripRepository
	planner Planner
	events  EventService
}

// NewAssistantHandler creates a new AssistantHandler. planner may be nil
// when no model is configured.
func NewAssistantHandler(trips TripRepository, planner Planner, events EventService) *AssistantHandler {
	return &AssistantHandler{trips: trips, planner: planner, events: events}
}

// Assistant handles POST /api/trips/{trip_id}/assistant
// @Summary Ask the assistant for hotel stays
// @Description Returns one hotel search per stay. With apply, every stay is resolved and committed
// @Description and the hotels it overlaps are removed.
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Param payload body dto.AssistantRequest true "Message"
// @Success 200 {object} dto.AssistantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/assistant [post]
func (h *AssistantHandler) Assistant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tp, err := ParseTripPath(r.URL.Path)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	var req dto.AssistantRequest
	if !utils.DecodeJSONRequest(w, r, &req) {
		return
	}
	trip, ok := loadTrip(w, r, h.trips, tp.TripID, req.Apply)
	if !ok {
		return
	}
	if h.planner == nil {
		utils.WriteAppError(w, apperror.New(apperror.KindUpstreamUnavailable, "assistant is not configured"))
		return
	}

	searches, err := h.planner.Plan(r.Context(), trip, req.Message)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	resp := dto.AssistantResponse{Searches: searches}
	if req.Apply {
		userID, _ := utils.GetUserIDFromContext(r.Context())
		resp.Applied, resp.Failures = h.apply(r.Context(), trip, searches, userID)
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// apply commits each proposed stay and then drops the hotels it replaces.
// Hotels committed earlier in the same run are never removed.
func (h *AssistantHandler) apply(ctx context.Context, trip models.Trip, searches []models.DayHotelSearch, userID uuid.UUID) ([]models.Event, []dto.AssistantFailure) {
	applied := []models.Event{}
	var failures []dto.AssistantFailure
	removed := map[int64]bool{}

	for _, s := range searches {
		ev, _, err := h.events.ResolveAndCommit(ctx, trip.ID, models.KindHotel, resolver.DraftFromDaySearch(s, userID))
		if err != nil {
			kind := apperror.KindOf(err)
			failures = append(failures, dto.AssistantFailure{
				RelativeDays: s.RelativeDays,
				Error: dto.ErrorResponse{
					Error:     http.StatusText(apperror.HTTPStatus(kind)),
					Message:   err.Error(),
					Kind:      string(kind),
					Retryable: apperror.Retryable(kind),
				},
			})
			continue
		}
		applied = append(applied, ev)

		in, out := ev.Hotel.RelativeCheckInDay, ev.Hotel.RelativeCheckOutDay
		for _, old := range trip.Hotels {
			if removed[old.ID] || old.RelativeCheckOutDay <= in || old.RelativeCheckInDay >= out {
				continue
			}
			if err := h.events.Remove(ctx, trip.ID, models.KindHotel, old.ID); err != nil {
				log.Warn().Err(err).Int64("hotel_entry_id", old.ID).Msg("replaced hotel not removed")
				continue
			}
			removed[old.ID] = true
		}
	}
	return applied, failures
}
