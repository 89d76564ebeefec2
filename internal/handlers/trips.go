package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"TRIPPLANNER_BACK-END/internal/dto"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/models"
	"TRIPPLANNER_BACK-END/internal/resolver"
	"TRIPPLANNER_BACK-END/internal/utils"
)

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	trips  TripRepository
	photos resolver.PhotoFinder
}

// NewTripsHandler creates a new TripsHandler. photos may be nil.
func NewTripsHandler(trips TripRepository, photos resolver.PhotoFinder) *TripsHandler {
	return &TripsHandler{trips: trips, photos: photos}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateTrip(w, r)
	case http.MethodGet:
		h.ListTrips(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Trip dispatches by HTTP method for /api/trips/{trip_id}
func (h *TripsHandler) Trip(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.TripDetail(w, r)
	case http.MethodPut, http.MethodPatch:
		h.UpdateTrip(w, r)
	case http.MethodDelete:
		h.DeleteTrip(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateTrip handles POST /api/trips
// @Summary Create a new trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateTripRequest
	if !utils.DecodeJSONRequest(w, r, &req) {
		return
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid start_date", err.Error())
		return
	}

	trip := models.Trip{
		CreatorID:    userID,
		Name:         strings.TrimSpace(req.Name),
		LengthInDays: req.LengthInDays,
		StartDate:    start,
		Adults:       max(req.Adults, 1),
		IsPublished:  req.IsPublished,
		Description:  req.Description,
		PhotoURL:     req.PhotoURL,
	}
	if trip.PhotoURL == nil && req.Destination != nil {
		trip.PhotoURL = h.coverPhoto(r.Context(), *req.Destination)
	}

	created, err := h.trips.CreateTrip(r.Context(), trip)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	log.Info().Str("trip_id", created.ID.String()).Str("user_id", userID.String()).Msg("trip created")
	utils.WriteJSONResponse(w, http.StatusCreated, toTripResponse(created))
}

// coverPhoto looks up one photo of the destination. Failures are ignored.
func (h *TripsHandler) coverPhoto(ctx context.Context, destination string) *string {
	destination = strings.TrimSpace(destination)
	if h.photos == nil || destination == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	photos, err := h.photos.Photos(ctx, destination, 1)
	if err != nil || len(photos) == 0 {
		if err != nil {
			log.Warn().Err(err).Str("destination", destination).Msg("trip cover photo lookup failed")
		}
		return nil
	}
	return &photos[0].URL
}

// ListTrips handles GET /api/trips
// @Summary List my trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TripListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}
	trips, err := h.trips.ListTrips(r.Context(), userID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	resp := dto.TripListResponse{Trips: make([]dto.TripResponse, 0, len(trips)), Total: len(trips)}
	for _, t := range trips {
		resp.Trips = append(resp.Trips, toTripResponse(t))
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// TripDetail handles GET /api/trips/{trip_id}
// @Summary Get trip detail with all entries
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.TripDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	tp, err := ParseTripPath(r.URL.Path)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	trip, ok := loadTrip(w, r, h.trips, tp.TripID, false)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.TripDetailResponse{
		Trip:       toTripResponse(trip),
		Hotels:     trip.Hotels,
		Flights:    trip.Flights,
		Activities: trip.Activities,
	})
}

// UpdateTrip handles PUT/PATCH /api/trips/{trip_id}. Moving start_date keeps
// every entry on the same relative day; shortening the trip is refused
// while entries would fall outside it.
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Param payload body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [put]
// @Router /api/trips/{trip_id} [patch]
func (h *TripsHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tp, err := ParseTripPath(r.URL.Path)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	trip, ok := loadTrip(w, r, h.trips, tp.TripID, true)
	if !ok {
		return
	}

	var req dto.UpdateTripRequest
	if !utils.DecodeJSONRequest(w, r, &req) {
		return
	}

	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid start_date", err.Error())
			return
		}
		trip = itinerary.SetStartDate(trip, start)
	}
	if req.LengthInDays != nil {
		if trip, err = itinerary.SetLengthInDays(trip, *req.LengthInDays); err != nil {
			utils.WriteAppError(w, err)
			return
		}
	}
	if req.Name != nil {
		trip.Name = strings.TrimSpace(*req.Name)
	}
	if req.Adults != nil {
		trip.Adults = *req.Adults
	}
	if req.IsPublished != nil {
		trip.IsPublished = *req.IsPublished
	}
	if req.Description != nil {
		trip.Description = req.Description
	}
	if req.PhotoURL != nil {
		trip.PhotoURL = req.PhotoURL
	}

	updated, err := h.trips.UpdateTrip(r.Context(), trip)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toTripResponse(updated))
}

// DeleteTrip handles DELETE /api/trips/{trip_id}
// @Summary Delete a trip and its entries
// @Tags trips
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tp, err := ParseTripPath(r.URL.Path)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	if _, ok := loadTrip(w, r, h.trips, tp.TripID, true); !ok {
		return
	}
	if err := h.trips.DeleteTrip(r.Context(), tp.TripID); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	log.Info().Str("trip_id", tp.TripID.String()).Msg("trip deleted")
	w.WriteHeader(http.StatusNoContent)
}

func toTripResponse(t models.Trip) dto.TripResponse {
	return dto.TripResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		StartDate:    utils.FormatDate(t.StartDate),
		EndDate:      endDate(t),
		LengthInDays: t.LengthInDays,
		Adults:       t.Adults,
		IsPublished:  t.IsPublished,
		PhotoURL:     t.PhotoURL,
		Description:  t.Description,
		CreatorID:    t.CreatorID.String(),
		CreatedAt:    utils.FormatTimestamp(t.CreatedAt),
		UpdatedAt:    utils.FormatTimestamp(t.UpdatedAt),
	}
}
