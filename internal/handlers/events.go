package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/dto"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/models"
	"TRIPPLANNER_BACK-END/internal/resolver"
	"TRIPPLANNER_BACK-END/internal/utils"
)

// EventsHandler adds, replaces and removes hotel, flight and activity entries
type EventsHandler struct {
	trips  TripRepository
	events EventService
}

// NewEventsHandler creates a new EventsHandler
func NewEventsHandler(trips TripRepository, events EventService) *EventsHandler {
	return &EventsHandler{trips: trips, events: events}
}

// Events dispatches /api/trips/{trip_id}/{hotels|flights|activities}[/{entry_id}]
func (h *EventsHandler) Events(w http.ResponseWriter, r *http.Request) {
	tp, err := ParseTripPath(r.URL.Path)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	if tp.Kind == "" {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "unknown trip resource")
		return
	}
	switch {
	case tp.EntryID == 0 && r.Method == http.MethodPost:
		h.AddEvent(w, r, tp)
	case tp.EntryID != 0 && r.Method == http.MethodPut:
		h.ReplaceEvent(w, r, tp)
	case tp.EntryID != 0 && r.Method == http.MethodDelete:
		h.DeleteEvent(w, r, tp)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// AddEvent handles POST /api/trips/{trip_id}/{kind}
// @Summary Resolve and add a trip entry
// @Description The body is a dto.HotelRequest, dto.FlightRequest or dto.ActivityRequest matching kind.
// @Description Hotels and flights are resolved against the travel APIs before they are stored.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Param kind path string true "hotels, flights or activities"
// @Param payload body dto.HotelRequest true "Entry payload"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/{kind} [post]
func (h *EventsHandler) AddEvent(w http.ResponseWriter, r *http.Request, tp TripPath) {
	h.commit(w, r, tp, http.StatusCreated)
}

// ReplaceEvent handles PUT /api/trips/{trip_id}/{kind}/{entry_id}
// @Summary Re-resolve and replace a trip entry
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Param kind path string true "hotels, flights or activities"
// @Param entry_id path int true "Entry ID"
// @Param payload body dto.HotelRequest true "Entry payload"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/{kind}/{entry_id} [put]
func (h *EventsHandler) ReplaceEvent(w http.ResponseWriter, r *http.Request, tp TripPath) {
	h.commit(w, r, tp, http.StatusOK)
}

func (h *EventsHandler) commit(w http.ResponseWriter, r *http.Request, tp TripPath, status int) {
	trip, ok := loadTrip(w, r, h.trips, tp.TripID, true)
	if !ok {
		return
	}
	if tp.EntryID != 0 {
		// the entry must exist before it can be replaced
		if _, err := itinerary.RemoveEvent(trip, tp.Kind, tp.EntryID); err != nil {
			utils.WriteAppError(w, err)
			return
		}
	}
	userID, _ := utils.GetUserIDFromContext(r.Context())

	draft, ok := decodeDraft(w, r, tp.Kind, userID)
	if !ok {
		return
	}
	draft.EntryID = tp.EntryID

	ev, op, err := h.events.ResolveAndCommit(r.Context(), tp.TripID, tp.Kind, draft)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, status, dto.EventResponse{
		Event:     ev,
		Date:      utils.FormatDate(itinerary.ToAbsoluteDate(ev.Day(), trip.StartDate)),
		Operation: toOperationResponse(op),
	})
}

// DeleteEvent handles DELETE /api/trips/{trip_id}/{kind}/{entry_id}
// @Summary Remove a trip entry
// @Tags events
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Param kind path string true "hotels, flights or activities"
// @Param entry_id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/{kind}/{entry_id} [delete]
func (h *EventsHandler) DeleteEvent(w http.ResponseWriter, r *http.Request, tp TripPath) {
	if _, ok := loadTrip(w, r, h.trips, tp.TripID, true); !ok {
		return
	}
	if err := h.events.Remove(r.Context(), tp.TripID, tp.Kind, tp.EntryID); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeDraft(w http.ResponseWriter, r *http.Request, kind models.EventKind, creator uuid.UUID) (resolver.Draft, bool) {
	d := resolver.Draft{CreatorID: creator}
	switch kind {
	case models.KindHotel:
		var req dto.HotelRequest
		if !utils.DecodeJSONRequest(w, r, &req) {
			return d, false
		}
		d.Hotel = hotelDraft(req)
	case models.KindFlight:
		var req dto.FlightRequest
		if !utils.DecodeJSONRequest(w, r, &req) {
			return d, false
		}
		d.Flight = flightDraft(req)
	case models.KindActivity:
		var req dto.ActivityRequest
		if !utils.DecodeJSONRequest(w, r, &req) {
			return d, false
		}
		d.Activity = &resolver.ActivityDraft{
			Name:        req.Name,
			Day:         req.RelativeDay,
			PriceUSD:    req.PriceUSD,
			Address:     req.Address,
			Description: req.Description,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
		}
	default:
		utils.WriteAppError(w, apperror.New(apperror.KindNotFound, "unknown entry kind"))
		return d, false
	}
	return d, true
}

func hotelDraft(req dto.HotelRequest) *resolver.HotelDraft {
	amenities := make([]models.Amenity, 0, len(req.RequiredAmenities))
	for _, a := range req.RequiredAmenities {
		amenities = append(amenities, models.Amenity(a))
	}
	return &resolver.HotelDraft{
		CheckInDay:     req.RelativeCheckInDay,
		CheckOutDay:    req.RelativeCheckOutDay,
		AmadeusHotelID: strings.TrimSpace(req.AmadeusHotelID),
		Address:        strings.TrimSpace(req.Address),
		CityName:       strings.TrimSpace(req.CityName),
		IdealHotelName: strings.TrimSpace(req.IdealHotelName),
		Adults:         req.Adults,
		Defer:          req.Defer,
		Descriptor: models.SearchDescriptor{
			SearchLatitude:    req.SearchLatitude,
			SearchLongitude:   req.SearchLongitude,
			SearchRadius:      req.SearchRadius,
			SearchRadiusUnit:  models.RadiusUnit(req.SearchRadiusUnit),
			AllowedChainCodes: req.AllowedChainCodes,
			AllowedRatings:    req.AllowedRatings,
			RequiredAmenities: amenities,
			Priority:          models.Priority(req.Priority),
		},
	}
}

func flightDraft(req dto.FlightRequest) *resolver.FlightDraft {
	return &resolver.FlightDraft{
		DepartureCityCode:    req.DepartureCityCode,
		DestinationCityCode:  req.DestinationCityCode,
		DepartureCity:        strings.TrimSpace(req.DepartureCity),
		DestinationCity:      strings.TrimSpace(req.DestinationCity),
		DepartureDay:         req.RelativeDepartureDay,
		ReturnDay:            req.RelativeReturnDay,
		TravelClass:          models.TravelClass(req.TravelClass),
		NonStop:              req.NonStop,
		Currency:             strings.ToUpper(req.Currency),
		MaxPrice:             req.MaxPrice,
		IncludedAirlineCodes: req.IncludedAirlineCodes,
		ExcludedAirlineCodes: req.ExcludedAirlineCodes,
		SearchOffers:         req.SearchOffers,
	}
}

func toOperationResponse(op *resolver.Operation) dto.OperationResponse {
	resp := dto.OperationResponse{
		Kind:      string(op.Kind),
		State:     string(op.State),
		History:   make([]dto.TransitionResponse, 0, len(op.History)),
		ErrorKind: string(op.ErrKind),
	}
	for _, t := range op.History {
		resp.History = append(resp.History, dto.TransitionResponse{
			From: string(t.From),
			To:   string(t.To),
			At:   t.At.UTC().Format(time.RFC3339Nano),
		})
	}
	return resp
}
