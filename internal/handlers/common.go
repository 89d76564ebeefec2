package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/models"
	"TRIPPLANNER_BACK-END/internal/resolver"
	"TRIPPLANNER_BACK-END/internal/utils"
)

// TripRepository is the trip persistence used by the handlers
type TripRepository interface {
	CreateTrip(ctx context.Context, t models.Trip) (models.Trip, error)
	ListTrips(ctx context.Context, creatorID uuid.UUID) ([]models.Trip, error)
	LoadTrip(ctx context.Context, id uuid.UUID) (models.Trip, error)
	UpdateTrip(ctx context.Context, t models.Trip) (models.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

// EventService resolves, commits and removes trip entries
type EventService interface {
	ResolveAndCommit(ctx context.Context, tripID uuid.UUID, kind models.EventKind, d resolver.Draft) (models.Event, *resolver.Operation, error)
	Remove(ctx context.Context, tripID uuid.UUID, kind models.EventKind, id int64) error
}

// TripPath is a parsed /api/trips/{trip_id}[/resource[/entry_id]] path
type TripPath struct {
	TripID   uuid.UUID
	Resource string
	Kind     models.EventKind
	EntryID  int64
}

// ParseTripPath splits a request path below /api/trips/
func ParseTripPath(path string) (TripPath, error) {
	var tp TripPath
	rest := strings.Trim(strings.TrimPrefix(path, "/api/trips/"), "/")
	parts := strings.Split(rest, "/")
	if len(parts) == 0 || parts[0] == "" || len(parts) > 3 {
		return tp, apperror.New(apperror.KindNotFound, "unknown trip resource")
	}
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return tp, apperror.New(apperror.KindInvalidEntry, "trip_id must be UUID")
	}
	tp.TripID = id
	if len(parts) == 1 {
		return tp, nil
	}

	tp.Resource = parts[1]
	kind, isEvent := models.ParseEventKind(parts[1])
	if isEvent {
		tp.Kind = kind
	}
	if len(parts) == 3 {
		if !isEvent {
			return tp, apperror.New(apperror.KindNotFound, "unknown trip resource")
		}
		entryID, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil || entryID <= 0 {
			return tp, apperror.New(apperror.KindInvalidEntry, "entry id must be a positive integer")
		}
		tp.EntryID = entryID
	}
	return tp, nil
}

// loadTrip loads the trip and checks that the caller may see it. Published
// trips are readable by anyone signed in; everything else is owner only.
func loadTrip(w http.ResponseWriter, r *http.Request, repo TripRepository, tripID uuid.UUID, write bool) (models.Trip, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return models.Trip{}, false
	}
	trip, err := repo.LoadTrip(r.Context(), tripID)
	if err != nil {
		utils.WriteAppError(w, err)
		return models.Trip{}, false
	}
	if trip.CreatorID != userID {
		if write || !trip.IsPublished {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "You do not have access to this trip")
			return models.Trip{}, false
		}
	}
	return trip, true
}

func endDate(t models.Trip) string {
	return utils.FormatDate(itinerary.ToAbsoluteDate(t.LengthInDays-1, t.StartDate))
}
