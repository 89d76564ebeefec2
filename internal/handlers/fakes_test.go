package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
	"TRIPPLANNER_BACK-END/internal/resolver"
	"TRIPPLANNER_BACK-END/internal/utils"
)

type fakeTrips struct {
	mu    sync.Mutex
	trips map[uuid.UUID]models.Trip
}

func newFakeTrips(trips ...models.Trip) *fakeTrips {
	f := &fakeTrips{trips: map[uuid.UUID]models.Trip{}}
	for _, t := range trips {
		f.trips[t.ID] = t
	}
	return f
}

func (f *fakeTrips) CreateTrip(ctx context.Context, t models.Trip) (models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = uuid.New()
	t.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t.UpdatedAt = t.CreatedAt
	f.trips[t.ID] = t
	return t, nil
}

func (f *fakeTrips) ListTrips(ctx context.Context, creatorID uuid.UUID) ([]models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Trip
	for _, t := range f.trips {
		if t.CreatorID == creatorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTrips) LoadTrip(ctx context.Context, id uuid.UUID) (models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.trips[id]
	if !ok {
		return models.Trip{}, apperror.New(apperror.KindNotFound, "trip not found")
	}
	return t, nil
}

func (f *fakeTrips) UpdateTrip(ctx context.Context, t models.Trip) (models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.trips[t.ID]; !ok {
		return models.Trip{}, apperror.New(apperror.KindNotFound, "trip not found")
	}
	f.trips[t.ID] = t
	return t, nil
}

func (f *fakeTrips) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.trips[id]; !ok {
		return apperror.New(apperror.KindNotFound, "trip not found")
	}
	delete(f.trips, id)
	return nil
}

// fakeEvents commits drafts without talking to any provider
type fakeEvents struct {
	mu      sync.Mutex
	drafts  []resolver.Draft
	removed []int64
	nextID  int64
	fail    func(d resolver.Draft) error
}

func (f *fakeEvents) ResolveAndCommit(ctx context.Context, tripID uuid.UUID, kind models.EventKind, d resolver.Draft) (models.Event, *resolver.Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts = append(f.drafts, d)
	op := &resolver.Operation{Kind: kind, State: resolver.StateDraft}
	if f.fail != nil {
		if err := f.fail(d); err != nil {
			op.State, op.Err, op.ErrKind = resolver.StateFailed, err, apperror.KindOf(err)
			return models.Event{}, op, err
		}
	}
	id := d.EntryID
	if id == 0 {
		f.nextID++
		id = 100 + f.nextID
	}
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, to := range []resolver.State{resolver.StateResolving, resolver.StateResolved, resolver.StateCommitted} {
		op.History = append(op.History, resolver.Transition{From: op.State, To: to, At: at})
		op.State = to
	}

	var ev models.Event
	switch kind {
	case models.KindHotel:
		name := "Resolved Hotel"
		ev = models.HotelEvent(models.HotelEntry{
			ID: id, TripID: tripID, CreatorID: d.CreatorID,
			RelativeCheckInDay: d.Hotel.CheckInDay, RelativeCheckOutDay: max(d.Hotel.CheckOutDay, d.Hotel.CheckInDay+1),
			HotelName: &name,
		})
	case models.KindFlight:
		ev = models.FlightEvent(models.FlightEntry{
			ID: id, TripID: tripID, CreatorID: d.CreatorID,
			DepartureCityCode: d.Flight.DepartureCityCode, DestinationCityCode: d.Flight.DestinationCityCode,
			RelativeDepartureDay: d.Flight.DepartureDay, TravelClass: models.ClassEconomy, Currency: "USD",
		})
	case models.KindActivity:
		ev = models.ActivityEvent(models.ActivityEntry{
			ID: id, TripID: tripID, CreatorID: d.CreatorID, Name: d.Activity.Name, RelativeDay: d.Activity.Day,
		})
	}
	return ev, op, nil
}

func (f *fakeEvents) Remove(ctx context.Context, tripID uuid.UUID, kind models.EventKind, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	return nil
}

type fakePhotos struct {
	calls int
	err   error
}

func (f *fakePhotos) Photos(ctx context.Context, placeName string, limit int) ([]models.Photo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Photo, limit)
	for i := range out {
		out[i] = models.Photo{URL: "https://photos.example/" + strings.ReplaceAll(placeName, " ", "+")}
	}
	return out, nil
}

func testTrip(owner uuid.UUID) models.Trip {
	return models.Trip{
		ID:           uuid.New(),
		CreatorID:    owner,
		Name:         "Portugal",
		LengthInDays: 5,
		StartDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Adults:       2,
	}
}

// request builds a request authenticated as user. A zero user sends none.
func request(method, path, body string, user uuid.UUID) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, path, rd)
	if user != uuid.Nil {
		r = r.WithContext(utils.WithUser(r.Context(), user, "traveler@example.com"))
	}
	return r
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func ptr[T any](v T) *T { return &v }
