package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/models"
)

func ptr[T any](v T) *T { return &v }

type fakeGeocoder struct {
	at    models.Coordinates
	err   error
	block bool
	calls int
}

func (g *fakeGeocoder) Geocode(ctx context.Context, address string) (models.Coordinates, error) {
	g.calls++
	if g.block {
		<-ctx.Done()
		return models.Coordinates{}, ctx.Err()
	}
	return g.at, g.err
}

type fakePlaces struct {
	places map[string]models.Place
}

func (p *fakePlaces) SearchPlace(ctx context.Context, query string) (models.Place, error) {
	place, ok := p.places[query]
	if !ok {
		return models.Place{}, apperror.New(apperror.KindGeocodeNotFound, "no place for "+query)
	}
	return place, nil
}

type fakeAirports struct{}

func (fakeAirports) AirportCode(ctx context.Context, at models.Coordinates) (string, error) {
	switch {
	case at.Latitude > 40:
		return "jfk", nil
	case at.Latitude > 38:
		return "LIS", nil
	}
	return "", apperror.New(apperror.KindGeocodeNotFound, "no airport")
}

type fakePhotos struct {
	err error
}

func (p fakePhotos) Photos(ctx context.Context, name string, max int) ([]models.Photo, error) {
	if p.err != nil {
		return nil, p.err
	}
	return []models.Photo{{URL: "https://photos.example/" + name}}, nil
}

type fakeHotels struct {
	candidates []matcher.Candidate
	offers     []matcher.Candidate
	searchErr  error
	offersErr  error
	searches   []models.SearchDescriptor
	offerQuery *models.HotelOfferQuery
}

func (h *fakeHotels) HotelsByGeocode(ctx context.Context, d models.SearchDescriptor) ([]matcher.Candidate, error) {
	h.searches = append(h.searches, d)
	if h.searchErr != nil {
		return nil, h.searchErr
	}
	out := make([]matcher.Candidate, len(h.candidates))
	copy(out, h.candidates)
	return out, nil
}

func (h *fakeHotels) HotelOffers(ctx context.Context, q models.HotelOfferQuery) ([]matcher.Candidate, error) {
	h.offerQuery = &q
	return h.offers, h.offersErr
}

type fakeFlights struct {
	offers []matcher.Candidate
	query  *models.FlightQuery
}

func (f *fakeFlights) FlightOffers(ctx context.Context, q models.FlightQuery) ([]matcher.Candidate, error) {
	f.query = &q
	return f.offers, nil
}

type fakeStore struct {
	mu      sync.Mutex
	trip    models.Trip
	nextID  int64
	saveErr error
	saved   []models.Event
	deleted []int64
}

func (s *fakeStore) LoadTrip(ctx context.Context, id uuid.UUID) (models.Trip, error) {
	if id != s.trip.ID {
		return models.Trip{}, apperror.New(apperror.KindNotFound, "trip not found")
	}
	return s.trip, nil
}

func (s *fakeStore) SaveEvent(ctx context.Context, tripID uuid.UUID, ev models.Event) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return models.Event{}, s.saveErr
	}
	s.nextID++
	switch ev.Kind {
	case models.KindHotel:
		h := *ev.Hotel
		h.ID, h.TripID = s.nextID, tripID
		ev = models.HotelEvent(h)
	case models.KindFlight:
		f := *ev.Flight
		f.ID, f.TripID = s.nextID, tripID
		ev = models.FlightEvent(f)
	case models.KindActivity:
		a := *ev.Activity
		a.ID, a.TripID = s.nextID, tripID
		ev = models.ActivityEvent(a)
	}
	s.saved = append(s.saved, ev)
	return ev, nil
}

func (s *fakeStore) DeleteEvent(ctx context.Context, tripID uuid.UUID, kind models.EventKind, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type fixture struct {
	geo    *fakeGeocoder
	hotels *fakeHotels
	flight *fakeFlights
	store  *fakeStore
	r      *Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	trip := models.Trip{
		ID:           uuid.MustParse("6f1c2d3e-4a5b-4c6d-8e7f-0a1b2c3d4e5f"),
		Name:         "Lisbon",
		LengthInDays: 5,
		StartDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Adults:       2,
	}
	fx := &fixture{
		geo: &fakeGeocoder{at: models.Coordinates{Latitude: 38.7107, Longitude: -9.1365}},
		hotels: &fakeHotels{
			candidates: []matcher.Candidate{
				{ID: "LISAAA", Name: "Hotel Avenida", Latitude: 38.716, Longitude: -9.142},
				{ID: "LISBBB", Name: "Baixa House", Latitude: 38.711, Longitude: -9.137},
				{ID: "LISCCC", Name: "Chiado Suites", Latitude: 38.710, Longitude: -9.142},
			},
			offers: []matcher.Candidate{
				{ID: "LISAAA", Price: ptr(410.0), Currency: "EUR"},
				{ID: "LISCCC", Price: ptr(288.5), Currency: "EUR"},
			},
		},
		flight: &fakeFlights{},
		store:  &fakeStore{trip: trip, nextID: 100},
	}
	fx.r = New(Deps{
		Geocoder: fx.geo,
		Places: &fakePlaces{places: map[string]models.Place{
			"airport in New York": {Name: "JFK", Coordinates: models.Coordinates{Latitude: 40.64, Longitude: -73.78}},
			"airport in Lisbon":   {Name: "LIS", Coordinates: models.Coordinates{Latitude: 38.77, Longitude: -9.13}},
			"Lisbon":              {Name: "Lisbon", Coordinates: models.Coordinates{Latitude: 38.72, Longitude: -9.14}},
		}},
		Airports: fakeAirports{},
		Photos:   fakePhotos{},
		Hotels:   fx.hotels,
		Flights:  fx.flight,
		Store:    fx.store,
	}, Options{UpstreamTimeout: time.Second})
	return fx
}

func states(op *Operation) []State {
	out := []State{StateDraft}
	for _, tr := range op.History {
		out = append(out, tr.To)
	}
	return out
}

func TestResolveAndCommitHotelEndToEnd(t *testing.T) {
	fx := newFixture(t)
	draft := Draft{Hotel: &HotelDraft{
		CheckInDay:  1,
		CheckOutDay: 3,
		Descriptor: models.SearchDescriptor{
			SearchLatitude:  ptr(38.7107),
			SearchLongitude: ptr(-9.1365),
			SearchRadius:    ptr(2.0),
			Priority:        models.PriorityPrice,
		},
	}}

	ev, op, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, models.KindHotel, draft)
	if err != nil {
		t.Fatalf("ResolveAndCommit failed: %v", err)
	}
	if diff := cmp.Diff([]State{StateDraft, StateResolving, StateResolved, StateCommitted}, states(op)); diff != "" {
		t.Errorf("state history mismatch (-want +got):\n%s", diff)
	}
	if ev.EntryID() != 101 {
		t.Errorf("EntryID() = %d, want 101", ev.EntryID())
	}
	h := ev.Hotel
	if *h.AmadeusHotelID != "LISCCC" || *h.HotelName != "Chiado Suites" || *h.PriceTotal != 288.5 {
		t.Errorf("selected %s %s %v, want the cheapest priced hotel LISCCC", *h.AmadeusHotelID, *h.HotelName, *h.PriceTotal)
	}
	if h.PhotoURL == nil {
		t.Error("expected a photo to be attached")
	}

	q := fx.hotels.offerQuery
	if q == nil {
		t.Fatal("expected hotel offers to be queried for PRICE")
	}
	if !q.CheckIn.Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)) || !q.CheckOut.Equal(time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("offer dates = %v..%v, want 2024-06-02..2024-06-04", q.CheckIn, q.CheckOut)
	}
	if q.Adults != 2 {
		t.Errorf("offer adults = %d, want trip party size 2", q.Adults)
	}

	trip, err := itinerary.MergeEvent(fx.store.trip, ev)
	if err != nil {
		t.Fatalf("MergeEvent failed: %v", err)
	}
	days := itinerary.GroupByDay(trip)
	for day, events := range days {
		want := 0
		if day == 1 {
			want = 1
		}
		if len(events) != want {
			t.Errorf("day %d has %d events, want %d", day, len(events), want)
		}
	}
	if got := itinerary.ToAbsoluteDate(1, trip.StartDate); !got.Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day 1 date = %v, want 2024-06-02", got)
	}
}

func TestResolveHotelByAddressDefaultsToDistance(t *testing.T) {
	fx := newFixture(t)
	draft := Draft{Hotel: &HotelDraft{CheckInDay: 0, Address: "Rua Augusta 1, Lisboa"}}

	ev, _, err := fx.r.Resolve(context.Background(), fx.store.trip, models.KindHotel, draft)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ev.Hotel.RelativeCheckOutDay != 1 {
		t.Errorf("check-out = %d, want default of check-in + 1", ev.Hotel.RelativeCheckOutDay)
	}
	d := fx.hotels.searches[0]
	if d.Priority != models.PriorityDistance || *d.SearchRadius != 5 || d.SearchRadiusUnit != models.RadiusKM {
		t.Errorf("descriptor = %s %v %s, want DISTANCE 5 KM", d.Priority, *d.SearchRadius, d.SearchRadiusUnit)
	}
	if *ev.Hotel.AmadeusHotelID != "LISBBB" {
		t.Errorf("selected %s, want the nearest hotel LISBBB", *ev.Hotel.AmadeusHotelID)
	}
	if fx.hotels.offerQuery != nil {
		t.Error("offers should not be queried for DISTANCE")
	}
	if len(fx.store.saved) != 0 {
		t.Error("Resolve must not persist")
	}
}

func TestResolveHotelClosestName(t *testing.T) {
	fx := newFixture(t)
	draft := Draft{Hotel: &HotelDraft{CheckInDay: 2, CityName: "Lisbon", IdealHotelName: "Chiado Suite"}}

	ev, _, err := fx.r.Resolve(context.Background(), fx.store.trip, models.KindHotel, draft)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if *ev.Hotel.HotelName != "Chiado Suites" {
		t.Errorf("selected %q, want Chiado Suites", *ev.Hotel.HotelName)
	}
	if ev.Hotel.Priority != models.PriorityClosestName {
		t.Errorf("priority = %s, want CLOSESTNAME", ev.Hotel.Priority)
	}
}

func TestResolveHotelByKnownID(t *testing.T) {
	fx := newFixture(t)
	draft := Draft{Hotel: &HotelDraft{CheckInDay: 0, CheckOutDay: 2, AmadeusHotelID: "LISAAA"}}

	ev, op, err := fx.r.Resolve(context.Background(), fx.store.trip, models.KindHotel, draft)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if op.State != StateResolved {
		t.Errorf("state = %s, want Resolved", op.State)
	}
	if len(fx.hotels.searches) != 0 {
		t.Error("inventory should not be searched for a known hotel id")
	}
	if ev.Hotel.PriceTotal == nil || *ev.Hotel.PriceTotal != 410 {
		t.Errorf("price = %v, want 410 from the offer", ev.Hotel.PriceTotal)
	}
}

func TestResolveHotelDeferred(t *testing.T) {
	fx := newFixture(t)
	draft := Draft{Hotel: &HotelDraft{CheckInDay: 1, Address: "Belém", Defer: true}}

	ev, _, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, models.KindHotel, draft)
	if err != nil {
		t.Fatalf("ResolveAndCommit failed: %v", err)
	}
	if ev.Hotel.Resolved() {
		t.Error("deferred hotel must not carry a hotel id")
	}
	if !ev.Hotel.Complete() {
		t.Error("deferred hotel must carry a complete search descriptor")
	}
	if len(fx.hotels.searches) != 0 {
		t.Error("inventory should not be searched when deferred")
	}

	redo := DraftFromHotel(*ev.Hotel)
	again, _, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, models.KindHotel, redo)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if !again.Hotel.Resolved() {
		t.Error("second pass should select a hotel")
	}
}

func TestDeferredHotelKeepsAddressWhenResolved(t *testing.T) {
	fx := newFixture(t)
	draft := Draft{Hotel: &HotelDraft{CheckInDay: 1, Address: "Rua Augusta 1, Lisbon", Defer: true}}

	saved, _, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, models.KindHotel, draft)
	if err != nil {
		t.Fatalf("ResolveAndCommit failed: %v", err)
	}
	if saved.Hotel.Address == nil || *saved.Hotel.Address != "Rua Augusta 1, Lisbon" {
		t.Fatalf("deferred address = %v, want Rua Augusta 1, Lisbon", saved.Hotel.Address)
	}

	redo := DraftFromHotel(*saved.Hotel)
	if redo.Hotel.Address != "" {
		t.Errorf("rebuilt draft address = %q, want it carried as a known address only", redo.Hotel.Address)
	}
	resolved, _, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, models.KindHotel, redo)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if resolved.Hotel.Address == nil || *resolved.Hotel.Address != "Rua Augusta 1, Lisbon" {
		t.Errorf("resolved address = %v, want Rua Augusta 1, Lisbon", resolved.Hotel.Address)
	}
	if fx.geo.calls != 1 {
		t.Errorf("geocoder called %d times, want 1", fx.geo.calls)
	}
}

func TestResolveFailures(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(fx *fixture)
		draft  Draft
		kind   models.EventKind
		want   error
		states []State
	}{
		{
			name:   "geocode not found",
			setup:  func(fx *fixture) { fx.geo.err = apperror.New(apperror.KindGeocodeNotFound, "ZERO_RESULTS") },
			draft:  Draft{Hotel: &HotelDraft{CheckInDay: 1, Address: "nowhere"}},
			kind:   models.KindHotel,
			want:   apperror.ErrGeocodeNotFound,
			states: []State{StateDraft, StateResolving, StateFailed},
		},
		{
			name:   "empty inventory",
			setup:  func(fx *fixture) { fx.hotels.candidates = nil },
			draft:  Draft{Hotel: &HotelDraft{CheckInDay: 1, Address: "Rossio"}},
			kind:   models.KindHotel,
			want:   apperror.ErrNoCandidates,
			states: []State{StateDraft, StateResolving, StateFailed},
		},
		{
			name:   "upstream transport error",
			setup:  func(fx *fixture) { fx.hotels.searchErr = errors.New("connection reset") },
			draft:  Draft{Hotel: &HotelDraft{CheckInDay: 1, Address: "Rossio"}},
			kind:   models.KindHotel,
			want:   apperror.ErrUpstreamUnavailable,
			states: []State{StateDraft, StateResolving, StateFailed},
		},
		{
			name:   "check-out not after check-in",
			draft:  Draft{Hotel: &HotelDraft{CheckInDay: 3, CheckOutDay: 3, Address: "Rossio"}},
			kind:   models.KindHotel,
			want:   apperror.ErrInvalidEntry,
			states: []State{StateDraft, StateFailed},
		},
		{
			name:   "hotel without location",
			draft:  Draft{Hotel: &HotelDraft{CheckInDay: 1}},
			kind:   models.KindHotel,
			want:   apperror.ErrInvalidEntry,
			states: []State{StateDraft, StateFailed},
		},
		{
			name:   "check-out beyond trip end",
			draft:  Draft{Hotel: &HotelDraft{CheckInDay: 3, CheckOutDay: 9, Address: "Rossio"}},
			kind:   models.KindHotel,
			want:   apperror.ErrInvalidEntry,
			states: []State{StateDraft, StateResolving, StateResolved, StateFailed},
		},
		{
			name:   "persistence conflict",
			setup:  func(fx *fixture) { fx.store.saveErr = apperror.New(apperror.KindPersistenceConflict, "row changed") },
			draft:  Draft{Activity: &ActivityDraft{Name: "Fado night", Day: 2}},
			kind:   models.KindActivity,
			want:   apperror.ErrPersistenceConflict,
			states: []State{StateDraft, StateResolving, StateResolved, StateFailed},
		},
		{
			name:   "airline both included and excluded",
			draft:  Draft{Flight: &FlightDraft{DepartureCityCode: "JFK", DestinationCityCode: "LIS", IncludedAirlineCodes: []string{"tp"}, ExcludedAirlineCodes: []string{"TP"}}},
			kind:   models.KindFlight,
			want:   apperror.ErrInvalidEntry,
			states: []State{StateDraft, StateFailed},
		},
		{
			name:   "activity without name",
			draft:  Draft{Activity: &ActivityDraft{Name: "  ", Day: 1}},
			kind:   models.KindActivity,
			want:   apperror.ErrInvalidEntry,
			states: []State{StateDraft, StateFailed},
		},
		{
			name:   "missing payload",
			draft:  Draft{},
			kind:   models.KindFlight,
			want:   apperror.ErrInvalidEntry,
			states: []State{StateDraft, StateFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			if tt.setup != nil {
				tt.setup(fx)
			}
			_, op, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, tt.kind, tt.draft)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if diff := cmp.Diff(tt.states, states(op)); diff != "" {
				t.Errorf("state history mismatch (-want +got):\n%s", diff)
			}
			if op.ErrKind != apperror.KindOf(tt.want) {
				t.Errorf("ErrKind = %s, want %s", op.ErrKind, apperror.KindOf(tt.want))
			}
			if len(fx.store.saved) != 0 {
				t.Errorf("nothing should be persisted, got %d events", len(fx.store.saved))
			}
		})
	}
}

func TestResolveUpstreamTimeout(t *testing.T) {
	fx := newFixture(t)
	fx.geo.block = true
	fx.r.timeout = 20 * time.Millisecond

	_, op, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, models.KindActivity,
		Draft{Activity: &ActivityDraft{Name: "Oceanário", Day: 1, Address: "Esplanada Dom Carlos I"}})
	if !errors.Is(err, apperror.ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want UpstreamUnavailable", err)
	}
	if !apperror.Retryable(op.ErrKind) {
		t.Error("a timed out operation should be retryable")
	}
}

func TestResolvePhotoFailureIsIgnored(t *testing.T) {
	fx := newFixture(t)
	fx.r.deps.Photos = fakePhotos{err: errors.New("quota exceeded")}

	ev, _, err := fx.r.Resolve(context.Background(), fx.store.trip, models.KindHotel,
		Draft{Hotel: &HotelDraft{CheckInDay: 1, Address: "Rossio"}})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ev.Hotel.PhotoURL != nil {
		t.Error("photo should be absent when lookup fails")
	}
}

func TestResolveFlightFromCityNames(t *testing.T) {
	fx := newFixture(t)
	fx.flight.offers = []matcher.Candidate{
		{ID: "1", Name: "TP", Price: ptr(612.40), Currency: "USD"},
		{ID: "2", Name: "UA", Price: ptr(540.10), Currency: "USD"},
	}
	draft := Draft{Flight: &FlightDraft{
		DepartureCity:   "New York",
		DestinationCity: "Lisbon",
		DepartureDay:    0,
		ReturnDay:       ptr(4),
		SearchOffers:    true,
	}}

	ev, _, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, models.KindFlight, draft)
	if err != nil {
		t.Fatalf("ResolveAndCommit failed: %v", err)
	}
	f := ev.Flight
	if f.DepartureCityCode != "JFK" || f.DestinationCityCode != "LIS" {
		t.Errorf("route = %s → %s, want JFK → LIS", f.DepartureCityCode, f.DestinationCityCode)
	}
	if f.TravelClass != models.ClassEconomy {
		t.Errorf("travel class = %s, want ECONOMY default", f.TravelClass)
	}
	if f.CarrierCode == nil || *f.CarrierCode != "UA" || *f.OfferPrice != 540.10 {
		t.Errorf("offer = %v %v, want UA 540.10", f.CarrierCode, f.OfferPrice)
	}
	q := fx.flight.query
	if q.ReturnDate == nil || !q.ReturnDate.Equal(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("return date = %v, want 2024-06-05", q.ReturnDate)
	}
}

func TestResolveActivityGeocodesAddress(t *testing.T) {
	fx := newFixture(t)
	ev, _, err := fx.r.ResolveAndCommit(context.Background(), fx.store.trip.ID, models.KindActivity,
		Draft{Activity: &ActivityDraft{Name: "Tram 28", Day: 1, Address: "Martim Moniz"}})
	if err != nil {
		t.Fatalf("ResolveAndCommit failed: %v", err)
	}
	if ev.Activity.Latitude == nil || *ev.Activity.Latitude != 38.7107 {
		t.Errorf("latitude = %v, want geocoded 38.7107", ev.Activity.Latitude)
	}

	fx.geo.calls = 0
	_, _, err = fx.r.Resolve(context.Background(), fx.store.trip, models.KindActivity,
		Draft{Activity: &ActivityDraft{Name: "Picnic", Day: 2, Address: "Parque", Latitude: ptr(38.7), Longitude: ptr(-9.1)}})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if fx.geo.calls != 0 {
		t.Error("explicit coordinates should skip geocoding")
	}
}

func TestRemove(t *testing.T) {
	fx := newFixture(t)
	fx.store.trip.Activities = []models.ActivityEntry{{ID: 7, TripID: fx.store.trip.ID, Name: "Sintra", RelativeDay: 2}}

	if err := fx.r.Remove(context.Background(), fx.store.trip.ID, models.KindActivity, 7); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := fx.r.Remove(context.Background(), fx.store.trip.ID, models.KindActivity, 8); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Remove(missing) error = %v, want NotFound", err)
	}
	if diff := cmp.Diff([]int64{7}, fx.store.deleted); diff != "" {
		t.Errorf("deleted mismatch (-want +got):\n%s", diff)
	}
}

func TestOperationTransitions(t *testing.T) {
	op := newOperation(models.KindHotel, time.Now)
	if err := op.advance(StateCommitted); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Draft -> Committed error = %v, want ErrIllegalTransition", err)
	}
	if err := op.advance(StateResolving); err != nil {
		t.Fatal(err)
	}
	if err := op.advance(StateResolved); err != nil {
		t.Fatal(err)
	}
	if err := op.advance(StateCommitted); err != nil {
		t.Fatal(err)
	}
	if !op.Terminal() {
		t.Error("Committed should be terminal")
	}
	boom := errors.New("late")
	if err := op.fail(boom); err != boom || op.State != StateCommitted {
		t.Errorf("fail after commit changed state to %s", op.State)
	}
}
