package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/models"
)

// Draft is the unresolved user intent for one event. The field matching
// the requested kind must be set.
type Draft struct {
	CreatorID uuid.UUID
	EntryID   int64 // non-zero for edits
	Hotel     *HotelDraft
	Flight    *FlightDraft
	Activity  *ActivityDraft
}

// HotelDraft locates a hotel by id, address, city name or explicit descriptor
type HotelDraft struct {
	CheckInDay     int
	CheckOutDay    int // 0 means CheckInDay+1
	AmadeusHotelID string
	Address        string
	CityName       string
	IdealHotelName string
	Adults         int // 0 means the trip's party size
	Descriptor     models.SearchDescriptor
	Defer          bool
	KnownAddress   string // stored address already behind Descriptor, never geocoded again
}

// FlightDraft names the route by IATA code or by city name
type FlightDraft struct {
	DepartureCityCode    string
	DestinationCityCode  string
	DepartureCity        string
	DestinationCity      string
	DepartureDay         int
	ReturnDay            *int
	TravelClass          models.TravelClass
	NonStop              bool
	Currency             string
	MaxPrice             *int
	IncludedAirlineCodes []string
	ExcludedAirlineCodes []string
	SearchOffers         bool
}

// ActivityDraft carries the raw user fields of an activity
type ActivityDraft struct {
	Name        string
	Day         int
	PriceUSD    float64
	Address     string
	Description string
	Latitude    *float64
	Longitude   *float64
}

// Deps bundles the external collaborators. Photos and Flights may be nil.
type Deps struct {
	Geocoder Geocoder
	Places   PlaceSearcher
	Airports AirportResolver
	Photos   PhotoFinder
	Hotels   HotelSearch
	Flights  FlightSearch
	Store    TripStore
}

// Options tunes resolver behaviour
type Options struct {
	UpstreamTimeout time.Duration
	DefaultRadiusKM float64
	Now             func() time.Time
}

// Resolver turns drafts into committed trip entries
type Resolver struct {
	deps    Deps
	timeout time.Duration
	radius  float64
	now     func() time.Time
}

// New creates a Resolver
func New(deps Deps, opts Options) *Resolver {
	if opts.UpstreamTimeout <= 0 {
		opts.UpstreamTimeout = 5 * time.Second
	}
	if opts.DefaultRadiusKM <= 0 {
		opts.DefaultRadiusKM = 5
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Resolver{deps: deps, timeout: opts.UpstreamTimeout, radius: opts.DefaultRadiusKM, now: opts.Now}
}

// ResolveAndCommit loads the trip, resolves the draft, validates the result
// against the trip and persists it. The returned event carries its stored id.
// The trip is never changed unless the operation reaches Committed.
func (r *Resolver) ResolveAndCommit(ctx context.Context, tripID uuid.UUID, kind models.EventKind, d Draft) (models.Event, *Operation, error) {
	op := newOperation(kind, r.now)

	trip, err := r.deps.Store.LoadTrip(ctx, tripID)
	if err != nil {
		return models.Event{}, op, op.fail(err)
	}

	ev, err := r.resolve(ctx, op, trip, kind, d)
	if err != nil {
		return models.Event{}, op, err
	}

	if err := ctx.Err(); err != nil {
		return models.Event{}, op, op.fail(apperror.Wrap(apperror.KindUpstreamUnavailable, err, "request cancelled before commit"))
	}
	if _, err := itinerary.MergeEvent(trip, ev); err != nil {
		return models.Event{}, op, op.fail(err)
	}
	saved, err := r.deps.Store.SaveEvent(ctx, trip.ID, ev)
	if err != nil {
		return models.Event{}, op, op.fail(err)
	}
	if _, err := itinerary.MergeEvent(trip, saved); err != nil {
		return models.Event{}, op, op.fail(err)
	}
	if err := op.advance(StateCommitted); err != nil {
		return models.Event{}, op, err
	}

	log.Info().
		Str("trip_id", trip.ID.String()).
		Str("kind", string(kind)).
		Int64("entry_id", saved.EntryID()).
		Msg("event committed")
	return saved, op, nil
}

// Resolve runs Draft -> Resolving -> Resolved against an already loaded
// trip without persisting anything.
func (r *Resolver) Resolve(ctx context.Context, trip models.Trip, kind models.EventKind, d Draft) (models.Event, *Operation, error) {
	op := newOperation(kind, r.now)
	ev, err := r.resolve(ctx, op, trip, kind, d)
	return ev, op, err
}

// Remove deletes an entry after checking it belongs to the trip
func (r *Resolver) Remove(ctx context.Context, tripID uuid.UUID, kind models.EventKind, id int64) error {
	trip, err := r.deps.Store.LoadTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if _, err := itinerary.RemoveEvent(trip, kind, id); err != nil {
		return err
	}
	return r.deps.Store.DeleteEvent(ctx, tripID, kind, id)
}

func (r *Resolver) resolve(ctx context.Context, op *Operation, trip models.Trip, kind models.EventKind, d Draft) (models.Event, error) {
	var (
		ev  models.Event
		err error
	)
	switch kind {
	case models.KindHotel:
		if d.Hotel == nil {
			return ev, op.fail(apperror.New(apperror.KindInvalidEntry, "hotel details are required"))
		}
		if err := validateHotelDraft(trip, d.Hotel); err != nil {
			return ev, op.fail(err)
		}
		if err := op.advance(StateResolving); err != nil {
			return ev, err
		}
		var h models.HotelEntry
		h, err = r.resolveHotel(ctx, trip, *d.Hotel)
		h.ID, h.CreatorID = d.EntryID, d.CreatorID
		ev = models.HotelEvent(h)
	case models.KindFlight:
		if d.Flight == nil {
			return ev, op.fail(apperror.New(apperror.KindInvalidEntry, "flight details are required"))
		}
		if err := validateFlightDraft(trip, d.Flight); err != nil {
			return ev, op.fail(err)
		}
		if err := op.advance(StateResolving); err != nil {
			return ev, err
		}
		var f models.FlightEntry
		f, err = r.resolveFlight(ctx, trip, *d.Flight)
		f.ID, f.CreatorID = d.EntryID, d.CreatorID
		ev = models.FlightEvent(f)
	case models.KindActivity:
		if d.Activity == nil {
			return ev, op.fail(apperror.New(apperror.KindInvalidEntry, "activity details are required"))
		}
		if err := validateActivityDraft(trip, d.Activity); err != nil {
			return ev, op.fail(err)
		}
		if err := op.advance(StateResolving); err != nil {
			return ev, err
		}
		var a models.ActivityEntry
		a, err = r.resolveActivity(ctx, *d.Activity)
		a.ID, a.CreatorID = d.EntryID, d.CreatorID
		ev = models.ActivityEvent(a)
	default:
		panic(fmt.Sprintf("resolver: unknown event kind %q", kind))
	}

	if err != nil {
		log.Warn().Err(err).
			Str("trip_id", trip.ID.String()).
			Str("kind", string(kind)).
			Str("error_kind", string(apperror.KindOf(err))).
			Msg("event resolution failed")
		return models.Event{}, op.fail(err)
	}
	if err := op.advance(StateResolved); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// call runs one collaborator request under the upstream timeout. Errors the
// collaborator already classified are returned as is; anything else is an
// upstream outage.
func (r *Resolver) call(ctx context.Context, what string, fn func(ctx context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := fn(cctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.Wrap(apperror.KindUpstreamUnavailable, err, what+" timed out")
	}
	if apperror.KindOf(err) != apperror.KindUnknown {
		return err
	}
	return apperror.Wrap(apperror.KindUpstreamUnavailable, err, what+" failed")
}
