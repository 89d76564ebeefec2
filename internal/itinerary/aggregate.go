package itinerary

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
)

// MergeEvent returns a copy of trip with ev appended (new id) or replacing
// the entry with the same id. Only the slice of ev's kind is reallocated;
// the other two collections are carried over untouched. The input trip is
// never modified.
func MergeEvent(trip models.Trip, ev models.Event) (models.Trip, error) {
	if err := ValidateEvent(trip, ev); err != nil {
		return trip, err
	}

	out := trip
	switch ev.Kind {
	case models.KindHotel:
		h := *ev.Hotel
		h.TripID = trip.ID
		out.Hotels = upsert(trip.Hotels, h, func(e models.HotelEntry) int64 { return e.ID })
	case models.KindFlight:
		f := *ev.Flight
		f.TripID = trip.ID
		out.Flights = upsert(trip.Flights, f, func(e models.FlightEntry) int64 { return e.ID })
	case models.KindActivity:
		a := *ev.Activity
		a.TripID = trip.ID
		out.Activities = upsert(trip.Activities, a, func(e models.ActivityEntry) int64 { return e.ID })
	default:
		panic(fmt.Sprintf("itinerary: unknown event kind %q", ev.Kind))
	}
	return out, nil
}

// RemoveEvent returns a copy of trip without the entry identified by kind and id
func RemoveEvent(trip models.Trip, kind models.EventKind, id int64) (models.Trip, error) {
	out := trip
	var ok bool
	switch kind {
	case models.KindHotel:
		out.Hotels, ok = without(trip.Hotels, id, func(e models.HotelEntry) int64 { return e.ID })
	case models.KindFlight:
		out.Flights, ok = without(trip.Flights, id, func(e models.FlightEntry) int64 { return e.ID })
	case models.KindActivity:
		out.Activities, ok = without(trip.Activities, id, func(e models.ActivityEntry) int64 { return e.ID })
	default:
		panic(fmt.Sprintf("itinerary: unknown event kind %q", kind))
	}
	if !ok {
		return trip, apperror.New(apperror.KindNotFound, fmt.Sprintf("%s entry %d not found", strings.ToLower(string(kind)), id))
	}
	return out, nil
}

// SetStartDate moves the trip. Stored day offsets are not rewritten, so
// every event keeps its position relative to the new start.
func SetStartDate(trip models.Trip, start time.Time) models.Trip {
	trip.StartDate = CivilDate(start)
	return trip
}

// SetLengthInDays resizes the trip, refusing to orphan existing events
func SetLengthInDays(trip models.Trip, n int) (models.Trip, error) {
	if n < 1 {
		return trip, apperror.New(apperror.KindInvalidEntry, "length_in_days must be at least 1")
	}
	resized := trip
	resized.LengthInDays = n
	for _, ev := range allEvents(trip) {
		if err := ValidateEvent(resized, ev); err != nil {
			return trip, apperror.New(apperror.KindInvalidEntry,
				fmt.Sprintf("cannot shorten trip to %d days: %q would fall outside the trip", n, ev.Title()))
		}
	}
	return resized, nil
}

// ValidateEvent checks the per-type invariants of ev against trip
func ValidateEvent(trip models.Trip, ev models.Event) error {
	var problems []string
	switch ev.Kind {
	case models.KindHotel:
		if ev.Hotel == nil {
			panic("itinerary: hotel event without hotel entry")
		}
		problems = validateHotel(trip, *ev.Hotel)
	case models.KindFlight:
		if ev.Flight == nil {
			panic("itinerary: flight event without flight entry")
		}
		problems = validateFlight(trip, *ev.Flight)
	case models.KindActivity:
		if ev.Activity == nil {
			panic("itinerary: activity event without activity entry")
		}
		problems = validateActivity(trip, *ev.Activity)
	default:
		panic(fmt.Sprintf("itinerary: unknown event kind %q", ev.Kind))
	}
	if len(problems) > 0 {
		return apperror.New(apperror.KindInvalidEntry, strings.Join(problems, "; "))
	}
	return nil
}

func validateHotel(trip models.Trip, h models.HotelEntry) []string {
	var p []string
	p = checkTrip(p, trip, h.TripID)
	if !trip.InRange(h.RelativeCheckInDay) {
		p = append(p, fmt.Sprintf("relative_check_in_day %d outside trip of %d days", h.RelativeCheckInDay, trip.LengthInDays))
	}
	if h.RelativeCheckOutDay <= h.RelativeCheckInDay {
		p = append(p, "relative_check_out_day must be after relative_check_in_day")
	} else if h.RelativeCheckOutDay > trip.LengthInDays {
		p = append(p, fmt.Sprintf("relative_check_out_day %d beyond trip end", h.RelativeCheckOutDay))
	}
	if !h.Resolved() && !h.Complete() {
		p = append(p, "either amadeus_hotel_id or search coordinates with a radius are required")
	}
	d := h.SearchDescriptor
	if d.SearchRadiusUnit != "" && !d.SearchRadiusUnit.Valid() {
		p = append(p, fmt.Sprintf("search_radius_unit %q must be KM or MI", d.SearchRadiusUnit))
	}
	if d.Priority != "" && !d.Priority.Valid() {
		p = append(p, fmt.Sprintf("unknown priority %q", d.Priority))
	}
	for _, r := range d.AllowedRatings {
		if r < 1 || r > 5 {
			p = append(p, fmt.Sprintf("allowed rating %d outside 1..5", r))
		}
	}
	for _, a := range d.RequiredAmenities {
		if !a.Valid() {
			p = append(p, fmt.Sprintf("unknown amenity %q", a))
		}
	}
	if d.Priority == models.PriorityClosestName && (h.IdealHotelName == nil || strings.TrimSpace(*h.IdealHotelName) == "") && !h.Resolved() {
		p = append(p, "ideal_hotel_name is required for CLOSESTNAME priority")
	}
	return p
}

func validateFlight(trip models.Trip, f models.FlightEntry) []string {
	var p []string
	p = checkTrip(p, trip, f.TripID)
	if !IsIATACode(f.DepartureCityCode) {
		p = append(p, fmt.Sprintf("departure_city_code %q is not a 3-letter code", f.DepartureCityCode))
	}
	if !IsIATACode(f.DestinationCityCode) {
		p = append(p, fmt.Sprintf("destination_city_code %q is not a 3-letter code", f.DestinationCityCode))
	}
	if !trip.InRange(f.RelativeDepartureDay) {
		p = append(p, fmt.Sprintf("relative_departure_day %d outside trip of %d days", f.RelativeDepartureDay, trip.LengthInDays))
	}
	if f.RelativeReturnDay != nil {
		if *f.RelativeReturnDay < f.RelativeDepartureDay {
			p = append(p, "relative_return_day must not precede relative_departure_day")
		} else if !trip.InRange(*f.RelativeReturnDay) {
			p = append(p, fmt.Sprintf("relative_return_day %d outside trip of %d days", *f.RelativeReturnDay, trip.LengthInDays))
		}
	}
	if f.TravelClass != "" && !f.TravelClass.Valid() {
		p = append(p, fmt.Sprintf("unknown travel_class %q", f.TravelClass))
	}
	if f.MaxPrice != nil && *f.MaxPrice <= 0 {
		p = append(p, "max_price must be positive")
	}
	excluded := make(map[string]bool, len(f.ExcludedAirlineCodes))
	for _, c := range f.ExcludedAirlineCodes {
		excluded[strings.ToUpper(c)] = true
	}
	for _, c := range f.IncludedAirlineCodes {
		if excluded[strings.ToUpper(c)] {
			p = append(p, fmt.Sprintf("airline %s is both included and excluded", c))
		}
	}
	return p
}

func validateActivity(trip models.Trip, a models.ActivityEntry) []string {
	var p []string
	p = checkTrip(p, trip, a.TripID)
	if strings.TrimSpace(a.Name) == "" {
		p = append(p, "name is required")
	}
	if !trip.InRange(a.RelativeDay) {
		p = append(p, fmt.Sprintf("relative_day %d outside trip of %d days", a.RelativeDay, trip.LengthInDays))
	}
	if a.PriceUSD < 0 {
		p = append(p, "price_usd cannot be negative")
	}
	if (a.Latitude == nil) != (a.Longitude == nil) {
		p = append(p, "latitude and longitude must be set together")
	}
	return p
}

func checkTrip(p []string, trip models.Trip, entryTrip uuid.UUID) []string {
	if entryTrip != uuid.Nil && entryTrip != trip.ID {
		return append(p, "entry belongs to a different trip")
	}
	return p
}

// IsIATACode reports whether s is three upper-case ASCII letters
func IsIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func allEvents(trip models.Trip) []models.Event {
	out := make([]models.Event, 0, len(trip.Hotels)+len(trip.Flights)+len(trip.Activities))
	for _, h := range trip.Hotels {
		out = append(out, models.HotelEvent(h))
	}
	for _, f := range trip.Flights {
		out = append(out, models.FlightEvent(f))
	}
	for _, a := range trip.Activities {
		out = append(out, models.ActivityEvent(a))
	}
	return out
}

func upsert[T any](list []T, item T, id func(T) int64) []T {
	out := make([]T, 0, len(list)+1)
	replaced := false
	for _, e := range list {
		if !replaced && id(item) != 0 && id(e) == id(item) {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, item)
	}
	return out
}

func without[T any](list []T, target int64, id func(T) int64) ([]T, bool) {
	out := make([]T, 0, len(list))
	found := false
	for _, e := range list {
		if id(e) == target {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}
