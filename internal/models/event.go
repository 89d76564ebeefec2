package models

import "fmt"

// Event is a tagged union over the three entry types.
// Exactly one of Hotel, Flight, Activity is set, matching Kind.
type Event struct {
	Kind     EventKind      `json:"kind"`
	Hotel    *HotelEntry    `json:"hotel,omitempty"`
	Flight   *FlightEntry   `json:"flight,omitempty"`
	Activity *ActivityEntry `json:"activity,omitempty"`
}

func HotelEvent(h HotelEntry) Event       { return Event{Kind: KindHotel, Hotel: &h} }
func FlightEvent(f FlightEntry) Event     { return Event{Kind: KindFlight, Flight: &f} }
func ActivityEvent(a ActivityEntry) Event { return Event{Kind: KindActivity, Activity: &a} }

// EntryID returns the persisted id of the wrapped entry
func (e Event) EntryID() int64 {
	switch e.Kind {
	case KindHotel:
		return e.Hotel.ID
	case KindFlight:
		return e.Flight.ID
	case KindActivity:
		return e.Activity.ID
	}
	panic(fmt.Sprintf("models: unknown event kind %q", e.Kind))
}

// Day returns the relative day the event is listed under
func (e Event) Day() int {
	switch e.Kind {
	case KindHotel:
		return e.Hotel.RelativeCheckInDay
	case KindFlight:
		return e.Flight.RelativeDepartureDay
	case KindActivity:
		return e.Activity.RelativeDay
	}
	panic(fmt.Sprintf("models: unknown event kind %q", e.Kind))
}

// Title is a short human label used by exports and logs
func (e Event) Title() string {
	switch e.Kind {
	case KindHotel:
		switch {
		case e.Hotel.HotelName != nil && *e.Hotel.HotelName != "":
			return *e.Hotel.HotelName
		case e.Hotel.IdealHotelName != nil && *e.Hotel.IdealHotelName != "":
			return *e.Hotel.IdealHotelName
		}
		return "Hotel stay"
	case KindFlight:
		return fmt.Sprintf("Flight %s → %s", e.Flight.DepartureCityCode, e.Flight.DestinationCityCode)
	case KindActivity:
		return e.Activity.Name
	}
	panic(fmt.Sprintf("models: unknown event kind %q", e.Kind))
}
