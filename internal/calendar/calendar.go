package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/models"
)

const productID = "-//TripPlanner//Itinerary Export//EN"

// Export renders the trip as an iCalendar document. Every entry becomes an
// all-day event on its absolute dates; a flight with a return day adds a
// second event for the return leg.
func Export(trip models.Trip, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(trip.Name)
	cal.SetXWRCalName(trip.Name)
	if trip.Description != nil {
		cal.SetDescription(*trip.Description)
	}

	day := func(n int) time.Time { return itinerary.ToAbsoluteDate(n, trip.StartDate) }

	for _, h := range trip.Hotels {
		ev := cal.AddEvent(uid(trip, "hotel", h.ID))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(models.HotelEvent(h).Title())
		ev.SetAllDayStartAt(day(h.RelativeCheckInDay))
		ev.SetAllDayEndAt(day(h.RelativeCheckOutDay))
		if h.Address != nil {
			ev.SetLocation(*h.Address)
		}
		if h.HotelLatitude != nil && h.HotelLongitude != nil {
			ev.SetGeo(*h.HotelLatitude, *h.HotelLongitude)
		}
		var desc []string
		if h.PriceTotal != nil {
			desc = append(desc, fmt.Sprintf("Total price: %.2f %s", *h.PriceTotal, deref(h.Currency)))
		}
		if !h.Resolved() {
			desc = append(desc, "Hotel not selected yet")
		}
		if len(desc) > 0 {
			ev.SetDescription(strings.Join(desc, "\n"))
		}
	}

	for _, f := range trip.Flights {
		title := models.FlightEvent(f).Title()
		ev := cal.AddEvent(uid(trip, "flight", f.ID))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(title)
		ev.SetAllDayStartAt(day(f.RelativeDepartureDay))
		ev.SetAllDayEndAt(day(f.RelativeDepartureDay + 1))
		ev.SetDescription(flightDescription(f))

		if f.RelativeReturnDay != nil {
			ret := cal.AddEvent(uid(trip, "flight-return", f.ID))
			ret.SetDtStampTime(stamp)
			ret.SetSummary(fmt.Sprintf("Flight %s → %s", f.DestinationCityCode, f.DepartureCityCode))
			ret.SetAllDayStartAt(day(*f.RelativeReturnDay))
			ret.SetAllDayEndAt(day(*f.RelativeReturnDay + 1))
			ret.SetDescription(flightDescription(f))
		}
	}

	for _, a := range trip.Activities {
		ev := cal.AddEvent(uid(trip, "activity", a.ID))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(a.Name)
		ev.SetAllDayStartAt(day(a.RelativeDay))
		ev.SetAllDayEndAt(day(a.RelativeDay + 1))
		if a.Address != nil {
			ev.SetLocation(*a.Address)
		}
		if a.Latitude != nil && a.Longitude != nil {
			ev.SetGeo(*a.Latitude, *a.Longitude)
		}
		if a.Description != nil {
			ev.SetDescription(*a.Description)
		}
	}

	return cal.Serialize()
}

func uid(trip models.Trip, kind string, id int64) string {
	return fmt.Sprintf("%s-%d-%s@tripplanner", kind, id, trip.ID)
}

func flightDescription(f models.FlightEntry) string {
	parts := []string{"Class: " + string(f.TravelClass)}
	if f.NonStop {
		parts = append(parts, "Non-stop")
	}
	if f.OfferPrice != nil {
		parts = append(parts, fmt.Sprintf("Offer: %.2f %s", *f.OfferPrice, f.Currency))
	}
	if f.CarrierCode != nil {
		parts = append(parts, "Carrier: "+*f.CarrierCode)
	}
	return strings.Join(parts, "\n")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
