package itinerary

import (
	"sort"
	"time"

	"TRIPPLANNER_BACK-END/internal/models"
)

// DayView is one day of a rendered itinerary
type DayView struct {
	Day    int            `json:"relative_day"`
	Date   time.Time      `json:"date"`
	Events []models.Event `json:"events"`
}

// GroupByDay buckets every entry of trip under the day it starts on.
// Every day in [0, LengthInDays) has a key, possibly with an empty list.
// Within a day, hotels come first, then flights, then activities, each
// ordered by entry id.
func GroupByDay(trip models.Trip) map[int][]models.Event {
	days := make(map[int][]models.Event, trip.LengthInDays)
	for d := 0; d < trip.LengthInDays; d++ {
		days[d] = []models.Event{}
	}

	hotels := append([]models.HotelEntry(nil), trip.Hotels...)
	sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].ID < hotels[j].ID })
	for _, h := range hotels {
		days[h.RelativeCheckInDay] = append(days[h.RelativeCheckInDay], models.HotelEvent(h))
	}

	flights := append([]models.FlightEntry(nil), trip.Flights...)
	sort.SliceStable(flights, func(i, j int) bool { return flights[i].ID < flights[j].ID })
	for _, f := range flights {
		days[f.RelativeDepartureDay] = append(days[f.RelativeDepartureDay], models.FlightEvent(f))
	}

	activities := append([]models.ActivityEntry(nil), trip.Activities...)
	sort.SliceStable(activities, func(i, j int) bool { return activities[i].ID < activities[j].ID })
	for _, a := range activities {
		days[a.RelativeDay] = append(days[a.RelativeDay], models.ActivityEvent(a))
	}
	return days
}

// DayHasEvents reports whether anything starts on day
func DayHasEvents(trip models.Trip, day int) bool {
	for _, h := range trip.Hotels {
		if h.RelativeCheckInDay == day {
			return true
		}
	}
	for _, f := range trip.Flights {
		if f.RelativeDepartureDay == day {
			return true
		}
	}
	for _, a := range trip.Activities {
		if a.RelativeDay == day {
			return true
		}
	}
	return false
}

// Days returns the ordered itinerary with absolute dates
func Days(trip models.Trip) []DayView {
	grouped := GroupByDay(trip)
	out := make([]DayView, 0, trip.LengthInDays)
	for d := 0; d < trip.LengthInDays; d++ {
		out = append(out, DayView{
			Day:    d,
			Date:   ToAbsoluteDate(d, trip.StartDate),
			Events: grouped[d],
		})
	}
	return out
}
