package resolver

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
)

func (d HotelDraft) checkOut() int {
	if d.CheckOutDay == 0 {
		return d.CheckInDay + 1
	}
	return d.CheckOutDay
}

func (d HotelDraft) located() bool {
	return strings.TrimSpace(d.AmadeusHotelID) != "" ||
		strings.TrimSpace(d.Address) != "" ||
		strings.TrimSpace(d.CityName) != "" ||
		d.Descriptor.Complete()
}

// DraftFromHotel rebuilds a draft from a stored hotel whose resolution was deferred
func DraftFromHotel(h models.HotelEntry) Draft {
	hd := &HotelDraft{
		CheckInDay:  h.RelativeCheckInDay,
		CheckOutDay: h.RelativeCheckOutDay,
		Descriptor:  h.SearchDescriptor,
	}
	if h.IdealHotelName != nil {
		hd.IdealHotelName = *h.IdealHotelName
	}
	if h.Address != nil {
		hd.KnownAddress = *h.Address
	}
	return Draft{CreatorID: h.CreatorID, EntryID: h.ID, Hotel: hd}
}

func validateHotelDraft(trip models.Trip, d *HotelDraft) error {
	var p []string
	if !trip.InRange(d.CheckInDay) {
		p = append(p, fmt.Sprintf("relative_check_in_day %d outside trip of %d days", d.CheckInDay, trip.LengthInDays))
	}
	if d.checkOut() <= d.CheckInDay {
		p = append(p, "relative_check_out_day must be after relative_check_in_day")
	}
	if !d.located() {
		p = append(p, "one of amadeus_hotel_id, address, city_name or search coordinates with a radius is required")
	}
	if d.Adults < 0 {
		p = append(p, "adults must not be negative")
	}
	return problems(p)
}

func validateFlightDraft(trip models.Trip, d *FlightDraft) error {
	var p []string
	if strings.TrimSpace(d.DepartureCityCode) == "" && strings.TrimSpace(d.DepartureCity) == "" {
		p = append(p, "departure_city_code or departure_city is required")
	}
	if strings.TrimSpace(d.DestinationCityCode) == "" && strings.TrimSpace(d.DestinationCity) == "" {
		p = append(p, "destination_city_code or destination_city is required")
	}
	if !trip.InRange(d.DepartureDay) {
		p = append(p, fmt.Sprintf("relative_departure_day %d outside trip of %d days", d.DepartureDay, trip.LengthInDays))
	}
	if d.ReturnDay != nil && *d.ReturnDay < d.DepartureDay {
		p = append(p, "relative_return_day must not precede relative_departure_day")
	}
	excluded := make(map[string]bool, len(d.ExcludedAirlineCodes))
	for _, c := range d.ExcludedAirlineCodes {
		excluded[strings.ToUpper(c)] = true
	}
	for _, c := range d.IncludedAirlineCodes {
		if excluded[strings.ToUpper(c)] {
			p = append(p, fmt.Sprintf("airline %s is both included and excluded", strings.ToUpper(c)))
		}
	}
	return problems(p)
}

func validateActivityDraft(trip models.Trip, d *ActivityDraft) error {
	var p []string
	if strings.TrimSpace(d.Name) == "" {
		p = append(p, "name is required")
	}
	if !trip.InRange(d.Day) {
		p = append(p, fmt.Sprintf("relative_day %d outside trip of %d days", d.Day, trip.LengthInDays))
	}
	if (d.Latitude == nil) != (d.Longitude == nil) {
		p = append(p, "latitude and longitude must be given together")
	}
	return problems(p)
}

func problems(p []string) error {
	if len(p) == 0 {
		return nil
	}
	return apperror.New(apperror.KindInvalidEntry, strings.Join(p, "; "))
}

// DraftFromDaySearch turns one assistant proposal into a hotel draft
// covering its consecutive days.
func DraftFromDaySearch(s models.DayHotelSearch, creator uuid.UUID) Draft {
	first, last := s.RelativeDays[0], s.RelativeDays[0]
	for _, d := range s.RelativeDays[1:] {
		first, last = min(first, d), max(last, d)
	}
	return Draft{CreatorID: creator, Hotel: &HotelDraft{
		CheckInDay:  first,
		CheckOutDay: last + 1,
		Adults:      s.Adults,
		Descriptor:  s.SearchDescriptor,
	}}
}
