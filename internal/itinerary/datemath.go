package itinerary

import "time"

const day = 24 * time.Hour

// CivilDate returns midnight of t's calendar date in t's own location
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// utcDate maps t's calendar date onto UTC midnight so day subtraction
// never sees a 23h or 25h day.
func utcDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ToRelativeDay returns the whole-day offset of absolute from tripStart.
// Time of day and DST transitions are ignored; only calendar dates count.
func ToRelativeDay(absolute, tripStart time.Time) int {
	diff := utcDate(absolute).Sub(utcDate(tripStart))
	return int(diff / day)
}

// ToAbsoluteDate returns tripStart's calendar date advanced by relativeDay days
func ToAbsoluteDate(relativeDay int, tripStart time.Time) time.Time {
	y, m, d := tripStart.Date()
	return time.Date(y, m, d+relativeDay, 0, 0, 0, 0, tripStart.Location())
}

// DateRange lists the calendar dates of a trip, one per day
func DateRange(tripStart time.Time, lengthInDays int) []time.Time {
	if lengthInDays <= 0 {
		return nil
	}
	out := make([]time.Time, lengthInDays)
	for i := range out {
		out[i] = ToAbsoluteDate(i, tripStart)
	}
	return out
}
