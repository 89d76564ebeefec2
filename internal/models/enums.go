package models

// Priority is the ranking rule used to pick one inventory candidate
type Priority string

const (
	PriorityPrice       Priority = "PRICE"
	PriorityDistance    Priority = "DISTANCE"
	PriorityRating      Priority = "RATING"
	PriorityClosestName Priority = "CLOSESTNAME"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityPrice, PriorityDistance, PriorityRating, PriorityClosestName:
		return true
	}
	return false
}

// RadiusUnit is the unit of a hotel search radius
type RadiusUnit string

const (
	RadiusKM RadiusUnit = "KM"
	RadiusMI RadiusUnit = "MI"
)

func (u RadiusUnit) Valid() bool {
	return u == RadiusKM || u == RadiusMI
}

// AmadeusUnit returns the unit spelling expected by the hotel list API
func (u RadiusUnit) AmadeusUnit() string {
	if u == RadiusMI {
		return "MILE"
	}
	return "KM"
}

// TravelClass is the cabin requested for a flight
type TravelClass string

const (
	ClassEconomy        TravelClass = "ECONOMY"
	ClassPremiumEconomy TravelClass = "PREMIUM_ECONOMY"
	ClassBusiness       TravelClass = "BUSINESS"
	ClassFirst          TravelClass = "FIRST"
)

func (c TravelClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

// Amenity is a hotel amenity code understood by the hotel list API
type Amenity string

// Amenities lists every accepted amenity code
var Amenities = []Amenity{
	"SWIMMING_POOL", "SPA", "FITNESS_CENTER", "AIR_CONDITIONING", "RESTAURANT",
	"PARKING", "PETS_ALLOWED", "AIRPORT_SHUTTLE", "BUSINESS_CENTER", "DISABLED_FACILITIES",
	"WIFI", "MEETING_ROOMS", "NO_KID_ALLOWED", "TENNIS", "GOLF",
	"KITCHEN", "BABY-SITTING", "BEACH", "CASINO", "JACUZZI",
	"SAUNA", "MASSAGE", "VALET_PARKING", "BAR", "LOUNGE",
	"MINIBAR", "TELEVISION", "WI-FI_IN_ROOM", "ROOM_SERVICE",
}

func (a Amenity) Valid() bool {
	for _, known := range Amenities {
		if a == known {
			return true
		}
	}
	return false
}

// EventKind discriminates the Event variant
type EventKind string

const (
	KindHotel    EventKind = "HOTEL"
	KindFlight   EventKind = "FLIGHT"
	KindActivity EventKind = "ACTIVITY"
)

// ParseEventKind maps the plural path segment used by the API to a kind
func ParseEventKind(segment string) (EventKind, bool) {
	switch segment {
	case "hotels":
		return KindHotel, true
	case "flights":
		return KindFlight, true
	case "activities":
		return KindActivity, true
	}
	return "", false
}
