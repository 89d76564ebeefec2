package resolver

import (
	"context"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/models"
)

// Geocoder turns a free-text address into coordinates.
// Zero results must be reported as apperror.ErrGeocodeNotFound.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Coordinates, error)
}

// PlaceSearcher finds the best place for a free-text query
type PlaceSearcher interface {
	SearchPlace(ctx context.Context, query string) (models.Place, error)
}

// AirportResolver maps coordinates to the nearest airport code
type AirportResolver interface {
	AirportCode(ctx context.Context, at models.Coordinates) (string, error)
}

// PhotoFinder returns up to limit photos for a place name
type PhotoFinder interface {
	Photos(ctx context.Context, placeName string, limit int) ([]models.Photo, error)
}

// HotelSearch queries hotel inventory
type HotelSearch interface {
	HotelsByGeocode(ctx context.Context, d models.SearchDescriptor) ([]matcher.Candidate, error)
	HotelOffers(ctx context.Context, q models.HotelOfferQuery) ([]matcher.Candidate, error)
}

// FlightSearch queries priced flight offers
type FlightSearch interface {
	FlightOffers(ctx context.Context, q models.FlightQuery) ([]matcher.Candidate, error)
}

// TripStore persists trips and their entries
type TripStore interface {
	LoadTrip(ctx context.Context, id uuid.UUID) (models.Trip, error)
	SaveEvent(ctx context.Context, tripID uuid.UUID, ev models.Event) (models.Event, error)
	DeleteEvent(ctx context.Context, tripID uuid.UUID, kind models.EventKind, id int64) error
}
