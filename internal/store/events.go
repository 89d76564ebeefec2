package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
)

const hotelColumns = `id, trip_id, creator_id, relative_check_in_day, relative_check_out_day,
	amadeus_hotel_id, ideal_hotel_name, hotel_name, address, photo_url,
	hotel_latitude, hotel_longitude, price_total, currency,
	search_latitude, search_longitude, search_radius, search_radius_unit,
	allowed_chain_codes, allowed_ratings, required_amenities, priority`

const flightColumns = `id, trip_id, creator_id, departure_city_code, destination_city_code,
	relative_departure_day, relative_return_day, travel_class, non_stop, currency, max_price,
	included_airline_codes, excluded_airline_codes, offer_price, carrier_code`

const activityColumns = `id, trip_id, creator_id, name, relative_day, price_usd,
	address, description, latitude, longitude`

func scanHotel(row rowScanner) (models.HotelEntry, error) {
	var (
		h         models.HotelEntry
		unit      *string
		priority  *string
		amenities []string
	)
	err := row.Scan(&h.ID, &h.TripID, &h.CreatorID, &h.RelativeCheckInDay, &h.RelativeCheckOutDay,
		&h.AmadeusHotelID, &h.IdealHotelName, &h.HotelName, &h.Address, &h.PhotoURL,
		&h.HotelLatitude, &h.HotelLongitude, &h.PriceTotal, &h.Currency,
		&h.SearchLatitude, &h.SearchLongitude, &h.SearchRadius, &unit,
		&h.AllowedChainCodes, &h.AllowedRatings, &amenities, &priority)
	if err != nil {
		return h, err
	}
	if unit != nil {
		h.SearchRadiusUnit = models.RadiusUnit(*unit)
	}
	if priority != nil {
		h.Priority = models.Priority(*priority)
	}
	for _, a := range amenities {
		h.RequiredAmenities = append(h.RequiredAmenities, models.Amenity(a))
	}
	return h, nil
}

func scanFlight(row rowScanner) (models.FlightEntry, error) {
	var (
		f     models.FlightEntry
		class string
	)
	err := row.Scan(&f.ID, &f.TripID, &f.CreatorID, &f.DepartureCityCode, &f.DestinationCityCode,
		&f.RelativeDepartureDay, &f.RelativeReturnDay, &class, &f.NonStop, &f.Currency, &f.MaxPrice,
		&f.IncludedAirlineCodes, &f.ExcludedAirlineCodes, &f.OfferPrice, &f.CarrierCode)
	f.TravelClass = models.TravelClass(class)
	return f, err
}

func scanActivity(row rowScanner) (models.ActivityEntry, error) {
	var a models.ActivityEntry
	err := row.Scan(&a.ID, &a.TripID, &a.CreatorID, &a.Name, &a.RelativeDay, &a.PriceUSD,
		&a.Address, &a.Description, &a.Latitude, &a.Longitude)
	return a, err
}

func (s *Store) hotels(ctx context.Context, where string, args ...any) ([]models.HotelEntry, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+hotelColumns+" FROM hotel_entries "+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotels: %w", err)
	}
	defer rows.Close()

	hotels := []models.HotelEntry{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (s *Store) flights(ctx context.Context, tripID uuid.UUID) ([]models.FlightEntry, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+flightColumns+" FROM flight_entries WHERE trip_id = $1 ORDER BY id", tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	flights := []models.FlightEntry{}
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (s *Store) activities(ctx context.Context, tripID uuid.UUID) ([]models.ActivityEntry, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+activityColumns+" FROM activity_entries WHERE trip_id = $1 ORDER BY id", tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []models.ActivityEntry{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// ListDeferredHotels returns up to limit hotels that carry a search
// descriptor but no selected hotel and have failed fewer than maxAttempts
// sweeps. Hotels never swept come first, then the least recently swept.
func (s *Store) ListDeferredHotels(ctx context.Context, limit, maxAttempts int) ([]models.HotelEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.hotels(ctx, `WHERE amadeus_hotel_id IS NULL AND search_latitude IS NOT NULL
		AND search_longitude IS NOT NULL AND search_radius > 0 AND sweep_attempts < $2
		ORDER BY last_swept_at NULLS FIRST, id LIMIT $1`, limit, maxAttempts)
}

// RecordSweepFailure counts a failed sweep of a deferred hotel and returns
// the attempts so far
func (s *Store) RecordSweepFailure(ctx context.Context, id int64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var attempts int
	err := s.pool.QueryRow(ctx, `UPDATE hotel_entries
		SET sweep_attempts = sweep_attempts + 1, last_swept_at = now()
		WHERE id = $1
		RETURNING sweep_attempts`, id).Scan(&attempts)
	if err != nil {
		return 0, mapPgError(err, "hotel entry")
	}
	return attempts, nil
}

// SaveEvent inserts the entry when its id is 0 and updates it otherwise.
// Updating a row that no longer exists is a PersistenceConflict.
func (s *Store) SaveEvent(ctx context.Context, tripID uuid.UUID, ev models.Event) (models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	switch ev.Kind {
	case models.KindHotel:
		h, err := s.saveHotel(ctx, tripID, *ev.Hotel)
		return models.HotelEvent(h), err
	case models.KindFlight:
		f, err := s.saveFlight(ctx, tripID, *ev.Flight)
		return models.FlightEvent(f), err
	case models.KindActivity:
		a, err := s.saveActivity(ctx, tripID, *ev.Activity)
		return models.ActivityEvent(a), err
	}
	panic(fmt.Sprintf("store: unknown event kind %q", ev.Kind))
}

func (s *Store) saveHotel(ctx context.Context, tripID uuid.UUID, h models.HotelEntry) (models.HotelEntry, error) {
	amenities := make([]string, len(h.RequiredAmenities))
	for i, a := range h.RequiredAmenities {
		amenities[i] = string(a)
	}
	args := []any{tripID, h.CreatorID, h.RelativeCheckInDay, h.RelativeCheckOutDay,
		h.AmadeusHotelID, h.IdealHotelName, h.HotelName, h.Address, h.PhotoURL,
		h.HotelLatitude, h.HotelLongitude, h.PriceTotal, h.Currency,
		h.SearchLatitude, h.SearchLongitude, h.SearchRadius, optional(string(h.SearchRadiusUnit)),
		nonNil(h.AllowedChainCodes), nonNil(h.AllowedRatings), amenities, optional(string(h.Priority))}

	var query string
	if h.ID == 0 {
		query = `INSERT INTO hotel_entries (trip_id, creator_id, relative_check_in_day, relative_check_out_day,
			amadeus_hotel_id, ideal_hotel_name, hotel_name, address, photo_url,
			hotel_latitude, hotel_longitude, price_total, currency,
			search_latitude, search_longitude, search_radius, search_radius_unit,
			allowed_chain_codes, allowed_ratings, required_amenities, priority)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
			RETURNING ` + hotelColumns
	} else {
		query = `UPDATE hotel_entries SET creator_id = $2, relative_check_in_day = $3, relative_check_out_day = $4,
			amadeus_hotel_id = $5, ideal_hotel_name = $6, hotel_name = $7, address = $8, photo_url = $9,
			hotel_latitude = $10, hotel_longitude = $11, price_total = $12, currency = $13,
			search_latitude = $14, search_longitude = $15, search_radius = $16, search_radius_unit = $17,
			allowed_chain_codes = $18, allowed_ratings = $19, required_amenities = $20, priority = $21,
			sweep_attempts = 0, last_swept_at = NULL
			WHERE trip_id = $1 AND id = $22
			RETURNING ` + hotelColumns
		args = append(args, h.ID)
	}
	saved, err := scanHotel(s.pool.QueryRow(ctx, query, args...))
	return saved, saveError(err, h.ID, "hotel entry")
}

func (s *Store) saveFlight(ctx context.Context, tripID uuid.UUID, f models.FlightEntry) (models.FlightEntry, error) {
	args := []any{tripID, f.CreatorID, f.DepartureCityCode, f.DestinationCityCode,
		f.RelativeDepartureDay, f.RelativeReturnDay, string(f.TravelClass), f.NonStop, f.Currency, f.MaxPrice,
		nonNil(f.IncludedAirlineCodes), nonNil(f.ExcludedAirlineCodes), f.OfferPrice, f.CarrierCode}

	var query string
	if f.ID == 0 {
		query = `INSERT INTO flight_entries (trip_id, creator_id, departure_city_code, destination_city_code,
			relative_departure_day, relative_return_day, travel_class, non_stop, currency, max_price,
			included_airline_codes, excluded_airline_codes, offer_price, carrier_code)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING ` + flightColumns
	} else {
		query = `UPDATE flight_entries SET creator_id = $2, departure_city_code = $3, destination_city_code = $4,
			relative_departure_day = $5, relative_return_day = $6, travel_class = $7, non_stop = $8,
			currency = $9, max_price = $10, included_airline_codes = $11, excluded_airline_codes = $12,
			offer_price = $13, carrier_code = $14
			WHERE trip_id = $1 AND id = $15
			RETURNING ` + flightColumns
		args = append(args, f.ID)
	}
	saved, err := scanFlight(s.pool.QueryRow(ctx, query, args...))
	return saved, saveError(err, f.ID, "flight entry")
}

func (s *Store) saveActivity(ctx context.Context, tripID uuid.UUID, a models.ActivityEntry) (models.ActivityEntry, error) {
	args := []any{tripID, a.CreatorID, a.Name, a.RelativeDay, a.PriceUSD,
		a.Address, a.Description, a.Latitude, a.Longitude}

	var query string
	if a.ID == 0 {
		query = `INSERT INTO activity_entries (trip_id, creator_id, name, relative_day, price_usd,
			address, description, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING ` + activityColumns
	} else {
		query = `UPDATE activity_entries SET creator_id = $2, name = $3, relative_day = $4, price_usd = $5,
			address = $6, description = $7, latitude = $8, longitude = $9
			WHERE trip_id = $1 AND id = $10
			RETURNING ` + activityColumns
		args = append(args, a.ID)
	}
	saved, err := scanActivity(s.pool.QueryRow(ctx, query, args...))
	return saved, saveError(err, a.ID, "activity entry")
}

// DeleteEvent removes one entry of the trip
func (s *Store) DeleteEvent(ctx context.Context, tripID uuid.UUID, kind models.EventKind, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		tag pgconn.CommandTag
		err error
	)
	switch kind {
	case models.KindHotel:
		tag, err = s.pool.Exec(ctx, "DELETE FROM hotel_entries WHERE trip_id = $1 AND id = $2", tripID, id)
	case models.KindFlight:
		tag, err = s.pool.Exec(ctx, "DELETE FROM flight_entries WHERE trip_id = $1 AND id = $2", tripID, id)
	case models.KindActivity:
		tag, err = s.pool.Exec(ctx, "DELETE FROM activity_entries WHERE trip_id = $1 AND id = $2", tripID, id)
	default:
		panic(fmt.Sprintf("store: unknown event kind %q", kind))
	}
	if err != nil {
		return mapPgError(err, "entry")
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.KindPersistenceConflict, "entry was already removed")
	}
	return nil
}

// saveError maps a missing row on update to PersistenceConflict, since the
// entry existed when the trip was loaded
func saveError(err error, id int64, what string) error {
	if err == nil {
		return nil
	}
	mapped := mapPgError(err, what)
	if id != 0 && apperror.KindOf(mapped) == apperror.KindNotFound {
		return apperror.Wrap(apperror.KindPersistenceConflict, err, fmt.Sprintf("%s %d was changed or removed concurrently", what, id))
	}
	return mapped
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
