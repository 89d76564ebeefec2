package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
)

const tripColumns = `id, creator_id, trip_name, length_in_days, start_date, adults,
	is_published, photo_url, description, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(&t.ID, &t.CreatorID, &t.Name, &t.LengthInDays, &t.StartDate, &t.Adults,
		&t.IsPublished, &t.PhotoURL, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// CreateTrip inserts the trip scalars and returns the stored row
func (s *Store) CreateTrip(ctx context.Context, t models.Trip) (models.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := s.pool.QueryRow(ctx, `
		INSERT INTO trips (creator_id, trip_name, length_in_days, start_date, adults, is_published, photo_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+tripColumns,
		t.CreatorID, t.Name, t.LengthInDays, t.StartDate, t.Adults, t.IsPublished, t.PhotoURL, t.Description)
	created, err := scanTrip(row)
	if err != nil {
		return models.Trip{}, mapPgError(err, "trip")
	}
	return created, nil
}

// ListTrips returns the trips created by a user, newest first, without entries
func (s *Store) ListTrips(ctx context.Context, creatorID uuid.UUID) ([]models.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE creator_id = $1 ORDER BY created_at DESC", creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// LoadTrip returns the trip with all of its hotel, flight and activity entries
func (s *Store) LoadTrip(ctx context.Context, id uuid.UUID) (models.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	t, err := scanTrip(s.pool.QueryRow(ctx, "SELECT "+tripColumns+" FROM trips WHERE id = $1", id))
	if err != nil {
		return models.Trip{}, mapPgError(err, "trip")
	}
	if t.Hotels, err = s.hotels(ctx, "WHERE trip_id = $1 ORDER BY id", id); err != nil {
		return models.Trip{}, err
	}
	if t.Flights, err = s.flights(ctx, id); err != nil {
		return models.Trip{}, err
	}
	if t.Activities, err = s.activities(ctx, id); err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

// UpdateTrip writes the mutable trip scalars. Entries are not touched.
func (s *Store) UpdateTrip(ctx context.Context, t models.Trip) (models.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := s.pool.QueryRow(ctx, `
		UPDATE trips
		SET trip_name = $2, length_in_days = $3, start_date = $4, adults = $5,
			is_published = $6, photo_url = $7, description = $8, updated_at = now()
		WHERE id = $1
		RETURNING `+tripColumns,
		t.ID, t.Name, t.LengthInDays, t.StartDate, t.Adults, t.IsPublished, t.PhotoURL, t.Description)
	updated, err := scanTrip(row)
	if err != nil {
		return models.Trip{}, mapPgError(err, "trip")
	}
	updated.Hotels, updated.Flights, updated.Activities = t.Hotels, t.Flights, t.Activities
	return updated, nil
}

// DeleteTrip removes a trip and, through the foreign keys, its entries
func (s *Store) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tag, err := s.pool.Exec(ctx, "DELETE FROM trips WHERE id = $1", id)
	if err != nil {
		return mapPgError(err, "trip")
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.KindNotFound, "trip not found")
	}
	return nil
}
