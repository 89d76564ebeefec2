package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"TRIPPLANNER_BACK-END/internal/apperror"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperror.Kind
	}{
		{"no rows", pgx.ErrNoRows, apperror.KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperror.KindNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, apperror.KindPersistenceConflict},
		{"foreign key", &pgconn.PgError{Code: "23503"}, apperror.KindPersistenceConflict},
		{"check", &pgconn.PgError{Code: "23514"}, apperror.KindInvalidEntry},
		{"bad text representation", &pgconn.PgError{Code: "22P02"}, apperror.KindInvalidEntry},
		{"deadline", context.DeadlineExceeded, apperror.KindUpstreamUnavailable},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, apperror.KindUnknown},
		{"plain", errors.New("boom"), apperror.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperror.KindOf(mapPgError(tt.err, "trip")); got != tt.want {
				t.Errorf("kind = %s, want %s", got, tt.want)
			}
		})
	}

	if mapPgError(nil, "trip") != nil {
		t.Error("nil error should stay nil")
	}
}

func TestSaveErrorOnMissingRow(t *testing.T) {
	if got := apperror.KindOf(saveError(pgx.ErrNoRows, 42, "hotel entry")); got != apperror.KindPersistenceConflict {
		t.Errorf("update of missing row = %s, want PersistenceConflict", got)
	}
	if got := apperror.KindOf(saveError(&pgconn.PgError{Code: "23503"}, 0, "hotel entry")); got != apperror.KindPersistenceConflict {
		t.Errorf("insert into deleted trip = %s, want PersistenceConflict", got)
	}
	if saveError(nil, 1, "hotel entry") != nil {
		t.Error("nil error should stay nil")
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	body, err := migrations.ReadFile("migrations/001_init.sql")
	if err != nil {
		t.Fatalf("migration not embedded: %v", err)
	}
	for _, table := range []string{"users", "trips", "hotel_entries", "flight_entries", "activity_entries"} {
		if !strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("migration does not create %s", table)
		}
	}
}

func TestMigrationsAreGooseAnnotated(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(names) < 2 {
		t.Fatalf("found %d migrations, want at least 2", len(names))
	}
	for i, name := range names {
		want := fmt.Sprintf("migrations/%03d_", i+1)
		if !strings.HasPrefix(name, want) {
			t.Errorf("migration %s is out of sequence, want prefix %s", name, want)
		}
		body, _ := migrations.ReadFile(name)
		if !strings.HasPrefix(string(body), "-- +goose Up\n") || !strings.Contains(string(body), "-- +goose Down\n") {
			t.Errorf("migration %s lacks goose Up/Down annotations", name)
		}
	}

	body, _ := migrations.ReadFile("migrations/002_sweep_attempts.sql")
	for _, col := range []string{"sweep_attempts", "last_swept_at"} {
		if !strings.Contains(string(body), "ADD COLUMN IF NOT EXISTS "+col) {
			t.Errorf("sweep migration does not add %s", col)
		}
	}
}

func TestNonNil(t *testing.T) {
	var codes []string
	if got := nonNil(codes); got == nil || len(got) != 0 {
		t.Errorf("nonNil(nil) = %#v, want empty slice", got)
	}
	if optional("") != nil || *optional("KM") != "KM" {
		t.Error("optional should map empty to nil")
	}
}
