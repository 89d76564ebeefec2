package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/dto"
)

type sample struct {
	Name     string   `json:"name" validate:"required"`
	Code     string   `json:"code,omitempty" validate:"omitempty,iata"`
	Priority string   `json:"priority,omitempty" validate:"omitempty,priority"`
	Unit     string   `json:"unit,omitempty" validate:"omitempty,radius_unit"`
	Class    string   `json:"class,omitempty" validate:"omitempty,travel_class"`
	Perks    []string `json:"perks,omitempty" validate:"omitempty,dive,amenity"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name string
		in   sample
		want string
	}{
		{"valid", sample{Name: "x", Code: "lis", Priority: "PRICE", Unit: "MI", Class: "ECONOMY", Perks: []string{"WIFI"}}, ""},
		{"missing name", sample{}, "name failed required"},
		{"bad code", sample{Name: "x", Code: "LISB"}, "code failed iata"},
		{"bad priority", sample{Name: "x", Priority: "CHEAP"}, "priority failed priority"},
		{"bad unit", sample{Name: "x", Unit: "FT"}, "unit failed radius_unit"},
		{"bad class", sample{Name: "x", Class: "COACH"}, "class failed travel_class"},
		{"bad amenity", sample{Name: "x", Perks: []string{"HELIPAD"}}, "perks[0] failed amenity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.in)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDecodeJSONRequest(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ok     bool
		errMsg string
	}{
		{"valid", `{"name":"Lisbon"}`, true, ""},
		{"empty", ``, false, "request body is empty"},
		{"unknown field", `{"name":"x","extra":1}`, false, "unknown field"},
		{"fails validation", `{"code":"LIS"}`, false, "name failed required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst sample
			if got := DecodeJSONRequest(rec, req, &dst); got != tt.ok {
				t.Fatalf("DecodeJSONRequest = %v, want %v", got, tt.ok)
			}
			if tt.ok {
				return
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var body dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(body.Message, tt.errMsg) {
				t.Errorf("message = %q, want it to contain %q", body.Message, tt.errMsg)
			}
		})
	}
}

func TestWriteAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		status     int
		kind       string
		retryAfter string
		message    string
	}{
		{"upstream", apperror.New(apperror.KindUpstreamUnavailable, "amadeus timed out"), http.StatusServiceUnavailable, "UpstreamUnavailable", "5", "amadeus timed out"},
		{"no candidates", apperror.New(apperror.KindNoCandidates, "no hotels"), http.StatusUnprocessableEntity, "NoCandidates", "", "no hotels"},
		{"conflict", apperror.New(apperror.KindPersistenceConflict, "gone"), http.StatusConflict, "PersistenceConflict", "", "gone"},
		{"plain error hides detail", errors.New("pq: connection refused"), http.StatusInternalServerError, "Unknown", "", "Something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteAppError(rec, tt.err)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := rec.Header().Get("Retry-After"); got != tt.retryAfter {
				t.Errorf("Retry-After = %q, want %q", got, tt.retryAfter)
			}
			var body dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Kind != tt.kind || body.Message != tt.message {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestUserContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := GetUserIDFromContext(req.Context()); ok {
		t.Fatal("empty context reported a user")
	}
	id := uuid.New()
	ctx := WithUser(req.Context(), id, "a@b.c")
	got, ok := GetUserIDFromContext(ctx)
	if !ok || got != id {
		t.Errorf("GetUserIDFromContext = %v, %v", got, ok)
	}
	if _, ok := GetUserIDFromContext(WithUser(req.Context(), uuid.Nil, "")); ok {
		t.Error("nil uuid accepted")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatal(err)
	}
	if FormatDate(d) != "2024-02-29" {
		t.Errorf("round trip = %s", FormatDate(d))
	}
	if _, err := ParseDate("29/02/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}
