package matcher

import (
	"errors"
	"math"
	"testing"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
)

func f(v float64) *float64 { return &v }
func s(v string) *string    { return &v }

func TestSelectBestPrice(t *testing.T) {
	candidates := []Candidate{
		{ID: "A", Price: f(120)},
		{ID: "B", Price: f(95)},
		{ID: "C", Price: f(95)},
	}
	got, err := SelectBest(candidates, models.PriorityPrice, Context{})
	if err != nil {
		t.Fatalf("SelectBest failed: %v", err)
	}
	if got.ID != "B" {
		t.Errorf("SelectBest(PRICE) = %s, want B", got.ID)
	}
}

func TestSelectBestPriceUnpricedRankLast(t *testing.T) {
	candidates := []Candidate{
		{ID: "A"},
		{ID: "B", Price: f(300)},
		{ID: "C"},
	}
	got, _ := SelectBest(candidates, models.PriorityPrice, Context{})
	if got.ID != "B" {
		t.Errorf("SelectBest(PRICE) = %s, want B", got.ID)
	}

	got, _ = SelectBest([]Candidate{{ID: "X"}, {ID: "Y"}}, models.PriorityPrice, Context{})
	if got.ID != "X" {
		t.Errorf("SelectBest(PRICE, none priced) = %s, want X", got.ID)
	}
}

func TestSelectBestRating(t *testing.T) {
	candidates := []Candidate{
		{ID: "A", Rating: f(3)},
		{ID: "B"},
		{ID: "C", Rating: f(5)},
		{ID: "D", Rating: f(5)},
	}
	got, err := SelectBest(candidates, models.PriorityRating, Context{})
	if err != nil {
		t.Fatalf("SelectBest failed: %v", err)
	}
	if got.ID != "C" {
		t.Errorf("SelectBest(RATING) = %s, want C", got.ID)
	}
}

func TestSelectBestDistance(t *testing.T) {
	candidates := []Candidate{
		{ID: "far", Latitude: 38.80, Longitude: -9.30},
		{ID: "near", Latitude: 38.711, Longitude: -9.139},
		{ID: "mid", Latitude: 38.74, Longitude: -9.15},
	}
	ctx := Context{SearchLatitude: f(38.7107), SearchLongitude: f(-9.1365)}
	got, err := SelectBest(candidates, models.PriorityDistance, ctx)
	if err != nil {
		t.Fatalf("SelectBest failed: %v", err)
	}
	if got.ID != "near" {
		t.Errorf("SelectBest(DISTANCE) = %s, want near", got.ID)
	}
}

func TestSelectBestClosestName(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Name: "Hilton Garden Inn"},
		{ID: "2", Name: "Hilton Gardens"},
		{ID: "3", Name: "Marriott"},
	}
	got, err := SelectBest(candidates, models.PriorityClosestName, Context{IdealHotelName: s("Hilton Gardens Inn")})
	if err != nil {
		t.Fatalf("SelectBest failed: %v", err)
	}
	if got.Name != "Hilton Garden Inn" {
		t.Errorf("SelectBest(CLOSESTNAME) = %q, want %q", got.Name, "Hilton Garden Inn")
	}
}

func TestSelectBestEmpty(t *testing.T) {
	ctx := Context{SearchLatitude: f(0), SearchLongitude: f(0), IdealHotelName: s("x")}
	for _, p := range []models.Priority{models.PriorityPrice, models.PriorityDistance, models.PriorityRating, models.PriorityClosestName} {
		if _, err := SelectBest(nil, p, ctx); !errors.Is(err, apperror.ErrNoCandidates) {
			t.Errorf("SelectBest(nil, %s) error = %v, want NoCandidates", p, err)
		}
	}
}

func TestSelectBestMissingContext(t *testing.T) {
	candidates := []Candidate{{ID: "A", Name: "A"}}
	tests := []struct {
		priority models.Priority
		ctx      Context
	}{
		{models.PriorityDistance, Context{}},
		{models.PriorityDistance, Context{SearchLatitude: f(1)}},
		{models.PriorityClosestName, Context{}},
		{models.PriorityClosestName, Context{IdealHotelName: s("  ")}},
	}
	for _, tt := range tests {
		if _, err := SelectBest(candidates, tt.priority, tt.ctx); !errors.Is(err, apperror.ErrMissingContext) {
			t.Errorf("SelectBest(%s) error = %v, want MissingContext", tt.priority, err)
		}
	}
	if _, err := SelectBest(candidates, "CHEAPEST", Context{}); !errors.Is(err, apperror.ErrInvalidEntry) {
		t.Errorf("SelectBest(unknown) error = %v, want InvalidEntry", err)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"Hilton Gardens Inn", "Hilton Garden Inn", 1},
		{"Hilton Gardens Inn", "Hilton Gardens", 4},
		{"Hilton", "hilton", 1},
		{"café", "cafe", 1},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Levenshtein(tt.b, tt.a); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestHaversineKM(t *testing.T) {
	// Lisbon to Porto is about 274 km
	got := HaversineKM(38.7223, -9.1393, 41.1579, -8.6291)
	if math.Abs(got-274) > 3 {
		t.Errorf("HaversineKM(Lisbon, Porto) = %.1f, want ~274", got)
	}
	if d := HaversineKM(10, 10, 10, 10); d != 0 {
		t.Errorf("HaversineKM(same point) = %f, want 0", d)
	}
}
