package itinerary

import (
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	starts := []time.Time{
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 8, 23, 30, 0, 0, ny),  // crosses spring-forward
		time.Date(2024, 10, 30, 12, 0, 0, 0, ny), // crosses fall-back
		time.Date(2023, 12, 30, 5, 0, 0, 0, time.UTC),
	}
	for _, start := range starts {
		for d := 0; d < 40; d++ {
			abs := ToAbsoluteDate(d, start)
			if got := ToRelativeDay(abs, start); got != d {
				t.Fatalf("ToRelativeDay(ToAbsoluteDate(%d, %v)) = %d", d, start, got)
			}
		}
	}
}

func TestToRelativeDayIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC), 0},
		{time.Date(2024, 6, 2, 0, 1, 0, 0, time.UTC), 1},
		{time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC), -1},
		{time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC), 30},
	}
	for _, tt := range tests {
		if got := ToRelativeDay(tt.at, start); got != tt.want {
			t.Errorf("ToRelativeDay(%v) = %d, want %d", tt.at, got, tt.want)
		}
	}
}

func TestToAbsoluteDate(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got := ToAbsoluteDate(1, start)
	want := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ToAbsoluteDate(1) = %v, want %v", got, want)
	}
}

func TestDateRange(t *testing.T) {
	start := time.Date(2024, 2, 28, 15, 0, 0, 0, time.UTC)
	got := DateRange(start, 3)
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	if len(got) != len(want) {
		t.Fatalf("DateRange len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if s := got[i].Format("2006-01-02"); s != want[i] {
			t.Errorf("DateRange[%d] = %s, want %s", i, s, want[i])
		}
	}
	if DateRange(start, 0) != nil {
		t.Errorf("DateRange(start, 0) should be nil")
	}
}
