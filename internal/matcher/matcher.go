package matcher

import (
	"fmt"
	"strings"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
)

// Candidate is an inventory item returned by a hotel or flight search
type Candidate struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Rating    *float64 `json:"rating,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Currency  string   `json:"currency,omitempty"`
}

// Context carries the inputs some priorities need
type Context struct {
	SearchLatitude  *float64
	SearchLongitude *float64
	IdealHotelName  *string
}

// SelectBest picks exactly one candidate according to priority.
// Ties go to the earliest candidate in input order. Candidates lacking the
// ranked attribute (no price for PRICE, no rating for RATING) rank after
// every candidate that has it.
func SelectBest(candidates []Candidate, priority models.Priority, ctx Context) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, apperror.New(apperror.KindNoCandidates, "no candidates matched the search")
	}

	var score func(Candidate) (float64, bool)
	switch priority {
	case models.PriorityPrice:
		score = func(c Candidate) (float64, bool) {
			if c.Price == nil {
				return 0, false
			}
			return *c.Price, true
		}
	case models.PriorityRating:
		score = func(c Candidate) (float64, bool) {
			if c.Rating == nil {
				return 0, false
			}
			return -*c.Rating, true
		}
	case models.PriorityDistance:
		if ctx.SearchLatitude == nil || ctx.SearchLongitude == nil {
			return Candidate{}, apperror.New(apperror.KindMissingContext, "DISTANCE priority requires search coordinates")
		}
		lat, lon := *ctx.SearchLatitude, *ctx.SearchLongitude
		score = func(c Candidate) (float64, bool) {
			return HaversineKM(lat, lon, c.Latitude, c.Longitude), true
		}
	case models.PriorityClosestName:
		if ctx.IdealHotelName == nil || strings.TrimSpace(*ctx.IdealHotelName) == "" {
			return Candidate{}, apperror.New(apperror.KindMissingContext, "CLOSESTNAME priority requires ideal_hotel_name")
		}
		ideal := *ctx.IdealHotelName
		score = func(c Candidate) (float64, bool) {
			return float64(Levenshtein(ideal, c.Name)), true
		}
	default:
		return Candidate{}, apperror.New(apperror.KindInvalidEntry, fmt.Sprintf("unknown priority %q", priority))
	}

	best := 0
	bestScore, bestOK := score(candidates[0])
	for i := 1; i < len(candidates); i++ {
		s, ok := score(candidates[i])
		if !ok {
			continue
		}
		if !bestOK || s < bestScore {
			best, bestScore, bestOK = i, s, true
		}
	}
	return candidates[best], nil
}
