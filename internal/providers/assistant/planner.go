package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/models"
)

const DefaultModel = "gemini-1.5-flash"

// Config selects the Gemini model used for itinerary proposals
type Config struct {
	APIKey          string
	Model           string
	Temperature     float32
	DefaultRadiusKM float64
}

// Planner turns a free-text request into per-day hotel search parameters
type Planner struct {
	client   *genai.Client
	generate func(ctx context.Context, prompt string) (string, error)
	radius   float64
}

// New creates a Planner backed by the Gemini API
func New(ctx context.Context, cfg Config) (*Planner, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	name := cfg.Model
	if name == "" {
		name = DefaultModel
	}
	model := client.GenerativeModel(name)
	model.SetTemperature(cfg.Temperature)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = genai.NewUserContent(genai.Text(
		"You plan hotel stays for a multi-day trip. Answer only with a JSON array."))

	p := &Planner{client: client, radius: cfg.DefaultRadiusKM}
	p.generate = func(ctx context.Context, prompt string) (string, error) {
		res, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", apperror.Wrap(apperror.KindUpstreamUnavailable, err, "gemini request failed")
		}
		var sb strings.Builder
		if len(res.Candidates) > 0 && res.Candidates[0].Content != nil {
			for _, part := range res.Candidates[0].Content.Parts {
				if txt, ok := part.(genai.Text); ok {
					sb.WriteString(string(txt))
				}
			}
		}
		return sb.String(), nil
	}
	if p.radius <= 0 {
		p.radius = 5
	}
	return p, nil
}

// Close releases the underlying client
func (p *Planner) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

// Plan asks the model for day hotel searches and validates them against trip
func (p *Planner) Plan(ctx context.Context, trip models.Trip, message string) ([]models.DayHotelSearch, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperror.New(apperror.KindInvalidEntry, "message is required")
	}
	text, err := p.generate(ctx, buildPrompt(trip, message))
	if err != nil {
		return nil, err
	}
	searches, err := ParseDaySearches(text, trip, p.radius)
	if err != nil {
		log.Warn().Err(err).Str("trip_id", trip.ID.String()).Int("reply_bytes", len(text)).Msg("assistant reply rejected")
		return nil, err
	}
	log.Info().Str("trip_id", trip.ID.String()).Int("items", len(searches)).Msg("assistant proposal parsed")
	return searches, nil
}

func buildPrompt(trip models.Trip, message string) string {
	amenities := make([]string, len(models.Amenities))
	for i, a := range models.Amenities {
		amenities[i] = "'" + string(a) + "'"
	}

	var existing strings.Builder
	for _, h := range trip.Hotels {
		fmt.Fprintf(&existing, "- days %d to %d: %s\n", h.RelativeCheckInDay, h.RelativeCheckOutDay-1, models.HotelEvent(h).Title())
	}
	if existing.Len() == 0 {
		existing.WriteString("- none yet\n")
	}

	return fmt.Sprintf(`The trip %q starts on %s and lasts %d days (relative days 0 to %d) for %d adults.
Current hotels:
%s
Given the user message: %q, generate an itinerary with hotel search parameters for each day of the trip,
or a modification to the existing itinerary if the message asks for one.
Any day named in the message overrides the existing hotel for that day.
Return a JSON array of objects, one per hotel stay, with this structure and no other text:
{
  "relative_days": number[] (consecutive days spent at this hotel, e.g. [2, 3]),
  "adults": number,
  "search_latitude": number,
  "search_longitude": number,
  "search_radius": number,
  "search_radius_unit": "KM" | "MI",
  "allowed_chain_codes": string[],
  "allowed_ratings": number[] (1 to 5),
  "required_amenities": (%s)[],
  "priority": "PRICE" | "DISTANCE" | "RATING" | "CLOSESTNAME"
}`,
		trip.Name, itinerary.CivilDate(trip.StartDate).Format("2006-01-02"), trip.LengthInDays, trip.LengthInDays-1,
		max(trip.Adults, 1), existing.String(), message, strings.Join(amenities, " | "))
}

// ExtractJSONArray cuts the text between the first '[' and the last ']'
func ExtractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseDaySearches decodes and validates a model reply. Missing optional
// fields get defaults; any invalid item rejects the whole reply.
func ParseDaySearches(text string, trip models.Trip, defaultRadius float64) ([]models.DayHotelSearch, error) {
	raw, ok := ExtractJSONArray(text)
	if !ok {
		return nil, apperror.New(apperror.KindInvalidEntry, "assistant reply contains no JSON array")
	}
	var items []models.DayHotelSearch
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidEntry, err, "assistant reply is not a valid hotel search list")
	}

	for i := range items {
		if err := normalize(&items[i], trip, defaultRadius); err != nil {
			return nil, apperror.New(apperror.KindInvalidEntry, fmt.Sprintf("item %d: %s", i, err))
		}
	}
	return items, nil
}

func normalize(s *models.DayHotelSearch, trip models.Trip, defaultRadius float64) error {
	if len(s.RelativeDays) == 0 {
		return fmt.Errorf("relative_days is empty")
	}
	sort.Ints(s.RelativeDays)
	for i, d := range s.RelativeDays {
		if !trip.InRange(d) {
			return fmt.Errorf("day %d outside trip of %d days", d, trip.LengthInDays)
		}
		if i > 0 && d != s.RelativeDays[i-1]+1 {
			return fmt.Errorf("relative_days %v are not consecutive", s.RelativeDays)
		}
	}
	if s.Adults <= 0 {
		s.Adults = max(trip.Adults, 1)
	}
	if s.SearchLatitude == nil || s.SearchLongitude == nil {
		return fmt.Errorf("search_latitude and search_longitude are required")
	}
	if s.SearchRadius == nil || *s.SearchRadius <= 0 {
		r := defaultRadius
		s.SearchRadius = &r
	}
	if s.SearchRadiusUnit == "" {
		s.SearchRadiusUnit = models.RadiusKM
	}
	if !s.SearchRadiusUnit.Valid() {
		return fmt.Errorf("search_radius_unit %q must be KM or MI", s.SearchRadiusUnit)
	}
	if s.Priority == "" {
		s.Priority = models.PriorityPrice
	}
	if !s.Priority.Valid() {
		return fmt.Errorf("unknown priority %q", s.Priority)
	}
	if s.Priority == models.PriorityClosestName {
		// the model has no field for a hotel name
		s.Priority = models.PriorityRating
	}
	for _, r := range s.AllowedRatings {
		if r < 1 || r > 5 {
			return fmt.Errorf("allowed rating %d outside 1..5", r)
		}
	}
	for _, a := range s.RequiredAmenities {
		if !a.Valid() {
			return fmt.Errorf("unknown amenity %q", a)
		}
	}
	return nil
}
