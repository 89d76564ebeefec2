package resolver

import (
	"context"
	"strings"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/models"
)

func (r *Resolver) resolveFlight(ctx context.Context, trip models.Trip, d FlightDraft) (models.FlightEntry, error) {
	origin, err := r.cityCode(ctx, d.DepartureCityCode, d.DepartureCity)
	if err != nil {
		return models.FlightEntry{}, err
	}
	destination, err := r.cityCode(ctx, d.DestinationCityCode, d.DestinationCity)
	if err != nil {
		return models.FlightEntry{}, err
	}

	f := models.FlightEntry{
		TripID:               trip.ID,
		DepartureCityCode:    origin,
		DestinationCityCode:  destination,
		RelativeDepartureDay: d.DepartureDay,
		RelativeReturnDay:    d.ReturnDay,
		TravelClass:          d.TravelClass,
		NonStop:              d.NonStop,
		Currency:             strings.ToUpper(strings.TrimSpace(d.Currency)),
		MaxPrice:             d.MaxPrice,
		IncludedAirlineCodes: upperAll(d.IncludedAirlineCodes),
		ExcludedAirlineCodes: upperAll(d.ExcludedAirlineCodes),
	}
	if f.TravelClass == "" {
		f.TravelClass = models.ClassEconomy
	}
	if f.Currency == "" {
		f.Currency = "USD"
	}
	if !d.SearchOffers {
		return f, nil
	}
	if r.deps.Flights == nil {
		return f, apperror.New(apperror.KindUpstreamUnavailable, "flight offer search is not configured")
	}

	q := models.FlightQuery{
		Origin:               origin,
		Destination:          destination,
		DepartureDate:        itinerary.ToAbsoluteDate(f.RelativeDepartureDay, trip.StartDate),
		Adults:               max(trip.Adults, 1),
		TravelClass:          f.TravelClass,
		NonStop:              f.NonStop,
		Currency:             f.Currency,
		MaxPrice:             f.MaxPrice,
		IncludedAirlineCodes: f.IncludedAirlineCodes,
		ExcludedAirlineCodes: f.ExcludedAirlineCodes,
	}
	if f.RelativeReturnDay != nil {
		ret := itinerary.ToAbsoluteDate(*f.RelativeReturnDay, trip.StartDate)
		q.ReturnDate = &ret
	}

	var offers []matcher.Candidate
	err = r.call(ctx, "flight offers", func(ctx context.Context) error {
		var err error
		offers, err = r.deps.Flights.FlightOffers(ctx, q)
		return err
	})
	if err != nil {
		return f, err
	}
	best, err := matcher.SelectBest(offers, models.PriorityPrice, matcher.Context{})
	if err != nil {
		return f, err
	}
	f.OfferPrice = best.Price
	if best.Name != "" {
		carrier := best.Name
		f.CarrierCode = &carrier
	}
	if best.Currency != "" {
		f.Currency = best.Currency
	}
	return f, nil
}

// cityCode returns code when given, otherwise finds the airport nearest to city
func (r *Resolver) cityCode(ctx context.Context, code, city string) (string, error) {
	if code = strings.TrimSpace(code); code != "" {
		return strings.ToUpper(code), nil
	}
	var place models.Place
	err := r.call(ctx, "airport search", func(ctx context.Context) error {
		var err error
		place, err = r.deps.Places.SearchPlace(ctx, "airport in "+strings.TrimSpace(city))
		return err
	})
	if err != nil {
		return "", err
	}
	err = r.call(ctx, "airport code", func(ctx context.Context) error {
		var err error
		code, err = r.deps.Airports.AirportCode(ctx, place.Coordinates)
		return err
	})
	if err != nil {
		return "", err
	}
	return strings.ToUpper(code), nil
}

func upperAll(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	return out
}
