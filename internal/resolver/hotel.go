package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/itinerary"
	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/models"
)

func (r *Resolver) resolveHotel(ctx context.Context, trip models.Trip, d HotelDraft) (models.HotelEntry, error) {
	h := models.HotelEntry{
		TripID:              trip.ID,
		RelativeCheckInDay:  d.CheckInDay,
		RelativeCheckOutDay: d.checkOut(),
	}
	if name := strings.TrimSpace(d.IdealHotelName); name != "" {
		h.IdealHotelName = &name
	}
	if addr := strings.TrimSpace(d.KnownAddress); addr != "" {
		h.Address = &addr
	}
	adults := d.Adults
	if adults == 0 {
		adults = max(trip.Adults, 1)
	}
	offerQuery := models.HotelOfferQuery{
		Adults:   adults,
		CheckIn:  itinerary.ToAbsoluteDate(h.RelativeCheckInDay, trip.StartDate),
		CheckOut: itinerary.ToAbsoluteDate(h.RelativeCheckOutDay, trip.StartDate),
	}

	if id := strings.TrimSpace(d.AmadeusHotelID); id != "" {
		h.AmadeusHotelID = &id
		h.SearchDescriptor = d.Descriptor
		offerQuery.HotelIDs = []string{id}
		r.describeKnownHotel(ctx, &h, offerQuery)
		return h, nil
	}

	desc, err := r.locate(ctx, d, &h)
	if err != nil {
		return h, err
	}
	h.SearchDescriptor = desc
	if d.Defer {
		return h, nil
	}

	var candidates []matcher.Candidate
	err = r.call(ctx, "hotel search", func(ctx context.Context) error {
		var err error
		candidates, err = r.deps.Hotels.HotelsByGeocode(ctx, desc)
		return err
	})
	if err != nil {
		return h, err
	}
	if len(candidates) == 0 {
		return h, apperror.New(apperror.KindNoCandidates, "no hotels match the search")
	}

	if desc.Priority == models.PriorityPrice || desc.Priority == models.PriorityRating {
		offerQuery.HotelIDs = make([]string, len(candidates))
		for i, c := range candidates {
			offerQuery.HotelIDs[i] = c.ID
		}
		if err := r.attachOffers(ctx, candidates, offerQuery); err != nil {
			return h, err
		}
	}

	best, err := matcher.SelectBest(candidates, desc.Priority, matcher.Context{
		SearchLatitude:  desc.SearchLatitude,
		SearchLongitude: desc.SearchLongitude,
		IdealHotelName:  h.IdealHotelName,
	})
	if err != nil {
		return h, err
	}
	applyCandidate(&h, best)
	r.attachPhoto(ctx, &h)
	return h, nil
}

// locate fills in the search point and defaults of the descriptor
func (r *Resolver) locate(ctx context.Context, d HotelDraft, h *models.HotelEntry) (models.SearchDescriptor, error) {
	desc := d.Descriptor
	switch {
	case strings.TrimSpace(d.Address) != "":
		var at models.Coordinates
		err := r.call(ctx, "geocode", func(ctx context.Context) error {
			var err error
			at, err = r.deps.Geocoder.Geocode(ctx, d.Address)
			return err
		})
		if err != nil {
			return desc, err
		}
		addr := strings.TrimSpace(d.Address)
		h.Address = &addr
		desc.SearchLatitude, desc.SearchLongitude = &at.Latitude, &at.Longitude
		if desc.Priority == "" && h.IdealHotelName == nil {
			desc.Priority = models.PriorityDistance
		}
	case strings.TrimSpace(d.CityName) != "":
		var place models.Place
		err := r.call(ctx, "place search", func(ctx context.Context) error {
			var err error
			place, err = r.deps.Places.SearchPlace(ctx, d.CityName)
			return err
		})
		if err != nil {
			return desc, err
		}
		lat, lng := place.Latitude, place.Longitude
		desc.SearchLatitude, desc.SearchLongitude = &lat, &lng
	case !desc.Complete():
		return desc, apperror.New(apperror.KindMissingContext, "hotel search needs coordinates and a radius")
	}

	if desc.SearchRadius == nil || *desc.SearchRadius <= 0 {
		radius := r.radius
		desc.SearchRadius = &radius
	}
	if desc.SearchRadiusUnit == "" {
		desc.SearchRadiusUnit = models.RadiusKM
	}
	if desc.Priority == "" {
		if h.IdealHotelName != nil {
			desc.Priority = models.PriorityClosestName
		} else {
			desc.Priority = models.PriorityPrice
		}
	}
	return desc, nil
}

// attachOffers copies offer prices onto candidates by hotel id. Hotels
// without an offer stay unpriced and rank last.
func (r *Resolver) attachOffers(ctx context.Context, candidates []matcher.Candidate, q models.HotelOfferQuery) error {
	var offers []matcher.Candidate
	err := r.call(ctx, "hotel offers", func(ctx context.Context) error {
		var err error
		offers, err = r.deps.Hotels.HotelOffers(ctx, q)
		return err
	})
	if errors.Is(err, apperror.ErrNoCandidates) {
		return nil
	}
	if err != nil {
		return err
	}

	byID := make(map[string]matcher.Candidate, len(offers))
	for _, o := range offers {
		byID[o.ID] = o
	}
	for i := range candidates {
		o, ok := byID[candidates[i].ID]
		if !ok {
			continue
		}
		candidates[i].Price = o.Price
		candidates[i].Currency = o.Currency
		if candidates[i].Rating == nil {
			candidates[i].Rating = o.Rating
		}
	}
	return nil
}

// describeKnownHotel fills name and price for a hotel picked by id. It is
// best-effort: the id alone is a valid resolution.
func (r *Resolver) describeKnownHotel(ctx context.Context, h *models.HotelEntry, q models.HotelOfferQuery) {
	var offers []matcher.Candidate
	err := r.call(ctx, "hotel offers", func(ctx context.Context) error {
		var err error
		offers, err = r.deps.Hotels.HotelOffers(ctx, q)
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("hotel_id", *h.AmadeusHotelID).Msg("hotel offer lookup failed")
		return
	}
	for _, o := range offers {
		if o.ID == *h.AmadeusHotelID {
			applyCandidate(h, o)
			break
		}
	}
	r.attachPhoto(ctx, h)
}

func applyCandidate(h *models.HotelEntry, c matcher.Candidate) {
	id := c.ID
	h.AmadeusHotelID = &id
	if c.Name != "" {
		name := c.Name
		h.HotelName = &name
	}
	if c.Latitude != 0 || c.Longitude != 0 {
		lat, lng := c.Latitude, c.Longitude
		h.HotelLatitude, h.HotelLongitude = &lat, &lng
	}
	if c.Price != nil {
		price := *c.Price
		h.PriceTotal = &price
	}
	if c.Currency != "" {
		cur := c.Currency
		h.Currency = &cur
	}
}

func (r *Resolver) attachPhoto(ctx context.Context, h *models.HotelEntry) {
	if r.deps.Photos == nil || h.HotelName == nil {
		return
	}
	var photos []models.Photo
	err := r.call(ctx, "photos", func(ctx context.Context) error {
		var err error
		photos, err = r.deps.Photos.Photos(ctx, *h.HotelName, 1)
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("hotel", *h.HotelName).Msg("hotel photo lookup failed")
		return
	}
	if len(photos) > 0 {
		url := photos[0].URL
		h.PhotoURL = &url
	}
}
