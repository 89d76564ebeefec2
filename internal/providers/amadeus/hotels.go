package amadeus

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/models"
)

const dateLayout = "2006-01-02"

type hotelListResponse struct {
	Data []struct {
		HotelID string      `json:"hotelId"`
		Name    string      `json:"name"`
		Rating  json.Number `json:"rating"`
		GeoCode struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"geoCode"`
	} `json:"data"`
}

func (r hotelListResponse) candidates() []matcher.Candidate {
	out := make([]matcher.Candidate, 0, len(r.Data))
	for _, h := range r.Data {
		cand := matcher.Candidate{
			ID:        h.HotelID,
			Name:      h.Name,
			Latitude:  h.GeoCode.Latitude,
			Longitude: h.GeoCode.Longitude,
		}
		if v, err := h.Rating.Float64(); err == nil && v > 0 {
			cand.Rating = &v
		}
		out = append(out, cand)
	}
	return out
}

type hotelOffersResponse struct {
	Data []struct {
		Available bool `json:"available"`
		Hotel     struct {
			HotelID   string  `json:"hotelId"`
			Name      string  `json:"name"`
			Rating    string  `json:"rating"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"hotel"`
		Offers []struct {
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

// HotelsByGeocode lists hotels around the descriptor's search point
func (c *Client) HotelsByGeocode(ctx context.Context, d models.SearchDescriptor) ([]matcher.Candidate, error) {
	if !d.Complete() {
		return nil, apperror.New(apperror.KindMissingContext, "hotel search needs coordinates and a radius")
	}
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(*d.SearchLatitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(*d.SearchLongitude, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(max(int(*d.SearchRadius+0.5), 1)))
	q.Set("radiusUnit", d.SearchRadiusUnit.AmadeusUnit())
	if len(d.AllowedChainCodes) > 0 {
		q.Set("chainCodes", strings.ToUpper(strings.Join(d.AllowedChainCodes, ",")))
	}
	if len(d.AllowedRatings) > 0 {
		q.Set("ratings", joinInts(d.AllowedRatings))
	}
	if len(d.RequiredAmenities) > 0 {
		amenities := make([]string, len(d.RequiredAmenities))
		for i, a := range d.RequiredAmenities {
			amenities[i] = string(a)
		}
		q.Set("amenities", strings.Join(amenities, ","))
	}

	var resp hotelListResponse
	if err := c.get(ctx, "/v1/reference-data/locations/hotels/by-geocode", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, apperror.New(apperror.KindNoCandidates, "no hotels within the search radius")
	}
	return resp.candidates(), nil
}

// HotelsByCity lists hotels in the city with the given IATA code
func (c *Client) HotelsByCity(ctx context.Context, cityCode string) ([]matcher.Candidate, error) {
	code := strings.ToUpper(strings.TrimSpace(cityCode))
	if len(code) != 3 {
		return nil, apperror.New(apperror.KindInvalidEntry, "city code must be a 3-letter IATA code")
	}
	var resp hotelListResponse
	if err := c.get(ctx, "/v1/reference-data/locations/hotels/by-city", url.Values{"cityCode": {code}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, apperror.New(apperror.KindNoCandidates, "no hotels listed for "+code)
	}
	return resp.candidates(), nil
}

// HotelOffers returns the best rate per hotel for the first MaxOfferHotels ids
func (c *Client) HotelOffers(ctx context.Context, q models.HotelOfferQuery) ([]matcher.Candidate, error) {
	ids := q.HotelIDs
	if len(ids) == 0 {
		return nil, apperror.New(apperror.KindNoCandidates, "no hotel ids to price")
	}
	if len(ids) > MaxOfferHotels {
		ids = ids[:MaxOfferHotels]
	}
	adults := max(q.Adults, 1)

	params := url.Values{
		"hotelIds":     {strings.Join(ids, ",")},
		"adults":       {strconv.Itoa(adults)},
		"checkInDate":  {q.CheckIn.Format(dateLayout)},
		"checkOutDate": {q.CheckOut.Format(dateLayout)},
		"bestRateOnly": {"true"},
	}

	var resp hotelOffersResponse
	if err := c.get(ctx, "/v3/shopping/hotel-offers", params, &resp); err != nil {
		return nil, err
	}

	out := make([]matcher.Candidate, 0, len(resp.Data))
	for _, item := range resp.Data {
		if !item.Available || len(item.Offers) == 0 {
			continue
		}
		cand := matcher.Candidate{
			ID:        item.Hotel.HotelID,
			Name:      item.Hotel.Name,
			Latitude:  item.Hotel.Latitude,
			Longitude: item.Hotel.Longitude,
			Currency:  item.Offers[0].Price.Currency,
		}
		if p, err := strconv.ParseFloat(item.Offers[0].Price.Total, 64); err == nil && p > 0 {
			cand.Price = &p
		}
		if r, err := strconv.ParseFloat(item.Hotel.Rating, 64); err == nil && r > 0 {
			cand.Rating = &r
		}
		out = append(out, cand)
	}
	if len(out) == 0 {
		return nil, apperror.New(apperror.KindNoCandidates, "no hotel offers available for the stay")
	}
	return out, nil
}
