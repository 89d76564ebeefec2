package amadeus

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/matcher"
	"TRIPPLANNER_BACK-END/internal/models"
)

const maxFlightOffers = 10

type flightOffersResponse struct {
	Data []struct {
		ID    string `json:"id"`
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Segments []struct {
				CarrierCode string `json:"carrierCode"`
			} `json:"segments"`
		} `json:"itineraries"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	} `json:"data"`
}

// FlightOffers searches priced offers. Each candidate's Name is the
// marketing carrier of the first segment.
func (c *Client) FlightOffers(ctx context.Context, q models.FlightQuery) ([]matcher.Candidate, error) {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate.Format(dateLayout))
	if q.ReturnDate != nil {
		params.Set("returnDate", q.ReturnDate.Format(dateLayout))
	}
	params.Set("adults", strconv.Itoa(max(q.Adults, 1)))
	if q.TravelClass != "" {
		params.Set("travelClass", string(q.TravelClass))
	}
	if q.NonStop {
		params.Set("nonStop", "true")
	}
	if q.Currency != "" {
		params.Set("currencyCode", q.Currency)
	}
	if q.MaxPrice != nil {
		params.Set("maxPrice", strconv.Itoa(*q.MaxPrice))
	}
	if len(q.IncludedAirlineCodes) > 0 {
		params.Set("includedAirlineCodes", strings.Join(q.IncludedAirlineCodes, ","))
	}
	if len(q.ExcludedAirlineCodes) > 0 {
		params.Set("excludedAirlineCodes", strings.Join(q.ExcludedAirlineCodes, ","))
	}
	params.Set("max", strconv.Itoa(maxFlightOffers))

	var resp flightOffersResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers", params, &resp); err != nil {
		return nil, err
	}

	out := make([]matcher.Candidate, 0, len(resp.Data))
	for _, offer := range resp.Data {
		price, err := strconv.ParseFloat(offer.Price.GrandTotal, 64)
		if err != nil || price <= 0 {
			continue
		}
		carrier := ""
		if len(offer.Itineraries) > 0 && len(offer.Itineraries[0].Segments) > 0 {
			carrier = offer.Itineraries[0].Segments[0].CarrierCode
		} else if len(offer.ValidatingAirlineCodes) > 0 {
			carrier = offer.ValidatingAirlineCodes[0]
		}
		out = append(out, matcher.Candidate{
			ID:       offer.ID,
			Name:     carrier,
			Price:    &price,
			Currency: offer.Price.Currency,
		})
	}
	if len(out) == 0 {
		return nil, apperror.New(apperror.KindNoCandidates, "no flight offers for "+q.Origin+"-"+q.Destination)
	}
	return out, nil
}
