package googlemaps

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"googlemaps.github.io/maps"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
)

const (
	photoMaxPx         = 400
	maxPhotosPerPlace  = 10
	photoFetchParallel = 4
)

type placeDetailsResponse struct {
	ID     string `json:"id"`
	Photos []struct {
		Name               string `json:"name"`
		AuthorAttributions []struct {
			DisplayName string `json:"displayName"`
		} `json:"authorAttributions"`
	} `json:"photos"`
}

type photoMediaResponse struct {
	PhotoURI string `json:"photoUri"`
}

// Prediction is one place autocomplete suggestion
type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// Geocode resolves a free-text address to the first result's location
func (c *Client) Geocode(ctx context.Context, address string) (models.Coordinates, error) {
	mc, err := c.client()
	if err != nil {
		return models.Coordinates{}, err
	}
	if strings.TrimSpace(address) == "" {
		return models.Coordinates{}, apperror.New(apperror.KindInvalidEntry, "address is required")
	}
	results, err := mc.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return models.Coordinates{}, mapsError(err, "geocode")
	}
	if len(results) == 0 {
		return models.Coordinates{}, apperror.New(apperror.KindGeocodeNotFound, "geocode returned no results")
	}
	loc := results[0].Geometry.Location
	return models.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

// SearchPlace returns the top text search hit for query
func (c *Client) SearchPlace(ctx context.Context, query string) (models.Place, error) {
	mc, err := c.client()
	if err != nil {
		return models.Place{}, err
	}
	resp, err := mc.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return models.Place{}, mapsError(err, "place search")
	}
	if len(resp.Results) == 0 {
		return models.Place{}, apperror.New(apperror.KindGeocodeNotFound, "place search returned no results")
	}
	r := resp.Results[0]
	return models.Place{
		Name:    r.Name,
		Address: r.FormattedAddress,
		PlaceID: r.PlaceID,
		Coordinates: models.Coordinates{
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		},
	}, nil
}

// Photos finds the place by name and returns up to limit photo URLs with
// their author attributions.
func (c *Client) Photos(ctx context.Context, placeName string, limit int) ([]models.Photo, error) {
	if limit <= 0 || limit > maxPhotosPerPlace {
		limit = maxPhotosPerPlace
	}
	mc, err := c.client()
	if err != nil {
		return nil, err
	}

	found, err := mc.FindPlaceFromText(ctx, &maps.FindPlaceFromTextRequest{
		Input:     placeName,
		InputType: maps.FindPlaceFromTextInputTypeTextQuery,
		Fields:    []maps.PlaceSearchFieldMask{maps.PlaceSearchFieldMaskPlaceID},
	})
	if err != nil {
		return nil, mapsError(err, "place lookup")
	}
	if len(found.Candidates) == 0 {
		return nil, apperror.New(apperror.KindGeocodeNotFound, "place not found: "+placeName)
	}

	// photo names and media URIs exist only in Places (New)
	var details placeDetailsResponse
	detailsURL := c.placesURL + "/v1/places/" + url.PathEscape(found.Candidates[0].PlaceID) +
		"?fields=id,displayName,photos"
	if err := c.getJSON(ctx, detailsURL, &details); err != nil {
		return nil, err
	}
	if len(details.Photos) > limit {
		details.Photos = details.Photos[:limit]
	}

	photos := make([]models.Photo, len(details.Photos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(photoFetchParallel)
	for i, p := range details.Photos {
		names := make([]string, len(p.AuthorAttributions))
		for j, a := range p.AuthorAttributions {
			names[j] = a.DisplayName
		}
		photos[i].Attribution = strings.Join(names, ", ")

		i, p := i, p
		g.Go(func() error {
			var media photoMediaResponse
			q := url.Values{
				"maxHeightPx":      {strconv.Itoa(photoMaxPx)},
				"maxWidthPx":       {strconv.Itoa(photoMaxPx)},
				"skipHttpRedirect": {"true"},
			}
			if err := c.getJSON(gctx, c.placesURL+"/v1/"+p.Name+"/media?"+q.Encode(), &media); err != nil {
				return err
			}
			photos[i].URL = media.PhotoURI
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return photos, nil
}

// Autocomplete returns place predictions for a partial input
func (c *Client) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	mc, err := c.client()
	if err != nil {
		return nil, err
	}
	resp, err := mc.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{Input: input})
	if err != nil {
		return nil, mapsError(err, "autocomplete")
	}
	out := make([]Prediction, len(resp.Predictions))
	for i, p := range resp.Predictions {
		out[i] = Prediction{Description: p.Description, PlaceID: p.PlaceID}
	}
	return out, nil
}
