package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/providers"
)

const (
	DefaultMapsURL   = "https://maps.googleapis.com"
	DefaultPlacesURL = "https://places.googleapis.com"
	serviceName      = "google maps"
)

// Config holds the API key and endpoints for the Maps and Places APIs
type Config struct {
	APIKey    string
	MapsURL   string
	PlacesURL string
	Timeout   time.Duration
}

// Client wraps the Geocoding and Places web services through the maps
// client, plus the Places (New) photo endpoints it does not cover.
type Client struct {
	maps      *maps.Client
	key       string
	placesURL string
	http      *http.Client
}

// New creates a Client. Without an API key every call fails with
// UpstreamUnavailable.
func New(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		key:       cfg.APIKey,
		placesURL: strings.TrimRight(cfg.PlacesURL, "/"),
		http:      &http.Client{Timeout: timeout},
	}
	if c.placesURL == "" {
		c.placesURL = DefaultPlacesURL
	}
	if cfg.APIKey == "" {
		return c, nil
	}

	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey), maps.WithHTTPClient(c.http)}
	if u := strings.TrimRight(cfg.MapsURL, "/"); u != "" && u != DefaultMapsURL {
		opts = append(opts, maps.WithBaseURL(u))
	}
	mc, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	c.maps = mc
	return c, nil
}

func (c *Client) client() (*maps.Client, error) {
	if c.maps == nil {
		return nil, apperror.New(apperror.KindUpstreamUnavailable, "google maps API key is not configured")
	}
	return c.maps, nil
}

// mapsError maps a maps client failure to an error kind. Web service
// statuses come back as "maps: STATUS - message".
func mapsError(err error, what string) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	status, _, _ := strings.Cut(strings.TrimPrefix(err.Error(), "maps: "), " ")
	switch status {
	case "NOT_FOUND":
		return apperror.Wrap(apperror.KindGeocodeNotFound, err, what+" returned no results")
	case "INVALID_REQUEST":
		return apperror.Wrap(apperror.KindInvalidEntry, err, what+" rejected the request")
	}
	return apperror.Wrap(apperror.KindUpstreamUnavailable, err, what+" failed")
}

// getJSON calls the Places (New) REST API, which the maps client does not wrap
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	if c.key == "" {
		return apperror.New(apperror.KindUpstreamUnavailable, "google maps API key is not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}
	req.Header.Set("X-Goog-Api-Key", c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return providers.TransportError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return providers.StatusError(serviceName, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.Wrap(apperror.KindUpstreamUnavailable, err, "failed to decode places response")
	}
	return nil
}
