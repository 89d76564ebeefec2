package iatageo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/models"
	"TRIPPLANNER_BACK-END/internal/providers"
)

const DefaultBaseURL = "http://iatageo.com"

// Client resolves coordinates to the nearest IATA airport code
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: &http.Client{Timeout: timeout}}
}

// AirportCode returns the code of the airport closest to at
func (c *Client) AirportCode(ctx context.Context, at models.Coordinates) (string, error) {
	u := fmt.Sprintf("%s/getCode/%s/%s", c.baseURL,
		strconv.FormatFloat(at.Latitude, 'f', -1, 64),
		strconv.FormatFloat(at.Longitude, 'f', -1, 64))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build iatageo request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", providers.TransportError("iatageo", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", apperror.New(apperror.KindGeocodeNotFound, "no airport near the given location")
	}
	if resp.StatusCode != http.StatusOK {
		return "", providers.StatusError("iatageo", resp)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", apperror.Wrap(apperror.KindUpstreamUnavailable, err, "failed to decode iatageo response")
	}
	code := strings.ToUpper(strings.TrimSpace(body.Code))
	if code == "" {
		return "", apperror.New(apperror.KindGeocodeNotFound, "no airport near the given location")
	}
	return code, nil
}
