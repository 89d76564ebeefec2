package resolver

import (
	"context"
	"strings"

	"TRIPPLANNER_BACK-END/internal/models"
)

func (r *Resolver) resolveActivity(ctx context.Context, d ActivityDraft) (models.ActivityEntry, error) {
	a := models.ActivityEntry{
		Name:        strings.TrimSpace(d.Name),
		RelativeDay: d.Day,
		PriceUSD:    d.PriceUSD,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
	}
	if desc := strings.TrimSpace(d.Description); desc != "" {
		a.Description = &desc
	}
	addr := strings.TrimSpace(d.Address)
	if addr == "" {
		return a, nil
	}
	a.Address = &addr
	if a.Latitude != nil {
		return a, nil
	}

	var at models.Coordinates
	err := r.call(ctx, "geocode", func(ctx context.Context) error {
		var err error
		at, err = r.deps.Geocoder.Geocode(ctx, addr)
		return err
	})
	if err != nil {
		return a, err
	}
	a.Latitude, a.Longitude = &at.Latitude, &at.Longitude
	return a, nil
}
