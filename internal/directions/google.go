package directions

import (
	"context"
	"fmt"

	"backend-walkloop/internal/shared/geo"

	"googlemaps.github.io/maps"
)

type directionsFn func(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)

// GoogleProvider resolves walking legs through the Google Maps Directions API.
type GoogleProvider struct {
	directions directionsFn
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleProvider{directions: client.Directions}, nil
}

func (p *GoogleProvider) Walk(ctx context.Context, from, to geo.Point) (*Leg, error) {
	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", from.Lat, from.Lng),
		Destination: fmt.Sprintf("%f,%f", to.Lat, to.Lng),
		Mode:        maps.TravelModeWalking,
	}

	routes, _, err := p.directions(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, nil
	}

	leg := &Leg{}
	for _, l := range routes[0].Legs {
		leg.DistanceM += float64(l.Distance.Meters)
		leg.DurationSec += l.Duration.Seconds()
		for _, step := range l.Steps {
			leg.Points = append(leg.Points, geo.Point{Lat: step.StartLocation.Lat, Lng: step.StartLocation.Lng})
		}
		leg.Points = append(leg.Points, geo.Point{Lat: l.EndLocation.Lat, Lng: l.EndLocation.Lng})
	}
	return leg, nil
}
