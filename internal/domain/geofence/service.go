package geofence

import "context"

// Resolver decides whether a coordinate lies inside an authorized office radius.
type Resolver interface {
	FindNearestOffice(ctx context.Context, lat, lon float64) (NearestOffice, error)
	IsWithinGeofence(ctx context.Context, lat, lon float64, radiusOverride *int) (Result, error)
	Evaluate(ctx context.Context, q Query) (Result, error)
}
