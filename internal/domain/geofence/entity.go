package geofence

import "github.com/cmlabs-hris/hris-geofence/internal/domain/office"

// ToleranceMeters is always added to the effective radius to absorb GPS jitter.
const ToleranceMeters = 10

// NearestOffice is the outcome of a nearest-office search. Both fields are nil when the search is unresolved
// (invalid coordinates or no active office).
type NearestOffice struct {
	Office         *office.OfficeLocation
	DistanceMeters *float64
}

func (n NearestOffice) Resolved() bool {
	return n.Office != nil
}

// Result is the geofence decision for one coordinate sample.
type Result struct {
	IsValid         bool
	NearestOffice   *office.OfficeLocation
	DistanceMeters  *float64
	EffectiveRadius *int // radius compared against, before tolerance; nil when unresolved
}

// Query parameterizes an evaluation. RadiusOverride wins over the office radius; DefaultRadius is used only when
// the office carries no radius.
type Query struct {
	Latitude       float64
	Longitude      float64
	RadiusOverride *int
	DefaultRadius  int
}

// WithinRadius applies the inclusive tolerance rule.
func WithinRadius(distanceMeters float64, radiusMeters int) bool {
	return distanceMeters <= float64(radiusMeters+ToleranceMeters)
}
