package geofence

import (
	"math"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type CheckRequest struct {
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	RadiusOverride *int     `json:"radius_override,omitempty"`
}

// Validate only checks presence and the override. Out-of-range coordinates are not rejected here: they
// resolve to an unverified result.
func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	}
	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	}
	if r.RadiusOverride != nil && *r.RadiusOverride < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_override",
			Message: "radius_override must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OfficeSummary struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Radius int     `json:"radius"`
	Lat    float64 `json:"latitude"`
	Lon    float64 `json:"longitude"`
}

type CheckResponse struct {
	IsValid         bool           `json:"is_valid"`
	NearestOffice   *OfficeSummary `json:"nearest_office"`
	DistanceMeters  *float64       `json:"distance_meters"`
	EffectiveRadius *int           `json:"effective_radius,omitempty"`
	ToleranceMeters int            `json:"tolerance_meters"`
}

func Summarize(o *office.OfficeLocation) *OfficeSummary {
	if o == nil {
		return nil
	}
	return &OfficeSummary{
		ID:     o.ID,
		Name:   o.Name,
		Radius: o.Radius,
		Lat:    o.Coordinates.Latitude,
		Lon:    o.Coordinates.Longitude,
	}
}

// RoundMeters rounds a distance to centimeters for presentation.
func RoundMeters(d *float64) *float64 {
	if d == nil {
		return nil
	}
	v := math.Round(*d*100) / 100
	return &v
}

func ToCheckResponse(r Result) CheckResponse {
	return CheckResponse{
		IsValid:         r.IsValid,
		NearestOffice:   Summarize(r.NearestOffice),
		DistanceMeters:  RoundMeters(r.DistanceMeters),
		EffectiveRadius: r.EffectiveRadius,
		ToleranceMeters: ToleranceMeters,
	}
}

type NearestResponse struct {
	NearestOffice  *OfficeSummary `json:"nearest_office"`
	DistanceMeters *float64       `json:"distance_meters"`
}

func ToNearestResponse(n NearestOffice) NearestResponse {
	return NearestResponse{
		NearestOffice:  Summarize(n.Office),
		DistanceMeters: RoundMeters(n.DistanceMeters),
	}
}
