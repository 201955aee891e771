package attendance

import (
	"github.com/cmlabs-hris/hris-geofence/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/geofence"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type EvaluateRequest struct {
	// EmployeeID and Department come from the access token, never from the body.
	EmployeeID string  `json:"-"`
	Department *string `json:"-"`

	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	RadiusOverride *int     `json:"radius_override,omitempty"`
	WorkFromHome   bool     `json:"work_from_home"`
}

func (r *EvaluateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
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

type DecisionResponse struct {
	Action                Action                   `json:"action"`
	Allowed               bool                     `json:"allowed"`
	GeofenceStatus        GeofenceStatus           `json:"geofence_status"`
	NearestOffice         *geofence.OfficeSummary  `json:"nearest_office"`
	DistanceMeters        *float64                 `json:"distance_meters"`
	EffectiveRadius       *int                     `json:"effective_radius,omitempty"`
	Day                   calendar.DayInfoResponse `json:"day"`
	RequiresJustification bool                     `json:"requires_justification"`
	Flagged               bool                     `json:"flagged"`
	WFHBypassAvailable    bool                     `json:"wfh_bypass_available"`
	Message               string                   `json:"message"`
}

func ToDecisionResponse(d Decision) DecisionResponse {
	return DecisionResponse{
		Action:                d.Action,
		Allowed:               d.Allowed,
		GeofenceStatus:        d.GeofenceStatus,
		NearestOffice:         geofence.Summarize(d.NearestOffice),
		DistanceMeters:        geofence.RoundMeters(d.DistanceMeters),
		EffectiveRadius:       d.EffectiveRadius,
		Day:                   calendar.ToDayInfoResponse(d.Day),
		RequiresJustification: d.RequiresJustification,
		Flagged:               d.Flagged,
		WFHBypassAvailable:    d.WFHBypassAvailable,
		Message:               d.Message,
	}
}
