package attendance

import (
	"github.com/cmlabs-hris/hris-geofence/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
)

type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
)

type GeofenceStatus string

const (
	// GeofenceSkipped means the geofence is disabled in the effective settings.
	GeofenceSkipped GeofenceStatus = "skipped"
	// GeofenceVerified means the coordinate is inside an office radius.
	GeofenceVerified GeofenceStatus = "verified"
	// GeofenceUnverified means no office could be resolved (bad coordinates or no active office).
	GeofenceUnverified GeofenceStatus = "unverified"
	// GeofenceOutsideRadius means the nearest office is too far away.
	GeofenceOutsideRadius GeofenceStatus = "outside_radius"
)

// Decision is the outcome of a check-in or check-out evaluation. It is advisory: recording the attendance
// itself happens elsewhere.
type Decision struct {
	Action          Action
	Allowed         bool
	GeofenceStatus  GeofenceStatus
	NearestOffice   *office.OfficeLocation
	DistanceMeters  *float64
	EffectiveRadius *int
	Day             calendar.DayInfo

	// RequiresJustification is set when a work-from-home request bypassed an enforced geofence.
	RequiresJustification bool
	// Flagged marks an allowed action that failed a non-enforced geofence, for HR review.
	Flagged bool
	// WFHBypassAvailable tells a blocked client that resubmitting as work-from-home would be accepted.
	WFHBypassAvailable bool
	Message            string
}
