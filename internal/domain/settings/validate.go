package settings

import (
	"fmt"
	"slices"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

// Validate rejects contradictory or out-of-range configurations.
func (s Settings) Validate() error {
	var errs validator.ValidationErrors

	g := s.Geofence
	if g.DefaultRadius < office.MinRadiusMeters || g.DefaultRadius > office.MaxRadiusMeters {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence.default_radius",
			Message: fmt.Sprintf("default_radius must be between %d and %d", office.MinRadiusMeters, office.MaxRadiusMeters),
		})
	}

	a := s.Attendance
	for _, d := range a.WorkingDays {
		if !validator.IsValidWeekday(d) {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance.working_days",
				Message: "working_days entries must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}
	for _, d := range a.NonWorkingDays {
		if !validator.IsValidWeekday(d) {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance.non_working_days",
				Message: "non_working_days entries must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}
	for _, d := range a.WorkingDays {
		if slices.Contains(a.NonWorkingDays, d) {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance.working_days",
				Message: fmt.Sprintf("weekday %d is listed as both working and non-working", d),
			})
			break
		}
	}
	for _, n := range a.SaturdayHolidays {
		if n < 1 || n > 4 {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance.saturday_holidays",
				Message: "saturday_holidays entries must be between 1 and 4",
			})
			break
		}
	}
	if a.SaturdayWorkType != SaturdayWorkFull && a.SaturdayWorkType != SaturdayWorkHalf {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance.saturday_work_type",
			Message: "saturday_work_type must be one of: full, half",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
