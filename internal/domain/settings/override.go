package settings

import "slices"

// GeofenceOverride holds optional values; nil means "inherit".
type GeofenceOverride struct {
	Enabled         *bool `json:"enabled,omitempty"`
	EnforceCheckIn  *bool `json:"enforce_check_in,omitempty"`
	EnforceCheckOut *bool `json:"enforce_check_out,omitempty"`
	DefaultRadius   *int  `json:"default_radius,omitempty"`
	AllowWFHBypass  *bool `json:"allow_wfh_bypass,omitempty"`
}

// AttendanceOverride holds optional values. A nil slice inherits; a non-nil slice, even an empty one,
// replaces the inherited slice wholesale.
type AttendanceOverride struct {
	WorkingDays      []int             `json:"working_days"`
	NonWorkingDays   []int             `json:"non_working_days"`
	SaturdayWorkType *SaturdayWorkType `json:"saturday_work_type,omitempty"`
	SaturdayHolidays []int             `json:"saturday_holidays"`
}

type Override struct {
	Geofence   *GeofenceOverride   `json:"geofence,omitempty"`
	Attendance *AttendanceOverride `json:"attendance,omitempty"`
}

func (o Override) IsEmpty() bool {
	return o.Geofence == nil && o.Attendance == nil
}

// Merge applies o on top of base field by field: set primitives override, non-nil slices replace, nil values
// are skipped. base is not modified.
func Merge(base Settings, o Override) Settings {
	out := base.Clone()

	if g := o.Geofence; g != nil {
		if g.Enabled != nil {
			out.Geofence.Enabled = *g.Enabled
		}
		if g.EnforceCheckIn != nil {
			out.Geofence.EnforceCheckIn = *g.EnforceCheckIn
		}
		if g.EnforceCheckOut != nil {
			out.Geofence.EnforceCheckOut = *g.EnforceCheckOut
		}
		if g.DefaultRadius != nil {
			out.Geofence.DefaultRadius = *g.DefaultRadius
		}
		if g.AllowWFHBypass != nil {
			out.Geofence.AllowWFHBypass = *g.AllowWFHBypass
		}
	}

	if a := o.Attendance; a != nil {
		if a.WorkingDays != nil {
			out.Attendance.WorkingDays = slices.Clone(a.WorkingDays)
		}
		if a.NonWorkingDays != nil {
			out.Attendance.NonWorkingDays = slices.Clone(a.NonWorkingDays)
		}
		if a.SaturdayWorkType != nil {
			out.Attendance.SaturdayWorkType = *a.SaturdayWorkType
		}
		if a.SaturdayHolidays != nil {
			out.Attendance.SaturdayHolidays = slices.Clone(a.SaturdayHolidays)
		}
	}

	return out
}

// Combine layers next over prev so that Merge(base, Combine(prev, next)) == Merge(Merge(base, prev), next).
func Combine(prev, next Override) Override {
	out := Override{}

	if prev.Geofence != nil || next.Geofence != nil {
		g := GeofenceOverride{}
		if prev.Geofence != nil {
			g = *prev.Geofence
		}
		if n := next.Geofence; n != nil {
			if n.Enabled != nil {
				g.Enabled = n.Enabled
			}
			if n.EnforceCheckIn != nil {
				g.EnforceCheckIn = n.EnforceCheckIn
			}
			if n.EnforceCheckOut != nil {
				g.EnforceCheckOut = n.EnforceCheckOut
			}
			if n.DefaultRadius != nil {
				g.DefaultRadius = n.DefaultRadius
			}
			if n.AllowWFHBypass != nil {
				g.AllowWFHBypass = n.AllowWFHBypass
			}
		}
		out.Geofence = &g
	}

	if prev.Attendance != nil || next.Attendance != nil {
		a := AttendanceOverride{}
		if prev.Attendance != nil {
			a = *prev.Attendance
		}
		if n := next.Attendance; n != nil {
			if n.WorkingDays != nil {
				a.WorkingDays = n.WorkingDays
			}
			if n.NonWorkingDays != nil {
				a.NonWorkingDays = n.NonWorkingDays
			}
			if n.SaturdayWorkType != nil {
				a.SaturdayWorkType = n.SaturdayWorkType
			}
			if n.SaturdayHolidays != nil {
				a.SaturdayHolidays = n.SaturdayHolidays
			}
		}
		out.Attendance = &a
	}

	return out
}

// FullOverride expresses s as an override that sets every field.
func FullOverride(s Settings) Override {
	c := s.Clone()
	return Override{
		Geofence: &GeofenceOverride{
			Enabled:         &c.Geofence.Enabled,
			EnforceCheckIn:  &c.Geofence.EnforceCheckIn,
			EnforceCheckOut: &c.Geofence.EnforceCheckOut,
			DefaultRadius:   &c.Geofence.DefaultRadius,
			AllowWFHBypass:  &c.Geofence.AllowWFHBypass,
		},
		Attendance: &AttendanceOverride{
			WorkingDays:      c.Attendance.WorkingDays,
			NonWorkingDays:   c.Attendance.NonWorkingDays,
			SaturdayWorkType: &c.Attendance.SaturdayWorkType,
			SaturdayHolidays: c.Attendance.SaturdayHolidays,
		},
	}
}
