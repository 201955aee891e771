package settings

import (
	"slices"
	"time"
)

type Scope string

const (
	ScopeGlobal     Scope = "global"
	ScopeDepartment Scope = "department"
)

type SaturdayWorkType string

const (
	SaturdayWorkFull SaturdayWorkType = "full"
	SaturdayWorkHalf SaturdayWorkType = "half"
)

type GeofenceConfig struct {
	Enabled         bool `json:"enabled"`
	EnforceCheckIn  bool `json:"enforce_check_in"`
	EnforceCheckOut bool `json:"enforce_check_out"`
	DefaultRadius   int  `json:"default_radius"`
	AllowWFHBypass  bool `json:"allow_wfh_bypass"`
}

type AttendanceConfig struct {
	WorkingDays      []int            `json:"working_days"`
	NonWorkingDays   []int            `json:"non_working_days"`
	SaturdayWorkType SaturdayWorkType `json:"saturday_work_type"`
	SaturdayHolidays []int            `json:"saturday_holidays"`
}

// Settings is a fully resolved configuration: every field carries a value.
type Settings struct {
	Geofence   GeofenceConfig   `json:"geofence"`
	Attendance AttendanceConfig `json:"attendance"`
}

// Defaults is what a missing global document is synthesized with.
func Defaults() Settings {
	return Settings{
		Geofence: GeofenceConfig{
			Enabled:         true,
			EnforceCheckIn:  true,
			EnforceCheckOut: false,
			DefaultRadius:   100,
			AllowWFHBypass:  true,
		},
		Attendance: AttendanceConfig{
			WorkingDays:      []int{1, 2, 3, 4, 5, 6},
			NonWorkingDays:   []int{0},
			SaturdayWorkType: SaturdayWorkFull,
			SaturdayHolidays: []int{2},
		},
	}
}

// Clone returns a copy that shares no slices with s.
func (s Settings) Clone() Settings {
	c := s
	c.Attendance.WorkingDays = slices.Clone(s.Attendance.WorkingDays)
	c.Attendance.NonWorkingDays = slices.Clone(s.Attendance.NonWorkingDays)
	c.Attendance.SaturdayHolidays = slices.Clone(s.Attendance.SaturdayHolidays)
	return c
}

// Document is one stored settings record. The global document normally holds a complete override.
type Document struct {
	ID         string
	Scope      Scope
	Department *string
	Override   Override
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
