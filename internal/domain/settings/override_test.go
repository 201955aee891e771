package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestMerge_EmptyOverrideReturnsBase(t *testing.T) {
	global := Defaults()
	assert.Equal(t, global, Merge(global, Override{}))
	assert.Equal(t, global, Merge(global, Override{Geofence: &GeofenceOverride{}, Attendance: &AttendanceOverride{}}))
}

func TestMerge_Idempotent(t *testing.T) {
	global := Defaults()
	half := SaturdayWorkHalf
	dept := Override{
		Geofence: &GeofenceOverride{EnforceCheckOut: boolPtr(true), DefaultRadius: intPtr(250)},
		Attendance: &AttendanceOverride{
			WorkingDays:      []int{1, 2, 3, 4, 5},
			NonWorkingDays:   []int{0, 6},
			SaturdayWorkType: &half,
		},
	}

	once := Merge(global, dept)
	twice := Merge(once, dept)
	assert.Equal(t, once, twice)

	// Merging settings with themselves changes nothing.
	assert.Equal(t, global, Merge(global, FullOverride(global)))
}

func TestMerge_FieldByField(t *testing.T) {
	global := Defaults()
	dept := Override{Geofence: &GeofenceOverride{Enabled: boolPtr(false)}}

	got := Merge(global, dept)

	assert.False(t, got.Geofence.Enabled)
	assert.Equal(t, global.Geofence.EnforceCheckIn, got.Geofence.EnforceCheckIn)
	assert.Equal(t, global.Geofence.DefaultRadius, got.Geofence.DefaultRadius)
	assert.Equal(t, global.Attendance, got.Attendance)
}

func TestMerge_ArraysReplacedNotConcatenated(t *testing.T) {
	global := Defaults()
	got := Merge(global, Override{Attendance: &AttendanceOverride{SaturdayHolidays: []int{1, 3}}})
	assert.Equal(t, []int{1, 3}, got.Attendance.SaturdayHolidays)

	// An explicit empty list clears the inherited value.
	got = Merge(global, Override{Attendance: &AttendanceOverride{SaturdayHolidays: []int{}}})
	assert.Empty(t, got.Attendance.SaturdayHolidays)
	assert.NotNil(t, got.Attendance.SaturdayHolidays)
}

func TestMerge_NullValuesSkipped(t *testing.T) {
	var o Override
	err := json.Unmarshal([]byte(`{"geofence":{"enabled":null,"default_radius":200},"attendance":{"working_days":null,"saturday_holidays":[]}}`), &o)
	require.NoError(t, err)

	global := Defaults()
	got := Merge(global, o)

	assert.Equal(t, global.Geofence.Enabled, got.Geofence.Enabled)
	assert.Equal(t, 200, got.Geofence.DefaultRadius)
	assert.Equal(t, global.Attendance.WorkingDays, got.Attendance.WorkingDays)
	assert.Empty(t, got.Attendance.SaturdayHolidays)
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	global := Defaults()
	days := []int{1, 2, 3}
	got := Merge(global, Override{Attendance: &AttendanceOverride{WorkingDays: days}})

	days[0] = 6
	got.Attendance.NonWorkingDays[0] = 5

	assert.Equal(t, []int{1, 2, 3}, got.Attendance.WorkingDays)
	assert.Equal(t, []int{0}, global.Attendance.NonWorkingDays)
}

func TestCombine_MatchesSequentialMerge(t *testing.T) {
	global := Defaults()
	half := SaturdayWorkHalf
	prev := Override{
		Geofence:   &GeofenceOverride{DefaultRadius: intPtr(150), AllowWFHBypass: boolPtr(false)},
		Attendance: &AttendanceOverride{SaturdayHolidays: []int{1}},
	}
	next := Override{
		Geofence:   &GeofenceOverride{DefaultRadius: intPtr(300)},
		Attendance: &AttendanceOverride{SaturdayWorkType: &half},
	}

	assert.Equal(t, Merge(Merge(global, prev), next), Merge(global, Combine(prev, next)))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Defaults().Validate())

	s := Defaults()
	s.Attendance.WorkingDays = []int{0, 1, 2}
	s.Attendance.NonWorkingDays = []int{0}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both working and non-working")

	s = Defaults()
	s.Attendance.SaturdayHolidays = []int{5}
	s.Attendance.WorkingDays = []int{7}
	s.Geofence.DefaultRadius = 20
	s.Attendance.SaturdayWorkType = "quarter"
	err = s.Validate()
	require.Error(t, err)
	for _, field := range []string{"attendance.saturday_holidays", "attendance.working_days", "geofence.default_radius", "attendance.saturday_work_type"} {
		assert.Contains(t, err.Error(), field)
	}
}
