package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type memSettingsRepo struct {
	global      *settings.Document
	departments map[string]settings.Document
	err         error
	creates     int
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{departments: map[string]settings.Document{}}
}

func (m *memSettingsRepo) GetGlobal(ctx context.Context) (settings.Document, error) {
	if m.err != nil {
		return settings.Document{}, m.err
	}
	if m.global == nil {
		return settings.Document{}, settings.ErrSettingsNotFound
	}
	return *m.global, nil
}

func (m *memSettingsRepo) GetDepartment(ctx context.Context, department string) (settings.Document, error) {
	if m.err != nil {
		return settings.Document{}, m.err
	}
	doc, ok := m.departments[department]
	if !ok {
		return settings.Document{}, settings.ErrDepartmentSettingsNotFound
	}
	return doc, nil
}

func (m *memSettingsRepo) ListDepartments(ctx context.Context) ([]settings.Document, error) {
	var out []settings.Document
	for _, d := range m.departments {
		out = append(out, d)
	}
	return out, nil
}

func (m *memSettingsRepo) CreateGlobalIfMissing(ctx context.Context, o settings.Override) (bool, error) {
	if m.global != nil {
		return false, nil
	}
	m.creates++
	m.global = &settings.Document{Scope: settings.ScopeGlobal, Override: o, UpdatedAt: time.Now()}
	return true, nil
}

func (m *memSettingsRepo) UpsertGlobal(ctx context.Context, o settings.Override) (settings.Document, error) {
	m.global = &settings.Document{Scope: settings.ScopeGlobal, Override: o, UpdatedAt: time.Now()}
	return *m.global, nil
}

func (m *memSettingsRepo) UpsertDepartment(ctx context.Context, department string, o settings.Override) (settings.Document, error) {
	dept := department
	doc := settings.Document{Scope: settings.ScopeDepartment, Department: &dept, Override: o, UpdatedAt: time.Now()}
	m.departments[department] = doc
	return doc, nil
}

func (m *memSettingsRepo) DeleteDepartment(ctx context.Context, department string) error {
	if _, ok := m.departments[department]; !ok {
		return settings.ErrDepartmentSettingsNotFound
	}
	delete(m.departments, department)
	return nil
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestSettingsService_EnsureDefaultsIdempotent(t *testing.T) {
	repo := newMemSettingsRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))
	require.NoError(t, svc.EnsureDefaults(ctx))
	assert.Equal(t, 1, repo.creates)

	global, err := svc.GetGlobal(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), global)
}

func TestSettingsService_MissingGlobalResolvesToDefaults(t *testing.T) {
	repo := newMemSettingsRepo()
	svc := NewSettingsService(repo)

	eff, err := svc.GetEffectiveSettings(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), eff)
	assert.Nil(t, repo.global, "reads must not write")
}

func TestSettingsService_EffectiveMergesDepartment(t *testing.T) {
	repo := newMemSettingsRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()
	require.NoError(t, svc.EnsureDefaults(ctx))

	_, err := svc.UpdateDepartment(ctx, "Sales", settings.Override{
		Geofence: &settings.GeofenceOverride{EnforceCheckIn: boolPtr(false)},
		Attendance: &settings.AttendanceOverride{
			WorkingDays:    []int{1, 2, 3, 4, 5},
			NonWorkingDays: []int{0, 6},
		},
	})
	require.NoError(t, err)

	eff, err := svc.GetEffectiveSettings(ctx, strPtr(" Sales "))
	require.NoError(t, err)
	assert.False(t, eff.Geofence.EnforceCheckIn)
	assert.True(t, eff.Geofence.Enabled)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, eff.Attendance.WorkingDays)
	assert.Equal(t, []int{2}, eff.Attendance.SaturdayHolidays)

	unknown, err := svc.GetEffectiveSettings(ctx, strPtr("Finance"))
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), unknown)
}

func TestSettingsService_UpdateDepartmentAccumulates(t *testing.T) {
	repo := newMemSettingsRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	_, err := svc.UpdateDepartment(ctx, "Ops", settings.Override{
		Geofence: &settings.GeofenceOverride{DefaultRadius: intPtr(300)},
	})
	require.NoError(t, err)

	resp, err := svc.UpdateDepartment(ctx, "Ops", settings.Override{
		Geofence: &settings.GeofenceOverride{EnforceCheckOut: boolPtr(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ops", resp.Department)
	assert.Equal(t, 300, resp.Effective.Geofence.DefaultRadius)
	assert.True(t, resp.Effective.Geofence.EnforceCheckOut)
}

func TestSettingsService_UpdateRejectsContradictions(t *testing.T) {
	svc := NewSettingsService(newMemSettingsRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		o     settings.Override
		field string
	}{
		{
			name:  "overlap",
			o:     settings.Override{Attendance: &settings.AttendanceOverride{NonWorkingDays: []int{0, 6}}},
			field: "attendance.working_days",
		},
		{
			name:  "weekday out of range",
			o:     settings.Override{Attendance: &settings.AttendanceOverride{WorkingDays: []int{1, 7}}},
			field: "attendance.working_days",
		},
		{
			name:  "fifth saturday",
			o:     settings.Override{Attendance: &settings.AttendanceOverride{SaturdayHolidays: []int{5}}},
			field: "attendance.saturday_holidays",
		},
		{
			name:  "radius",
			o:     settings.Override{Geofence: &settings.GeofenceOverride{DefaultRadius: intPtr(20)}},
			field: "geofence.default_radius",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateGlobal(ctx, tt.o)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %v", err)
			assert.Contains(t, verrs.ToMap(), tt.field)

			_, err = svc.UpdateDepartment(ctx, "Ops", tt.o)
			require.True(t, errors.As(err, &verrs), "got %v", err)
		})
	}
}

func TestSettingsService_UpdateGlobalGuardsDepartments(t *testing.T) {
	repo := newMemSettingsRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	_, err := svc.UpdateDepartment(ctx, "Ops", settings.Override{
		Attendance: &settings.AttendanceOverride{WorkingDays: []int{0, 1, 2, 3, 4}, NonWorkingDays: []int{5, 6}},
	})
	require.NoError(t, err)

	// Ops replaces both lists, so a global change to them cannot conflict.
	_, err = svc.UpdateGlobal(ctx, settings.Override{
		Attendance: &settings.AttendanceOverride{WorkingDays: []int{1, 2, 3, 4, 5}, NonWorkingDays: []int{0, 6}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateDepartment(ctx, "Support", settings.Override{
		Attendance: &settings.AttendanceOverride{WorkingDays: []int{1, 2, 3, 4, 5, 6}},
	})
	require.Error(t, err, "saturday is non-working globally")
}

func TestSettingsService_EmptyOverrideAndDepartmentName(t *testing.T) {
	svc := NewSettingsService(newMemSettingsRepo())
	ctx := context.Background()

	_, err := svc.UpdateGlobal(ctx, settings.Override{})
	assert.ErrorIs(t, err, settings.ErrEmptyOverride)

	_, err = svc.UpdateDepartment(ctx, "  ", settings.Override{Geofence: &settings.GeofenceOverride{Enabled: boolPtr(false)}})
	assert.ErrorIs(t, err, settings.ErrDepartmentRequired)

	assert.ErrorIs(t, svc.DeleteDepartment(ctx, "Nobody"), settings.ErrDepartmentSettingsNotFound)
}

func TestSettingsService_StorageErrorPropagates(t *testing.T) {
	repo := newMemSettingsRepo()
	repo.err = errors.New("timeout")
	svc := NewSettingsService(repo)

	_, err := svc.GetEffectiveSettings(context.Background(), nil)

	assert.ErrorIs(t, err, repo.err)
}
