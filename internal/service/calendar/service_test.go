package calendar

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/leave"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
)

type memHolidayRepo struct {
	holiday.HolidayRepository
	holidays []holiday.Holiday
	err      error
	byDate   int
}

func (m *memHolidayRepo) GetByDate(ctx context.Context, date time.Time) ([]holiday.Holiday, error) {
	m.byDate++
	if m.err != nil {
		return nil, m.err
	}
	var out []holiday.Holiday
	for _, h := range m.holidays {
		if h.Date.Equal(date) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memHolidayRepo) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []holiday.Holiday
	for _, h := range m.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

type memLeaveRepo struct {
	leaves []leave.Leave
	err    error
}

func (m *memLeaveRepo) FindApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*leave.Leave, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.leaves {
		l := m.leaves[i]
		if l.EmployeeID == employeeID && l.Status == leave.LeaveStatusApproved && l.Covers(date) {
			return &l, nil
		}
	}
	return nil, nil
}

func (m *memLeaveRepo) ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []leave.Leave
	for _, l := range m.leaves {
		if l.EmployeeID == employeeID && l.Status == leave.LeaveStatusApproved && !l.EndDate.Before(from) && !l.StartDate.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func day(d int) time.Time {
	return time.Date(2025, time.September, d, 0, 0, 0, 0, time.UTC)
}

func fixtures() (*memHolidayRepo, *memLeaveRepo) {
	holidays := &memHolidayRepo{holidays: []holiday.Holiday{
		{ID: "h1", Date: day(5), Name: "Onam", Type: holiday.HolidayTypeRestricted},
		{ID: "h2", Date: day(17), Name: "Vishwakarma Puja", Type: holiday.HolidayTypeOptional},
	}}
	leaves := &memLeaveRepo{leaves: []leave.Leave{
		{ID: "l1", EmployeeID: "emp-1", LeaveType: "Annual Leave", StartDate: day(16), EndDate: day(18), Status: leave.LeaveStatusApproved},
		{ID: "l2", EmployeeID: "emp-1", LeaveType: "Sick Leave", StartDate: day(24), EndDate: day(24), Status: leave.LeaveStatusRejected},
	}}
	return holidays, leaves
}

func TestClassifier_DescribeDay(t *testing.T) {
	holidays, leaves := fixtures()
	svc := NewClassifierService(holidays, leaves)
	s := settings.Defaults()
	ctx := context.Background()

	tests := []struct {
		name     string
		date     time.Time
		employee string
		want     calendar.DayType
		reason   string
	}{
		{"leave beats holiday", day(17), "emp-1", calendar.DayTypeLeave, "Annual Leave"},
		{"holiday for other employee", day(17), "emp-2", calendar.DayTypeHoliday, "Vishwakarma Puja"},
		{"company calendar only", day(17), "", calendar.DayTypeHoliday, "Vishwakarma Puja"},
		{"rejected leave ignored", day(24), "emp-1", calendar.DayTypeWorking, ""},
		{"second saturday", day(13), "emp-1", calendar.DayTypeWeekend, calendar.ReasonWeekend},
		{"sunday", day(14), "emp-1", calendar.DayTypeWeekend, calendar.ReasonWeekend},
		{"time of day ignored", day(22).Add(15 * time.Hour), "emp-1", calendar.DayTypeWorking, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := svc.DescribeDay(ctx, tt.date, tt.employee, s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.DayType)
			assert.Equal(t, tt.reason, info.Reason)

			dt, err := svc.ClassifyDay(ctx, tt.date, tt.employee, s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dt)
		})
	}
}

func TestClassifier_LeaveSkipsHolidayLookup(t *testing.T) {
	holidays, leaves := fixtures()
	svc := NewClassifierService(holidays, leaves)

	_, err := svc.DescribeDay(context.Background(), day(16), "emp-1", settings.Defaults())

	require.NoError(t, err)
	assert.Equal(t, 0, holidays.byDate)
}

func TestClassifier_StorageErrors(t *testing.T) {
	boom := errors.New("db down")
	ctx := context.Background()

	svc := NewClassifierService(&memHolidayRepo{err: boom}, &memLeaveRepo{})
	_, err := svc.DescribeDay(ctx, day(1), "emp-1", settings.Defaults())
	assert.ErrorIs(t, err, boom)

	svc = NewClassifierService(&memHolidayRepo{}, &memLeaveRepo{err: boom})
	_, err = svc.ClassifyMonth(ctx, 2025, time.September, "emp-1", settings.Defaults())
	assert.ErrorIs(t, err, boom)
}

func TestClassifier_ClassifyMonth(t *testing.T) {
	holidays, leaves := fixtures()
	svc := NewClassifierService(holidays, leaves)

	m, err := svc.ClassifyMonth(context.Background(), 2025, time.September, "emp-1", settings.Defaults())

	require.NoError(t, err)
	require.Len(t, m.Days, 30)
	assert.Equal(t, 3, m.Leaves)
	assert.Equal(t, 1, m.Holidays)
	assert.Equal(t, 5, m.Weekends)
	assert.Equal(t, 21, m.WorkingDays)

	for _, d := range m.Days {
		single, err := svc.DescribeDay(context.Background(), d.Date, "emp-1", settings.Defaults())
		require.NoError(t, err)
		assert.Equal(t, single, d, d.Date.Format("2006-01-02"))
	}
}

func TestClassifier_ExportMonth(t *testing.T) {
	holidays, leaves := fixtures()
	svc := NewClassifierService(holidays, leaves)
	var buf bytes.Buffer

	require.NoError(t, svc.ExportMonth(context.Background(), 2025, time.September, "emp-1", settings.Defaults(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(daysSheet)
	require.NoError(t, err)
	require.Len(t, rows, 31)
	assert.Equal(t, []string{"Date", "Weekday", "Day Type", "Reason", "Saturday #", "Half Day"}, rows[0])
	assert.Equal(t, "2025-09-05", rows[5][0])
	assert.Equal(t, "holiday", rows[5][2])
	assert.Equal(t, "Onam", rows[5][3])

	total, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "21", total)
}
