package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type memHolidayRepo struct {
	holidays []holiday.Holiday
}

func (m *memHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	for _, existing := range m.holidays {
		if existing.Date.Equal(h.Date) && existing.Name == h.Name {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
	}
	h.ID = h.Date.Format("20060102") + "-" + h.Name
	m.holidays = append(m.holidays, h)
	return h, nil
}

func (m *memHolidayRepo) GetByDate(ctx context.Context, date time.Time) ([]holiday.Holiday, error) {
	return nil, nil
}

func (m *memHolidayRepo) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range m.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memHolidayRepo) Delete(ctx context.Context, id string) error {
	for i, h := range m.holidays {
		if h.ID == id {
			m.holidays = append(m.holidays[:i], m.holidays[i+1:]...)
			return nil
		}
	}
	return holiday.ErrHolidayNotFound
}

func TestHolidayService_Create(t *testing.T) {
	svc := NewHolidayService(&memHolidayRepo{})
	ctx := context.Background()

	resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2025-10-02", Name: "Gandhi Jayanti"})
	require.NoError(t, err)
	assert.Equal(t, "2025-10-02", resp.Date)
	assert.Equal(t, string(holiday.HolidayTypePublic), resp.Type)

	_, err = svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2025-10-02", Name: "Gandhi Jayanti"})
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestHolidayService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   holiday.CreateHolidayRequest
		field string
	}{
		{"missing date", holiday.CreateHolidayRequest{Name: "Diwali"}, "date"},
		{"bad date", holiday.CreateHolidayRequest{Date: "20/10/2025", Name: "Diwali"}, "date"},
		{"missing name", holiday.CreateHolidayRequest{Date: "2025-10-20"}, "name"},
		{"unknown type", holiday.CreateHolidayRequest{Date: "2025-10-20", Name: "Diwali", Type: "bank"}, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHolidayService(&memHolidayRepo{}).Create(context.Background(), tt.req)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %v", err)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestHolidayService_ListByYearAndDelete(t *testing.T) {
	repo := &memHolidayRepo{}
	svc := NewHolidayService(repo)
	ctx := context.Background()

	for _, d := range []string{"2024-12-25", "2025-01-26", "2025-12-25"} {
		_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: d, Name: "Holiday"})
		require.NoError(t, err)
	}

	list, err := svc.ListByYear(ctx, 2025)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, list[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, list[0].ID), holiday.ErrHolidayNotFound)
}
