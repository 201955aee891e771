package office

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type memOfficeRepo struct {
	offices []office.OfficeLocation
	seq     int
}

func (m *memOfficeRepo) Create(ctx context.Context, o office.OfficeLocation) (office.OfficeLocation, error) {
	for _, existing := range m.offices {
		if existing.Name == o.Name {
			return office.OfficeLocation{}, office.ErrOfficeNameExists
		}
	}
	m.seq++
	o.ID = "office-" + string(rune('0'+m.seq))
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	m.offices = append(m.offices, o)
	return o, nil
}

func (m *memOfficeRepo) GetByID(ctx context.Context, id string) (office.OfficeLocation, error) {
	for _, o := range m.offices {
		if o.ID == id {
			return o, nil
		}
	}
	return office.OfficeLocation{}, office.ErrOfficeNotFound
}

func (m *memOfficeRepo) List(ctx context.Context, activeOnly bool) ([]office.OfficeLocation, error) {
	var out []office.OfficeLocation
	for _, o := range m.offices {
		if activeOnly && !o.IsActive {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *memOfficeRepo) Update(ctx context.Context, req office.UpdateOfficeRequest) error {
	for i := range m.offices {
		if m.offices[i].ID != req.ID {
			continue
		}
		if req.Name != nil {
			m.offices[i].Name = *req.Name
		}
		if req.Address != nil {
			m.offices[i].Address = req.Address
		}
		if req.Radius != nil {
			m.offices[i].Radius = *req.Radius
		}
		return nil
	}
	return office.ErrOfficeNotFound
}

func (m *memOfficeRepo) SetActive(ctx context.Context, id string, active bool) error {
	for i := range m.offices {
		if m.offices[i].ID == id {
			m.offices[i].IsActive = active
			return nil
		}
	}
	return office.ErrOfficeNotFound
}

func (m *memOfficeRepo) Delete(ctx context.Context, id string) error {
	for i := range m.offices {
		if m.offices[i].ID == id {
			m.offices = append(m.offices[:i], m.offices[i+1:]...)
			return nil
		}
	}
	return office.ErrOfficeNotFound
}

type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate() { c.n++ }

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestOfficeService_Create_Defaults(t *testing.T) {
	repo := &memOfficeRepo{}
	inv := &countingInvalidator{}
	svc := NewOfficeService(repo, inv)

	resp, err := svc.Create(context.Background(), office.CreateOfficeRequest{
		Name:      "  Bengaluru HQ ",
		Latitude:  floatPtr(12.9716),
		Longitude: floatPtr(77.5946),
	})

	require.NoError(t, err)
	assert.Equal(t, "Bengaluru HQ", resp.Name)
	assert.Equal(t, office.DefaultRadiusMeters, resp.Radius)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 1, inv.n)
}

func TestOfficeService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   office.CreateOfficeRequest
		field string
	}{
		{"missing name", office.CreateOfficeRequest{Latitude: floatPtr(1), Longitude: floatPtr(1)}, "name"},
		{"blank name", office.CreateOfficeRequest{Name: "   ", Latitude: floatPtr(1), Longitude: floatPtr(1)}, "name"},
		{"latitude out of range", office.CreateOfficeRequest{Name: "A", Latitude: floatPtr(95), Longitude: floatPtr(1)}, "latitude"},
		{"missing latitude", office.CreateOfficeRequest{Name: "A", Longitude: floatPtr(1)}, "latitude"},
		{"missing longitude", office.CreateOfficeRequest{Name: "A", Latitude: floatPtr(1)}, "longitude"},
		{"longitude out of range", office.CreateOfficeRequest{Name: "A", Latitude: floatPtr(1), Longitude: floatPtr(-200)}, "longitude"},
		{"radius too small", office.CreateOfficeRequest{Name: "A", Latitude: floatPtr(1), Longitude: floatPtr(1), Radius: intPtr(10)}, "radius"},
		{"radius too large", office.CreateOfficeRequest{Name: "A", Latitude: floatPtr(1), Longitude: floatPtr(1), Radius: intPtr(900)}, "radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &countingInvalidator{}
			svc := NewOfficeService(&memOfficeRepo{}, inv)

			_, err := svc.Create(context.Background(), tt.req)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %v", err)
			assert.Contains(t, verrs.ToMap(), tt.field)
			assert.Equal(t, 0, inv.n)
		})
	}
}

func TestOfficeService_Create_DuplicateName(t *testing.T) {
	svc := NewOfficeService(&memOfficeRepo{}, nil)
	req := office.CreateOfficeRequest{Name: "HQ", Latitude: floatPtr(1), Longitude: floatPtr(1)}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, office.ErrOfficeNameExists)
}

func TestOfficeService_Update(t *testing.T) {
	repo := &memOfficeRepo{}
	inv := &countingInvalidator{}
	svc := NewOfficeService(repo, inv)
	ctx := context.Background()

	created, err := svc.Create(ctx, office.CreateOfficeRequest{Name: "HQ", Latitude: floatPtr(1), Longitude: floatPtr(1)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, office.UpdateOfficeRequest{ID: created.ID, Radius: intPtr(250), Address: strPtr("MG Road")})
	require.NoError(t, err)
	assert.Equal(t, 250, updated.Radius)
	assert.Equal(t, "MG Road", *updated.Address)
	assert.Equal(t, 2, inv.n)

	_, err = svc.Update(ctx, office.UpdateOfficeRequest{ID: created.ID})
	assert.ErrorIs(t, err, office.ErrNothingToUpdate)

	_, err = svc.Update(ctx, office.UpdateOfficeRequest{ID: "missing", Radius: intPtr(100)})
	assert.ErrorIs(t, err, office.ErrOfficeNotFound)
}

func TestOfficeService_SetActiveAndDelete(t *testing.T) {
	repo := &memOfficeRepo{}
	inv := &countingInvalidator{}
	svc := NewOfficeService(repo, inv)
	ctx := context.Background()

	created, err := svc.Create(ctx, office.CreateOfficeRequest{Name: "HQ", Latitude: floatPtr(1), Longitude: floatPtr(1)})
	require.NoError(t, err)

	resp, err := svc.SetActive(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), office.ErrOfficeNotFound)
	assert.Equal(t, 3, inv.n)
}
