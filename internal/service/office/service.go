package office

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/geo"
)

// CacheInvalidator is notified after every successful office mutation.
type CacheInvalidator interface {
	Invalidate()
}

type OfficeServiceImpl struct {
	officeRepo  office.OfficeRepository
	invalidator CacheInvalidator
}

func NewOfficeService(officeRepo office.OfficeRepository, invalidator CacheInvalidator) office.OfficeService {
	return &OfficeServiceImpl{
		officeRepo:  officeRepo,
		invalidator: invalidator,
	}
}

func (s *OfficeServiceImpl) Create(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	radius := office.DefaultRadiusMeters
	if req.Radius != nil {
		radius = *req.Radius
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := s.officeRepo.Create(ctx, office.OfficeLocation{
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Coordinates: geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude},
		Radius:      radius,
		IsActive:    active,
	})
	if err != nil {
		if errors.Is(err, office.ErrOfficeNameExists) {
			return office.OfficeResponse{}, err
		}
		return office.OfficeResponse{}, fmt.Errorf("failed to create office location: %w", err)
	}

	s.invalidate()
	slog.Info("office location created", "office_id", created.ID, "name", created.Name, "radius", created.Radius)

	return office.ToResponse(created), nil
}

func (s *OfficeServiceImpl) Get(ctx context.Context, id string) (office.OfficeResponse, error) {
	o, err := s.officeRepo.GetByID(ctx, id)
	if err != nil {
		return office.OfficeResponse{}, err
	}
	return office.ToResponse(o), nil
}

func (s *OfficeServiceImpl) List(ctx context.Context, activeOnly bool) ([]office.OfficeResponse, error) {
	offices, err := s.officeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list office locations: %w", err)
	}

	responses := make([]office.OfficeResponse, 0, len(offices))
	for _, o := range offices {
		responses = append(responses, office.ToResponse(o))
	}
	return responses, nil
}

func (s *OfficeServiceImpl) Update(ctx context.Context, req office.UpdateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}
	if req.IsEmpty() {
		return office.OfficeResponse{}, office.ErrNothingToUpdate
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}

	if err := s.officeRepo.Update(ctx, req); err != nil {
		if errors.Is(err, office.ErrOfficeNotFound) || errors.Is(err, office.ErrOfficeNameExists) {
			return office.OfficeResponse{}, err
		}
		return office.OfficeResponse{}, fmt.Errorf("failed to update office location: %w", err)
	}
	s.invalidate()

	return s.Get(ctx, req.ID)
}

func (s *OfficeServiceImpl) SetActive(ctx context.Context, id string, active bool) (office.OfficeResponse, error) {
	if err := s.officeRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, office.ErrOfficeNotFound) {
			return office.OfficeResponse{}, err
		}
		return office.OfficeResponse{}, fmt.Errorf("failed to change office status: %w", err)
	}
	s.invalidate()
	slog.Info("office location status changed", "office_id", id, "is_active", active)

	return s.Get(ctx, id)
}

func (s *OfficeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.officeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, office.ErrOfficeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete office location: %w", err)
	}
	s.invalidate()
	slog.Info("office location deleted", "office_id", id)

	return nil
}

func (s *OfficeServiceImpl) invalidate() {
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
}
