package holiday

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date:        date,
		Name:        strings.TrimSpace(req.Name),
		Type:        holiday.HolidayType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayExists) {
			return holiday.HolidayResponse{}, err
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.ToResponse(created), nil
}

func (s *HolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := s.holidayRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}
