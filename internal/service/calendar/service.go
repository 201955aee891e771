package calendar

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/leave"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

type ClassifierServiceImpl struct {
	holidayRepo holiday.HolidayRepository
	leaveRepo   leave.LeaveRepository
}

func NewClassifierService(holidayRepo holiday.HolidayRepository, leaveRepo leave.LeaveRepository) calendar.ClassifierService {
	return &ClassifierServiceImpl{
		holidayRepo: holidayRepo,
		leaveRepo:   leaveRepo,
	}
}

func (s *ClassifierServiceImpl) DescribeDay(ctx context.Context, date time.Time, employeeID string, st settings.Settings) (calendar.DayInfo, error) {
	date = calendar.DateOf(date)

	var approved *leave.Leave
	if employeeID != "" {
		l, err := s.leaveRepo.FindApprovedCovering(ctx, employeeID, date)
		if err != nil {
			return calendar.DayInfo{}, fmt.Errorf("failed to look up approved leave: %w", err)
		}
		approved = l
	}

	// Leave takes precedence, so the holiday lookup is skipped once one is found.
	var holidays []holiday.Holiday
	if approved == nil {
		h, err := s.holidayRepo.GetByDate(ctx, date)
		if err != nil {
			return calendar.DayInfo{}, fmt.Errorf("failed to look up holidays: %w", err)
		}
		holidays = h
	}

	info := calendar.Classify(date, st, approved, holidays)
	metrics.ObserveDayClassification(string(info.DayType))

	return info, nil
}

func (s *ClassifierServiceImpl) ClassifyDay(ctx context.Context, date time.Time, employeeID string, st settings.Settings) (calendar.DayType, error) {
	info, err := s.DescribeDay(ctx, date, employeeID, st)
	if err != nil {
		return "", err
	}
	return info.DayType, nil
}

func (s *ClassifierServiceImpl) ClassifyMonth(ctx context.Context, year int, month time.Month, employeeID string, st settings.Settings) (calendar.MonthSummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	var (
		holidays []holiday.Holiday
		leaves   []leave.Leave
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := s.holidayRepo.ListBetween(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		holidays = h
		return nil
	})
	if employeeID != "" {
		g.Go(func() error {
			l, err := s.leaveRepo.ListApprovedBetween(gctx, employeeID, from, to)
			if err != nil {
				return fmt.Errorf("failed to list approved leaves: %w", err)
			}
			leaves = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return calendar.MonthSummary{}, err
	}

	return calendar.BuildMonth(year, month, employeeID, st, holidays, leaves), nil
}

func (s *ClassifierServiceImpl) ExportMonth(ctx context.Context, year int, month time.Month, employeeID string, st settings.Settings, w io.Writer) error {
	summary, err := s.ClassifyMonth(ctx, year, month, employeeID, st)
	if err != nil {
		return err
	}
	return writeMonthWorkbook(summary, w)
}
