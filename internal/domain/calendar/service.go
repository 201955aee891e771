package calendar

import (
	"context"
	"io"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
)

// ClassifierService classifies dates for an employee. An empty employeeID classifies against the company
// calendar only, without leave lookup.
type ClassifierService interface {
	DescribeDay(ctx context.Context, date time.Time, employeeID string, s settings.Settings) (DayInfo, error)
	ClassifyDay(ctx context.Context, date time.Time, employeeID string, s settings.Settings) (DayType, error)
	ClassifyMonth(ctx context.Context, year int, month time.Month, employeeID string, s settings.Settings) (MonthSummary, error)
	// ExportMonth writes the month as an XLSX workbook to w.
	ExportMonth(ctx context.Context, year int, month time.Month, employeeID string, s settings.Settings, w io.Writer) error
}
