package calendar

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/calendar"
	"github.com/xuri/excelize/v2"
)

const (
	daysSheet    = "Days"
	summarySheet = "Summary"
)

func writeMonthWorkbook(m calendar.MonthSummary, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes Days so it stays first and active.
	if err := f.SetSheetName(f.GetSheetName(0), daysSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	header := []string{"Date", "Weekday", "Day Type", "Reason", "Saturday #", "Half Day"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(daysSheet, cell, v)
	}

	for r, d := range m.Days {
		row := r + 2
		var occurrence any
		if d.SaturdayOccurrence > 0 {
			occurrence = d.SaturdayOccurrence
		}
		halfDay := ""
		if d.HalfDay {
			halfDay = "Yes"
		}
		values := []any{
			d.Date.Format("2006-01-02"),
			d.Date.Weekday().String(),
			string(d.DayType),
			d.Reason,
			occurrence,
			halfDay,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(daysSheet, cell, v)
		}
	}

	_ = f.SetColWidth(daysSheet, "A", "A", 12)
	_ = f.SetColWidth(daysSheet, "B", "B", 12)
	_ = f.SetColWidth(daysSheet, "C", "C", 10)
	_ = f.SetColWidth(daysSheet, "D", "D", 28)
	_ = f.SetColWidth(daysSheet, "E", "F", 11)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})
	_ = f.SetCellStyle(daysSheet, "A1", "F1", style)

	rows := [][]any{
		{"Period", fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))},
		{"Employee", m.EmployeeID},
		{"Working days", m.WorkingDays},
		{"Half days", m.HalfDays},
		{"Weekends", m.Weekends},
		{"Holidays", m.Holidays},
		{"Leaves", m.Leaves},
	}
	for r, values := range rows {
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(summarySheet, cell, v)
		}
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 16)
	_ = f.SetCellStyle(summarySheet, "A1", "A7", style)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
