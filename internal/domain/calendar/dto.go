package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type DayRequest struct {
	Date       string
	EmployeeID string
	Department *string

	date time.Time
}

func (r *DayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if d, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	} else {
		r.date = d
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate is valid after a successful Validate.
func (r *DayRequest) ParsedDate() time.Time {
	return r.date
}

type MonthRequest struct {
	Year       string
	Month      string
	EmployeeID string
	Department *string

	year  int
	month time.Month
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	y, err := strconv.Atoi(r.Year)
	if err != nil || y < 1970 || y > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number between 1970 and 9999"})
	}
	m, err := strconv.Atoi(r.Month)
	if err != nil || m < 1 || m > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}

	r.year, r.month = y, time.Month(m)
	return nil
}

// Period is valid after a successful Validate.
func (r *MonthRequest) Period() (int, time.Month) {
	return r.year, r.month
}

type DayInfoResponse struct {
	Date               string  `json:"date"`
	Weekday            string  `json:"weekday"`
	DayType            DayType `json:"day_type"`
	Reason             string  `json:"reason,omitempty"`
	SaturdayOccurrence int     `json:"saturday_occurrence,omitempty"`
	HalfDay            bool    `json:"half_day"`
}

func ToDayInfoResponse(d DayInfo) DayInfoResponse {
	return DayInfoResponse{
		Date:               d.Date.Format("2006-01-02"),
		Weekday:            d.Date.Weekday().String(),
		DayType:            d.DayType,
		Reason:             d.Reason,
		SaturdayOccurrence: d.SaturdayOccurrence,
		HalfDay:            d.HalfDay,
	}
}

type MonthSummaryResponse struct {
	Period      string            `json:"period"`
	EmployeeID  string            `json:"employee_id,omitempty"`
	WorkingDays int               `json:"working_days"`
	HalfDays    int               `json:"half_days"`
	Weekends    int               `json:"weekends"`
	Holidays    int               `json:"holidays"`
	Leaves      int               `json:"leaves"`
	Days        []DayInfoResponse `json:"days"`
}

func ToMonthSummaryResponse(m MonthSummary) MonthSummaryResponse {
	days := make([]DayInfoResponse, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, ToDayInfoResponse(d))
	}
	return MonthSummaryResponse{
		Period:      fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
		EmployeeID:  m.EmployeeID,
		WorkingDays: m.WorkingDays,
		HalfDays:    m.HalfDays,
		Weekends:    m.Weekends,
		Holidays:    m.Holidays,
		Leaves:      m.Leaves,
		Days:        days,
	}
}
