package calendar

import (
	"slices"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/leave"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
)

type DayType string

const (
	DayTypeWorking DayType = "working"
	DayTypeWeekend DayType = "weekend"
	DayTypeHoliday DayType = "holiday"
	DayTypeLeave   DayType = "leave"
)

const ReasonWeekend = "Weekend"

// DayInfo explains the classification of one calendar date.
type DayInfo struct {
	Date               time.Time
	DayType            DayType
	Reason             string
	SaturdayOccurrence int // 1..4 on Saturdays, 0 otherwise
	HalfDay            bool
}

// MonthSummary holds one DayInfo per day of the month and the per-type counts.
type MonthSummary struct {
	Year       int
	Month      time.Month
	EmployeeID string
	Days       []DayInfo

	WorkingDays int
	HalfDays    int
	Weekends    int
	Holidays    int
	Leaves      int
}

func (m *MonthSummary) add(d DayInfo) {
	m.Days = append(m.Days, d)
	switch d.DayType {
	case DayTypeWorking:
		m.WorkingDays++
		if d.HalfDay {
			m.HalfDays++
		}
	case DayTypeWeekend:
		m.Weekends++
	case DayTypeHoliday:
		m.Holidays++
	case DayTypeLeave:
		m.Leaves++
	}
}

// DateOf strips the time of day, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SaturdayOccurrence returns which Saturday of its month date is, counting from 1. A fifth Saturday folds into
// the fourth. The result is meaningless for other weekdays.
func SaturdayOccurrence(date time.Time) int {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	firstSaturday := (int(time.Saturday)-int(first.Weekday())+7)%7 + 1

	occurrence := (date.Day()-firstSaturday)/7 + 1
	if occurrence < 1 {
		occurrence = 1
	}
	if occurrence > 4 {
		occurrence = 4
	}
	return occurrence
}

// Classify applies the day rules in order: approved leave, holiday, weekday rules, working. approvedLeave is the
// employee's approved leave covering date, if any; holidays are the holidays on date.
func Classify(date time.Time, s settings.Settings, approvedLeave *leave.Leave, holidays []holiday.Holiday) DayInfo {
	date = DateOf(date)
	info := DayInfo{Date: date}

	weekday := int(date.Weekday())
	if date.Weekday() == time.Saturday {
		info.SaturdayOccurrence = SaturdayOccurrence(date)
	}

	if approvedLeave != nil && approvedLeave.Status == leave.LeaveStatusApproved && approvedLeave.Covers(date) {
		info.DayType = DayTypeLeave
		info.Reason = approvedLeave.LeaveType
		return info
	}

	if len(holidays) > 0 {
		info.DayType = DayTypeHoliday
		info.Reason = holidays[0].Name
		return info
	}

	a := s.Attendance

	// Non-working wins when a weekday sits in both lists.
	if slices.Contains(a.NonWorkingDays, weekday) || !slices.Contains(a.WorkingDays, weekday) {
		info.DayType = DayTypeWeekend
		info.Reason = ReasonWeekend
		return info
	}

	if date.Weekday() == time.Saturday && slices.Contains(a.SaturdayHolidays, info.SaturdayOccurrence) {
		info.DayType = DayTypeWeekend
		info.Reason = ReasonWeekend
		return info
	}

	info.DayType = DayTypeWorking
	info.HalfDay = date.Weekday() == time.Saturday && a.SaturdayWorkType == settings.SaturdayWorkHalf
	return info
}

// BuildMonth classifies every day of the month from preloaded holidays and approved leaves.
func BuildMonth(year int, month time.Month, employeeID string, s settings.Settings, holidays []holiday.Holiday, leaves []leave.Leave) MonthSummary {
	summary := MonthSummary{Year: year, Month: month, EmployeeID: employeeID}

	byDate := make(map[time.Time][]holiday.Holiday, len(holidays))
	for _, h := range holidays {
		d := DateOf(h.Date)
		byDate[d] = append(byDate[d], h)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		var covering *leave.Leave
		for i := range leaves {
			if leaves[i].Status == leave.LeaveStatusApproved && leaves[i].Covers(d) {
				covering = &leaves[i]
				break
			}
		}
		summary.add(Classify(d, s, covering, byDate[d]))
	}

	return summary
}
