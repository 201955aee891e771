package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Leave is an absence record. StartDate and EndDate are inclusive calendar dates; a single-day leave has
// equal dates.
type Leave struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveStatus
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether date falls in the leave range (date only, time of day ignored).
func (l Leave) Covers(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(l.StartDate)) && !d.After(dateOnly(l.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
