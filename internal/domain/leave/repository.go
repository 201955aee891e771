package leave

import (
	"context"
	"time"
)

// LeaveRepository is read-only here; leave requests are written by the leave workflow.
type LeaveRepository interface {
	// FindApprovedCovering returns the first approved leave of employeeID covering date, or nil.
	FindApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*Leave, error)
	// ListApprovedBetween returns approved leaves of employeeID overlapping [from, to].
	ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)
}
