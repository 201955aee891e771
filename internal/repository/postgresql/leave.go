package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/leave"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, leave_type, start_date, end_date, status, reason, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.Status,
		&l.Reason,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// FindApprovedCovering implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) FindApprovedCovering(ctx context.Context, employeeID string, date time.Time) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = $1
			AND status = 'approved'
			AND $2::date BETWEEN start_date AND end_date
		ORDER BY start_date ASC, id ASC
		LIMIT 1
	`

	l, err := scanLeave(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find approved leave: %w", err)
	}

	return &l, nil
}

// ListApprovedBetween implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = $1
			AND status = 'approved'
			AND start_date <= $3::date
			AND end_date >= $2::date
		ORDER BY start_date ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leaves, nil
}
