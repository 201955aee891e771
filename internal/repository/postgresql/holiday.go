package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `id, date, name, type, description, created_at, updated_at`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.Description, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to generate holiday id: %w", err)
	}

	query := `
		INSERT INTO holidays (id, date, name, type, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + holidayColumns

	created, err := scanHoliday(q.QueryRow(ctx, query, id.String(), h.Date, h.Name, string(h.Type), h.Description))
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

// GetByDate implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE date = $1 ORDER BY name ASC`

	return r.list(ctx, q, query, date)
}

// ListBetween implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE date BETWEEN $1 AND $2 ORDER BY date ASC, name ASC`

	return r.list(ctx, q, query, from, to)
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

func (r *holidayRepositoryImpl) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]holiday.Holiday, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return holidays, nil
}
