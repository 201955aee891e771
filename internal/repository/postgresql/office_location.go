package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type officeRepositoryImpl struct {
	db *database.DB
}

func NewOfficeRepository(db *database.DB) office.OfficeRepository {
	return &officeRepositoryImpl{db: db}
}

const officeColumns = `id, name, address, latitude, longitude, radius, is_active, created_at, updated_at`

func scanOffice(row pgx.Row) (office.OfficeLocation, error) {
	var o office.OfficeLocation
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Address,
		&o.Coordinates.Latitude,
		&o.Coordinates.Longitude,
		&o.Radius,
		&o.IsActive,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// Create implements office.OfficeRepository.
func (r *officeRepositoryImpl) Create(ctx context.Context, o office.OfficeLocation) (office.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return office.OfficeLocation{}, fmt.Errorf("failed to generate office id: %w", err)
	}

	query := `
		INSERT INTO office_locations (id, name, address, latitude, longitude, radius, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + officeColumns

	created, err := scanOffice(q.QueryRow(ctx, query,
		id.String(),
		o.Name,
		o.Address,
		o.Coordinates.Latitude,
		o.Coordinates.Longitude,
		o.Radius,
		o.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return office.OfficeLocation{}, office.ErrOfficeNameExists
		}
		return office.OfficeLocation{}, fmt.Errorf("failed to create office location: %w", err)
	}

	return created, nil
}

// GetByID implements office.OfficeRepository.
func (r *officeRepositoryImpl) GetByID(ctx context.Context, id string) (office.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + officeColumns + ` FROM office_locations WHERE id = $1`

	o, err := scanOffice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.OfficeLocation{}, office.ErrOfficeNotFound
		}
		return office.OfficeLocation{}, fmt.Errorf("failed to get office location: %w", err)
	}

	return o, nil
}

// List implements office.OfficeRepository.
func (r *officeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]office.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + officeColumns + ` FROM office_locations`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list office locations: %w", err)
	}
	defer rows.Close()

	var offices []office.OfficeLocation
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan office location: %w", err)
		}
		offices = append(offices, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return offices, nil
}

// Update implements office.OfficeRepository.
func (r *officeRepositoryImpl) Update(ctx context.Context, req office.UpdateOfficeRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE office_locations SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.Address != nil {
		query += fmt.Sprintf(", address = $%d", argIdx)
		args = append(args, *req.Address)
		argIdx++
	}

	if req.Radius != nil {
		query += fmt.Sprintf(", radius = $%d", argIdx)
		args = append(args, *req.Radius)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return office.ErrOfficeNameExists
		}
		return fmt.Errorf("failed to update office location: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}

// SetActive implements office.OfficeRepository.
func (r *officeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE office_locations SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update office status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}

// Delete implements office.OfficeRepository.
func (r *officeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM office_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete office location: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}
