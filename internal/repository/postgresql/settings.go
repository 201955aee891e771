package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

const settingsColumns = `id, scope, department, override, created_at, updated_at`

func scanSettings(row pgx.Row) (settings.Document, error) {
	var (
		doc settings.Document
		raw []byte
	)
	if err := row.Scan(&doc.ID, &doc.Scope, &doc.Department, &raw, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return settings.Document{}, err
	}
	if err := json.Unmarshal(raw, &doc.Override); err != nil {
		return settings.Document{}, fmt.Errorf("failed to decode settings override: %w", err)
	}
	return doc, nil
}

// GetGlobal implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) GetGlobal(ctx context.Context) (settings.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingsColumns + ` FROM settings WHERE scope = 'global'`

	doc, err := scanSettings(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Document{}, settings.ErrSettingsNotFound
		}
		return settings.Document{}, fmt.Errorf("failed to get global settings: %w", err)
	}

	return doc, nil
}

// GetDepartment implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) GetDepartment(ctx context.Context, department string) (settings.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingsColumns + ` FROM settings WHERE scope = 'department' AND department = $1`

	doc, err := scanSettings(q.QueryRow(ctx, query, department))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Document{}, settings.ErrDepartmentSettingsNotFound
		}
		return settings.Document{}, fmt.Errorf("failed to get department settings: %w", err)
	}

	return doc, nil
}

// ListDepartments implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) ListDepartments(ctx context.Context) ([]settings.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingsColumns + ` FROM settings WHERE scope = 'department' ORDER BY department ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list department settings: %w", err)
	}
	defer rows.Close()

	var docs []settings.Document
	for rows.Next() {
		doc, err := scanSettings(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department settings: %w", err)
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// CreateGlobalIfMissing implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) CreateGlobalIfMissing(ctx context.Context, o settings.Override) (bool, error) {
	q := GetQuerier(ctx, r.db)

	id, raw, err := newSettingsRow(o)
	if err != nil {
		return false, err
	}

	query := `
		INSERT INTO settings (id, scope, department, override, created_at, updated_at)
		VALUES ($1, 'global', NULL, $2, NOW(), NOW())
		ON CONFLICT (scope) WHERE scope = 'global' DO NOTHING
	`

	commandTag, err := q.Exec(ctx, query, id, raw)
	if err != nil {
		return false, fmt.Errorf("failed to create global settings: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

// UpsertGlobal implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) UpsertGlobal(ctx context.Context, o settings.Override) (settings.Document, error) {
	q := GetQuerier(ctx, r.db)

	id, raw, err := newSettingsRow(o)
	if err != nil {
		return settings.Document{}, err
	}

	query := `
		INSERT INTO settings (id, scope, department, override, created_at, updated_at)
		VALUES ($1, 'global', NULL, $2, NOW(), NOW())
		ON CONFLICT (scope) WHERE scope = 'global'
		DO UPDATE SET override = EXCLUDED.override, updated_at = NOW()
		RETURNING ` + settingsColumns

	doc, err := scanSettings(q.QueryRow(ctx, query, id, raw))
	if err != nil {
		return settings.Document{}, fmt.Errorf("failed to save global settings: %w", err)
	}

	return doc, nil
}

// UpsertDepartment implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) UpsertDepartment(ctx context.Context, department string, o settings.Override) (settings.Document, error) {
	q := GetQuerier(ctx, r.db)

	id, raw, err := newSettingsRow(o)
	if err != nil {
		return settings.Document{}, err
	}

	query := `
		INSERT INTO settings (id, scope, department, override, created_at, updated_at)
		VALUES ($1, 'department', $2, $3, NOW(), NOW())
		ON CONFLICT (department) WHERE scope = 'department'
		DO UPDATE SET override = EXCLUDED.override, updated_at = NOW()
		RETURNING ` + settingsColumns

	doc, err := scanSettings(q.QueryRow(ctx, query, id, department, raw))
	if err != nil {
		return settings.Document{}, fmt.Errorf("failed to save department settings: %w", err)
	}

	return doc, nil
}

// DeleteDepartment implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) DeleteDepartment(ctx context.Context, department string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM settings WHERE scope = 'department' AND department = $1`, department)
	if err != nil {
		return fmt.Errorf("failed to delete department settings: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return settings.ErrDepartmentSettingsNotFound
	}

	return nil
}

func newSettingsRow(o settings.Override) (string, []byte, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate settings id: %w", err)
	}
	raw, err := json.Marshal(o)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode settings override: %w", err)
	}
	return id.String(), raw, nil
}
