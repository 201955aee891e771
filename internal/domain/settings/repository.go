package settings

import "context"

type SettingsRepository interface {
	// GetGlobal returns ErrSettingsNotFound when no global document exists.
	GetGlobal(ctx context.Context) (Document, error)
	// GetDepartment returns ErrDepartmentSettingsNotFound when the department has no override.
	GetDepartment(ctx context.Context, department string) (Document, error)
	ListDepartments(ctx context.Context) ([]Document, error)

	// CreateGlobalIfMissing inserts the global document unless one exists; created reports whether it did.
	CreateGlobalIfMissing(ctx context.Context, o Override) (created bool, err error)
	UpsertGlobal(ctx context.Context, o Override) (Document, error)
	UpsertDepartment(ctx context.Context, department string, o Override) (Document, error)
	DeleteDepartment(ctx context.Context, department string) error
}
