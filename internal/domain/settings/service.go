package settings

import "context"

type SettingsService interface {
	// EnsureDefaults creates the global document with Defaults when it is missing. Idempotent.
	EnsureDefaults(ctx context.Context) error

	GetGlobal(ctx context.Context) (Settings, error)
	GetDepartment(ctx context.Context, department string) (DepartmentSettingsResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentSettingsResponse, error)

	// GetEffectiveSettings merges the department override, if any, over the global settings.
	GetEffectiveSettings(ctx context.Context, department *string) (Settings, error)

	UpdateGlobal(ctx context.Context, o Override) (Settings, error)
	UpdateDepartment(ctx context.Context, department string, o Override) (DepartmentSettingsResponse, error)
	DeleteDepartment(ctx context.Context, department string) error
}
