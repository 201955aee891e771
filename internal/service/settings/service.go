package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) EnsureDefaults(ctx context.Context) error {
	created, err := s.settingsRepo.CreateGlobalIfMissing(ctx, settings.FullOverride(settings.Defaults()))
	if err != nil {
		return fmt.Errorf("failed to ensure default settings: %w", err)
	}
	if created {
		slog.Info("global settings document created with defaults")
	}
	return nil
}

func (s *SettingsServiceImpl) GetGlobal(ctx context.Context) (settings.Settings, error) {
	global, _, err := s.global(ctx)
	return global, err
}

func (s *SettingsServiceImpl) GetDepartment(ctx context.Context, department string) (settings.DepartmentSettingsResponse, error) {
	department, err := normalizeDepartment(department)
	if err != nil {
		return settings.DepartmentSettingsResponse{}, err
	}

	global, _, err := s.global(ctx)
	if err != nil {
		return settings.DepartmentSettingsResponse{}, err
	}

	doc, err := s.settingsRepo.GetDepartment(ctx, department)
	if err != nil {
		if errors.Is(err, settings.ErrDepartmentSettingsNotFound) {
			return settings.DepartmentSettingsResponse{}, err
		}
		return settings.DepartmentSettingsResponse{}, fmt.Errorf("failed to get department settings: %w", err)
	}

	return toDepartmentResponse(global, doc), nil
}

func (s *SettingsServiceImpl) ListDepartments(ctx context.Context) ([]settings.DepartmentSettingsResponse, error) {
	global, _, err := s.global(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.settingsRepo.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list department settings: %w", err)
	}

	responses := make([]settings.DepartmentSettingsResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, toDepartmentResponse(global, doc))
	}
	return responses, nil
}

func (s *SettingsServiceImpl) GetEffectiveSettings(ctx context.Context, department *string) (settings.Settings, error) {
	global, _, err := s.global(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	if department == nil || validator.IsEmpty(*department) {
		return global, nil
	}

	doc, err := s.settingsRepo.GetDepartment(ctx, strings.TrimSpace(*department))
	if err != nil {
		if errors.Is(err, settings.ErrDepartmentSettingsNotFound) {
			return global, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get department settings: %w", err)
	}

	return settings.Merge(global, doc.Override), nil
}

func (s *SettingsServiceImpl) UpdateGlobal(ctx context.Context, o settings.Override) (settings.Settings, error) {
	if o.IsEmpty() {
		return settings.Settings{}, settings.ErrEmptyOverride
	}

	_, current, err := s.global(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	combined := settings.Combine(current, o)
	next := settings.Merge(settings.Defaults(), combined)
	if err := next.Validate(); err != nil {
		return settings.Settings{}, err
	}

	// A global change must not turn an existing department override contradictory.
	depts, err := s.settingsRepo.ListDepartments(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to list department settings: %w", err)
	}
	var errs validator.ValidationErrors
	for _, doc := range depts {
		if err := settings.Merge(next, doc.Override).Validate(); err != nil {
			errs = append(errs, prefixed(err, "departments."+deref(doc.Department))...)
		}
	}
	if len(errs) > 0 {
		return settings.Settings{}, errs
	}

	doc, err := s.settingsRepo.UpsertGlobal(ctx, combined)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save global settings: %w", err)
	}
	slog.Info("global settings updated")

	return settings.Merge(settings.Defaults(), doc.Override), nil
}

func (s *SettingsServiceImpl) UpdateDepartment(ctx context.Context, department string, o settings.Override) (settings.DepartmentSettingsResponse, error) {
	department, err := normalizeDepartment(department)
	if err != nil {
		return settings.DepartmentSettingsResponse{}, err
	}
	if o.IsEmpty() {
		return settings.DepartmentSettingsResponse{}, settings.ErrEmptyOverride
	}

	global, _, err := s.global(ctx)
	if err != nil {
		return settings.DepartmentSettingsResponse{}, err
	}

	var current settings.Override
	doc, err := s.settingsRepo.GetDepartment(ctx, department)
	switch {
	case err == nil:
		current = doc.Override
	case errors.Is(err, settings.ErrDepartmentSettingsNotFound):
	default:
		return settings.DepartmentSettingsResponse{}, fmt.Errorf("failed to get department settings: %w", err)
	}

	combined := settings.Combine(current, o)
	if err := settings.Merge(global, combined).Validate(); err != nil {
		return settings.DepartmentSettingsResponse{}, err
	}

	saved, err := s.settingsRepo.UpsertDepartment(ctx, department, combined)
	if err != nil {
		return settings.DepartmentSettingsResponse{}, fmt.Errorf("failed to save department settings: %w", err)
	}
	slog.Info("department settings updated", "department", department)

	return toDepartmentResponse(global, saved), nil
}

func (s *SettingsServiceImpl) DeleteDepartment(ctx context.Context, department string) error {
	department, err := normalizeDepartment(department)
	if err != nil {
		return err
	}

	if err := s.settingsRepo.DeleteDepartment(ctx, department); err != nil {
		if errors.Is(err, settings.ErrDepartmentSettingsNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete department settings: %w", err)
	}
	slog.Info("department settings deleted", "department", department)

	return nil
}

// global returns the resolved global settings and the stored override. A missing document resolves to the
// defaults without writing anything; EnsureDefaults persists them.
func (s *SettingsServiceImpl) global(ctx context.Context) (settings.Settings, settings.Override, error) {
	doc, err := s.settingsRepo.GetGlobal(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(), settings.Override{}, nil
		}
		return settings.Settings{}, settings.Override{}, fmt.Errorf("failed to get global settings: %w", err)
	}
	return settings.Merge(settings.Defaults(), doc.Override), doc.Override, nil
}

func normalizeDepartment(department string) (string, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return "", settings.ErrDepartmentRequired
	}
	return department, nil
}

func toDepartmentResponse(global settings.Settings, doc settings.Document) settings.DepartmentSettingsResponse {
	return settings.DepartmentSettingsResponse{
		Department: deref(doc.Department),
		Override:   doc.Override,
		Effective:  settings.Merge(global, doc.Override),
		UpdatedAt:  doc.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func prefixed(err error, prefix string) validator.ValidationErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return validator.ValidationErrors{{Field: prefix, Message: err.Error()}}
	}
	out := make(validator.ValidationErrors, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, validator.ValidationError{Field: prefix + "." + e.Field, Message: e.Message})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
