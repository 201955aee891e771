package settings

import "errors"

var (
	ErrSettingsNotFound           = errors.New("settings not found")
	ErrDepartmentSettingsNotFound = errors.New("department settings not found")
	ErrDepartmentRequired         = errors.New("department name is required")
	ErrEmptyOverride              = errors.New("settings update contains no fields")
)
