package settings

type DepartmentSettingsResponse struct {
	Department string   `json:"department"`
	Override   Override `json:"override"`
	Effective  Settings `json:"effective"`
	UpdatedAt  string   `json:"updated_at"`
}

type EffectiveSettingsResponse struct {
	Department *string  `json:"department,omitempty"`
	Settings   Settings `json:"settings"`
}
