package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingsHandler interface {
	Effective(w http.ResponseWriter, r *http.Request)
	GetGlobal(w http.ResponseWriter, r *http.Request)
	UpdateGlobal(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// Effective implements SettingsHandler. Without ?department= the caller's own department is used.
func (h *settingsHandlerImpl) Effective(w http.ResponseWriter, r *http.Request) {
	department := optionalQuery(r, "department")
	if department == nil {
		p, err := principalFromRequest(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		department = p.Department
	}

	effective, err := h.settingsService.GetEffectiveSettings(r.Context(), department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings.EffectiveSettingsResponse{
		Department: department,
		Settings:   effective,
	})
}

// GetGlobal implements SettingsHandler.
func (h *settingsHandlerImpl) GetGlobal(w http.ResponseWriter, r *http.Request) {
	global, err := h.settingsService.GetGlobal(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, global)
}

// UpdateGlobal implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateGlobal(w http.ResponseWriter, r *http.Request) {
	var req settings.Override
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode global settings", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	global, err := h.settingsService.UpdateGlobal(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Global settings updated", global)
}

// ListDepartments implements SettingsHandler.
func (h *settingsHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.settingsService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// GetDepartment implements SettingsHandler.
func (h *settingsHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetDepartment(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateDepartment implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req settings.Override
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode department settings", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateDepartment(r.Context(), chi.URLParam(r, "name"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department settings updated", result)
}

// DeleteDepartment implements SettingsHandler.
func (h *settingsHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsService.DeleteDepartment(r.Context(), chi.URLParam(r, "name")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department settings deleted", nil)
}
