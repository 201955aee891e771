package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/office"
	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type OfficeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type officeHandlerImpl struct {
	officeService office.OfficeService
}

func NewOfficeHandler(officeService office.OfficeService) OfficeHandler {
	return &officeHandlerImpl{
		officeService: officeService,
	}
}

// List implements OfficeHandler. ?active=true restricts to active offices.
func (h *officeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	offices, err := h.officeService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, offices)
}

// Create implements OfficeHandler.
func (h *officeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req office.CreateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode office request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.officeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office location created", created)
}

// Get implements OfficeHandler.
func (h *officeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, office.ErrOfficeNotFound)
		return
	}

	result, err := h.officeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements OfficeHandler.
func (h *officeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, office.ErrOfficeNotFound)
		return
	}

	var req office.UpdateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode office update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.officeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location updated", updated)
}

// SetActive implements OfficeHandler.
func (h *officeHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, office.ErrOfficeNotFound)
		return
	}

	var req office.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode office activation", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.officeService.SetActive(r.Context(), id, *req.IsActive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location updated", updated)
}

// Delete implements OfficeHandler.
func (h *officeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, office.ErrOfficeNotFound)
		return
	}

	if err := h.officeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location deleted", nil)
}
