package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService: holidayService,
	}
}

// List implements HolidayHandler. ?year= defaults to the current year.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 || y > 9999 {
			response.HandleError(w, validator.ValidationErrors{{Field: "year", Message: "year must be a number between 1970 and 9999"}})
			return
		}
		year = y
	}

	holidays, err := h.holidayService.ListByYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Create implements HolidayHandler.
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode holiday request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created)
}

// Delete implements HolidayHandler.
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, holiday.ErrHolidayNotFound)
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
