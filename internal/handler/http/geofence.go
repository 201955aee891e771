package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-geofence/internal/domain/geofence"
	"github.com/cmlabs-hris/hris-geofence/internal/domain/settings"
	"github.com/cmlabs-hris/hris-geofence/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type GeofenceHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
	Nearest(w http.ResponseWriter, r *http.Request)
}

type geofenceHandlerImpl struct {
	resolver        geofence.Resolver
	settingsService settings.SettingsService
}

func NewGeofenceHandler(resolver geofence.Resolver, settingsService settings.SettingsService) GeofenceHandler {
	return &geofenceHandlerImpl{
		resolver:        resolver,
		settingsService: settingsService,
	}
}

// Check implements GeofenceHandler. The caller's department default_radius applies to offices without a radius.
func (h *geofenceHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	var req geofence.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode geofence check request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	p, err := principalFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	effective, err := h.settingsService.GetEffectiveSettings(r.Context(), p.Department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.resolver.Evaluate(r.Context(), geofence.Query{
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		RadiusOverride: req.RadiusOverride,
		DefaultRadius:  effective.Geofence.DefaultRadius,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, geofence.ToCheckResponse(result))
}

// Nearest implements GeofenceHandler.
func (h *geofenceHandlerImpl) Nearest(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "lat", Message: "lat must be a number"})
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "lon", Message: "lon must be a number"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	nearest, err := h.resolver.FindNearestOffice(r.Context(), lat, lon)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, geofence.ToNearestResponse(nearest))
}
