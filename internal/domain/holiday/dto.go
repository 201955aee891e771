package holiday

import (
	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Name        string  `json:"name" validate:"required,max=100"`
	Type        string  `json:"type" validate:"omitempty,oneof=public optional restricted"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

func (r *CreateHolidayRequest) Validate() error {
	if r.Type == "" {
		r.Type = string(HolidayTypePublic)
	}
	return validator.Struct(r)
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Name:        h.Name,
		Type:        string(h.Type),
		Description: h.Description,
	}
}
