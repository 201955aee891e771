package office

import (
	"errors"

	"github.com/cmlabs-hris/hris-geofence/internal/pkg/validator"
)

type CreateOfficeRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Radius    *int    `json:"radius,omitempty" validate:"omitempty,min=50,max=500"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *CreateOfficeRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return nil
}

// UpdateOfficeRequest is a partial update. Coordinates are fixed once the office exists.
type UpdateOfficeRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Radius  *int    `json:"radius,omitempty" validate:"omitempty,min=50,max=500"`
}

func (r *UpdateOfficeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if err := validator.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateOfficeRequest) IsEmpty() bool {
	return r.Name == nil && r.Address == nil && r.Radius == nil
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (r *SetActiveRequest) Validate() error {
	if r.IsActive == nil {
		return validator.ValidationErrors{{Field: "is_active", Message: "is_active is required"}}
	}
	return nil
}

type OfficeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    int     `json:"radius"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func ToResponse(o OfficeLocation) OfficeResponse {
	return OfficeResponse{
		ID:        o.ID,
		Name:      o.Name,
		Address:   o.Address,
		Latitude:  o.Coordinates.Latitude,
		Longitude: o.Coordinates.Longitude,
		Radius:    o.Radius,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: o.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
