package office

import "errors"

var (
	ErrOfficeNotFound   = errors.New("office location not found")
	ErrOfficeNameExists = errors.New("office location with this name already exists")
	ErrNothingToUpdate  = errors.New("no updatable fields provided")
)
