package user

import "errors"

var (
	ErrUserClaimMissing        = errors.New("user_id claim is missing or invalid")
	ErrRoleClaimMissing        = errors.New("role claim is missing or invalid")
	ErrEmployeeRequired        = errors.New("an employee account is required")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
