package user

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can review other employees' calendars
	RoleEmployee Role = "employee" // Regular employee
	RolePending  Role = "pending"  // Still in onboarding
)

// Principal is the caller identity carried by an access token.
type Principal struct {
	UserID     string
	EmployeeID string
	Department *string
	Role       Role
}

// IsOwner checks if user is company owner
func (p Principal) IsOwner() bool {
	return p.Role == RoleOwner
}

// IsManager checks if user is manager or owner
func (p Principal) IsManager() bool {
	return p.Role == RoleManager || p.Role == RoleOwner
}

// PrincipalFromClaims reads the identity claims of a decoded access token. employee_id and department are
// optional; owners without an employee record may still administer settings.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, ErrUserClaimMissing
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Principal{}, ErrRoleClaimMissing
	}

	p := Principal{UserID: userID, Role: Role(role)}
	if employeeID, ok := claims["employee_id"].(string); ok {
		p.EmployeeID = employeeID
	}
	if dept, ok := claims["department"].(string); ok && dept != "" {
		p.Department = &dept
	}
	return p, nil
}
