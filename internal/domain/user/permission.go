package user

type Permission string

const (
	// Self service
	PermissionGeofenceCheck      Permission = "geofence.check"
	PermissionAttendanceEvaluate Permission = "attendance.evaluate"
	PermissionCalendarViewOwn    Permission = "calendar.view_own"
	PermissionSettingsView       Permission = "settings.view"

	// Team
	PermissionCalendarViewAll Permission = "calendar.view_all"

	// Administration
	PermissionSettingsManage Permission = "settings.manage"
	PermissionOfficeManage   Permission = "office.manage"
	PermissionHolidayManage  Permission = "holiday.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		// Owner has all permissions
		PermissionGeofenceCheck,
		PermissionAttendanceEvaluate,
		PermissionCalendarViewOwn,
		PermissionSettingsView,
		PermissionCalendarViewAll,
		PermissionSettingsManage,
		PermissionOfficeManage,
		PermissionHolidayManage,
	},
	RoleManager: {
		PermissionGeofenceCheck,
		PermissionAttendanceEvaluate,
		PermissionCalendarViewOwn,
		PermissionSettingsView,
		PermissionCalendarViewAll,
		PermissionHolidayManage,
	},
	RoleEmployee: {
		PermissionGeofenceCheck,
		PermissionAttendanceEvaluate,
		PermissionCalendarViewOwn,
		PermissionSettingsView,
	},
	RolePending: {
		// Pending role has no permissions
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
