package user

type Permission string

const (
	// Attendance
	PermissionAttendanceViewOwn    Permission = "attendance.view_own"
	PermissionAttendanceCheckIn    Permission = "attendance.check_in"
	PermissionAttendanceViewAll    Permission = "attendance.view_all"
	PermissionAttendanceRegularize Permission = "attendance.regularize"

	// Leave
	PermissionLeaveViewOwn     Permission = "leave.view_own"
	PermissionLeaveApply       Permission = "leave.apply"
	PermissionLeaveViewAll     Permission = "leave.view_all"
	PermissionLeaveApprove     Permission = "leave.approve"
	PermissionLeaveManageTypes Permission = "leave.manage_types"
	PermissionLeaveManageQuota Permission = "leave.manage_quota"

	// Payroll
	PermissionPayrollViewOwn  Permission = "payroll.view_own"
	PermissionPayrollGenerate Permission = "payroll.generate"
	PermissionPayrollViewAll  Permission = "payroll.view_all"
	PermissionPayrollMarkPaid Permission = "payroll.mark_paid"

	// Employee directory
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewAll,
		PermissionAttendanceRegularize,
		PermissionLeaveViewOwn,
		PermissionLeaveApply,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionLeaveManageTypes,
		PermissionLeaveManageQuota,
		PermissionPayrollViewOwn,
		PermissionPayrollGenerate,
		PermissionPayrollViewAll,
		PermissionPayrollMarkPaid,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
	},
	RoleHR: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewAll,
		PermissionAttendanceRegularize,
		PermissionLeaveViewOwn,
		PermissionLeaveApply,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionLeaveManageQuota,
		PermissionPayrollViewOwn,
		PermissionPayrollGenerate,
		PermissionPayrollViewAll,
		PermissionEmployeeViewAll,
	},
	RoleEmployee: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceCheckIn,
		PermissionLeaveViewOwn,
		PermissionLeaveApply,
		PermissionPayrollViewOwn,
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
