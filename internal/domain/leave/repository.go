package leave

import (
	"context"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
	Delete(ctx context.Context, id string) error
}

// LeaveQuotaRepository - interface for leave_quotas table
type LeaveQuotaRepository interface {
	Create(ctx context.Context, quota LeaveQuota) (LeaveQuota, error)
	GetByID(ctx context.Context, id string) (LeaveQuota, error)
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LeaveQuota, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveQuota, error)
	Update(ctx context.Context, quota LeaveQuota) error
	Delete(ctx context.Context, id string) error
}

// LeaveApplicationRepository - interface for leave_applications table
type LeaveApplicationRepository interface {
	Create(ctx context.Context, application LeaveApplication) (LeaveApplication, error)
	GetByID(ctx context.Context, id string) (LeaveApplication, error)
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LeaveApplication, error)
	List(ctx context.Context, filter ApplicationFilter) ([]LeaveApplication, int64, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus, decidedBy string) error
}
