package leave

import (
	"context"
)

type LeaveService interface {
	// Types
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) error
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error

	// Quotas
	SetQuota(ctx context.Context, req SetQuotaRequest) (LeaveQuota, error)
	GetMyBalances(ctx context.Context, year int) ([]BalanceResponse, error)
	GetBalances(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)

	// Applications
	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)
	Approve(ctx context.Context, applicationID string) error
	Reject(ctx context.Context, applicationID string) error
	ListApplications(ctx context.Context, filter ApplicationFilter) (ListApplicationsResponse, error)
	ListMyApplications(ctx context.Context, filter ApplicationFilter) (ListApplicationsResponse, error)
	GetApplication(ctx context.Context, id string) (ApplicationResponse, error)
}
