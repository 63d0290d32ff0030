package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn creates today's record for the authenticated employee
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut closes today's open record and computes working hours
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves attendance records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin/HR)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Regularize corrects check-in/out times or status with a mandatory reason (admin/HR)
	Regularize(ctx context.Context, req RegularizeRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// MonthlySummary computes derived metrics over one employee-month
	MonthlySummary(ctx context.Context, employeeID string, month, year int) (MonthlySummaryResponse, error)
}
