package leave

import (
	"time"
)

// DefaultColor is used when a quota or application references a leave type
// with no metadata.
const DefaultColor = "#3B82F6"

// UnknownTypeName is the placeholder for unresolvable leave type references.
const UnknownTypeName = "Unknown Leave"

// LeaveType is static reference data describing one kind of leave.
type LeaveType struct {
	ID        string
	Name      string
	Color     *string
	IsAnnual  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveQuota allots an employee a number of leave days of one type for a
// year. Usage is never decremented here; it is derived by aggregating
// approved applications.
type LeaveQuota struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int
	TotalQuota  int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName  *string
	LeaveTypeName *string
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// LeaveApplication is an employee's request for leave days. Status moves
// pending -> approved or pending -> rejected and is terminal after that.
type LeaveApplication struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	TotalDays   int
	Reason      string
	Status      ApplicationStatus
	AppliedAt   time.Time
	DecidedBy   *string
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName  *string
	LeaveTypeName *string
}

// InclusiveDaySpan returns the number of calendar days from start to end,
// counting both endpoints.
func InclusiveDaySpan(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if endDay.Before(startDay) {
		return 0
	}
	return int(endDay.Sub(startDay).Hours()/24) + 1
}
