package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
)

// ValidStatuses lists every accepted attendance status.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusHalfDay),
	string(StatusLeave),
}

// Attendance is one employee's record for one calendar day. There is at
// most one record per (employee, date); regularization adjusts the same
// row rather than creating another.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar day, time part zeroed
	CheckIn    *time.Time
	CheckOut   *time.Time
	// WorkingHours is the formatted "{h}h {m}m" duration the legacy data
	// carries. Set on check-out or regularization.
	WorkingHours         *string
	Status               Status
	RegularizationReason *string
	RegularizedBy        *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined fields
	EmployeeName *string
}
