package attendance

import (
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/validator"
)

// RegularizeRequest is an administrative correction of a missed or wrong
// check-in/out. A reason is mandatory.
type RegularizeRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	CheckIn    *string `json:"check_in,omitempty"`  // RFC3339
	CheckOut   *string `json:"check_out,omitempty"` // RFC3339
	Status     *string `json:"status,omitempty"`
	Reason     string  `json:"reason"`
}

func (r *RegularizeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an RFC3339 timestamp",
			})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an RFC3339 timestamp",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, half_day, leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter filters the admin listing
type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	Month      *int
	Year       *int
	Page       int
	Limit      int
}

// MyAttendanceFilter filters an employee's own records
type MyAttendanceFilter struct {
	Month *int
	Year  *int
	Page  int
	Limit int
}

type AttendanceResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         *string `json:"employee_name,omitempty"`
	Date                 string  `json:"date"`
	CheckIn              *string `json:"check_in,omitempty"`
	CheckOut             *string `json:"check_out,omitempty"`
	WorkingHours         *string `json:"working_hours,omitempty"`
	Status               string  `json:"status"`
	RegularizationReason *string `json:"regularization_reason,omitempty"`
}

type ListAttendanceResponse struct {
	Records    []AttendanceResponse `json:"records"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalItems int64                `json:"total_items"`
}

// MonthlySummaryResponse carries the derived metrics for one employee-month.
type MonthlySummaryResponse struct {
	EmployeeID          string `json:"employee_id"`
	Month               int    `json:"month"`
	Year                int    `json:"year"`
	PresentDays         int    `json:"present_days"`
	AbsentDays          int    `json:"absent_days"`
	HalfDays            int    `json:"half_days"`
	LeaveDays           int    `json:"leave_days"`
	LateDays            int    `json:"late_days"`
	AverageWorkingHours string `json:"average_working_hours"`
	AttendanceRatio     int    `json:"attendance_ratio"`
	ExpectedWorkingDays int    `json:"expected_working_days"`
}
