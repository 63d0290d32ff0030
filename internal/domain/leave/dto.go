package leave

import (
	"time"

	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/validator"
)

// ========== TYPE DTOs ==========

type CreateLeaveTypeRequest struct {
	Name     string  `json:"name"`
	Color    *string `json:"color,omitempty"`
	IsAnnual bool    `json:"is_annual"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	Color    *string `json:"color,omitempty"`
	IsAnnual *bool   `json:"is_annual,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveTypeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	IsAnnual bool   `json:"is_annual"`
}

// ========== QUOTA DTOs ==========

type SetQuotaRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Year        int    `json:"year"`
	TotalQuota  int    `json:"total_quota"`
}

func (r *SetQuotaRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "leave_type_id is required"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if r.TotalQuota < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_quota", Message: "total_quota must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== APPLICATION DTOs ==========

type ApplyRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	TotalDays   int    `json:"total_days"`
	Reason      string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "leave_type_id is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if r.TotalDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_days", Message: "total_days must be greater than zero"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}

	if startOK && endOK {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
		} else if span := InclusiveDaySpan(start, end); r.TotalDays != span {
			errs = append(errs, validator.ValidationError{
				Field:   "total_days",
				Message: "total_days must equal the inclusive span of start_date..end_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed date range. Call only after Validate.
func (r *ApplyRequest) Dates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", r.StartDate)
	end, _ = time.Parse("2006-01-02", r.EndDate)
	return start, end
}

type RejectApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

func (r *RejectApplicationRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{Field: "application_id", Message: "application_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplicationFilter struct {
	EmployeeID  *string
	LeaveTypeID *string
	Status      *string
	Year        *int
	Page        int
	Limit       int
}

type ApplicationResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AppliedAt     string  `json:"applied_at"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalItems   int64                 `json:"total_items"`
}

// ========== BALANCE DTOs ==========

// BalanceResponse is the derived per-type quota view for one employee-year.
// Remaining may be negative when more days were approved than allotted;
// callers use that to flag over-quota rather than this layer clamping it.
type BalanceResponse struct {
	LeaveTypeID      string  `json:"leave_type_id"`
	LeaveTypeName    string  `json:"leave_type_name"`
	Color            string  `json:"color"`
	IsAnnual         bool    `json:"is_annual"`
	Year             int     `json:"year"`
	TotalQuota       int     `json:"total_quota"`
	UsedDays         int     `json:"used_days"`
	PendingDays      int     `json:"pending_days"`
	Remaining        int     `json:"remaining"`
	PercentRemaining float64 `json:"percent_remaining"`
}
