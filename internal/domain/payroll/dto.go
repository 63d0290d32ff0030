package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/validator"
)

// ========== RECORD DTOs ==========

// GeneratePayrollRequest creates one record for one employee-period.
// Monetary fields arrive as strings so that malformed input can be
// clamped to zero instead of failing the JSON decode.
type GeneratePayrollRequest struct {
	EmployeeID string  `json:"employee_id"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	BaseSalary string  `json:"base_salary"`
	Deductions string  `json:"deductions,omitempty"`
	Bonus      string  `json:"bonus,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if validator.IsEmpty(r.BaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	BaseSalary   string  `json:"base_salary"`
	Deductions   string  `json:"deductions"`
	Bonus        string  `json:"bonus"`
	NetSalary    string  `json:"net_salary"`
	Status       string  `json:"payment_status"`
	PaidAt       *string `json:"paid_at,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type PayrollFilter struct {
	EmployeeID *string
	Month      *int
	Year       *int
	Status     *string
	Page       int
	Limit      int
}

type ListPayrollRecordResponse struct {
	Records    []PayrollRecordResponse `json:"records"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalItems int64                   `json:"total_items"`
}

// PayrollSummaryResponse aggregates one period across all employees.
type PayrollSummaryResponse struct {
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	TotalEmployees  int             `json:"total_employees"`
	TotalBaseSalary decimal.Decimal `json:"total_base_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalBonus      decimal.Decimal `json:"total_bonus"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	PendingCount    int             `json:"pending_count"`
	PaidCount       int             `json:"paid_count"`
}
