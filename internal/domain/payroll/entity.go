package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PayrollRecord is one employee's salary statement for a month. At most
// one record exists per (employee, month, year). Status moves
// pending -> paid and never back.
type PayrollRecord struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int
	BaseSalary decimal.Decimal
	Deductions decimal.Decimal
	Bonus      decimal.Decimal
	NetSalary  decimal.Decimal
	Status     PaymentStatus
	PaidAt     *time.Time
	PaidBy     *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	Department   *string
}
