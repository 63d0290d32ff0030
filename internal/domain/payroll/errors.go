package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrPayrollRecordAlreadyPaid   = errors.New("payroll record already paid, cannot modify")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrNegativeBaseSalary         = errors.New("base salary must not be negative")
	ErrEmployeeNotFound           = errors.New("employee not found")
)
