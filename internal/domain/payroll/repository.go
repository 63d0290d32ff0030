package payroll

import "context"

// PayrollRepository - interface for payroll_records table
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*PayrollRecord, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	MarkPaid(ctx context.Context, id string, paidBy string) error
	GetSummary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
