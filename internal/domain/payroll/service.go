package payroll

import "context"

type PayrollService interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollRecordResponse, error)
	Get(ctx context.Context, id string) (PayrollRecordResponse, error)
	List(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)
	ListMy(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)
	MarkPaid(ctx context.Context, id string) error
	Summary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
