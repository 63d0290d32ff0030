package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/payroll"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/user"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db          *database.DB
	payrollRepo payroll.PayrollRepository
	userRepo    user.UserRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	userRepo user.UserRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:          db,
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func toRecordResponse(rec payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paidAt *string
	if rec.PaidAt != nil {
		s := rec.PaidAt.Format(time.RFC3339)
		paidAt = &s
	}

	return payroll.PayrollRecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Department:   rec.Department,
		Month:        rec.Month,
		Year:         rec.Year,
		BaseSalary:   rec.BaseSalary.String(),
		Deductions:   rec.Deductions.String(),
		Bonus:        rec.Bonus.String(),
		NetSalary:    rec.NetSalary.String(),
		Status:       string(rec.Status),
		PaidAt:       paidAt,
		Notes:        rec.Notes,
	}
}

// Generate implements payroll.PayrollService. It rejects a negative
// base salary outright while malformed deduction or bonus input is
// clamped to zero by ParseAmount.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	base, err := decimal.NewFromString(req.BaseSalary)
	if err != nil {
		base = decimal.Zero
	}
	if base.IsNegative() {
		return payroll.PayrollRecordResponse{}, payroll.ErrNegativeBaseSalary
	}

	employee, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	existing, err := s.payrollRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to look up existing record: %w", err)
	}
	if existing != nil {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordAlreadyExists
	}

	deductions := ParseAmount(req.Deductions)
	bonus := ParseAmount(req.Bonus)

	created, err := s.payrollRepo.Create(ctx, payroll.PayrollRecord{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: base,
		Deductions: deductions,
		Bonus:      bonus,
		NetSalary:  NetSalary(base, deductions, bonus),
		Status:     payroll.PaymentStatusPending,
		Notes:      req.Notes,
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	created.EmployeeName = &employee.Name
	created.Department = employee.Department
	return toRecordResponse(created), nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toRecordResponse(rec), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}

	return payroll.ListPayrollRecordResponse{
		Records:    responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}, nil
}

// ListMy implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListMy(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return s.List(ctx, filter)
}

// MarkPaid implements payroll.PayrollService. Payment is one-way; a
// paid record can never revert to pending.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) error {
	actorID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Status == payroll.PaymentStatusPaid {
		return payroll.ErrPayrollRecordAlreadyPaid
	}

	return s.payrollRepo.MarkPaid(ctx, id, actorID)
}

// Summary implements payroll.PayrollService.
func (s *PayrollServiceImpl) Summary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	if month < 1 || month > 12 {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}
	return s.payrollRepo.GetSummary(ctx, month, year)
}
