package leave

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/leave"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/user"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db              *database.DB
	leaveTypeRepo   leave.LeaveTypeRepository
	leaveQuotaRepo  leave.LeaveQuotaRepository
	applicationRepo leave.LeaveApplicationRepository
	userRepo        user.UserRepository
	ledger          *QuotaLedger
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveQuotaRepo leave.LeaveQuotaRepository,
	applicationRepo leave.LeaveApplicationRepository,
	userRepo user.UserRepository,
	ledger *QuotaLedger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		leaveTypeRepo:   leaveTypeRepo,
		leaveQuotaRepo:  leaveQuotaRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		ledger:          ledger,
	}
}

// userIDFromContext extracts the authenticated user ID from JWT claims.
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

func toLeaveTypeResponse(t leave.LeaveType) leave.LeaveTypeResponse {
	color := leave.DefaultColor
	if t.Color != nil && *t.Color != "" {
		color = *t.Color
	}
	return leave.LeaveTypeResponse{
		ID:       t.ID,
		Name:     t.Name,
		Color:    color,
		IsAnnual: t.IsAnnual,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := s.leaveTypeRepo.Create(ctx, leave.LeaveType{
		Name:     req.Name,
		Color:    req.Color,
		IsAnnual: req.IsAnnual,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return toLeaveTypeResponse(created), nil
}

// UpdateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.leaveTypeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Color != nil {
		existing.Color = req.Color
	}
	if req.IsAnnual != nil {
		existing.IsAnnual = *req.IsAnnual
	}

	return s.leaveTypeRepo.Update(ctx, existing)
}

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, toLeaveTypeResponse(t))
	}
	return responses, nil
}

// DeleteLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	if _, err := s.leaveTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.leaveTypeRepo.Delete(ctx, id)
}

// SetQuota implements leave.LeaveService. Quotas are set once per
// (employee, type, year); setting again replaces the total allotment.
func (s *LeaveServiceImpl) SetQuota(ctx context.Context, req leave.SetQuotaRequest) (leave.LeaveQuota, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveQuota{}, err
	}

	if _, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.LeaveQuota{}, err
	}
	if _, err := s.userRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveQuota{}, err
	}

	existing, err := s.leaveQuotaRepo.GetByEmployeeTypeYear(ctx, req.EmployeeID, req.LeaveTypeID, req.Year)
	if err != nil {
		return leave.LeaveQuota{}, fmt.Errorf("failed to look up existing quota: %w", err)
	}

	if existing != nil {
		existing.TotalQuota = req.TotalQuota
		if err := s.leaveQuotaRepo.Update(ctx, *existing); err != nil {
			return leave.LeaveQuota{}, err
		}
		return *existing, nil
	}

	return s.leaveQuotaRepo.Create(ctx, leave.LeaveQuota{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		Year:        req.Year,
		TotalQuota:  req.TotalQuota,
	})
}

// GetMyBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyBalances(ctx context.Context, year int) ([]leave.BalanceResponse, error) {
	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetBalances(ctx, employeeID, year)
}

// GetBalances implements leave.LeaveService. It snapshots quotas, type
// metadata and applications, then lets the ledger derive the balances.
func (s *LeaveServiceImpl) GetBalances(ctx context.Context, employeeID string, year int) ([]leave.BalanceResponse, error) {
	quotas, err := s.leaveQuotaRepo.GetByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotas: %w", err)
	}

	types, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave types: %w", err)
	}

	applications, err := s.applicationRepo.GetByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}

	return s.ledger.Balances(quotas, types, applications), nil
}
