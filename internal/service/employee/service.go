package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/user"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
}

func NewEmployeeService(db *database.DB, userRepo user.UserRepository) user.EmployeeService {
	return &EmployeeServiceImpl{db: db, userRepo: userRepo}
}

func toUserResponse(u user.User) user.UserResponse {
	var joinDate *string
	if u.JoinDate != nil {
		s := u.JoinDate.Format("2006-01-02")
		joinDate = &s
	}

	return user.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
		Position:   u.Position,
		JoinDate:   joinDate,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter user.ListUsersFilter) (user.ListUsersResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}

	return user.ListUsersResponse{
		Users:      responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}, nil
}

// Get implements user.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toUserResponse(found), nil
}

// Update implements user.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, req)
}

// Deactivate implements user.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Deactivate(ctx, id)
}
