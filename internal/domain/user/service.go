package user

import "context"

// EmployeeService manages the employee directory.
type EmployeeService interface {
	List(ctx context.Context, filter ListUsersFilter) (ListUsersResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	Deactivate(ctx context.Context, id string) error
}
