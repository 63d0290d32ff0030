package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/leave"
)

func toApplicationResponse(app leave.LeaveApplication) leave.ApplicationResponse {
	typeName := leave.UnknownTypeName
	if app.LeaveTypeName != nil && *app.LeaveTypeName != "" {
		typeName = *app.LeaveTypeName
	}

	return leave.ApplicationResponse{
		ID:            app.ID,
		EmployeeID:    app.EmployeeID,
		EmployeeName:  app.EmployeeName,
		LeaveTypeID:   app.LeaveTypeID,
		LeaveTypeName: typeName,
		StartDate:     app.StartDate.Format("2006-01-02"),
		EndDate:       app.EndDate.Format("2006-01-02"),
		TotalDays:     app.TotalDays,
		Reason:        app.Reason,
		Status:        string(app.Status),
		AppliedAt:     app.AppliedAt.Format(time.RFC3339),
	}
}

// Apply implements leave.LeaveService. New applications always start in
// pending state and do not touch the quota until approved.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplicationResponse{}, err
	}

	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	leaveType, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	start, end := req.Dates()
	created, err := s.applicationRepo.Create(ctx, leave.LeaveApplication{
		EmployeeID:  employeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   req.TotalDays,
		Reason:      req.Reason,
		Status:      leave.ApplicationStatusPending,
		AppliedAt:   time.Now(),
	})
	if err != nil {
		return leave.ApplicationResponse{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	created.LeaveTypeName = &leaveType.Name
	return toApplicationResponse(created), nil
}

func (s *LeaveServiceImpl) decide(ctx context.Context, applicationID string, status leave.ApplicationStatus) error {
	deciderID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	app, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	// Decisions are terminal; an approved or rejected application can
	// never be re-decided.
	if app.Status != leave.ApplicationStatusPending {
		return leave.ErrApplicationAlreadyDecided
	}

	return s.applicationRepo.UpdateStatus(ctx, applicationID, status, deciderID)
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, applicationID string) error {
	return s.decide(ctx, applicationID, leave.ApplicationStatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, applicationID string) error {
	return s.decide(ctx, applicationID, leave.ApplicationStatusRejected)
}

// ListApplications implements leave.LeaveService.
func (s *LeaveServiceImpl) ListApplications(ctx context.Context, filter leave.ApplicationFilter) (leave.ListApplicationsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	apps, total, err := s.applicationRepo.List(ctx, filter)
	if err != nil {
		return leave.ListApplicationsResponse{}, fmt.Errorf("failed to list leave applications: %w", err)
	}

	responses := make([]leave.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, toApplicationResponse(app))
	}

	return leave.ListApplicationsResponse{
		Applications: responses,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalItems:   total,
	}, nil
}

// ListMyApplications implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyApplications(ctx context.Context, filter leave.ApplicationFilter) (leave.ListApplicationsResponse, error) {
	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.ListApplicationsResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return s.ListApplications(ctx, filter)
}

// GetApplication implements leave.LeaveService.
func (s *LeaveServiceImpl) GetApplication(ctx context.Context, id string) (leave.ApplicationResponse, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	return toApplicationResponse(app), nil
}
