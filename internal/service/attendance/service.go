package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/user"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	metrics        *MetricsCalculator
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	metrics *MetricsCalculator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		metrics:        metrics,
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

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toAttendanceResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                   rec.ID,
		EmployeeID:           rec.EmployeeID,
		EmployeeName:         rec.EmployeeName,
		Date:                 rec.Date.Format("2006-01-02"),
		CheckIn:              timePtrToString(rec.CheckIn),
		CheckOut:             timePtrToString(rec.CheckOut),
		WorkingHours:         rec.WorkingHours,
		Status:               string(rec.Status),
		RegularizationReason: rec.RegularizationReason,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := dayOf(now)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := a.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return toAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := dayOf(now)

	rec, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if rec == nil || rec.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	rec.CheckOut = &now
	workedMinutes := int(now.Sub(*rec.CheckIn).Minutes())
	workingHours := FormatWorkingHours(workedMinutes)
	rec.WorkingHours = &workingHours

	if err := a.attendanceRepo.Update(ctx, *rec); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toAttendanceResponse(*rec), nil
}

// Regularize implements attendance.AttendanceService. It corrects an
// existing record, or creates the day's record when the employee never
// checked in. The reason is mandatory and stored alongside the change.
func (a *AttendanceServiceImpl) Regularize(ctx context.Context, req attendance.RegularizeRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	actorID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	rec, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance record: %w", err)
	}

	target := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.StatusPresent,
	}
	if rec != nil {
		target = *rec
	}

	if req.CheckIn != nil {
		checkIn, _ := time.Parse(time.RFC3339, *req.CheckIn)
		target.CheckIn = &checkIn
	}
	if req.CheckOut != nil {
		checkOut, _ := time.Parse(time.RFC3339, *req.CheckOut)
		target.CheckOut = &checkOut
	}
	if req.Status != nil {
		target.Status = attendance.Status(*req.Status)
	}
	target.RegularizationReason = &req.Reason
	target.RegularizedBy = &actorID

	if target.CheckIn != nil && target.CheckOut != nil {
		workedMinutes := int(target.CheckOut.Sub(*target.CheckIn).Minutes())
		workingHours := FormatWorkingHours(workedMinutes)
		target.WorkingHours = &workingHours
	}

	if rec == nil {
		created, err := a.attendanceRepo.Create(ctx, target)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to create regularized record: %w", err)
		}
		return toAttendanceResponse(created), nil
	}

	if err := a.attendanceRepo.Update(ctx, target); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update regularized record: %w", err)
	}
	return toAttendanceResponse(target), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return a.ListAttendance(ctx, attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		Month:      filter.Month,
		Year:       filter.Year,
		Page:       filter.Page,
		Limit:      filter.Limit,
	})
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toAttendanceResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		Records:    responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(rec), nil
}

// MonthlySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string, month, year int) (attendance.MonthlySummaryResponse, error) {
	records, err := a.attendanceRepo.GetForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to load attendance records for period: %w", err)
	}

	m := a.metrics.Summarize(records)

	return attendance.MonthlySummaryResponse{
		EmployeeID:          employeeID,
		Month:               month,
		Year:                year,
		PresentDays:         m.PresentDays,
		AbsentDays:          m.AbsentDays,
		HalfDays:            m.HalfDays,
		LeaveDays:           m.LeaveDays,
		LateDays:            m.LateDays,
		AverageWorkingHours: m.AverageWorkingHours,
		AttendanceRatio:     m.AttendanceRatio,
		ExpectedWorkingDays: a.metrics.ExpectedWorkingDays(),
	}, nil
}
