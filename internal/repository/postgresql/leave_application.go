package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/leave"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
)

const applicationColumns = `la.id, la.employee_id, la.leave_type_id, la.start_date, la.end_date,
	   la.total_days, la.reason, la.status, la.applied_at, la.decided_by, la.decided_at,
	   la.created_at, la.updated_at`

type leaveApplicationRepository struct {
	db *database.DB
}

func NewLeaveApplicationRepository(db *database.DB) leave.LeaveApplicationRepository {
	return &leaveApplicationRepository{db: db}
}

func scanApplicationJoined(row pgx.Row) (leave.LeaveApplication, error) {
	var app leave.LeaveApplication
	err := row.Scan(
		&app.ID,
		&app.EmployeeID,
		&app.LeaveTypeID,
		&app.StartDate,
		&app.EndDate,
		&app.TotalDays,
		&app.Reason,
		&app.Status,
		&app.AppliedAt,
		&app.DecidedBy,
		&app.DecidedAt,
		&app.CreatedAt,
		&app.UpdatedAt,
		&app.EmployeeName,
		&app.LeaveTypeName,
	)
	if err != nil {
		return leave.LeaveApplication{}, err
	}
	return app, nil
}

// Create implements leave.LeaveApplicationRepository.
func (r *leaveApplicationRepository) Create(ctx context.Context, application leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (
			employee_id, leave_type_id, start_date, end_date,
			total_days, reason, status, applied_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		application.EmployeeID,
		application.LeaveTypeID,
		application.StartDate,
		application.EndDate,
		application.TotalDays,
		application.Reason,
		application.Status,
		application.AppliedAt,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return application, nil
}

// GetByID implements leave.LeaveApplicationRepository.
func (r *leaveApplicationRepository) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + applicationColumns + `, u.name, lt.name
		FROM leave_applications la
		JOIN users u ON u.id = la.employee_id
		LEFT JOIN leave_types lt ON lt.id = la.leave_type_id
		WHERE la.id = $1
	`

	app, err := scanApplicationJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveApplication{}, leave.ErrApplicationNotFound
		}
		return leave.LeaveApplication{}, err
	}
	return app, nil
}

// GetByEmployeeAndYear implements leave.LeaveApplicationRepository. The
// year matches on the application's start date.
func (r *leaveApplicationRepository) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + applicationColumns + `, u.name, lt.name
		FROM leave_applications la
		JOIN users u ON u.id = la.employee_id
		LEFT JOIN leave_types lt ON lt.id = la.leave_type_id
		WHERE la.employee_id = $1
		  AND EXTRACT(YEAR FROM la.start_date) = $2
		ORDER BY la.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []leave.LeaveApplication
	for rows.Next() {
		app, err := scanApplicationJoined(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// List implements leave.LeaveApplicationRepository.
func (r *leaveApplicationRepository) List(ctx context.Context, filter leave.ApplicationFilter) ([]leave.LeaveApplication, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND la.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.LeaveTypeID != nil {
		where += fmt.Sprintf(" AND la.leave_type_id = $%d", argPos)
		args = append(args, *filter.LeaveTypeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND la.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM la.start_date) = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_applications la`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + applicationColumns + `, u.name, lt.name
		FROM leave_applications la
		JOIN users u ON u.id = la.employee_id
		LEFT JOIN leave_types lt ON lt.id = la.leave_type_id` + where +
		fmt.Sprintf(" ORDER BY la.applied_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []leave.LeaveApplication
	for rows.Next() {
		app, err := scanApplicationJoined(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	return apps, total, rows.Err()
}

// UpdateStatus implements leave.LeaveApplicationRepository. Only pending
// applications transition; the WHERE clause makes the decision race-safe.
func (r *leaveApplicationRepository) UpdateStatus(ctx context.Context, id string, status leave.ApplicationStatus, decidedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $1, decided_by = $2, decided_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, decidedBy, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationAlreadyDecided
	}
	return nil
}
