package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/attendance"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
)

const attendanceColumns = `a.id, a.employee_id, a.date, a.check_in, a.check_out, a.working_hours,
	   a.status, a.regularization_reason, a.regularized_by, a.created_at, a.updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID,
		&att.EmployeeID,
		&att.Date,
		&att.CheckIn,
		&att.CheckOut,
		&att.WorkingHours,
		&att.Status,
		&att.RegularizationReason,
		&att.RegularizedBy,
		&att.CreatedAt,
		&att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, check_in, check_out, working_hours,
			status, regularization_reason, regularized_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.WorkingHours,
		newAttendance.Status,
		newAttendance.RegularizationReason,
		newAttendance.RegularizedBy,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `, u.name
		FROM attendances a
		JOIN users u ON u.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID,
		&att.EmployeeID,
		&att.Date,
		&att.CheckIn,
		&att.CheckOut,
		&att.WorkingHours,
		&att.Status,
		&att.RegularizationReason,
		&att.RegularizedBy,
		&att.CreatedAt,
		&att.UpdatedAt,
		&att.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
// Returns nil when no record exists for that day.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in = $1,
			check_out = $2,
			working_hours = $3,
			status = $4,
			regularization_reason = $5,
			regularized_by = $6,
			updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		att.CheckIn,
		att.CheckOut,
		att.WorkingHours,
		att.Status,
		att.RegularizationReason,
		att.RegularizedBy,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM a.date) = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM a.date) = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances a`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + attendanceColumns + `, u.name
		FROM attendances a
		JOIN users u ON u.id = a.employee_id` + where +
		fmt.Sprintf(" ORDER BY a.date DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID,
			&att.EmployeeID,
			&att.Date,
			&att.CheckIn,
			&att.CheckOut,
			&att.WorkingHours,
			&att.Status,
			&att.RegularizationReason,
			&att.RegularizedBy,
			&att.CreatedAt,
			&att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, att)
	}
	return records, total, rows.Err()
}

// GetForPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetForPeriod(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND EXTRACT(MONTH FROM a.date) = $2
		  AND EXTRACT(YEAR FROM a.date) = $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	return records, rows.Err()
}
