package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/payroll"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
)

const payrollColumns = `p.id, p.employee_id, p.month, p.year, p.base_salary, p.deductions,
	   p.bonus, p.net_salary, p.status, p.paid_at, p.paid_by, p.notes, p.created_at, p.updated_at`

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func scanPayrollJoined(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Month,
		&rec.Year,
		&rec.BaseSalary,
		&rec.Deductions,
		&rec.Bonus,
		&rec.NetSalary,
		&rec.Status,
		&rec.PaidAt,
		&rec.PaidBy,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
		&rec.Department,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, month, year, base_salary, deductions, bonus, net_salary, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Month,
		record.Year,
		record.BaseSalary,
		record.Deductions,
		record.Bonus,
		record.NetSalary,
		record.Status,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `, u.name, u.department
		FROM payroll_records p
		JOIN users u ON u.id = p.employee_id
		WHERE p.id = $1
	`

	rec, err := scanPayrollJoined(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

// GetByEmployeeAndPeriod implements payroll.PayrollRepository. Returns nil
// when no record exists for that employee-period.
func (r *payrollRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `, u.name, u.department
		FROM payroll_records p
		JOIN users u ON u.id = p.employee_id
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
	`

	rec, err := scanPayrollJoined(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND p.month = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND p.year = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND p.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_records p`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + payrollColumns + `, u.name, u.department
		FROM payroll_records p
		JOIN users u ON u.id = p.employee_id` + where +
		fmt.Sprintf(" ORDER BY p.year DESC, p.month DESC, u.name ASC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollJoined(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// MarkPaid implements payroll.PayrollRepository. The status guard in the
// WHERE clause makes the pending -> paid transition race-safe.
func (r *payrollRepository) MarkPaid(ctx context.Context, id string, paidBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'paid', paid_at = NOW(), paid_by = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, paidBy, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordAlreadyPaid
	}
	return nil
}

// GetSummary implements payroll.PayrollRepository.
func (r *payrollRepository) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(base_salary), 0),
			   COALESCE(SUM(deductions), 0),
			   COALESCE(SUM(bonus), 0),
			   COALESCE(SUM(net_salary), 0),
			   COUNT(*) FILTER (WHERE status = 'pending'),
			   COUNT(*) FILTER (WHERE status = 'paid')
		FROM payroll_records
		WHERE month = $1 AND year = $2
	`

	summary := payroll.PayrollSummaryResponse{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.TotalEmployees,
		&summary.TotalBaseSalary,
		&summary.TotalDeductions,
		&summary.TotalBonus,
		&summary.TotalNetSalary,
		&summary.PendingCount,
		&summary.PaidCount,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}
	return summary, nil
}
