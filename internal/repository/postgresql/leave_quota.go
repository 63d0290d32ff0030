package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/leave"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
)

type leaveQuotaRepository struct {
	db *database.DB
}

func NewLeaveQuotaRepository(db *database.DB) leave.LeaveQuotaRepository {
	return &leaveQuotaRepository{db: db}
}

// Create implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepository) Create(ctx context.Context, quota leave.LeaveQuota) (leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_quotas (employee_id, leave_type_id, year, total_quota)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, quota.EmployeeID, quota.LeaveTypeID, quota.Year, quota.TotalQuota).
		Scan(&quota.ID, &quota.CreatedAt, &quota.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveQuota{}, leave.ErrLeaveQuotaExists
		}
		return leave.LeaveQuota{}, err
	}

	return quota, nil
}

// GetByID implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepository) GetByID(ctx context.Context, id string) (leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lq.id, lq.employee_id, lq.leave_type_id, lq.year, lq.total_quota,
			   lq.created_at, lq.updated_at, u.name, lt.name
		FROM leave_quotas lq
		JOIN users u ON u.id = lq.employee_id
		JOIN leave_types lt ON lt.id = lq.leave_type_id
		WHERE lq.id = $1
	`

	var quota leave.LeaveQuota
	err := q.QueryRow(ctx, query, id).Scan(
		&quota.ID,
		&quota.EmployeeID,
		&quota.LeaveTypeID,
		&quota.Year,
		&quota.TotalQuota,
		&quota.CreatedAt,
		&quota.UpdatedAt,
		&quota.EmployeeName,
		&quota.LeaveTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveQuota{}, leave.ErrLeaveQuotaNotFound
		}
		return leave.LeaveQuota{}, err
	}
	return quota, nil
}

// GetByEmployeeAndYear implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepository) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type_id, year, total_quota, created_at, updated_at
		FROM leave_quotas
		WHERE employee_id = $1 AND year = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotas []leave.LeaveQuota
	for rows.Next() {
		var quota leave.LeaveQuota
		err := rows.Scan(
			&quota.ID,
			&quota.EmployeeID,
			&quota.LeaveTypeID,
			&quota.Year,
			&quota.TotalQuota,
			&quota.CreatedAt,
			&quota.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		quotas = append(quotas, quota)
	}
	return quotas, rows.Err()
}

// GetByEmployeeTypeYear implements leave.LeaveQuotaRepository. Returns nil
// when no quota row exists for that combination.
func (r *leaveQuotaRepository) GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (*leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type_id, year, total_quota, created_at, updated_at
		FROM leave_quotas
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
	`

	var quota leave.LeaveQuota
	err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(
		&quota.ID,
		&quota.EmployeeID,
		&quota.LeaveTypeID,
		&quota.Year,
		&quota.TotalQuota,
		&quota.CreatedAt,
		&quota.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &quota, nil
}

// Update implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepository) Update(ctx context.Context, quota leave.LeaveQuota) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_quotas
		SET total_quota = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, quota.TotalQuota, quota.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveQuotaNotFound
	}
	return nil
}

// Delete implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_quotas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveQuotaNotFound
	}
	return nil
}
