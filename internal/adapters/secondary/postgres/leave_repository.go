package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qualitania/availability-service/internal/core/domain"
	apperrors "github.com/qualitania/availability-service/internal/core/errors"
	"github.com/qualitania/availability-service/internal/core/ports"
	"github.com/qualitania/availability-service/internal/core/utils"
)

type LeaveRepository struct {
	pool *pgxpool.Pool
}

var _ ports.LeaveRepository = (*LeaveRepository)(nil)

func NewLeaveRepository(pool *pgxpool.Pool) ports.LeaveRepository {
	return &LeaveRepository{pool: pool}
}

const listLeavesQuery = `
SELECT id, analyst_id, start_date, end_date, description, type
FROM leave_periods
WHERE analyst_id = $1
ORDER BY start_date
`

func (r *LeaveRepository) ListByAnalyst(ctx context.Context, analystID uuid.UUID) ([]*domain.LeavePeriod, error) {
	rows, err := r.pool.Query(ctx, listLeavesQuery, analystID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []*domain.LeavePeriod
	for rows.Next() {
		var (
			p           domain.LeavePeriod
			start       pgtype.Date
			end         pgtype.Date
			description pgtype.Text
			leaveType   string
		)
		if err := rows.Scan(&p.ID, &p.AnalystID, &start, &end, &description, &leaveType); err != nil {
			return nil, err
		}
		p.StartDate = utils.FromDate(start)
		p.EndDate = utils.FromDate(end)
		p.Description = utils.FromString(description)
		p.Type = domain.LeaveType(leaveType)
		periods = append(periods, &p)
	}
	return periods, rows.Err()
}

const createLeaveQuery = `
INSERT INTO leave_periods (analyst_id, start_date, end_date, description, type)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *LeaveRepository) Create(ctx context.Context, period *domain.LeavePeriod) (*domain.LeavePeriod, error) {
	err := r.pool.QueryRow(ctx, createLeaveQuery,
		period.AnalystID,
		utils.ToDate(period.StartDate),
		utils.ToDate(period.EndDate),
		utils.ToString(period.Description),
		string(period.Type),
	).Scan(&period.ID)
	if err != nil {
		return nil, err
	}
	return period, nil
}

const deleteLeaveQuery = `
DELETE FROM leave_periods
WHERE id = $1 AND analyst_id = $2
`

func (r *LeaveRepository) Delete(ctx context.Context, analystID uuid.UUID, leaveID int64) error {
	tag, err := r.pool.Exec(ctx, deleteLeaveQuery, leaveID, analystID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLeaveNotFound
	}
	return nil
}
