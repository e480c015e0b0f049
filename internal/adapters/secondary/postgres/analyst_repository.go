package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qualitania/availability-service/internal/core/domain"
	apperrors "github.com/qualitania/availability-service/internal/core/errors"
	"github.com/qualitania/availability-service/internal/core/ports"
)

type AnalystRepository struct {
	pool *pgxpool.Pool
}

var _ ports.AnalystRepository = (*AnalystRepository)(nil)

func NewAnalystRepository(pool *pgxpool.Pool) ports.AnalystRepository {
	return &AnalystRepository{pool: pool}
}

const listAnalystsQuery = `
SELECT id, name, availability, created_at
FROM analysts
ORDER BY name
`

func (r *AnalystRepository) List(ctx context.Context) ([]*domain.Analyst, error) {
	rows, err := r.pool.Query(ctx, listAnalystsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analysts []*domain.Analyst
	for rows.Next() {
		var a domain.Analyst
		if err := rows.Scan(&a.ID, &a.Name, &a.Availability, &a.CreatedAt); err != nil {
			return nil, err
		}
		analysts = append(analysts, &a)
	}
	return analysts, rows.Err()
}

const getAnalystQuery = `
SELECT id, name, availability, created_at
FROM analysts
WHERE id = $1
`

func (r *AnalystRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Analyst, error) {
	var a domain.Analyst
	err := r.pool.QueryRow(ctx, getAnalystQuery, id).Scan(&a.ID, &a.Name, &a.Availability, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnalystNotFound
		}
		return nil, err
	}
	return &a, nil
}

const updateAvailabilityQuery = `
UPDATE analysts
SET availability = $2
WHERE id = $1
`

func (r *AnalystRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, percentage int) error {
	tag, err := r.pool.Exec(ctx, updateAvailabilityQuery, id, percentage)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnalystNotFound
	}
	return nil
}
