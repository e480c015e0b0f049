package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qualitania/availability-service/internal/core/domain"
	"github.com/qualitania/availability-service/internal/core/ports"
	"github.com/qualitania/availability-service/internal/core/utils"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(pool *pgxpool.Pool) ports.ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const listProjectsQuery = `
SELECT id, name, analyst_id, analyst_name, assigned_hours, hours,
       status, start_date, delivery_date, certification_date
FROM projects
ORDER BY id
`

// List returns all project rows. Rows that cannot be scanned are
// skipped and counted instead of failing the whole listing; the legacy
// projects table carries malformed records.
func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, int, error) {
	rows, err := r.pool.Query(ctx, listProjectsQuery)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		projects []*domain.Project
		skipped  int
	)
	for rows.Next() {
		var (
			id                int64
			name              pgtype.Text
			analystID         pgtype.UUID
			analystName       pgtype.Text
			assignedHours     pgtype.Float8
			hours             pgtype.Float8
			status            pgtype.Text
			startDate         pgtype.Date
			deliveryDate      pgtype.Date
			certificationDate pgtype.Date
		)
		if err := rows.Scan(&id, &name, &analystID, &analystName, &assignedHours, &hours,
			&status, &startDate, &deliveryDate, &certificationDate); err != nil {
			skipped++
			continue
		}

		p := &domain.Project{
			ID:                id,
			Name:              utils.FromString(name),
			AnalystName:       utils.FromString(analystName),
			AssignedHours:     utils.FromNullFloat(assignedHours),
			Hours:             utils.FromNullFloat(hours),
			RawStatus:         utils.FromString(status),
			StartDate:         utils.FromNullDate(startDate),
			DeliveryDate:      utils.FromNullDate(deliveryDate),
			CertificationDate: utils.FromNullDate(certificationDate),
		}
		if analystID.Valid {
			value := uuid.UUID(analystID.Bytes)
			p.AnalystID = &value
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return projects, skipped, nil
}
