package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/core/domain"
)

// AnalystRepository is the port for analyst persistence.
type AnalystRepository interface {
	List(ctx context.Context) ([]*domain.Analyst, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Analyst, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, percentage int) error
}

// ProjectRepository is the port for project persistence. List returns
// the rows it could materialize plus the count of rows it had to skip:
// a single malformed record must never abort the whole read.
type ProjectRepository interface {
	List(ctx context.Context) (projects []*domain.Project, skipped int, err error)
}

// LeaveRepository is the port for leave period persistence.
type LeaveRepository interface {
	ListByAnalyst(ctx context.Context, analystID uuid.UUID) ([]*domain.LeavePeriod, error)
	Create(ctx context.Context, period *domain.LeavePeriod) (*domain.LeavePeriod, error)
	Delete(ctx context.Context, analystID uuid.UUID, leaveID int64) error
}
