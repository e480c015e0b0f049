package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
)

// AvailabilityReport bundles the per-analyst snapshots with the number
// of project rows that could not be read. Degraded input is surfaced as
// a count, never as a failure of the whole report.
type AvailabilityReport struct {
	Snapshots       []domain.AvailabilitySnapshot
	SkippedProjects int
}

// AvailabilityService defines the core operations for capacity
// reporting. The reference date is always an explicit parameter; the
// engine never reads the wall clock.
type AvailabilityService interface {
	Report(ctx context.Context, today calendar.Date) (*AvailabilityReport, error)
	ReportForAnalyst(ctx context.Context, analystID uuid.UUID, today calendar.Date) (*domain.AvailabilitySnapshot, error)
	RecomputeAndPersist(ctx context.Context, today calendar.Date) (*AvailabilityReport, error)
}

// WorkingDayRange is the result of a working-day query over a closed
// date interval.
type WorkingDayRange struct {
	Start calendar.Date
	End   calendar.Date
	Count int
	Dates []calendar.Date
}

// CalendarService defines the port for working-day and holiday queries.
type CalendarService interface {
	WorkingDays(start, end calendar.Date) WorkingDayRange
	Holidays(year int) []calendar.Holiday
	AnalystWorkingDays(ctx context.Context, analystID uuid.UUID, start, end calendar.Date) (WorkingDayRange, error)
}

// CreateLeaveParams defines the input for registering a leave period.
type CreateLeaveParams struct {
	AnalystID   uuid.UUID
	StartDate   calendar.Date
	EndDate     calendar.Date
	Description string
	Type        domain.LeaveType
}

// LeaveService defines the port for leave period administration.
type LeaveService interface {
	ListForAnalyst(ctx context.Context, analystID uuid.UUID) ([]*domain.LeavePeriod, error)
	CreateLeave(ctx context.Context, params CreateLeaveParams) (*domain.LeavePeriod, error)
	DeleteLeave(ctx context.Context, analystID uuid.UUID, leaveID int64) error
}
