package services

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
	"github.com/qualitania/availability-service/internal/core/ports"
)

// AvailabilityService implements capacity reporting over the analyst
// and project repositories.
type AvailabilityService struct {
	analystRepo     ports.AnalystRepository
	projectRepo     ports.ProjectRepository
	maxMonthlyHours float64
	logger          *slog.Logger
}

var _ ports.AvailabilityService = (*AvailabilityService)(nil)

// NewAvailabilityService creates a new availability service. A
// non-positive maxMonthlyHours falls back to the default capacity.
func NewAvailabilityService(
	analystRepo ports.AnalystRepository,
	projectRepo ports.ProjectRepository,
	maxMonthlyHours float64,
	logger *slog.Logger,
) *AvailabilityService {
	if maxMonthlyHours <= 0 {
		maxMonthlyHours = domain.DefaultMaxMonthlyHours
	}
	return &AvailabilityService{
		analystRepo:     analystRepo,
		projectRepo:     projectRepo,
		maxMonthlyHours: maxMonthlyHours,
		logger:          logger.With("service", "availability"),
	}
}

// CalculateAvailability computes one analyst's snapshot from the full
// project list. Pure: identical inputs and reference date yield an
// identical snapshot.
func CalculateAvailability(analyst *domain.Analyst, projects []*domain.Project, maxMonthlyHours float64, today calendar.Date) domain.AvailabilitySnapshot {
	var totalHours float64
	activeCount := 0

	for _, p := range projects {
		if p == nil || !p.AssignedTo(analyst) || !p.InCurrentMonth(today) {
			continue
		}
		totalHours += p.EffectiveHours()
		if p.IsActive(today) {
			activeCount++
		}
	}

	used := totalHours / maxMonthlyHours
	if used > 1 {
		used = 1
	}
	percentage := math.Round((1 - used) * 100)
	if percentage < 0 {
		percentage = 0
	}

	return domain.AvailabilitySnapshot{
		AnalystID:              analyst.ID,
		AnalystName:            analyst.Name,
		TotalAssignedHours:     totalHours,
		AvailabilityPercentage: int(percentage),
		ActiveProjectsCount:    activeCount,
		WorkloadLevel:          domain.WorkloadFor(used * 100),
	}
}

// CalculateAllAvailabilities computes snapshots for every analyst over
// the same project list and reference date.
func CalculateAllAvailabilities(analysts []*domain.Analyst, projects []*domain.Project, maxMonthlyHours float64, today calendar.Date) []domain.AvailabilitySnapshot {
	snapshots := make([]domain.AvailabilitySnapshot, 0, len(analysts))
	for _, a := range analysts {
		snapshots = append(snapshots, CalculateAvailability(a, projects, maxMonthlyHours, today))
	}
	return snapshots
}

// Report computes the availability snapshot for every analyst.
func (s *AvailabilityService) Report(ctx context.Context, today calendar.Date) (*ports.AvailabilityReport, error) {
	analysts, err := s.analystRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	projects, skipped, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.logger.Warn("skipped unreadable project rows", "count", skipped)
	}

	return &ports.AvailabilityReport{
		Snapshots:       CalculateAllAvailabilities(analysts, projects, s.maxMonthlyHours, today),
		SkippedProjects: skipped,
	}, nil
}

// ReportForAnalyst computes the snapshot of a single analyst.
func (s *AvailabilityService) ReportForAnalyst(ctx context.Context, analystID uuid.UUID, today calendar.Date) (*domain.AvailabilitySnapshot, error) {
	analyst, err := s.analystRepo.GetByID(ctx, analystID)
	if err != nil {
		return nil, err
	}

	projects, skipped, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.logger.Warn("skipped unreadable project rows", "count", skipped)
	}

	snapshot := CalculateAvailability(analyst, projects, s.maxMonthlyHours, today)
	return &snapshot, nil
}

// RecomputeAndPersist recomputes every snapshot and writes the
// availability percentage back to the analyst records. The calculation
// itself stays side-effect free; persistence happens here, per analyst,
// and a failed write does not stop the remaining ones.
func (s *AvailabilityService) RecomputeAndPersist(ctx context.Context, today calendar.Date) (*ports.AvailabilityReport, error) {
	report, err := s.Report(ctx, today)
	if err != nil {
		return nil, err
	}

	for _, snapshot := range report.Snapshots {
		if err := s.analystRepo.UpdateAvailability(ctx, snapshot.AnalystID, snapshot.AvailabilityPercentage); err != nil {
			s.logger.Error("failed to persist availability",
				"analyst_id", snapshot.AnalystID,
				"error", err,
			)
		}
	}

	return report, nil
}
