package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
	apperrors "github.com/qualitania/availability-service/internal/core/errors"
	"github.com/qualitania/availability-service/internal/core/mocks"
	"github.com/qualitania/availability-service/internal/core/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(f float64) *float64 { return &f }

func TestCalculateAvailability(t *testing.T) {
	today := calendar.NewDate(2025, time.August, 14)
	analyst := &domain.Analyst{ID: uuid.New(), Name: "Laura Gómez"}

	t.Run("two projects this month", func(t *testing.T) {
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(80)},
			{ID: 2, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(60)},
		}

		snapshot := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)

		assert.Equal(t, 140.0, snapshot.TotalAssignedHours)
		assert.Equal(t, 22, snapshot.AvailabilityPercentage)
		assert.Equal(t, 2, snapshot.ActiveProjectsCount)
		assert.Equal(t, domain.WorkloadAlto, snapshot.WorkloadLevel)
	})

	t.Run("other analysts' projects are ignored", func(t *testing.T) {
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(40)},
			{ID: 2, AnalystName: "Carlos Ruiz", RawStatus: "En Progreso", AssignedHours: floatPtr(100)},
		}

		snapshot := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)

		assert.Equal(t, 40.0, snapshot.TotalAssignedHours)
		assert.Equal(t, 1, snapshot.ActiveProjectsCount)
	})

	t.Run("overload clamps to zero availability", func(t *testing.T) {
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(900)},
		}

		snapshot := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)

		assert.Equal(t, 0, snapshot.AvailabilityPercentage)
		assert.Equal(t, domain.WorkloadSobrecarga, snapshot.WorkloadLevel)
	})

	t.Run("certified projects count hours but not active", func(t *testing.T) {
		cert := calendar.NewDate(2025, time.August, 5)
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "Certificado", CertificationDate: &cert, AssignedHours: floatPtr(30)},
		}

		snapshot := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)

		assert.Equal(t, 30.0, snapshot.TotalAssignedHours)
		assert.Equal(t, 0, snapshot.ActiveProjectsCount)
	})

	t.Run("projects outside the month are excluded", func(t *testing.T) {
		delivery := calendar.NewDate(2025, time.September, 10)
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", DeliveryDate: &delivery, AssignedHours: floatPtr(50)},
		}

		snapshot := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)

		assert.Equal(t, 0.0, snapshot.TotalAssignedHours)
		assert.Equal(t, 100, snapshot.AvailabilityPercentage)
		assert.Equal(t, domain.WorkloadBajo, snapshot.WorkloadLevel)
	})

	t.Run("dateless projects are conservatively included", func(t *testing.T) {
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", AssignedHours: floatPtr(20)},
		}

		snapshot := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)

		assert.Equal(t, 20.0, snapshot.TotalAssignedHours)
	})

	t.Run("missing hours degrade to zero, never error", func(t *testing.T) {
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso"},
		}

		snapshot := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)

		assert.Equal(t, 0.0, snapshot.TotalAssignedHours)
		assert.Equal(t, 1, snapshot.ActiveProjectsCount)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(77)},
		}

		first := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)
		second := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)
		assert.Equal(t, first, second)
	})
}

func TestWorkloadTierBoundaries(t *testing.T) {
	today := calendar.NewDate(2025, time.August, 14)
	analyst := &domain.Analyst{ID: uuid.New(), Name: "Laura Gómez"}

	tests := []struct {
		name  string
		hours float64
		want  domain.WorkloadLevel
	}{
		{"just under 30 percent", 53, domain.WorkloadBajo},
		{"exactly 30 percent is Medio", 54, domain.WorkloadMedio},
		{"just under 70 percent", 125, domain.WorkloadMedio},
		{"exactly 70 percent is Alto", 126, domain.WorkloadAlto},
		{"just under full capacity", 179, domain.WorkloadAlto},
		{"exactly full capacity is Sobrecarga", 180, domain.WorkloadSobrecarga},
		{"beyond capacity", 300, domain.WorkloadSobrecarga},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := []*domain.Project{
				{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(tt.hours)},
			}
			snapshot := services.CalculateAvailability(analyst, projects, domain.DefaultMaxMonthlyHours, today)
			assert.Equal(t, tt.want, snapshot.WorkloadLevel)
		})
	}
}

func TestAvailabilityService_Report(t *testing.T) {
	ctx := context.Background()
	today := calendar.NewDate(2025, time.August, 14)

	t.Run("reports every analyst and surfaces skipped rows", func(t *testing.T) {
		analystRepo := mocks.NewMockAnalystRepository()
		projectRepo := mocks.NewMockProjectRepository()

		analysts := []*domain.Analyst{
			{ID: uuid.New(), Name: "Laura Gómez"},
			{ID: uuid.New(), Name: "Carlos Ruiz"},
		}
		projects := []*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(90)},
		}

		analystRepo.On("List", ctx).Return(analysts, nil)
		projectRepo.On("List", ctx).Return(projects, 2, nil)

		svc := services.NewAvailabilityService(analystRepo, projectRepo, domain.DefaultMaxMonthlyHours, testLogger())

		report, err := svc.Report(ctx, today)
		require.NoError(t, err)
		require.Len(t, report.Snapshots, 2)
		assert.Equal(t, 2, report.SkippedProjects)
		assert.Equal(t, 90.0, report.Snapshots[0].TotalAssignedHours)
		assert.Equal(t, 0.0, report.Snapshots[1].TotalAssignedHours)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		analystRepo := mocks.NewMockAnalystRepository()
		projectRepo := mocks.NewMockProjectRepository()

		analystRepo.On("List", ctx).Return(nil, errors.New("connection refused"))

		svc := services.NewAvailabilityService(analystRepo, projectRepo, domain.DefaultMaxMonthlyHours, testLogger())

		_, err := svc.Report(ctx, today)
		assert.Error(t, err)
		projectRepo.AssertNotCalled(t, "List")
	})
}

func TestAvailabilityService_ReportForAnalyst(t *testing.T) {
	ctx := context.Background()
	today := calendar.NewDate(2025, time.August, 14)

	t.Run("single analyst snapshot", func(t *testing.T) {
		analystRepo := mocks.NewMockAnalystRepository()
		projectRepo := mocks.NewMockProjectRepository()

		analyst := &domain.Analyst{ID: uuid.New(), Name: "Laura Gómez"}
		analystRepo.On("GetByID", ctx, analyst.ID).Return(analyst, nil)
		projectRepo.On("List", ctx).Return([]*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(60)},
		}, 0, nil)

		svc := services.NewAvailabilityService(analystRepo, projectRepo, domain.DefaultMaxMonthlyHours, testLogger())

		snapshot, err := svc.ReportForAnalyst(ctx, analyst.ID, today)
		require.NoError(t, err)
		assert.Equal(t, 60.0, snapshot.TotalAssignedHours)
		assert.Equal(t, 67, snapshot.AvailabilityPercentage)
	})

	t.Run("unknown analyst", func(t *testing.T) {
		analystRepo := mocks.NewMockAnalystRepository()
		projectRepo := mocks.NewMockProjectRepository()

		id := uuid.New()
		analystRepo.On("GetByID", ctx, id).Return(nil, apperrors.ErrAnalystNotFound)

		svc := services.NewAvailabilityService(analystRepo, projectRepo, domain.DefaultMaxMonthlyHours, testLogger())

		_, err := svc.ReportForAnalyst(ctx, id, today)
		assert.ErrorIs(t, err, apperrors.ErrAnalystNotFound)
	})
}

func TestAvailabilityService_RecomputeAndPersist(t *testing.T) {
	ctx := context.Background()
	today := calendar.NewDate(2025, time.August, 14)

	t.Run("persists each snapshot", func(t *testing.T) {
		analystRepo := mocks.NewMockAnalystRepository()
		projectRepo := mocks.NewMockProjectRepository()

		analyst := &domain.Analyst{ID: uuid.New(), Name: "Laura Gómez"}
		analystRepo.On("List", ctx).Return([]*domain.Analyst{analyst}, nil)
		projectRepo.On("List", ctx).Return([]*domain.Project{
			{ID: 1, AnalystName: "Laura Gómez", RawStatus: "En Progreso", AssignedHours: floatPtr(90)},
		}, 0, nil)
		analystRepo.On("UpdateAvailability", ctx, analyst.ID, 50).Return(nil)

		svc := services.NewAvailabilityService(analystRepo, projectRepo, domain.DefaultMaxMonthlyHours, testLogger())

		report, err := svc.RecomputeAndPersist(ctx, today)
		require.NoError(t, err)
		require.Len(t, report.Snapshots, 1)
		analystRepo.AssertExpectations(t)
	})

	t.Run("a failed write does not abort the rest", func(t *testing.T) {
		analystRepo := mocks.NewMockAnalystRepository()
		projectRepo := mocks.NewMockProjectRepository()

		first := &domain.Analyst{ID: uuid.New(), Name: "Laura Gómez"}
		second := &domain.Analyst{ID: uuid.New(), Name: "Carlos Ruiz"}
		analystRepo.On("List", ctx).Return([]*domain.Analyst{first, second}, nil)
		projectRepo.On("List", ctx).Return([]*domain.Project{}, 0, nil)
		analystRepo.On("UpdateAvailability", ctx, first.ID, 100).Return(errors.New("write failed"))
		analystRepo.On("UpdateAvailability", ctx, second.ID, 100).Return(nil)

		svc := services.NewAvailabilityService(analystRepo, projectRepo, domain.DefaultMaxMonthlyHours, testLogger())

		report, err := svc.RecomputeAndPersist(ctx, today)
		require.NoError(t, err)
		assert.Len(t, report.Snapshots, 2)
		analystRepo.AssertExpectations(t)
	})
}
