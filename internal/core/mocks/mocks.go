package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
	"github.com/qualitania/availability-service/internal/core/ports"
)

// MockAnalystRepository is a mock implementation of ports.AnalystRepository
type MockAnalystRepository struct {
	mock.Mock
}

func NewMockAnalystRepository() *MockAnalystRepository {
	return &MockAnalystRepository{}
}

func (m *MockAnalystRepository) List(ctx context.Context) ([]*domain.Analyst, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Analyst), args.Error(1)
}

func (m *MockAnalystRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Analyst, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analyst), args.Error(1)
}

func (m *MockAnalystRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, percentage int) error {
	args := m.Called(ctx, id, percentage)
	return args.Error(0)
}

// MockProjectRepository is a mock implementation of ports.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{}
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*domain.Project, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Project), args.Int(1), args.Error(2)
}

// MockLeaveRepository is a mock implementation of ports.LeaveRepository
type MockLeaveRepository struct {
	mock.Mock
}

func NewMockLeaveRepository() *MockLeaveRepository {
	return &MockLeaveRepository{}
}

func (m *MockLeaveRepository) ListByAnalyst(ctx context.Context, analystID uuid.UUID) ([]*domain.LeavePeriod, error) {
	args := m.Called(ctx, analystID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LeavePeriod), args.Error(1)
}

func (m *MockLeaveRepository) Create(ctx context.Context, period *domain.LeavePeriod) (*domain.LeavePeriod, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeavePeriod), args.Error(1)
}

func (m *MockLeaveRepository) Delete(ctx context.Context, analystID uuid.UUID, leaveID int64) error {
	args := m.Called(ctx, analystID, leaveID)
	return args.Error(0)
}

// MockAvailabilityService is a mock implementation of ports.AvailabilityService
type MockAvailabilityService struct {
	mock.Mock
}

func NewMockAvailabilityService() *MockAvailabilityService {
	return &MockAvailabilityService{}
}

func (m *MockAvailabilityService) Report(ctx context.Context, today calendar.Date) (*ports.AvailabilityReport, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.AvailabilityReport), args.Error(1)
}

func (m *MockAvailabilityService) ReportForAnalyst(ctx context.Context, analystID uuid.UUID, today calendar.Date) (*domain.AvailabilitySnapshot, error) {
	args := m.Called(ctx, analystID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilitySnapshot), args.Error(1)
}

func (m *MockAvailabilityService) RecomputeAndPersist(ctx context.Context, today calendar.Date) (*ports.AvailabilityReport, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.AvailabilityReport), args.Error(1)
}

// MockCalendarService is a mock implementation of ports.CalendarService
type MockCalendarService struct {
	mock.Mock
}

func NewMockCalendarService() *MockCalendarService {
	return &MockCalendarService{}
}

func (m *MockCalendarService) WorkingDays(start, end calendar.Date) ports.WorkingDayRange {
	args := m.Called(start, end)
	return args.Get(0).(ports.WorkingDayRange)
}

func (m *MockCalendarService) Holidays(year int) []calendar.Holiday {
	args := m.Called(year)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]calendar.Holiday)
}

func (m *MockCalendarService) AnalystWorkingDays(ctx context.Context, analystID uuid.UUID, start, end calendar.Date) (ports.WorkingDayRange, error) {
	args := m.Called(ctx, analystID, start, end)
	return args.Get(0).(ports.WorkingDayRange), args.Error(1)
}

// MockLeaveService is a mock implementation of ports.LeaveService
type MockLeaveService struct {
	mock.Mock
}

func NewMockLeaveService() *MockLeaveService {
	return &MockLeaveService{}
}

func (m *MockLeaveService) ListForAnalyst(ctx context.Context, analystID uuid.UUID) ([]*domain.LeavePeriod, error) {
	args := m.Called(ctx, analystID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LeavePeriod), args.Error(1)
}

func (m *MockLeaveService) CreateLeave(ctx context.Context, params ports.CreateLeaveParams) (*domain.LeavePeriod, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeavePeriod), args.Error(1)
}

func (m *MockLeaveService) DeleteLeave(ctx context.Context, analystID uuid.UUID, leaveID int64) error {
	args := m.Called(ctx, analystID, leaveID)
	return args.Error(0)
}
