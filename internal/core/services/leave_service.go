package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/core/domain"
	"github.com/qualitania/availability-service/internal/core/ports"
)

// LeaveService implements leave period administration. The engine only
// reads leave periods; creation and deletion are administrative actions
// exposed for the scheduling UI.
type LeaveService struct {
	leaveRepo   ports.LeaveRepository
	analystRepo ports.AnalystRepository
}

var _ ports.LeaveService = (*LeaveService)(nil)

// NewLeaveService creates a new leave service.
func NewLeaveService(leaveRepo ports.LeaveRepository, analystRepo ports.AnalystRepository) *LeaveService {
	return &LeaveService{
		leaveRepo:   leaveRepo,
		analystRepo: analystRepo,
	}
}

// ListForAnalyst returns the analyst's leave periods.
func (s *LeaveService) ListForAnalyst(ctx context.Context, analystID uuid.UUID) ([]*domain.LeavePeriod, error) {
	if _, err := s.analystRepo.GetByID(ctx, analystID); err != nil {
		return nil, err
	}
	return s.leaveRepo.ListByAnalyst(ctx, analystID)
}

// CreateLeave registers a new leave period for an analyst.
func (s *LeaveService) CreateLeave(ctx context.Context, params ports.CreateLeaveParams) (*domain.LeavePeriod, error) {
	if _, err := s.analystRepo.GetByID(ctx, params.AnalystID); err != nil {
		return nil, err
	}

	period, err := domain.NewLeavePeriod(params.AnalystID, params.StartDate, params.EndDate, params.Description, params.Type)
	if err != nil {
		return nil, err
	}

	return s.leaveRepo.Create(ctx, period)
}

// DeleteLeave removes a leave period owned by the analyst.
func (s *LeaveService) DeleteLeave(ctx context.Context, analystID uuid.UUID, leaveID int64) error {
	return s.leaveRepo.Delete(ctx, analystID, leaveID)
}
