package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
	"github.com/qualitania/availability-service/internal/core/ports"
)

// CalendarService answers working-day queries, globally and adjusted
// for a single analyst's leave periods. All weekday and holiday logic
// lives in the calendar package; this service never reimplements it.
type CalendarService struct {
	cal         *calendar.Calendar
	leaveRepo   ports.LeaveRepository
	analystRepo ports.AnalystRepository
}

var _ ports.CalendarService = (*CalendarService)(nil)

// NewCalendarService creates a new calendar service.
func NewCalendarService(cal *calendar.Calendar, leaveRepo ports.LeaveRepository, analystRepo ports.AnalystRepository) *CalendarService {
	return &CalendarService{
		cal:         cal,
		leaveRepo:   leaveRepo,
		analystRepo: analystRepo,
	}
}

// WorkingDays enumerates the working days in [start, end].
func (s *CalendarService) WorkingDays(start, end calendar.Date) ports.WorkingDayRange {
	dates := s.cal.WorkingDatesBetween(start, end)
	return ports.WorkingDayRange{
		Start: start,
		End:   end,
		Count: len(dates),
		Dates: dates,
	}
}

// Holidays returns the holiday table for a year.
func (s *CalendarService) Holidays(year int) []calendar.Holiday {
	return s.cal.Holidays(year)
}

// AnalystWorkingDays enumerates the working days in [start, end] that
// the analyst is actually available: calendar working days minus the
// analyst's own leave periods. Other analysts' leaves never apply.
func (s *CalendarService) AnalystWorkingDays(ctx context.Context, analystID uuid.UUID, start, end calendar.Date) (ports.WorkingDayRange, error) {
	if _, err := s.analystRepo.GetByID(ctx, analystID); err != nil {
		return ports.WorkingDayRange{}, err
	}

	periods, err := s.leaveRepo.ListByAnalyst(ctx, analystID)
	if err != nil {
		return ports.WorkingDayRange{}, err
	}

	dates := domain.WorkingDatesForAnalyst(s.cal, periods, analystID, start, end)

	return ports.WorkingDayRange{
		Start: start,
		End:   end,
		Count: len(dates),
		Dates: dates,
	}, nil
}
