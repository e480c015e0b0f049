package domain

import (
	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/core/calendar"
	apperrors "github.com/qualitania/availability-service/internal/core/errors"
)

// LeaveType classifies a leave period.
type LeaveType string

const (
	LeaveVacation LeaveType = "vacation"
	LeaveGeneral  LeaveType = "leave"
	LeaveTraining LeaveType = "training"
	LeaveOther    LeaveType = "other"
)

// LeavePeriod is a closed date interval during which one analyst does
// not work. Both bounds are calendar days; the interval includes both.
type LeavePeriod struct {
	ID          int64
	AnalystID   uuid.UUID
	StartDate   calendar.Date
	EndDate     calendar.Date
	Description string
	Type        LeaveType
}

// NewLeavePeriod is a factory function to create a valid leave period.
func NewLeavePeriod(analystID uuid.UUID, start, end calendar.Date, description string, leaveType LeaveType) (*LeavePeriod, error) {
	if end.Before(start) {
		return nil, apperrors.ErrLeaveEndBeforeStart
	}
	switch leaveType {
	case LeaveVacation, LeaveGeneral, LeaveTraining, LeaveOther:
	default:
		return nil, apperrors.ErrInvalidLeaveType
	}

	return &LeavePeriod{
		AnalystID:   analystID,
		StartDate:   start,
		EndDate:     end,
		Description: description,
		Type:        leaveType,
	}, nil
}

// Contains reports whether the day falls inside the period.
func (p *LeavePeriod) Contains(d calendar.Date) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// OnLeave returns the first period of the analyst covering the day, or
// nil. Periods belonging to other analysts never match: the overlay is
// strictly per-analyst.
func OnLeave(periods []*LeavePeriod, analystID uuid.UUID, d calendar.Date) *LeavePeriod {
	for _, p := range periods {
		if p.AnalystID == analystID && p.Contains(d) {
			return p
		}
	}
	return nil
}

// WorkingDatesForAnalyst enumerates the days in [start, end] that are
// working days on the calendar and not covered by one of the analyst's
// leave periods.
func WorkingDatesForAnalyst(cal *calendar.Calendar, periods []*LeavePeriod, analystID uuid.UUID, start, end calendar.Date) []calendar.Date {
	var dates []calendar.Date
	for _, d := range cal.WorkingDatesBetween(start, end) {
		if OnLeave(periods, analystID, d) == nil {
			dates = append(dates, d)
		}
	}
	return dates
}

// WorkingDaysForAnalyst counts the days WorkingDatesForAnalyst would return.
func WorkingDaysForAnalyst(cal *calendar.Calendar, periods []*LeavePeriod, analystID uuid.UUID, start, end calendar.Date) int {
	return len(WorkingDatesForAnalyst(cal, periods, analystID, start, end))
}
