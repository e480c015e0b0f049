package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
	apperrors "github.com/qualitania/availability-service/internal/core/errors"
)

func TestNewLeavePeriod(t *testing.T) {
	analystID := uuid.New()
	start := calendar.NewDate(2025, time.August, 18)
	end := calendar.NewDate(2025, time.August, 22)

	t.Run("valid period", func(t *testing.T) {
		period, err := domain.NewLeavePeriod(analystID, start, end, "vacaciones", domain.LeaveVacation)
		require.NoError(t, err)
		assert.Equal(t, analystID, period.AnalystID)
		assert.Equal(t, domain.LeaveVacation, period.Type)
	})

	t.Run("single day period", func(t *testing.T) {
		_, err := domain.NewLeavePeriod(analystID, start, start, "", domain.LeaveTraining)
		require.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := domain.NewLeavePeriod(analystID, end, start, "", domain.LeaveVacation)
		assert.ErrorIs(t, err, apperrors.ErrLeaveEndBeforeStart)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := domain.NewLeavePeriod(analystID, start, end, "", domain.LeaveType("sabbatical"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidLeaveType)
	})
}

func TestLeavePeriod_Contains(t *testing.T) {
	period := &domain.LeavePeriod{
		AnalystID: uuid.New(),
		StartDate: calendar.NewDate(2025, time.August, 18),
		EndDate:   calendar.NewDate(2025, time.August, 22),
	}

	assert.True(t, period.Contains(calendar.NewDate(2025, time.August, 18)))
	assert.True(t, period.Contains(calendar.NewDate(2025, time.August, 20)))
	assert.True(t, period.Contains(calendar.NewDate(2025, time.August, 22)))
	assert.False(t, period.Contains(calendar.NewDate(2025, time.August, 17)))
	assert.False(t, period.Contains(calendar.NewDate(2025, time.August, 23)))
}

func TestOnLeave(t *testing.T) {
	analystA := uuid.New()
	analystB := uuid.New()

	periods := []*domain.LeavePeriod{
		{
			ID:        1,
			AnalystID: analystA,
			StartDate: calendar.NewDate(2025, time.August, 18),
			EndDate:   calendar.NewDate(2025, time.August, 22),
		},
	}

	day := calendar.NewDate(2025, time.August, 19)

	t.Run("matches the owning analyst", func(t *testing.T) {
		period := domain.OnLeave(periods, analystA, day)
		require.NotNil(t, period)
		assert.Equal(t, int64(1), period.ID)
	})

	t.Run("never applies to another analyst", func(t *testing.T) {
		assert.Nil(t, domain.OnLeave(periods, analystB, day))
	})

	t.Run("outside the interval", func(t *testing.T) {
		assert.Nil(t, domain.OnLeave(periods, analystA, calendar.NewDate(2025, time.August, 25)))
	})
}

func TestWorkingDaysForAnalyst(t *testing.T) {
	cal, err := calendar.New(calendar.RegionColombia)
	require.NoError(t, err)

	analystA := uuid.New()
	analystB := uuid.New()

	// Aug 19 to Aug 22 2025 are four working days.
	periods := []*domain.LeavePeriod{
		{
			AnalystID: analystA,
			StartDate: calendar.NewDate(2025, time.August, 19),
			EndDate:   calendar.NewDate(2025, time.August, 22),
		},
	}

	start := calendar.NewDate(2025, time.August, 14)
	end := calendar.NewDate(2025, time.August, 29)

	t.Run("leave days come off the working-day count", func(t *testing.T) {
		assert.Equal(t, 7, domain.WorkingDaysForAnalyst(cal, periods, analystA, start, end))

		dates := domain.WorkingDatesForAnalyst(cal, periods, analystA, start, end)
		require.Len(t, dates, 7)
		for _, d := range dates {
			assert.Nil(t, domain.OnLeave(periods, analystA, d))
		}
	})

	t.Run("another analyst keeps the full range", func(t *testing.T) {
		assert.Equal(t, 11, domain.WorkingDaysForAnalyst(cal, periods, analystB, start, end))
	})
}
