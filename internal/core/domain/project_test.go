package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
)

func datePtr(y int, m time.Month, d int) *calendar.Date {
	date := calendar.NewDate(y, m, d)
	return &date
}

func floatPtr(f float64) *float64 { return &f }

func TestProject_ResolvedStatus_FromRawStatus(t *testing.T) {
	today := calendar.NewDate(2025, time.August, 14)

	tests := []struct {
		name   string
		estado string
		want   domain.ProjectStatus
	}{
		{"explicit en progreso", "En Progreso", domain.StatusEnProgreso},
		{"substring match is case insensitive", "EN PROGRESO (sprint 3)", domain.StatusEnProgreso},
		{"certificado", "Certificado", domain.StatusCertificado},
		{"completado token", "completado sin observaciones", domain.StatusCertificado},
		{"terminado token", "Terminado", domain.StatusCertificado},
		{"por iniciar", "Por Iniciar", domain.StatusPorIniciar},
		{"unknown text defaults", "pendiente de algo", domain.StatusPorIniciar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Project{RawStatus: tt.estado}
			assert.Equal(t, tt.want, p.ResolvedStatus(today))
		})
	}
}

func TestProject_ResolvedStatus_FromDates(t *testing.T) {
	today := calendar.NewDate(2025, time.August, 14)

	tests := []struct {
		name    string
		project domain.Project
		want    domain.ProjectStatus
	}{
		{
			"certification date in the past",
			domain.Project{CertificationDate: datePtr(2025, time.August, 1)},
			domain.StatusCertificado,
		},
		{
			"certification date today",
			domain.Project{CertificationDate: datePtr(2025, time.August, 14)},
			domain.StatusCertificado,
		},
		{
			"future certification with started project",
			domain.Project{CertificationDate: datePtr(2025, time.September, 1), StartDate: datePtr(2025, time.August, 1)},
			domain.StatusEnProgreso,
		},
		{
			"future start date",
			domain.Project{StartDate: datePtr(2025, time.September, 1)},
			domain.StatusPorIniciar,
		},
		{
			"start date today",
			domain.Project{StartDate: datePtr(2025, time.August, 14)},
			domain.StatusEnProgreso,
		},
		{
			"delivery within a week",
			domain.Project{DeliveryDate: datePtr(2025, time.August, 20)},
			domain.StatusEnProgreso,
		},
		{
			"delivery beyond a week",
			domain.Project{DeliveryDate: datePtr(2025, time.August, 22)},
			domain.StatusPorIniciar,
		},
		{
			"no usable data defaults",
			domain.Project{},
			domain.StatusPorIniciar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.project.ResolvedStatus(today))
		})
	}
}

func TestProject_InCurrentMonth(t *testing.T) {
	today := calendar.NewDate(2025, time.August, 14)

	tests := []struct {
		name    string
		project domain.Project
		want    bool
	}{
		{
			"certified this month counts by certification date",
			domain.Project{RawStatus: "Certificado", CertificationDate: datePtr(2025, time.August, 3)},
			true,
		},
		{
			"certified last month is out",
			domain.Project{RawStatus: "Certificado", CertificationDate: datePtr(2025, time.July, 30)},
			false,
		},
		{
			"in progress counts by delivery date",
			domain.Project{RawStatus: "En Progreso", DeliveryDate: datePtr(2025, time.August, 29)},
			true,
		},
		{
			"delivery next month is out",
			domain.Project{RawStatus: "En Progreso", DeliveryDate: datePtr(2025, time.September, 5)},
			false,
		},
		{
			"start date is the fallback reference",
			domain.Project{RawStatus: "En Progreso", StartDate: datePtr(2025, time.August, 1)},
			true,
		},
		{
			"no usable date is included by default",
			domain.Project{RawStatus: "En Progreso"},
			true,
		},
		{
			"certified with no certification date is included",
			domain.Project{RawStatus: "Certificado"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.project.InCurrentMonth(today))
		})
	}
}

func TestProject_AssignedTo(t *testing.T) {
	analyst := &domain.Analyst{ID: uuid.New(), Name: "Laura Gómez"}
	other := uuid.New()

	t.Run("stable id wins", func(t *testing.T) {
		p := &domain.Project{AnalystID: &analyst.ID, AnalystName: "someone else"}
		assert.True(t, p.AssignedTo(analyst))
	})

	t.Run("id mismatch is not rescued by name", func(t *testing.T) {
		p := &domain.Project{AnalystID: &other, AnalystName: "Laura Gómez"}
		assert.False(t, p.AssignedTo(analyst))
	})

	t.Run("legacy rows join by name", func(t *testing.T) {
		p := &domain.Project{AnalystName: "Laura Gómez"}
		assert.True(t, p.AssignedTo(analyst))
	})

	t.Run("empty name never matches", func(t *testing.T) {
		p := &domain.Project{}
		assert.False(t, p.AssignedTo(&domain.Analyst{ID: uuid.New(), Name: ""}))
	})
}

func TestProject_EffectiveHours(t *testing.T) {
	assert.Equal(t, 80.0, (&domain.Project{AssignedHours: floatPtr(80), Hours: floatPtr(10)}).EffectiveHours())
	assert.Equal(t, 10.0, (&domain.Project{Hours: floatPtr(10)}).EffectiveHours())
	assert.Equal(t, 0.0, (&domain.Project{}).EffectiveHours())
}
