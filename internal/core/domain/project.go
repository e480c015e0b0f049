package domain

import (
	"strings"

	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/core/calendar"
)

// ProjectStatus is the calculated state of a project, derived from the
// raw estado field or inferred from its dates.
type ProjectStatus string

const (
	StatusPorIniciar  ProjectStatus = "Por Iniciar"
	StatusEnProgreso  ProjectStatus = "En Progreso"
	StatusCertificado ProjectStatus = "Certificado"
)

// deliveryHorizonDays is the window used to decide whether a project
// known only by its delivery date has already started.
const deliveryHorizonDays = 7

// Project is the subset of a project record the engine consumes. All
// fields except ID may be absent in legacy data; absence is never an
// error, the calculation degrades to documented defaults instead.
type Project struct {
	ID          int64
	Name        string
	AnalystID   *uuid.UUID // stable key, nil for unmigrated rows
	AnalystName string     // analista_producto, legacy join key

	AssignedHours *float64 // horas_asignadas
	Hours         *float64 // horas, fallback

	RawStatus         string // estado, free text
	StartDate         *calendar.Date
	DeliveryDate      *calendar.Date
	CertificationDate *calendar.Date
}

// ResolvedStatus derives the calculated status. An explicit estado wins
// via case-insensitive substring tokens; otherwise the dates decide;
// with nothing usable the project defaults to Por Iniciar.
func (p *Project) ResolvedStatus(today calendar.Date) ProjectStatus {
	if s := strings.ToLower(strings.TrimSpace(p.RawStatus)); s != "" {
		switch {
		case strings.Contains(s, "progreso"):
			return StatusEnProgreso
		case strings.Contains(s, "certificado"),
			strings.Contains(s, "completado"),
			strings.Contains(s, "terminado"):
			return StatusCertificado
		case strings.Contains(s, "iniciar"):
			return StatusPorIniciar
		default:
			return StatusPorIniciar
		}
	}

	if p.CertificationDate != nil && !p.CertificationDate.After(today) {
		return StatusCertificado
	}
	if p.StartDate != nil {
		if p.StartDate.After(today) {
			return StatusPorIniciar
		}
		return StatusEnProgreso
	}
	if p.DeliveryDate != nil {
		if p.DeliveryDate.After(today.AddDays(deliveryHorizonDays)) {
			return StatusPorIniciar
		}
		return StatusEnProgreso
	}
	return StatusPorIniciar
}

// InCurrentMonth implements the relevant-period filter: certified
// projects count by certification date, everything else by delivery
// date with start date as fallback. A project with no usable date is
// included. Deliberate default-inclusion policy for sparse records.
func (p *Project) InCurrentMonth(today calendar.Date) bool {
	var ref *calendar.Date
	if p.ResolvedStatus(today) == StatusCertificado {
		ref = p.CertificationDate
	} else {
		ref = p.DeliveryDate
		if ref == nil {
			ref = p.StartDate
		}
	}
	if ref == nil {
		return true
	}
	return ref.SameMonth(today)
}

// AssignedTo matches the project to an analyst, preferring the stable
// ID and falling back to the legacy name join for unmigrated rows.
func (p *Project) AssignedTo(a *Analyst) bool {
	if p.AnalystID != nil {
		return *p.AnalystID == a.ID
	}
	return p.AnalystName != "" && p.AnalystName == a.Name
}

// EffectiveHours returns the assigned hours, falling back to the
// generic hours field, then to zero.
func (p *Project) EffectiveHours() float64 {
	if p.AssignedHours != nil {
		return *p.AssignedHours
	}
	if p.Hours != nil {
		return *p.Hours
	}
	return 0
}

// IsActive reports whether the project still demands analyst time.
func (p *Project) IsActive(today calendar.Date) bool {
	status := p.ResolvedStatus(today)
	return status == StatusPorIniciar || status == StatusEnProgreso
}
