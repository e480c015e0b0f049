package domain

import "github.com/google/uuid"

// DefaultMaxMonthlyHours is the fixed monthly capacity in hours against
// which assigned work is measured.
const DefaultMaxMonthlyHours = 180.0

// WorkloadLevel is the categorical load tier of an analyst.
type WorkloadLevel string

const (
	WorkloadBajo       WorkloadLevel = "Bajo"
	WorkloadMedio      WorkloadLevel = "Medio"
	WorkloadAlto       WorkloadLevel = "Alto"
	WorkloadSobrecarga WorkloadLevel = "Sobrecarga"
)

// WorkloadFor classifies a used-capacity percentage into a tier. The
// comparisons are strict: a load of exactly 30% is Medio, not Bajo.
func WorkloadFor(usedPercent float64) WorkloadLevel {
	switch {
	case usedPercent < 30:
		return WorkloadBajo
	case usedPercent < 70:
		return WorkloadMedio
	case usedPercent < 100:
		return WorkloadAlto
	default:
		return WorkloadSobrecarga
	}
}

// AvailabilitySnapshot is the per-analyst output of the availability
// calculation. Always a fresh value derived from current inputs.
type AvailabilitySnapshot struct {
	AnalystID              uuid.UUID
	AnalystName            string
	TotalAssignedHours     float64
	AvailabilityPercentage int // clamped to [0, 100]
	ActiveProjectsCount    int
	WorkloadLevel          WorkloadLevel
}
