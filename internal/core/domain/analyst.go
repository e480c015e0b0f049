package domain

import (
	"time"

	"github.com/google/uuid"
)

// Analyst is a QA analyst whose monthly capacity the engine reports on.
// ID is the stable identity key; Name survives as the legacy join key
// for project records that predate the identifier migration.
type Analyst struct {
	ID           uuid.UUID
	Name         string
	Availability int // last persisted availability percentage
	CreatedAt    time.Time
}
