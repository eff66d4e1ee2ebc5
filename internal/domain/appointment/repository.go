package appointment

import "github.com/BruksfildServices01/oficina-scheduler/internal/models"

// Repository is the read-only view consumed by the schedule use cases.
// There are no write operations: the store is built once and never mutated.
type Repository interface {
	// -------- Appointment --------
	GetAll() []models.Appointment

	// -------- Branch --------
	GetBranches() []models.Branch

	// GetBranch never fails; unknown ids resolve to a placeholder branch.
	GetBranch(id string) models.Branch

	// -------- Filter options --------
	ServiceNames() []string
}
