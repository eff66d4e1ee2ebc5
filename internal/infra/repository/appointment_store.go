package repository

import (
	"fmt"

	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
)

// UnknownBranchName é exibido quando o branch_id não existe na referência.
const UnknownBranchName = "Filial não informada"

// AppointmentStore holds the sample data in memory for the process lifetime.
// It is validated once and never mutated, so concurrent reads need no lock.
type AppointmentStore struct {
	appointments []models.Appointment
	branches     []models.Branch
	branchIdx    map[string]int
	services     []string
}

func NewAppointmentStore(
	appointments []models.Appointment,
	branches []models.Branch,
) (*AppointmentStore, error) {

	s := &AppointmentStore{
		appointments: make([]models.Appointment, 0, len(appointments)),
		branches:     make([]models.Branch, 0, len(branches)),
		branchIdx:    make(map[string]int, len(branches)),
	}

	// --------------------------------------------------
	// Filiais
	// --------------------------------------------------
	for _, b := range branches {
		if err := domain.ValidateBranch(b); err != nil {
			return nil, err
		}
		if _, dup := s.branchIdx[b.ID]; dup {
			return nil, httperr.ErrBusinessDetail("duplicate_id", "branch "+b.ID)
		}
		s.branchIdx[b.ID] = len(s.branches)
		s.branches = append(s.branches, b)
	}

	// --------------------------------------------------
	// Agendamentos (ordem de inserção preservada)
	// --------------------------------------------------
	seenIDs := make(map[uint]struct{}, len(appointments))
	seenServices := map[string]struct{}{}

	for _, ap := range appointments {
		if err := domain.Validate(ap); err != nil {
			return nil, fmt.Errorf("build appointment store: %w", err)
		}
		if _, dup := seenIDs[ap.ID]; dup {
			return nil, httperr.ErrBusinessDetail("duplicate_id", fmt.Sprintf("appointment %d", ap.ID))
		}
		seenIDs[ap.ID] = struct{}{}

		ap.Status = string(domain.ParseStatus(ap.Status))
		s.appointments = append(s.appointments, ap)

		if _, ok := seenServices[ap.ServiceName]; !ok {
			seenServices[ap.ServiceName] = struct{}{}
			s.services = append(s.services, ap.ServiceName)
		}
	}

	return s, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (s *AppointmentStore) GetAll() []models.Appointment {
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// --------------------------------------------------
// Branch
// --------------------------------------------------

func (s *AppointmentStore) GetBranches() []models.Branch {
	out := make([]models.Branch, len(s.branches))
	copy(out, s.branches)
	return out
}

func (s *AppointmentStore) GetBranch(id string) models.Branch {
	if i, ok := s.branchIdx[id]; ok {
		return s.branches[i]
	}
	return models.Branch{ID: id, Name: UnknownBranchName}
}

// --------------------------------------------------
// Filter options
// --------------------------------------------------

// ServiceNames returns distinct service names in first-seen order.
func (s *AppointmentStore) ServiceNames() []string {
	out := make([]string, len(s.services))
	copy(out, s.services)
	return out
}

// Compile-time check
var _ domain.Repository = (*AppointmentStore)(nil)
