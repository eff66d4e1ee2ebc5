package schedule

import (
	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
)

// FilterSet: dimensão vazia = sem filtro naquela dimensão.
type FilterSet struct {
	Status       []appointment.Status `json:"status"`
	BranchIDs    []string             `json:"branch_ids"`
	ServiceNames []string             `json:"service_names"`
}

func (f FilterSet) IsEmpty() bool {
	return len(f.Status) == 0 && len(f.BranchIDs) == 0 && len(f.ServiceNames) == 0
}

// ActiveCount is the number of constrained dimensions (badge on the filter button).
func (f FilterSet) ActiveCount() int {
	n := 0
	for _, l := range []int{len(f.Status), len(f.BranchIDs), len(f.ServiceNames)} {
		if l > 0 {
			n++
		}
	}
	return n
}

// Matches: AND entre dimensões, pertinência (OR) dentro de cada uma.
func (f FilterSet) Matches(ap models.Appointment) bool {
	if len(f.Status) > 0 && !containsStatus(f.Status, appointment.ParseStatus(ap.Status)) {
		return false
	}

	if len(f.BranchIDs) > 0 && !contains(f.BranchIDs, ap.BranchID) {
		return false
	}

	if len(f.ServiceNames) > 0 && !contains(f.ServiceNames, ap.ServiceName) {
		return false
	}

	return true
}

// Filter keeps input order and never aliases the input slice.
func Filter(appointments []models.Appointment, f FilterSet) []models.Appointment {
	out := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if f.Matches(ap) {
			out = append(out, ap)
		}
	}
	return out
}

func containsStatus(set []appointment.Status, s appointment.Status) bool {
	for _, v := range set {
		if appointment.ParseStatus(string(v)) == s {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
