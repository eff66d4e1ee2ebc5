package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
)

// ===============================
// Construction rules
// ===============================

// Validate rejeita registros malformados na construção do store.
func Validate(ap models.Appointment) error {
	if ap.ID == 0 {
		return httperr.ErrBusinessDetail("missing_field", "id")
	}

	if ap.ScheduledAt.IsZero() {
		return httperr.ErrBusinessDetail("invalid_timestamp", fmt.Sprintf("appointment %d", ap.ID))
	}

	if ap.DurationMinutes <= 0 {
		return httperr.ErrBusinessDetail(
			"invalid_duration",
			fmt.Sprintf("appointment %d: duration_minutes=%d", ap.ID, ap.DurationMinutes),
		)
	}

	required := []struct {
		field string
		value string
	}{
		{"customer_name", ap.CustomerName},
		{"vehicle_description", ap.VehicleDescription},
		{"service_name", ap.ServiceName},
		{"branch_id", ap.BranchID},
		{"status", ap.Status},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return httperr.ErrBusinessDetail(
				"missing_field",
				fmt.Sprintf("appointment %d: %s", ap.ID, r.field),
			)
		}
	}

	return nil
}

func ValidateBranch(b models.Branch) error {
	if strings.TrimSpace(b.ID) == "" {
		return httperr.ErrBusinessDetail("invalid_branch", "id")
	}
	if strings.TrimSpace(b.Name) == "" {
		return httperr.ErrBusinessDetail("invalid_branch", fmt.Sprintf("branch %s: name", b.ID))
	}
	return nil
}

// ===============================
// Read-side projections
// ===============================

// IsLate: ainda agendado e o horário marcado já passou.
func IsLate(ap models.Appointment, now time.Time) bool {
	return ParseStatus(ap.Status) == StatusScheduled && now.After(ap.ScheduledAt)
}

// DisplayStatus recalcula o "atrasado" a cada leitura; nada é gravado.
func DisplayStatus(ap models.Appointment, now time.Time) Status {
	if IsLate(ap, now) {
		return StatusLate
	}
	return ParseStatus(ap.Status)
}
