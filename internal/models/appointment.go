package models

import "time"

// Agendamento de serviço na oficina. Somente leitura depois de construído.
type Appointment struct {
	ID uint `json:"id"`

	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`

	CustomerName       string `json:"customer_name"`
	VehicleDescription string `json:"vehicle_description"`
	ServiceName        string `json:"service_name"`

	Status   string `json:"status"`
	BranchID string `json:"branch_id"`

	Notes string `json:"notes,omitempty"`
}

// EndsAt is display-only; nothing checks overlaps.
func (a Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
