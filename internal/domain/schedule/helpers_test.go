package schedule

import (
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
)

var brt = time.FixedZone("BRT", -3*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, brt)
}

func ap(id uint, when time.Time, status appointment.Status, branch, service string) models.Appointment {
	return models.Appointment{
		ID:                 id,
		ScheduledAt:        when,
		DurationMinutes:    30,
		CustomerName:       "Cliente",
		VehicleDescription: "Fiat Uno - JKL-3456",
		ServiceName:        service,
		Status:             string(status),
		BranchID:           branch,
	}
}

func ids(aps []models.Appointment) []uint {
	out := make([]uint, 0, len(aps))
	for _, a := range aps {
		out = append(out, a.ID)
	}
	return out
}

func sampleWeek() []models.Appointment {
	return []models.Appointment{
		ap(1, at(2024, 6, 12, 8, 0), appointment.StatusScheduled, "centro", "Troca de óleo"),
		ap(2, at(2024, 6, 12, 8, 30), appointment.StatusInProgress, "centro", "Revisão completa"),
		ap(3, at(2024, 6, 10, 9, 0), appointment.StatusScheduled, "zona-sul", "Troca de óleo"),
		ap(4, at(2024, 6, 15, 23, 59), appointment.StatusCompleted, "zona-sul", "Troca de pneus"),
		ap(5, at(2024, 6, 9, 0, 0), appointment.StatusCancelled, "centro", "Diagnóstico elétrico"),
		ap(6, at(2024, 6, 16, 0, 0), appointment.StatusScheduled, "centro", "Troca de óleo"),
		ap(7, at(2024, 6, 8, 23, 59), appointment.StatusScheduled, "centro", "Troca de óleo"),
		ap(8, at(2024, 6, 11, 14, 0), appointment.Status("aguardando-peca"), "centro", "Troca de bateria"),
	}
}
