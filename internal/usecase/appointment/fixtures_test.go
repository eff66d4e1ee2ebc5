package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/oficina-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
	"github.com/BruksfildServices01/oficina-scheduler/internal/theme"
)

var brt = time.FixedZone("BRT", -3*60*60)

// quarta-feira, 12/06/2024 às 10:00
var fixedNow = time.Date(2024, 6, 12, 10, 0, 0, 0, brt)

func testSettings() Settings {
	return Settings{
		Location: brt,
		Now:      func() time.Time { return fixedNow },
	}
}

func newTestStore(t *testing.T) *repository.AppointmentStore {
	t.Helper()

	at := func(d, hh, mm int) time.Time { return time.Date(2024, 6, d, hh, mm, 0, 0, brt) }

	store, err := repository.NewAppointmentStore(
		[]models.Appointment{
			{ID: 1, ScheduledAt: at(12, 8, 0), DurationMinutes: 30, CustomerName: "Maria Santos",
				VehicleDescription: "Honda Civic - ABC-1234", ServiceName: "Troca de óleo",
				Status: "scheduled", BranchID: "centro"},
			{ID: 2, ScheduledAt: at(12, 9, 0), DurationMinutes: 60, CustomerName: "Pedro Oliveira",
				VehicleDescription: "Fiat Pulse - BRA2E19", ServiceName: "Alinhamento",
				Status: "in_progress", BranchID: "zona-sul"},
			{ID: 3, ScheduledAt: at(12, 9, 0), DurationMinutes: 45, CustomerName: "Ana Costa",
				VehicleDescription: "Kombi", ServiceName: "Troca de óleo",
				Status: "concluido", BranchID: "centro"},
			{ID: 4, ScheduledAt: at(14, 14, 30), DurationMinutes: 90, CustomerName: "João Lima",
				VehicleDescription: "Ford Ka - VWX-0123", ServiceName: "Revisão",
				Status: "scheduled", BranchID: "inexistente"},
			{ID: 5, ScheduledAt: at(20, 10, 0), DurationMinutes: 30, CustomerName: "Carla Dias",
				VehicleDescription: "Toyota Etios - ZAB-0123", ServiceName: "Revisão",
				Status: "cancelled", BranchID: "centro"},
		},
		[]models.Branch{
			{ID: "centro", Name: "Centro"},
			{ID: "zona-sul", Name: "Zona Sul"},
		},
	)
	require.NoError(t, err)
	return store
}

type staticMode theme.Mode

func (m staticMode) Mode() theme.Mode { return theme.Mode(m) }
