package appointment

import (
	"time"

	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/dto"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
	"github.com/BruksfildServices01/oficina-scheduler/internal/theme"
	"github.com/BruksfildServices01/oficina-scheduler/internal/validators"
)

// presenter monta os DTOs de uma requisição: um "agora" e um tema fixos
// para todos os itens da resposta. Horários saem no fuso da oficina (loc).
type presenter struct {
	repo domain.Repository
	mode theme.Mode
	now  time.Time
	loc  *time.Location
}

func (p presenter) appointment(ap models.Appointment) dto.AppointmentListDTO {
	status := domain.DisplayStatus(ap, p.now)
	color := domain.StatusColor(status)
	model, plate := validators.ParseVehicle(ap.VehicleDescription)

	start, end := ap.ScheduledAt, ap.EndsAt()
	if p.loc != nil {
		start, end = start.In(p.loc), end.In(p.loc)
	}

	return dto.AppointmentListDTO{
		ID:              ap.ID,
		ScheduledAt:     start,
		EndsAt:          end,
		Time:            start.Format(schedule.TimeFormat),
		DurationMinutes: ap.DurationMinutes,
		CustomerName:    ap.CustomerName,
		Vehicle:         ap.VehicleDescription,
		VehicleModel:    model,
		VehiclePlate:    plate,
		ServiceName:     ap.ServiceName,
		BranchID:        ap.BranchID,
		BranchName:      p.repo.GetBranch(ap.BranchID).Name,
		Notes:           ap.Notes,
		Status:          string(domain.ParseStatus(ap.Status)),
		StatusLabel:     domain.StatusLabel(status),
		StatusColor:     string(color),
		StatusHex:       theme.Hex(p.mode, color),
		Late:            status == domain.StatusLate,
	}
}

func (p presenter) appointments(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, p.appointment(ap))
	}
	return out
}

func (p presenter) statusOption(s domain.Status) dto.StatusOptionDTO {
	color := domain.StatusColor(s)
	return dto.StatusOptionDTO{
		Value: string(s),
		Label: domain.StatusLabel(s),
		Color: string(color),
		Hex:   theme.Hex(p.mode, color),
	}
}

func rangeDTO(r schedule.Range) dto.RangeDTO {
	return dto.RangeDTO{Start: r.Start, End: r.End}
}

func branchDTO(b models.Branch) dto.BranchDTO {
	return dto.BranchDTO{ID: b.ID, Name: b.Name, Address: b.Address}
}
