package schedule

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
)

const (
	DefaultSlotGranularity = 60
	DefaultFirstSlot       = "08:00"
	DefaultLastSlot        = "18:00"
)

// SlotKey trunca o horário para o múltiplo inferior da granularidade.
func SlotKey(t time.Time, granularityMinutes int) string {
	if granularityMinutes <= 0 {
		granularityMinutes = DefaultSlotGranularity
	}

	minutes := t.Hour()*60 + t.Minute()
	minutes -= minutes % granularityMinutes
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GroupBySlot buckets by time of day in loc (the shop zone); nil keeps each
// timestamp in its own zone. Slots without appointments have no entry; the
// caller walks its own slot list and treats absence as available.
func GroupBySlot(appointments []models.Appointment, granularityMinutes int, loc *time.Location) map[string][]models.Appointment {
	out := map[string][]models.Appointment{}
	for _, ap := range appointments {
		at := ap.ScheduledAt
		if loc != nil {
			at = at.In(loc)
		}
		key := SlotKey(at, granularityMinutes)
		out[key] = append(out[key], ap)
	}

	for k := range out {
		SortChronological(out[k])
	}

	return out
}

// WorkingSlots lista os horários de first até last (inclusivo).
func WorkingSlots(first, last string, granularityMinutes int) ([]string, error) {
	if granularityMinutes <= 0 {
		return nil, httperr.ErrBusinessDetail("invalid_granularity", fmt.Sprint(granularityMinutes))
	}

	parseHM := func(hm string) (int, error) {
		t, err := time.Parse(TimeFormat, hm)
		if err != nil {
			return 0, httperr.ErrBusinessDetail("invalid_slot", hm)
		}
		return t.Hour()*60 + t.Minute(), nil
	}

	from, err := parseHM(first)
	if err != nil {
		return nil, err
	}
	to, err := parseHM(last)
	if err != nil {
		return nil, err
	}
	if to < from {
		return nil, httperr.ErrBusinessDetail("invalid_slot", first+" > "+last)
	}

	// a abertura precisa cair numa fronteira de slot, senão as chaves de
	// SlotKey não batem com a grade
	if from%granularityMinutes != 0 {
		return nil, httperr.ErrBusinessDetail(
			"invalid_granularity",
			fmt.Sprintf("%d min não alinha com %s", granularityMinutes, first),
		)
	}

	var slots []string
	for m := from; m <= to; m += granularityMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots, nil
}

type SlotStatus struct {
	Time         string               `json:"time"`
	Available    bool                 `json:"available"`
	Appointments []models.Appointment `json:"appointments"`
}

// DayBoard pairs each fixed slot with what GroupBySlot found for it.
// Appointments outside the slot list are not reported here.
func DayBoard(appointments []models.Appointment, slots []string, granularityMinutes int, loc *time.Location) []SlotStatus {
	bySlot := GroupBySlot(appointments, granularityMinutes, loc)

	board := make([]SlotStatus, 0, len(slots))
	for _, s := range slots {
		aps := bySlot[s]
		if aps == nil {
			aps = []models.Appointment{}
		}
		board = append(board, SlotStatus{
			Time:         s,
			Available:    len(aps) == 0,
			Appointments: aps,
		})
	}
	return board
}
