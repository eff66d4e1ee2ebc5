package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/dto"
	"github.com/BruksfildServices01/oficina-scheduler/internal/locale"
)

type DayBoardQuery struct {
	Date        time.Time
	Granularity int
	Filters     schedule.FilterSet
}

type GetDayBoard struct {
	repo     domain.Repository
	prefs    ModeSource
	settings Settings
}

func NewGetDayBoard(
	repo domain.Repository,
	prefs ModeSource,
	settings Settings,
) *GetDayBoard {
	return &GetDayBoard{
		repo:     repo,
		prefs:    modeOrLight(prefs),
		settings: settings.withDefaults(),
	}
}

func (uc *GetDayBoard) Execute(
	ctx context.Context,
	q DayBoardQuery,
) (*dto.DayBoardDTO, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gran := q.Granularity
	if gran == 0 {
		gran = uc.settings.Granularity
	}

	slots, err := schedule.WorkingSlots(uc.settings.FirstSlot, uc.settings.LastSlot, gran)
	if err != nil {
		return nil, err
	}

	ref := uc.settings.reference(q.Date)
	rng := schedule.SelectRange(ref, schedule.ViewDay)

	filtered := schedule.Filter(uc.repo.GetAll(), q.Filters)
	days := schedule.GroupByDay(filtered, rng.Start, rng.End)
	aps, _ := days.Get(schedule.DayKey(rng.Start))

	p := presenter{repo: uc.repo, mode: uc.prefs.Mode(), now: uc.settings.now(), loc: rng.Start.Location()}

	out := &dto.DayBoardDTO{
		Date:        schedule.DayKey(rng.Start),
		Heading:     locale.DayHeading(rng.Start),
		LongDate:    locale.LongDate(rng.Start),
		Granularity: gran,
		Total:       len(aps),
		Slots:       make([]dto.SlotDTO, 0, len(slots)),
	}

	for _, s := range schedule.DayBoard(aps, slots, gran, rng.Start.Location()) {
		out.Slots = append(out.Slots, dto.SlotDTO{
			Time:         s.Time,
			Available:    s.Available,
			Appointments: p.appointments(s.Appointments),
		})
	}

	return out, nil
}
