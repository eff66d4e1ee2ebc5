package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/dto"
	"github.com/BruksfildServices01/oficina-scheduler/internal/locale"
)

type ScheduleQuery struct {
	Date    time.Time
	View    schedule.ViewMode
	Filters schedule.FilterSet
}

type ListSchedule struct {
	repo     domain.Repository
	prefs    ModeSource
	settings Settings
}

func NewListSchedule(
	repo domain.Repository,
	prefs ModeSource,
	settings Settings,
) *ListSchedule {
	return &ListSchedule{
		repo:     repo,
		prefs:    modeOrLight(prefs),
		settings: settings.withDefaults(),
	}
}

func (uc *ListSchedule) Execute(
	ctx context.Context,
	q ScheduleQuery,
) (*dto.ScheduleDTO, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := q.View
	if view == "" {
		view = schedule.ViewWeek
	}

	now := uc.settings.now()
	ref := uc.settings.reference(q.Date)
	rng := schedule.SelectRange(ref, view)

	filtered := schedule.Filter(uc.repo.GetAll(), q.Filters)
	days := schedule.GroupByDay(filtered, rng.Start, rng.End)

	p := presenter{repo: uc.repo, mode: uc.prefs.Mode(), now: now, loc: rng.Start.Location()}
	today := schedule.DayKey(now)

	out := &dto.ScheduleDTO{
		View:          string(view),
		ReferenceDate: schedule.DayKey(ref),
		Title:         title(ref, view),
		Range:         rangeDTO(rng),
		ActiveFilters: q.Filters.ActiveCount(),
		Days:          make([]dto.DayDTO, 0, len(days)),
	}

	for _, d := range days {
		out.Total += len(d.Appointments)
		out.Days = append(out.Days, dto.DayDTO{
			Date:         d.Key,
			Weekday:      locale.WeekdayShort(d.Date),
			Heading:      locale.DayHeading(d.Date),
			ShortDate:    locale.ShortDate(d.Date),
			IsToday:      d.Key == today,
			Total:        len(d.Appointments),
			Appointments: p.appointments(d.Appointments),
		})
	}

	return out, nil
}

// título do cabeçalho: mês na semana, data por extenso no dia
func title(ref time.Time, view schedule.ViewMode) string {
	if view == schedule.ViewDay {
		return locale.DayHeading(ref)
	}
	return locale.MonthTitle(schedule.WeekStart(ref))
}
