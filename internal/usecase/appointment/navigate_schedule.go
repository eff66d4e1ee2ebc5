package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/dto"
	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
)

type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
	DirectionToday    Direction = "today"
)

func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(DirectionToday), "hoje":
		return DirectionToday, nil
	case string(DirectionNext), "proximo", "próximo":
		return DirectionNext, nil
	case string(DirectionPrevious), "prev", "anterior":
		return DirectionPrevious, nil
	}
	return "", httperr.ErrBusinessDetail("invalid_direction", raw)
}

// NavigateSchedule moves the reference date one period at a time.
// It only computes dates; the client asks for the schedule afterwards.
type NavigateSchedule struct {
	settings Settings
}

func NewNavigateSchedule(settings Settings) *NavigateSchedule {
	return &NavigateSchedule{settings: settings.withDefaults()}
}

func (uc *NavigateSchedule) Execute(
	ctx context.Context,
	date time.Time,
	view schedule.ViewMode,
	dir Direction,
) (*dto.NavigationDTO, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if view == "" {
		view = schedule.ViewWeek
	}

	ref := uc.settings.reference(date)

	switch dir {
	case DirectionNext:
		ref = schedule.Next(ref, view)
	case DirectionPrevious:
		ref = schedule.Previous(ref, view)
	case DirectionToday, "":
		ref = uc.settings.now()
	default:
		return nil, httperr.ErrBusinessDetail("invalid_direction", string(dir))
	}

	rng := schedule.SelectRange(ref, view)

	dates := make([]string, 0, 7)
	if view == schedule.ViewWeek {
		for _, d := range schedule.WeekDates(rng.Start) {
			dates = append(dates, schedule.DayKey(d))
		}
	} else {
		dates = append(dates, schedule.DayKey(rng.Start))
	}

	return &dto.NavigationDTO{
		View:          string(view),
		ReferenceDate: schedule.DayKey(ref),
		Title:         title(ref, view),
		Range:         rangeDTO(rng),
		Dates:         dates,
	}, nil
}
